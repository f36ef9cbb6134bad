package yaml_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminde/household-data/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "datapackage.yaml", `
version: "2020-04-15"
changes: Updated data until 2019-05
header_levels: [region, household, type, feed, project]
info_columns:
  utc: utc_timestamp
  cet: cet_cest_timestamp
  marker: interpolated
datasets:
  - resolution: 15min
    path: household_data_15min_multiindex.csv
  - resolution: 60min
    path: /data/household_data_60min_multiindex.csv
`)

	model, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	expected := &config.Model{
		Version:      "2020-04-15",
		Changes:      "Updated data until 2019-05",
		HeaderLevels: []string{"region", "household", "type", "feed", "project"},
		InfoColumns:  config.InfoColumns{UTC: "utc_timestamp", CET: "cet_cest_timestamp", Marker: "interpolated"},
		Datasets: []*config.Dataset{
			{Resolution: "15min", Path: filepath.Join(dir, "household_data_15min_multiindex.csv")},
			{Resolution: "60min", Path: "/data/household_data_60min_multiindex.csv"},
		},
	}
	if diff := cmp.Diff(expected, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_MergesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "version: v1\nheader_levels: [household, feed]\n")
	writeFile(t, dir, "sub/b.yml", "datasets:\n  - resolution: 15min\n    path: 15min.csv\n")
	writeFile(t, dir, "empty.yaml", "")

	model, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, "v1", model.Version)
	require.Len(t, model.Datasets, 1)
	assert.Equal(t, filepath.Join(dir, "sub", "15min.csv"), model.Datasets[0].Path)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		files  map[string]string
		errMsg string
	}{
		{name: "unknown field", files: map[string]string{"a.yaml": "owner: someone\n"}, errMsg: "field owner not found"},
		{name: "malformed", files: map[string]string{"a.yaml": "version: [\n"}, errMsg: "failed to decode YAML file"},
		{
			name:   "version twice",
			files:  map[string]string{"a.yaml": "version: v1\n", "b.yaml": "version: v2\n"},
			errMsg: "version is defined in both",
		},
		{name: "no files", files: map[string]string{"a.txt": "version: v1\n"}, errMsg: "no .yaml files found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}

			_, err := NewLoader().Load(context.Background(), dir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
