package datapackage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPackage() *Package {
	p := Head("2020-04-15", "Added <new> feeds & households")
	p.Sources = []Source{{Project: "CoSSMic", Web: "http://cossmic.eu/", Type: "Residential building"}}
	p.Resources = []Resource{
		{Path: "time_series.xlsx", Format: "xlsx", MediaType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{
			Path:      "household_data_15min_singleindex.csv",
			Format:    "csv",
			MediaType: "text/csv",
			Encoding:  "UTF8",
			Schema:    "15min",
			Dialect:   &Dialect{CSVDDFVersion: "1.0", Delimiter: ",", LineTerminator: "\n", Header: true},
		},
	}
	p.Schemas["15min"] = &Schema{
		PrimaryKey:   "utc_timestamp",
		MissingValue: "",
		Fields: []Field{
			{Name: "utc_timestamp", Description: "Start of timeperiod", Type: TypeDatetime, ContentFilter: true},
			{
				Name:        "DE_KN_residential1_pv",
				Description: "Total Photovoltaic energy generation in kWh",
				Type:        TypeNumber,
				Source:      &p.Sources[0],
				Properties:  &Properties{Region: "Germany, Konstanz", Household: "DE_KN_residential1", Feed: "pv"},
			},
		},
	}
	return p
}

func TestHead(t *testing.T) {
	p := Head("v1", "first release")

	assert.Equal(t, "opsd_household_data", p.Name)
	assert.Equal(t, "Household Data", p.Title)
	assert.Equal(t, "v1", p.Version)
	assert.Equal(t, "first release", p.LastChanges)
	assert.Equal(t, "Southern Germany", p.GeographicalScope)
	assert.Contains(t, p.Keywords, "CoSSMic")
	require.Len(t, p.Contributors, 1)
	assert.Equal(t, "Adrian Minde", p.Contributors[0].Name)
	assert.NotContains(t, p.LongDescription, "  ")

	// Mutating one header must not leak into the next.
	p.Keywords[0] = "changed"
	assert.Equal(t, "Open Power System Data", Head("v1", "").Keywords[0])
}

func TestMarshal_Layout(t *testing.T) {
	data, err := validPackage().Marshal()
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "{\n    \"name\": \"opsd_household_data\",\n    \"title\""), out[:80])
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"last_changes": "Added <new> feeds & households"`)
	assert.Contains(t, out, `"csvddfVersion": 1.0`)
	assert.Contains(t, out, `"lineTerminator": "\n"`)
	assert.Contains(t, out, `"opsd-contentfilter": true`)
	assert.Contains(t, out, `"geographical-scope": "Southern Germany"`)

	// Top level keys appear in manifest order.
	keys := []string{"name", "title", "description", "long_description", "documentation", "version",
		"last_changes", "keywords", "geographical-scope", "contributors", "sources", "resources", "schemas"}
	last := -1
	for _, k := range keys {
		idx := strings.Index(out, "\n    \""+k+"\":")
		require.Greater(t, idx, last, "key %q out of order", k)
		last = idx
	}

	// Optional fields are omitted on the xlsx resource.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	xlsx := decoded["resources"].([]any)[0].(map[string]any)
	assert.NotContains(t, xlsx, "dialect")
	assert.NotContains(t, xlsx, "encoding")
}

func TestValidate(t *testing.T) {
	require.NoError(t, validPackage().Validate())

	p := validPackage()
	p.Sources[0].Web = ""
	p.Schemas["15min"].Fields[1].Type = "int"

	err := p.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "sources.0.web")
	assert.Contains(t, err.Error(), "schemas.15min.fields.1.source.web")
	assert.Contains(t, err.Error(), "schemas.15min.fields.1.type")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datapackage.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing"), 0o644))

	p := validPackage()
	require.NoError(t, WriteFile(path, p))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := p.Marshal()
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(written))
}

func TestWriteFile_InvalidPackageIsNotWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datapackage.json")

	p := validPackage()
	p.Resources = nil

	require.Error(t, WriteFile(path, p))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "datapackage.json")

	err := WriteFile(path, validPackage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write data package")
}
