// Package yaml_adapter loads package definitions written in YAML into the
// format-agnostic config.Model.
//
// A YAML definition mirrors the HCL one:
//
//	version: "2020-04-15"
//	changes: Updated data until 2019-05
//	header_levels: [region, household, type, feed, project]
//	info_columns:
//	  utc: utc_timestamp
//	  cet: cet_cest_timestamp
//	  marker: interpolated
//	datasets:
//	  - resolution: 15min
//	    path: household_data_15min_multiindex.csv
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/adminde/household-data/internal/config"
	"github.com/adminde/household-data/internal/ctxlog"
	"github.com/adminde/household-data/internal/fsutil"
)

// document is the YAML layout of one package definition file.
type document struct {
	Version      *string      `yaml:"version"`
	Changes      *string      `yaml:"changes"`
	HeaderLevels []string     `yaml:"header_levels"`
	InfoColumns  *infoColumns `yaml:"info_columns"`
	Datasets     []dataset    `yaml:"datasets"`
}

type infoColumns struct {
	UTC    string `yaml:"utc"`
	CET    string `yaml:"cet"`
	Marker string `yaml:"marker"`
}

type dataset struct {
	Resolution string `yaml:"resolution"`
	Path       string `yaml:"path"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML package definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every given file, and every .yaml/.yml file beneath every
// given directory, and merges them with the same rules as the HCL loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := findAllYAMLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yaml files found in %v", paths)
	}

	model := &config.Model{}
	origins := make(map[string]string)
	claim := func(name, file string) error {
		if prev, ok := origins[name]; ok {
			return fmt.Errorf("%s is defined in both %s and %s", name, prev, file)
		}
		origins[name] = file
		return nil
	}

	for _, file := range files {
		doc, err := decodeFile(file)
		if err != nil {
			return nil, err
		}

		if doc.Version != nil {
			if err := claim("version", file); err != nil {
				return nil, err
			}
			model.Version = *doc.Version
		}
		if doc.Changes != nil {
			if err := claim("changes", file); err != nil {
				return nil, err
			}
			model.Changes = *doc.Changes
		}
		if doc.HeaderLevels != nil {
			if err := claim("header_levels", file); err != nil {
				return nil, err
			}
			model.HeaderLevels = doc.HeaderLevels
		}
		if doc.InfoColumns != nil {
			if err := claim("info_columns", file); err != nil {
				return nil, err
			}
			model.InfoColumns = config.InfoColumns(*doc.InfoColumns)
		}
		for _, ds := range doc.Datasets {
			path := ds.Path
			if path != "" && !filepath.IsAbs(path) {
				path = filepath.Join(filepath.Dir(file), path)
			}
			model.Datasets = append(model.Datasets, &config.Dataset{Resolution: ds.Resolution, Path: path})
		}
	}

	logger.Debug("YAML loading complete.", "files", len(files), "datasets", len(model.Datasets))
	return model, nil
}

func decodeFile(file string) (*document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}
	return &doc, nil
}

func findAllYAMLFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}
