// Package hcl_adapter loads package definitions written in HCL into the
// format-agnostic config.Model.
package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/adminde/household-data/internal/config"
	"github.com/adminde/household-data/internal/ctxlog"
	"github.com/adminde/household-data/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ []string
}

// Option customises a Loader.
type Option func(*Loader)

// WithEnviron replaces the process environment exposed as `env`. Entries use
// the "KEY=value" form of os.Environ.
func WithEnviron(environ []string) Option {
	return func(l *Loader) {
		l.environ = environ
	}
}

// NewLoader creates a new HCL package definition loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{environ: os.Environ()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses every given file, and every .hcl file beneath every given
// directory, and merges them into one model. A scalar attribute or block
// may only be set by one file; datasets accumulate in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.environ)
	m := &mergedModel{model: &config.Model{}, origins: make(map[string]string)}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := m.merge(ctx, file, &root, evalCtx); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "version", m.model.Version, "header_levels", len(m.model.HeaderLevels), "datasets", len(m.model.Datasets))
	return m.model, nil
}

// findAllHCLFiles expands the given paths into a flat, de-duplicated list of
// .hcl files. Unlike directories, a file is taken regardless of extension.
func findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(filepath.Clean(path))
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}
