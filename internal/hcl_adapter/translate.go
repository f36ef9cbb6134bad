// This file contains the logic for merging decoded HCL files into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/adminde/household-data/internal/config"
)

// mergedModel accumulates several files into one model and remembers which
// file set each singular attribute.
type mergedModel struct {
	model   *config.Model
	origins map[string]string
}

// claim records that file defines name, failing if another file already did.
func (m *mergedModel) claim(name, file string) error {
	if prev, ok := m.origins[name]; ok {
		return fmt.Errorf("%s is defined in both %s and %s", name, prev, file)
	}
	m.origins[name] = file
	return nil
}

func (m *mergedModel) merge(ctx context.Context, file string, root *fileRoot, evalCtx *hcl.EvalContext) error {
	scalars := []struct {
		name   string
		expr   hcl.Expression
		target any
	}{
		{"version", root.Version, &m.model.Version},
		{"changes", root.Changes, &m.model.Changes},
		{"header_levels", root.HeaderLevels, &m.model.HeaderLevels},
	}
	for _, s := range scalars {
		if !isExprDefined(ctx, s.expr, s.name) {
			continue
		}
		if err := m.claim(s.name, file); err != nil {
			return err
		}
		if err := decodeExpr(s.expr, evalCtx, s.name, s.target); err != nil {
			return fmt.Errorf("in %s: %w", file, err)
		}
	}

	if root.InfoColumns != nil {
		if err := m.claim("info_columns", file); err != nil {
			return err
		}
		m.model.InfoColumns = config.InfoColumns{
			UTC:    root.InfoColumns.UTC,
			CET:    root.InfoColumns.CET,
			Marker: root.InfoColumns.Marker,
		}
	}

	for _, ds := range root.Datasets {
		m.model.Datasets = append(m.model.Datasets, &config.Dataset{
			Resolution: ds.Resolution,
			Path:       resolvePath(file, ds.Path),
		})
	}
	return nil
}
