package config

import (
	"fmt"
	"slices"

	"github.com/adminde/household-data/internal/validation"
)

// Model is the unified, format-agnostic representation of a package
// definition.
type Model struct {
	Version      string      `name:"version" validate:"required"`
	Changes      string      `name:"changes"`
	HeaderLevels []string    `name:"header_levels" validate:"min=2,dive,required"`
	InfoColumns  InfoColumns `name:"info_columns"`
	Datasets     []*Dataset  `name:"dataset" validate:"min=1,dive,required"`
}

// InfoColumns names the timestamp and marker columns of the tables.
type InfoColumns struct {
	UTC    string `name:"utc" validate:"required"`
	CET    string `name:"cet" validate:"required"`
	Marker string `name:"marker" validate:"required"`
}

// Dataset points to the multi-index CSV export of one resolution.
type Dataset struct {
	Resolution string `name:"resolution" validate:"required"`
	Path       string `name:"path" validate:"required"`
}

// Levels every feed column is resolved by.
var requiredLevels = []string{"household", "feed", "project", "region", "type"}

// Validate checks the struct constraints and the cross-field rules of the
// model.
func (m *Model) Validate() error {
	if err := validation.Struct(m); err != nil {
		return fmt.Errorf("invalid package definition: %w", err)
	}

	for _, level := range requiredLevels {
		if !slices.Contains(m.HeaderLevels, level) {
			return fmt.Errorf("invalid package definition: header_levels must include %q", level)
		}
	}

	seen := make(map[string]struct{}, len(m.Datasets))
	for _, ds := range m.Datasets {
		if _, dup := seen[ds.Resolution]; dup {
			return fmt.Errorf("invalid package definition: dataset %q is declared more than once", ds.Resolution)
		}
		seen[ds.Resolution] = struct{}{}
	}
	return nil
}
