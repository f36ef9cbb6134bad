package assembler

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/adminde/household-data/internal/ctxlog"
	"github.com/adminde/household-data/internal/datapackage"
	"github.com/adminde/household-data/internal/lookup"
	"github.com/adminde/household-data/internal/table"
)

// DefaultOutputPath is where the manifest is written unless told otherwise.
const DefaultOutputPath = "datapackage.json"

// Header level names the assembler reads from each column.
const (
	LevelHousehold = "household"
	LevelFeed      = "feed"
	LevelProject   = "project"
	LevelRegion    = "region"
	LevelType      = "type"
)

// InfoColumns names the non-data columns of every table.
type InfoColumns struct {
	UTC    string
	CET    string
	Marker string
}

// Values returns the column names in schema order.
func (c InfoColumns) Values() []string {
	return []string{c.UTC, c.CET, c.Marker}
}

// Contains reports whether name is one of the info columns.
func (c InfoColumns) Contains(name string) bool {
	return slices.Contains(c.Values(), name)
}

// Dataset is the table of one time resolution, e.g. "15min".
type Dataset struct {
	Resolution string
	Table      *table.Table
}

// Options carries everything besides the datasets that ends up in the manifest.
type Options struct {
	Version      string
	Changes      string
	HeaderLevels []string
	InfoColumns  InfoColumns
}

// Assembler turns datasets into a data package manifest.
type Assembler struct {
	tables *lookup.Tables
}

// New returns an Assembler resolving column metadata through tables. A nil
// tables argument selects lookup.Default.
func New(tables *lookup.Tables) *Assembler {
	if tables == nil {
		tables = lookup.Default
	}
	return &Assembler{tables: tables}
}

// Assemble builds the complete manifest. Datasets are processed in slice
// order; the first lookup failure aborts the whole build.
func (a *Assembler) Assemble(ctx context.Context, datasets []Dataset, opts Options) (*datapackage.Package, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Assembling data package.", "datasets", len(datasets), "version", opts.Version)

	pkg := datapackage.Head(opts.Version, opts.Changes)
	pkg.Resources = append(pkg.Resources, workbookResource())

	var sources []datapackage.Source
	for _, ds := range datasets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, exists := pkg.Schemas[ds.Resolution]; exists {
			return nil, fmt.Errorf("duplicate resolution %q", ds.Resolution)
		}
		if ds.Table == nil {
			return nil, fmt.Errorf("resolution %q has no table", ds.Resolution)
		}

		pkg.Resources = append(pkg.Resources, csvResource(ds.Resolution))

		schema := infoSchema(opts.InfoColumns)
		skipped := 0
		for _, col := range ds.Table.Columns {
			if opts.InfoColumns.Contains(col.First()) {
				skipped++
				continue
			}
			field, err := a.field(col.Zip(opts.HeaderLevels))
			if err != nil {
				return nil, fmt.Errorf("resolution %s, column %s: %w", ds.Resolution, col, err)
			}
			schema.Fields = append(schema.Fields, field)
			sources = append(sources, *field.Source)
		}
		pkg.Schemas[ds.Resolution] = schema

		logger.Debug("Schema assembled.", "resolution", ds.Resolution, "fields", len(schema.Fields), "info_columns_skipped", skipped)
	}

	pkg.Sources = uniqueSources(sources)
	logger.Debug("Sources deduplicated.", "collected", len(sources), "unique", len(pkg.Sources))
	return pkg, nil
}

// Write assembles the manifest and writes it to path.
func (a *Assembler) Write(ctx context.Context, path string, datasets []Dataset, opts Options) (*datapackage.Package, error) {
	pkg, err := a.Assemble(ctx, datasets, opts)
	if err != nil {
		return nil, err
	}
	if err := datapackage.WriteFile(path, pkg); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("Data package written.", "path", path, "schemas", len(pkg.Schemas), "sources", len(pkg.Sources))
	return pkg, nil
}

// field resolves one column's header record into a schema field.
func (a *Assembler) field(h map[string]string) (datapackage.Field, error) {
	web, err := a.tables.Website(h[LevelProject])
	if err != nil {
		return datapackage.Field{}, err
	}
	region, err := a.tables.Region(h[LevelRegion])
	if err != nil {
		return datapackage.Field{}, err
	}
	buildingType, err := a.tables.BuildingType(h[LevelType])
	if err != nil {
		return datapackage.Field{}, err
	}

	household, feed := h[LevelHousehold], h[LevelFeed]
	if household == "" || feed == "" {
		return datapackage.Field{}, errors.New("column has no household or feed value")
	}

	return datapackage.Field{
		Name:        household + "_" + feed,
		Description: a.tables.FeedDescription(feed),
		Type:        datapackage.TypeNumber,
		Source: &datapackage.Source{
			Project: h[LevelProject],
			Web:     web,
			Type:    buildingType,
		},
		Properties: &datapackage.Properties{
			Region:    region,
			Household: household,
			Feed:      feed,
		},
	}, nil
}

// uniqueSources drops repeated triples, keeping first occurrences in order.
func uniqueSources(sources []datapackage.Source) []datapackage.Source {
	seen := make(map[datapackage.Source]struct{}, len(sources))
	out := make([]datapackage.Source, 0, len(sources))
	for _, s := range sources {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
