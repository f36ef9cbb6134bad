package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level content of a
// package definition file. Scalars are kept as expressions so that the
// loader can tell an omitted attribute from an empty one.
type fileRoot struct {
	Version      hcl.Expression    `hcl:"version,optional"`
	Changes      hcl.Expression    `hcl:"changes,optional"`
	HeaderLevels hcl.Expression    `hcl:"header_levels,optional"`
	InfoColumns  *infoColumnsBlock `hcl:"info_columns,block"`
	Datasets     []*datasetBlock   `hcl:"dataset,block"`
}

// infoColumnsBlock represents the `info_columns` block.
type infoColumnsBlock struct {
	UTC    string `hcl:"utc"`
	CET    string `hcl:"cet"`
	Marker string `hcl:"marker"`
}

// datasetBlock represents a `dataset "<resolution>"` block.
type datasetBlock struct {
	Resolution string `hcl:"resolution,label"`
	Path       string `hcl:"path"`
}
