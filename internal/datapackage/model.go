package datapackage

import "encoding/json"

// Package is the top level data package manifest.
type Package struct {
	Name              string             `json:"name"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	LongDescription   string             `json:"long_description"`
	Documentation     string             `json:"documentation"`
	Version           string             `json:"version"`
	LastChanges       string             `json:"last_changes"`
	Keywords          []string           `json:"keywords"`
	GeographicalScope string             `json:"geographical-scope"`
	Contributors      []Contributor      `json:"contributors"`
	Sources           []Source           `json:"sources"`
	Resources         []Resource         `json:"resources"`
	Schemas           map[string]*Schema `json:"schemas"`
}

// Contributor is a person or organisation credited for the package.
type Contributor struct {
	Web   string `json:"web"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Source describes where the data of a column originates from. Source is
// comparable and is used directly as a deduplication key.
type Source struct {
	Project string `json:"project"`
	Web     string `json:"web"`
	Type    string `json:"type"`
}

// Resource is a single file shipped with the package.
type Resource struct {
	Path               string              `json:"path"`
	Format             string              `json:"format"`
	MediaType          string              `json:"mediatype"`
	Encoding           string              `json:"encoding,omitempty"`
	Schema             string              `json:"schema,omitempty"`
	Dialect            *Dialect            `json:"dialect,omitempty"`
	AlternativeFormats []AlternativeFormat `json:"alternative_formats,omitempty"`
}

// Dialect is the CSV dialect description of a resource.
type Dialect struct {
	CSVDDFVersion  json.Number `json:"csvddfVersion"`
	Delimiter      string      `json:"delimiter"`
	LineTerminator string      `json:"lineTerminator"`
	Header         bool        `json:"header"`
}

// AlternativeFormat points to the same data stacked or formatted differently.
type AlternativeFormat struct {
	Path     string `json:"path"`
	Stacking string `json:"stacking"`
	Format   string `json:"format"`
}

// Schema is the table schema of one resolution.
type Schema struct {
	PrimaryKey   string  `json:"primaryKey"`
	MissingValue string  `json:"missingValue"`
	Fields       []Field `json:"fields"`
}

// Field describes one column of a table.
type Field struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Type          string      `json:"type"`
	Format        string      `json:"format,omitempty"`
	ContentFilter bool        `json:"opsd-contentfilter,omitempty"`
	Source        *Source     `json:"source,omitempty"`
	Properties    *Properties `json:"opsd-properties,omitempty"`
}

// Properties are the descriptive attributes of a feed column.
type Properties struct {
	Region    string `json:"Region"`
	Household string `json:"Household"`
	Feed      string `json:"Feed"`
}

// Field type markers used in schemas.
const (
	TypeDatetime = "datetime"
	TypeString   = "string"
	TypeNumber   = "number (float)"
)
