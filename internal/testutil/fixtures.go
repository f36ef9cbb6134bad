package testutil

import (
	"strings"
)

// Column is one feed column of a fixture CSV.
type Column struct {
	Household string
	Feed      string
	Project   string
	Region    string
	Type      string
}

// Levels is the header level order used by MultiIndexCSV.
var Levels = []string{"region", "household", "type", "feed", "project"}

// Known reference values that resolve against the default lookup tables.
const (
	Project = "CoSSMic"
	Region  = "DE_konstanz"
	Type    = "residential_4-person_suburb_building"
)

// Feed returns a column for household and feed with known reference values.
func Feed(household, feed string) Column {
	return Column{Household: household, Feed: feed, Project: Project, Region: Region, Type: Type}
}

// MultiIndexCSV renders the header rows, in Levels order, of a multi-index
// CSV export with the three info columns followed by cols, plus one data row.
func MultiIndexCSV(cols ...Column) string {
	rows := make([][]string, len(Levels))
	for i := range rows {
		rows[i] = []string{"", "", ""}
	}
	rows[0] = []string{"utc_timestamp", "cet_cest_timestamp", "interpolated"}

	for _, c := range cols {
		values := []string{c.Region, c.Household, c.Type, c.Feed, c.Project}
		for i := range rows {
			rows[i] = append(rows[i], values[i])
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	data := []string{"2015-05-21T00:00:00Z", "2015-05-21T02:00:00+0200", ""}
	for range cols {
		data = append(data, "0.25")
	}
	b.WriteString(strings.Join(data, ","))
	b.WriteByte('\n')
	return b.String()
}

// PackageHCL renders a package definition declaring one dataset per
// resolution, read from "<resolution>.csv".
func PackageHCL(version string, resolutions ...string) string {
	var b strings.Builder
	b.WriteString(`version       = "` + version + `"
changes       = "Updated data"
header_levels = ["region", "household", "type", "feed", "project"]

info_columns {
  utc    = "utc_timestamp"
  cet    = "cet_cest_timestamp"
  marker = "interpolated"
}
`)
	for _, res := range resolutions {
		b.WriteString("\ndataset \"" + res + "\" {\n  path = \"" + res + ".csv\"\n}\n")
	}
	return b.String()
}
