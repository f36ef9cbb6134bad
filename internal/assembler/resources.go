package assembler

import (
	"fmt"

	"github.com/adminde/household-data/internal/datapackage"
)

const workbookMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// workbookResource is the spreadsheet listed ahead of the per-resolution files.
func workbookResource() datapackage.Resource {
	return datapackage.Resource{
		Path:      "time_series.xlsx",
		Format:    "xlsx",
		MediaType: workbookMediaType,
	}
}

func csvResource(resolution string) datapackage.Resource {
	singleIndex := fmt.Sprintf("household_data_%s_singleindex.csv", resolution)
	return datapackage.Resource{
		Path:      singleIndex,
		Format:    "csv",
		MediaType: "text/csv",
		Encoding:  "UTF8",
		Schema:    resolution,
		Dialect: &datapackage.Dialect{
			CSVDDFVersion:  "1.0",
			Delimiter:      ",",
			LineTerminator: "\n",
			Header:         true,
		},
		AlternativeFormats: []datapackage.AlternativeFormat{
			{Path: singleIndex, Stacking: "Singleindex", Format: "csv"},
			{Path: "household_data.xlsx", Stacking: "Multiindex", Format: "xlsx"},
			{Path: fmt.Sprintf("household_data_%s_multiindex.csv", resolution), Stacking: "Multiindex", Format: "csv"},
			{Path: fmt.Sprintf("household_data_%s_stacked.csv", resolution), Stacking: "Stacked", Format: "csv"},
		},
	}
}

// infoSchema returns a schema holding the timestamp and marker fields that
// precede the feed fields of every table.
func infoSchema(info InfoColumns) *datapackage.Schema {
	return &datapackage.Schema{
		PrimaryKey:   info.UTC,
		MissingValue: "",
		Fields: []datapackage.Field{
			{
				Name:          info.UTC,
				Description:   "Start of timeperiod in Coordinated Universal Time",
				Type:          datapackage.TypeDatetime,
				Format:        "fmt:%Y-%m-%dT%H%M%SZ",
				ContentFilter: true,
			},
			{
				Name:        info.CET,
				Description: "Start of timeperiod in Central European (Summer-) Time",
				Type:        datapackage.TypeDatetime,
				Format:      "fmt:%Y-%m-%dT%H%M%S%z",
			},
			{
				Name:        info.Marker,
				Description: "marker to indicate which columns are missing data in source data and has been interpolated (e.g. DE_transnetbw_solar_generation;)",
				Type:        datapackage.TypeString,
			},
		},
	}
}
