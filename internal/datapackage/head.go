package datapackage

import "strings"

const (
	packageName  = "opsd_household_data"
	packageTitle = "Household Data"
	packageDesc  = "Detailed household load and solar in minutely to hourly resolution"

	documentationURL = "https://github.com/isc-konstanz/household_data/blob/master/main.ipynb"
	geographicScope  = "Southern Germany"
)

var longDescription = strings.Join([]string{
	"This data package contains different kinds of timeseries data relevant for power system modelling,",
	"namely electricity consumption (load) as well as solar power generation for several small businesses",
	"and private households, in a resolution up to single device consumptions.",
	"The timeseries become available at different points in time depending on the sources.",
	"The data has been downloaded from the sources, resampled and merged in large CSV files",
	"with minutely to hourly resolution.",
	"Most measurements were done initially in 3 minute intervals, to later on minutely intervals.",
	"To improve the datas classifyability, additional 15- and 60-minute interval files are provided.",
	"All data processing is conducted in python and pandas and has been documented in",
	"the Jupyter notebooks linked below.",
}, " ")

var keywords = []string{
	"Open Power System Data",
	"CoSSMic",
	"household data",
	"time series",
	"power systems",
	"in-feed",
	"renewables",
	"solar",
	"power consumption",
}

var contributors = []Contributor{
	{
		Web:   "http://isc-konstanz.de/",
		Name:  "Adrian Minde",
		Email: "adrian.minde@isc-konstanz.de",
	},
}

// Head returns the static manifest header with version and changelog
// filled in. Sources, resources and schemas are left empty.
func Head(version, changes string) *Package {
	return &Package{
		Name:              packageName,
		Title:             packageTitle,
		Description:       packageDesc,
		LongDescription:   longDescription,
		Documentation:     documentationURL,
		Version:           version,
		LastChanges:       changes,
		Keywords:          append([]string(nil), keywords...),
		GeographicalScope: geographicScope,
		Contributors:      append([]Contributor(nil), contributors...),
		Sources:           []Source{},
		Resources:         []Resource{},
		Schemas:           map[string]*Schema{},
	}
}
