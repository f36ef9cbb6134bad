package lookup

import (
	"errors"
	"fmt"
)

// DefaultFeedDescription is returned for feeds without their own entry.
const DefaultFeedDescription = "Energy in kWh"

// ErrMissingKey is matched by every MissingKeyError.
var ErrMissingKey = errors.New("lookup key not found")

// MissingKeyError reports a key that is absent from one of the tables.
type MissingKeyError struct {
	Table string
	Key   string
}

// Error implements the error interface for MissingKeyError.
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s %q not found in %s table", e.Table, e.Key, e.Table)
}

// Is lets errors.Is(err, ErrMissingKey) match.
func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// Tables groups the four reference mappings.
type Tables struct {
	Websites         map[string]string
	Regions          map[string]string
	BuildingTypes    map[string]string
	FeedDescriptions map[string]string
}

// Default holds the reference data published with the household dataset.
var Default = &Tables{
	Websites: map[string]string{
		"CoSSMic": "http://cossmic.eu/",
	},
	Regions: map[string]string{
		"DE_konstanz": "Germany, Konstanz",
	},
	BuildingTypes: map[string]string{
		"residential_4-person_suburb_building": "Residential building, located in the suburban area in a four-person household",
	},
	FeedDescriptions: map[string]string{
		"grid_import":       "Energy imported from the public grid in kWh",
		"grid_export":       "Energy exported to the public grid in kWh",
		"consumption":       "Total household energy consumption in kWh",
		"pv":                "Total Photovoltaic energy generation in kWh",
		"ev":                "Electric Vehicle charging energy in kWh",
		"storage_charge":    "Battery charging energy in kWh",
		"storage_discharge": "Battery discharged energy in kWh",
		"heat_pump":         "Heat pump energy consumption in kWh",
		"circulation_pump":  "Circulation pump energy consumption, circulating the heated water of e.g. boilers in kWh",
		"dishwasher":        "Dishwasher energy consumption in kWh",
		"washing_machine":   "Washing machine energy consumption in kWh",
		"refrigerator":      "Refridgerator energy consumption in kWh",
		"freezer":           "Freezer energy consumption in kWh",
	},
}

// Website returns the website of a project.
func (t *Tables) Website(project string) (string, error) {
	return get(t.Websites, "project", project)
}

// Region returns the human readable description of a region code.
func (t *Tables) Region(code string) (string, error) {
	return get(t.Regions, "region", code)
}

// BuildingType returns the description of a building type code.
func (t *Tables) BuildingType(code string) (string, error) {
	return get(t.BuildingTypes, "type", code)
}

// FeedDescription returns the description of a feed, or
// DefaultFeedDescription when the feed is unknown.
func (t *Tables) FeedDescription(feed string) string {
	if desc, ok := t.FeedDescriptions[feed]; ok {
		return desc
	}
	return DefaultFeedDescription
}

func get(table map[string]string, name, key string) (string, error) {
	v, ok := table[key]
	if !ok {
		return "", &MissingKeyError{Table: name, Key: key}
	}
	return v, nil
}
