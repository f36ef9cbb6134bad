package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables_Resolve(t *testing.T) {
	testCases := []struct {
		name      string
		lookup    func(string) (string, error)
		key       string
		expected  string
		expectErr bool
	}{
		{name: "known project", lookup: Default.Website, key: "CoSSMic", expected: "http://cossmic.eu/"},
		{name: "unknown project", lookup: Default.Website, key: "NoSuchProject", expectErr: true},
		{name: "known region", lookup: Default.Region, key: "DE_konstanz", expected: "Germany, Konstanz"},
		{name: "unknown region", lookup: Default.Region, key: "DE_freiburg", expectErr: true},
		{
			name:     "known building type",
			lookup:   Default.BuildingType,
			key:      "residential_4-person_suburb_building",
			expected: "Residential building, located in the suburban area in a four-person household",
		},
		{name: "empty building type", lookup: Default.BuildingType, key: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.lookup(tc.key)

			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingKey))

				var missing *MissingKeyError
				require.True(t, errors.As(err, &missing))
				assert.Equal(t, tc.key, missing.Key)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFeedDescription(t *testing.T) {
	assert.Equal(t, "Total Photovoltaic energy generation in kWh", Default.FeedDescription("pv"))
	assert.Equal(t, "Heat pump energy consumption in kWh", Default.FeedDescription("heat_pump"))

	// Unknown feeds fall back instead of failing.
	assert.Equal(t, DefaultFeedDescription, Default.FeedDescription("sauna"))
	assert.Equal(t, "Energy in kWh", Default.FeedDescription(""))
}

func TestMissingKeyError_Message(t *testing.T) {
	err := &MissingKeyError{Table: "region", Key: "XX"}
	assert.Equal(t, `region "XX" not found in region table`, err.Error())
}
