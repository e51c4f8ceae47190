package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konkanbliss/pkg/utils"
)

func TestDirectionsURL(t *testing.T) {
	url, err := utils.DirectionsURL(16.0333, 73.5)
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=16.0333,73.5&travelmode=driving", url)
}

func TestDirectionsURLRejectsMissingOrOutOfRange(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"nan latitude", math.NaN(), 73.5},
		{"nan longitude", 16.0, math.NaN()},
		{"latitude too large", 91, 73.5},
		{"longitude too small", 16.0, -181},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := utils.DirectionsURL(tc.lat, tc.lng)
			assert.ErrorIs(t, err, utils.ErrMissingCoordinate)
		})
	}
}
