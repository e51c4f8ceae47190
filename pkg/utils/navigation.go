package utils

import (
	"errors"
	"fmt"
	"math"
)

var ErrMissingCoordinate = errors.New("both latitude and longitude are required")

// DirectionsURL formats a Google Maps driving deeplink for the given
// coordinate. Pure string formatting; the caller owns opening the URL.
func DirectionsURL(lat, lng float64) (string, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return "", ErrMissingCoordinate
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", ErrMissingCoordinate
	}
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v&travelmode=driving", lat, lng), nil
}
