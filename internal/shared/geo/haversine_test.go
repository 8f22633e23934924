package geo

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestHaversineKnownDistances(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lng1 float64
		lat2, lng2 float64
		wantMiles  float64
		tolerance  float64
	}{
		{
			name: "new york to los angeles",
			lat1: 40.7128, lng1: -74.0060,
			lat2: 34.0522, lng2: -118.2437,
			wantMiles: 2445,
			tolerance: 15,
		},
		{
			name: "london to paris",
			lat1: 51.5074, lng1: -0.1278,
			lat2: 48.8566, lng2: 2.3522,
			wantMiles: 213,
			tolerance: 5,
		},
		{
			name: "same point",
			lat1: 18.0735, lng1: -15.9582,
			lat2: 18.0735, lng2: -15.9582,
			wantMiles: 0,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lng1, fptr(tt.lat2), fptr(tt.lng2))
			if math.Abs(got-tt.wantMiles) > tt.tolerance {
				t.Errorf("Haversine() = %.1f mi, want %.1f ± %.1f", got, tt.wantMiles, tt.tolerance)
			}
		})
	}
}

func TestHaversineMissingCoordinates(t *testing.T) {
	tests := []struct {
		name       string
		lat2, lng2 *float64
	}{
		{"both nil", nil, nil},
		{"lat nil", nil, fptr(-74.0060)},
		{"lng nil", fptr(40.7128), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(40.7128, -74.0060, tt.lat2, tt.lng2)
			if !math.IsInf(got, 1) {
				t.Errorf("Haversine() = %v, want +Inf", got)
			}
		})
	}
}
