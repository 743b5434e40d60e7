package geo

import (
	"testing"

	"github.com/jonathan/internship-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.InDelta(t, 0.0, DistanceKm(25.59, 85.13, 25.59, 85.13), 1e-9)
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		tolerance              float64
	}{
		// New Delhi to Mumbai
		{"delhi-mumbai", 28.6139, 77.2090, 19.0760, 72.8777, 1148.09, 0.5},
		// One degree of latitude along a meridian
		{"one degree latitude", 0, 0, 1, 0, 111.19, 0.1},
		// Antipodal points along the equator
		{"half circumference", 0, 0, 0, 180, 20015.09, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	ab := DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
	ba := DistanceKm(13.0827, 80.2707, 12.9716, 77.5946)
	assert.InDelta(t, ab, ba, 1e-9)
	assert.Greater(t, ab, 0.0)
}

func TestBetween(t *testing.T) {
	a := types.Coordinates{Lat: 28.6139, Lon: 77.2090}
	b := types.Coordinates{Lat: 28.7041, Lon: 77.1025}
	assert.InDelta(t, DistanceKm(a.Lat, a.Lon, b.Lat, b.Lon), Between(a, b), 1e-12)
	assert.Less(t, Between(a, b), 20.0)
}
