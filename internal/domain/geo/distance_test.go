package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	t.Parallel()

	points := []orb.Point{
		{0, 0},
		{-3.7038, 40.4168},
		{180, 0},
		{-180, 0},
		{0, 90},
		{0, -90},
		{-70.6483, -33.4569},
	}

	for _, p := range points {
		d := DistanceKm(p, p)
		assert.False(t, math.IsNaN(d), "point %v", p)
		assert.Zero(t, d, "point %v", p)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]orb.Point{
		{{-3.0, 40.0}, {-3.0, 40.2}},
		{{2.1734, 41.3851}, {-3.7038, 40.4168}},
		{{179.9, 10}, {-179.9, 10}},
		{{-99.1332, 19.4326}, {-74.0721, 4.711}},
	}

	for _, pair := range pairs {
		assert.Equal(t, DistanceKm(pair[0], pair[1]), DistanceKm(pair[1], pair[0]))
	}
}

func TestDistanceKm_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		origin   orb.Point
		target   orb.Point
		expected float64
		delta    float64
	}{
		{
			name:     "one degree of longitude on the equator",
			origin:   orb.Point{0, 0},
			target:   orb.Point{1, 0},
			expected: 111.19,
			delta:    0.5,
		},
		{
			name:     "0.09 degrees of latitude",
			origin:   orb.Point{-3.0, 40.0},
			target:   orb.Point{-3.0, 40.09},
			expected: 10.0,
			delta:    0.05,
		},
		{
			name:     "0.2 degrees of latitude",
			origin:   orb.Point{-3.0, 40.0},
			target:   orb.Point{-3.0, 40.2},
			expected: 22.24,
			delta:    0.05,
		},
		{
			name:     "across the antimeridian",
			origin:   orb.Point{179.5, 0},
			target:   orb.Point{-179.5, 0},
			expected: 111.19,
			delta:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, DistanceKm(tt.origin, tt.target), tt.delta)
		})
	}
}

func TestDistanceKm_MatchesOrbScaledToSameRadius(t *testing.T) {
	t.Parallel()

	origin := orb.Point{-3.7038, 40.4168}
	targets := []orb.Point{
		{-3.70, 40.42},
		{-3.5, 40.6},
		{-4.2, 40.1},
	}

	for _, target := range targets {
		// orb uses the equatorial radius in meters
		expected := orbgeo.DistanceHaversine(origin, target) / orb.EarthRadius * EarthRadiusKm
		assert.InDelta(t, expected, DistanceKm(origin, target), 1e-6)
	}
}

func TestRoundKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{10.0075, 10.0},
		{10.06, 10.1},
		{22.239, 22.2},
		{49.96, 50.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, RoundKm(tt.in), 1e-9, "input %v", tt.in)
	}
}
