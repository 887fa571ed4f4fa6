package geo

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_ZeroIsNotAbsent(t *testing.T) {
	t.Parallel()

	var absent Coordinate
	zero := NewCoordinate(0)

	assert.False(t, absent.IsSet())
	assert.True(t, zero.IsSet())

	v, err := zero.Float64()
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = absent.Float64()
	assert.ErrorIs(t, err, ErrLocationNotSet)
}

func TestCoordinate_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"abc", "", "NaN", "Inf", "-Infinity", "40,5"} {
		c := ParseCoordinate(raw)
		_, err := c.Float64()
		assert.ErrorIs(t, err, ErrMalformedCoordinate, "raw %q", raw)
		assert.Nil(t, c.Ptr())
	}
}

func TestCoordinate_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   any
		isSet bool
		value *float64
	}{
		{name: "null", src: nil, isSet: false},
		{name: "numeric text", src: []byte("40.416800"), isSet: true, value: ptr(40.4168)},
		{name: "postgres NaN", src: []byte("NaN"), isSet: true},
		{name: "float", src: -3.5, isSet: true, value: ptr(-3.5)},
		{name: "string", src: " 12.5 ", isSet: true, value: ptr(12.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c Coordinate
			require.NoError(t, c.Scan(tt.src))
			assert.Equal(t, tt.isSet, c.IsSet())
			assert.Equal(t, tt.value, c.Ptr())
		})
	}

	var c Coordinate
	assert.Error(t, c.Scan(true))
}

func TestCoordinate_Value(t *testing.T) {
	t.Parallel()

	v, err := Coordinate{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NewCoordinate(40.09).Value()
	require.NoError(t, err)
	assert.Equal(t, "40.09", v)
}

func TestCoordinate_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(GeoPoint{Latitude: NewCoordinate(1.5), Longitude: ParseCoordinate("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude":1.5,"longitude":null}`, string(data))

	var p GeoPoint
	require.NoError(t, json.Unmarshal([]byte(`{"latitude":0,"longitude":null}`), &p))
	assert.True(t, p.Latitude.IsSet())
	assert.False(t, p.Longitude.IsSet())
}

func TestGeoPoint_Point(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		point    GeoPoint
		expected orb.Point
		err      error
	}{
		{name: "valid", point: NewGeoPoint(40, -3), expected: orb.Point{-3, 40}},
		{name: "origin is a real place", point: NewGeoPoint(0, 0), expected: orb.Point{0, 0}},
		{name: "latitude absent", point: GeoPoint{Longitude: NewCoordinate(1)}, err: ErrLocationNotSet},
		{name: "both absent", point: GeoPoint{}, err: ErrLocationNotSet},
		{name: "non-numeric longitude", point: GeoPoint{Latitude: NewCoordinate(1), Longitude: ParseCoordinate("west")}, err: ErrMalformedCoordinate},
		{name: "latitude out of range", point: NewGeoPoint(91, 0), err: ErrMalformedCoordinate},
		{name: "longitude out of range", point: NewGeoPoint(0, -181), err: ErrMalformedCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.point.Point()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func ptr(v float64) *float64 {
	return &v
}
