// Package geo holds the coordinate types and the great-circle distance engine
// used for proximity matching.
package geo

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"matchdeportivo/internal/errors"

	"github.com/paulmach/orb"
)

var (
	// ErrLocationNotSet is returned when a latitude or longitude is absent.
	ErrLocationNotSet = errors.New("location not set")
	// ErrMalformedCoordinate is returned when a stored coordinate is not a finite number in range.
	ErrMalformedCoordinate = errors.New("malformed coordinate")
)

// Coordinate is an optional decimal-degree value. The zero value is absent,
// which is distinct from a present 0.
type Coordinate struct {
	raw   string // Text form as stored or supplied.
	valid bool   // False when the value is absent (NULL).
}

// NewCoordinate returns a present coordinate holding v.
func NewCoordinate(v float64) Coordinate {
	return Coordinate{raw: strconv.FormatFloat(v, 'f', -1, 64), valid: true}
}

// ParseCoordinate returns a present coordinate from its text form. The text is
// kept as-is; it is only checked when the numeric value is requested.
func ParseCoordinate(raw string) Coordinate {
	return Coordinate{raw: strings.TrimSpace(raw), valid: true}
}

// IsSet reports whether the coordinate is present, numeric or not.
func (c Coordinate) IsSet() bool {
	return c.valid
}

// String returns the stored text, or an empty string when absent.
func (c Coordinate) String() string {
	return c.raw
}

// Float64 returns the numeric value.
func (c Coordinate) Float64() (float64, error) {
	if !c.valid {
		return 0, ErrLocationNotSet
	}

	v, err := strconv.ParseFloat(c.raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrMalformedCoordinate, "value %q", c.raw)
	}

	return v, nil
}

// Ptr returns the numeric value as a pointer, nil when absent or malformed.
func (c Coordinate) Ptr() *float64 {
	v, err := c.Float64()
	if err != nil {
		return nil
	}

	return &v
}

// Scan implements sql.Scanner.
func (c *Coordinate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = Coordinate{}
	case float64:
		*c = NewCoordinate(v)
	case float32:
		*c = NewCoordinate(float64(v))
	case int64:
		*c = NewCoordinate(float64(v))
	case []byte:
		*c = ParseCoordinate(string(v))
	case string:
		*c = ParseCoordinate(v)
	default:
		return errors.Errorf("geo: cannot scan %T into Coordinate", src)
	}

	return nil
}

// Value implements driver.Valuer. Absent coordinates are stored as NULL.
func (c Coordinate) Value() (driver.Value, error) {
	if !c.valid {
		return nil, nil
	}

	return c.raw, nil
}

// MarshalJSON encodes numeric coordinates as numbers and anything else as null.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Ptr())
}

// UnmarshalJSON accepts a number or null.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.WithStack(err)
	}
	if v == nil {
		*c = Coordinate{}

		return nil
	}
	*c = NewCoordinate(*v)

	return nil
}

// GeoPoint is an optional latitude/longitude pair in decimal degrees (WGS-84).
type GeoPoint struct {
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`
}

// NewGeoPoint returns a fully specified point.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Latitude: NewCoordinate(lat), Longitude: NewCoordinate(lng)}
}

// IsSet reports whether both coordinates are present.
func (p GeoPoint) IsSet() bool {
	return p.Latitude.IsSet() && p.Longitude.IsSet()
}

// Point converts the pair into an orb.Point (longitude first). It fails with
// ErrLocationNotSet when either side is absent and ErrMalformedCoordinate when
// either side is not a finite number in range.
func (p GeoPoint) Point() (orb.Point, error) {
	if !p.IsSet() {
		return orb.Point{}, ErrLocationNotSet
	}

	lat, err := p.Latitude.Float64()
	if err != nil {
		return orb.Point{}, err
	}
	lng, err := p.Longitude.Float64()
	if err != nil {
		return orb.Point{}, err
	}

	if lat < -90 || lat > 90 {
		return orb.Point{}, errors.Wrapf(ErrMalformedCoordinate, "latitude %v out of range", lat)
	}
	if lng < -180 || lng > 180 {
		return orb.Point{}, errors.Wrapf(ErrMalformedCoordinate, "longitude %v out of range", lng)
	}

	return orb.Point{lng, lat}, nil
}
