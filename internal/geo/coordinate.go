// Package geo holds the coordinate arithmetic the portal depends on:
// decimal-degree/DMS conversion, great-circle distance, and the projection
// strategies that map geographic coordinates onto UTM and PTM grids.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

var (
	// ErrOutOfRange reports a latitude outside [-90,90] or a longitude
	// outside [-180,180].
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidValue reports a NaN or infinite input.
	ErrInvalidValue = errors.New("coordinate is not a finite number")
)

// DefaultSecondsPrecision is the number of decimal places seconds are
// rounded to when converting to DMS.
const DefaultSecondsPrecision = 3

// DMS is the degrees/minutes/seconds form of an angle. The sign of the
// angle is carried on Degrees only; Minutes and Seconds are magnitudes.
type DMS struct {
	Degrees int     `json:"degrees"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// Decimal converts the angle back to decimal degrees.
func (d DMS) Decimal() float64 {
	sign := 1.0
	if d.Degrees < 0 {
		sign = -1
	}
	return sign * (math.Abs(float64(d.Degrees)) + float64(d.Minutes)/60 + d.Seconds/3600)
}

func (d DMS) String() string {
	return fmt.Sprintf(`%d°%02d'%06.3f"`, d.Degrees, d.Minutes, d.Seconds)
}

// ToDMS converts a decimal-degree angle to DMS, rounding seconds to the
// given number of decimal places. Rounding never leaves seconds at 60 or
// minutes at 60; the overflow carries into the next field.
func ToDMS(deg float64, precision int) (DMS, error) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return DMS{}, fmt.Errorf("to dms: %w", ErrInvalidValue)
	}
	if precision < 0 {
		precision = DefaultSecondsPrecision
	}

	abs := math.Abs(deg)
	d := int(abs)
	minFloat := (abs - float64(d)) * 60
	m := int(minFloat)
	s := (minFloat - float64(m)) * 60

	pow := math.Pow(10, float64(precision))
	s = math.Round(s*pow) / pow
	if s >= 60 {
		s -= 60
		m++
	}
	if m >= 60 {
		m -= 60
		d++
	}

	if deg < 0 {
		d = -d
	}
	return DMS{Degrees: d, Minutes: m, Seconds: s}, nil
}

// Projected is a planar grid position in a named zone.
type Projected struct {
	Northing float64 `json:"northing"`
	Easting  float64 `json:"easting"`
	Zone     string  `json:"zone"`
}

// Coordinate is a geodetic position in decimal degrees, with a cached
// projected form once a Projector has been applied. The zero value is not
// valid; use NewCoordinate or NewCoordinateFromDMS.
type Coordinate struct {
	Lat float64
	Lng float64

	projected *Projected
}

// NewCoordinate validates a decimal-degree lat/lng pair.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if err := checkAngle("latitude", lat, 90); err != nil {
		return Coordinate{}, err
	}
	if err := checkAngle("longitude", lng, 180); err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Lat: lat, Lng: lng}, nil
}

// NewCoordinateFromDMS builds a coordinate from DMS latitude and longitude.
func NewCoordinateFromDMS(lat, lng DMS) (Coordinate, error) {
	return NewCoordinate(lat.Decimal(), lng.Decimal())
}

func checkAngle(axis string, v, limit float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %v: %w", axis, v, ErrInvalidValue)
	}
	if v < -limit || v > limit {
		return fmt.Errorf("%s %v: %w", axis, v, ErrOutOfRange)
	}
	return nil
}

// DMS returns both axes in DMS form at the given seconds precision.
func (c Coordinate) DMS(precision int) (lat, lng DMS) {
	lat, _ = ToDMS(c.Lat, precision)
	lng, _ = ToDMS(c.Lng, precision)
	return lat, lng
}

// Point returns the coordinate as an orb point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Project runs the coordinate through the given projection strategy and
// caches the result on the value. Re-projecting replaces the cache, so the
// stored grid position always derives from the current lat/lng.
func (c *Coordinate) Project(p Projector) (Projected, error) {
	out, err := p.Forward(c.Lat, c.Lng)
	if err != nil {
		return Projected{}, err
	}
	c.projected = &out
	return out, nil
}

// Grid returns the cached projected form, if any.
func (c Coordinate) Grid() (Projected, bool) {
	if c.projected == nil {
		return Projected{}, false
	}
	return *c.projected, true
}
