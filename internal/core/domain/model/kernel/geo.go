package kernel

import (
	"fmt"

	"reco/internal/pkg/errs"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a WGS84 coordinate captured by a driver's device when an item
// is picked up or delivered.
type GeoPoint struct {
	latitude      float64
	longitude     float64
	isConstructed bool
}

// NewGeoPoint validates both coordinates against their WGS84 bounds.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	return GeoPoint{latitude: latitude, longitude: longitude, isConstructed: true}, nil
}

// NewOptionalGeoPoint builds a point only when both coordinates are present.
func NewOptionalGeoPoint(latitude, longitude *float64) (*GeoPoint, error) {
	if latitude == nil || longitude == nil {
		return nil, nil
	}
	p, err := NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (g GeoPoint) Validate() error {
	if !g.isConstructed {
		return ErrGeoPointIsNotConstructed
	}
	return nil
}

func (g GeoPoint) Latitude() float64 {
	return g.latitude
}

func (g GeoPoint) Longitude() float64 {
	return g.longitude
}

func (g GeoPoint) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", g.latitude, g.longitude)
}

// Coordinates splits an optional point into nullable columns.
func Coordinates(p *GeoPoint) (*float64, *float64) {
	if p == nil {
		return nil, nil
	}
	lat, lng := p.latitude, p.longitude
	return &lat, &lng
}
