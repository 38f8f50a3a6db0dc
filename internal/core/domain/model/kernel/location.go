package kernel

import (
	"errors"
	"fmt"
	"math"

	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a validated WGS84 point. Range checks happen here so that the
// geometry functions in this package can stay total and never fail.
//
// Example:
//
//	loc, err := kernel.NewLocation(-17.7833, -63.1821)
//	if err != nil {
//	    // out of range latitude or longitude
//	}
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a validated point.
//
// Parameters:
//   - latitude: degrees in [MinLatitude, MaxLatitude]
//   - longitude: degrees in [MinLongitude, MaxLongitude]
//
// Returns:
//   - Location: the point, ready for DistanceTo and Polygon.Contains
//   - error: ValueIsOutOfRangeError for each coordinate out of range, joined
//     with errors.Join so a caller sees both problems at once
//
// Example:
//
//	origin, err := kernel.NewLocation(-17.7833, -63.1821)
//	if err != nil {
//	    return err // errs.KindOf(err) == errs.KindInvalidInput
//	}
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation panics on invalid input. Intended for constants and tests.
func MustNewLocation(latitude, longitude float64) Location {
	loc, err := NewLocation(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Latitude() float64 {
	return l.latitude
}

func (l Location) Longitude() float64 {
	return l.longitude
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.latitude, l.longitude)
}

// IsEqual compares coordinates exactly.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// DistanceTo is the great-circle distance in kilometres, see DistanceKm.
func (l Location) DistanceTo(other Location) float64 {
	return DistanceKm(l.latitude, l.longitude, other.latitude, other.longitude)
}

func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	l.longitude = longitude
	return nil
}
