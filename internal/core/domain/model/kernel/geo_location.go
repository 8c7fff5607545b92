package kernel

import (
	"errors"
	"fmt"

	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

const (
	// GeoLocationMinLatitude is the southernmost valid latitude in degrees.
	GeoLocationMinLatitude = -90.0
	// GeoLocationMaxLatitude is the northernmost valid latitude in degrees.
	GeoLocationMaxLatitude = 90.0
	// GeoLocationMinLongitude is the westernmost valid longitude in degrees.
	GeoLocationMinLongitude = -180.0
	// GeoLocationMaxLongitude is the easternmost valid longitude in degrees.
	GeoLocationMaxLongitude = 180.0
)

// ErrGeoLocationIsNotConstructed is returned when attempting to use an
// improperly initialized GeoLocation. Use NewGeoLocation to create instances.
var ErrGeoLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geo location must be created via the NewGeoLocation constructor")

// GeoLocation is an immutable value object holding a pair of WGS84
// coordinates in decimal degrees. It carries a delivery address position or
// a courier position snapshot. The zero value is invalid and fails Validate.
//
// Example:
//
//	loc, err := kernel.NewGeoLocation(40.4168, -3.7038)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Output: GeoLocation(40.416800,-3.703800)
type GeoLocation struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoLocation creates a GeoLocation after checking that latitude is in
// [-90, 90] and longitude in [-180, 180]. Out-of-range coordinates yield a
// joined validation error naming each offending value.
func NewGeoLocation(latitude float64, longitude float64) (GeoLocation, error) {
	loc := GeoLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return GeoLocation{}, err
	}

	return loc, nil
}

// Validate checks that the GeoLocation was built through its constructor.
func (l GeoLocation) Validate() error {
	return l.guard.Validate(ErrGeoLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l GeoLocation) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l GeoLocation) Longitude() float64 {
	return l.longitude
}

// String implements fmt.Stringer in the form "GeoLocation(lat,lon)".
func (l GeoLocation) String() string {
	return fmt.Sprintf("GeoLocation(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares two locations for coordinate equality. Both must pass
// validation for the comparison to succeed.
func (l GeoLocation) IsEqual(other GeoLocation) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (l *GeoLocation) setLatitude(latitude float64) error {
	if latitude < GeoLocationMinLatitude || latitude > GeoLocationMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoLocationMinLatitude, GeoLocationMaxLatitude)
	}

	l.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (l *GeoLocation) setLongitude(longitude float64) error {
	if longitude < GeoLocationMinLongitude || longitude > GeoLocationMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoLocationMinLongitude, GeoLocationMaxLongitude)
	}

	l.longitude = longitude
	return nil
}
