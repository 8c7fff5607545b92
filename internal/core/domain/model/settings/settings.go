// Package settings provides the store-wide delivery configuration. There is
// exactly one Settings record per installation; the repository creates it
// with defaults on first access.
package settings

import (
	"errors"

	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// DefaultDeliveryMinutes is the fallback delivery time estimate applied when
// an order has no zone.
const DefaultDeliveryMinutes = 60

// ErrSettingsIsNotConstructed is returned when using improperly initialized Settings.
var ErrSettingsIsNotConstructed = errors.New("Settings must be created via NewDefaultSettings constructor")

// Settings holds the store-wide delivery switches: which proofs of delivery
// are mandatory and which optional features are turned on.
type Settings struct {
	photoRequired          bool
	signatureRequired      bool
	geolocationEnabled     bool
	ratingEnabled          bool
	notificationsEnabled   bool
	defaultDeliveryMinutes int
	guard                  guard.ConstructorGuard
}

// NewDefaultSettings creates the settings record with installation defaults:
// no mandatory proofs, geolocation and ratings and notifications on, and a
// one hour default estimate.
func NewDefaultSettings() *Settings {
	return &Settings{
		geolocationEnabled:     true,
		ratingEnabled:          true,
		notificationsEnabled:   true,
		defaultDeliveryMinutes: DefaultDeliveryMinutes,
		guard:                  guard.NewConstructorGuard(),
	}
}

// RestoreSettings reconstructs the settings record from persistent storage.
func RestoreSettings(
	photoRequired bool,
	signatureRequired bool,
	geolocationEnabled bool,
	ratingEnabled bool,
	notificationsEnabled bool,
	defaultDeliveryMinutes int,
) (*Settings, error) {
	if defaultDeliveryMinutes <= 0 {
		return nil, errs.NewValueIsInvalidError("defaultDeliveryMinutes")
	}

	return &Settings{
		photoRequired:          photoRequired,
		signatureRequired:      signatureRequired,
		geolocationEnabled:     geolocationEnabled,
		ratingEnabled:          ratingEnabled,
		notificationsEnabled:   notificationsEnabled,
		defaultDeliveryMinutes: defaultDeliveryMinutes,
		guard:                  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the settings record was properly constructed.
func (s *Settings) Validate() error {
	if s == nil {
		return ErrSettingsIsNotConstructed
	}
	return s.guard.Validate(ErrSettingsIsNotConstructed)
}

// PhotoRequired reports whether a proof-of-delivery photo is mandatory.
func (s *Settings) PhotoRequired() bool { return s.photoRequired }

// SignatureRequired reports whether a customer signature is mandatory.
func (s *Settings) SignatureRequired() bool { return s.signatureRequired }

// GeolocationEnabled reports whether courier position tracking is on.
func (s *Settings) GeolocationEnabled() bool { return s.geolocationEnabled }

// RatingEnabled reports whether customers can rate deliveries.
func (s *Settings) RatingEnabled() bool { return s.ratingEnabled }

// NotificationsEnabled reports whether delivery notifications are sent.
func (s *Settings) NotificationsEnabled() bool { return s.notificationsEnabled }

// DefaultDeliveryMinutes returns the fallback delivery time estimate.
func (s *Settings) DefaultDeliveryMinutes() int { return s.defaultDeliveryMinutes }

// RequirePhoto toggles the mandatory proof-of-delivery photo.
func (s *Settings) RequirePhoto(required bool) { s.photoRequired = required }

// RequireSignature toggles the mandatory customer signature.
func (s *Settings) RequireSignature(required bool) { s.signatureRequired = required }

// EnableGeolocation toggles courier position tracking.
func (s *Settings) EnableGeolocation(enabled bool) { s.geolocationEnabled = enabled }

// EnableRating toggles customer ratings.
func (s *Settings) EnableRating(enabled bool) { s.ratingEnabled = enabled }

// EnableNotifications toggles delivery notifications.
func (s *Settings) EnableNotifications(enabled bool) { s.notificationsEnabled = enabled }

// SetDefaultDeliveryMinutes sets the fallback delivery time estimate.
func (s *Settings) SetDefaultDeliveryMinutes(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidError("defaultDeliveryMinutes")
	}

	s.defaultDeliveryMinutes = minutes
	return nil
}
