package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

const (
	// tokenBytes is the entropy of a session token. 32 bytes gives a
	// 43-character URL-safe base64 token.
	tokenBytes = 32

	// Lifetime is how long a session stays valid after login.
	Lifetime = 30 * 24 * time.Hour
)

// ErrSessionIsNotConstructed is returned when using an improperly
// initialized Session.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is the aggregate for one mobile-app login. It carries the bearer
// token the app sends with every request, the expiry window, and the last
// activity timestamp used by the cleanup job.
type Session struct {
	// id uniquely identifies the session
	id kernel.UUID
	// courierID is the courier this session belongs to
	courierID kernel.UUID
	// token is the opaque bearer credential, unique across sessions
	token string
	// deviceInfo is a free-form JSON description of the client device
	deviceInfo string
	// isActive is false once the session is logged out
	isActive bool
	// expiresAt is the hard end of the session's life
	expiresAt time.Time
	// lastActivity is refreshed on every authenticated request
	lastActivity time.Time
	// createdAt is the login time
	createdAt time.Time
	// guard ensures the session was properly constructed
	guard guard.ConstructorGuard
}

// NewSession opens a session for a courier at login time. The token is
// freshly generated from crypto/rand and the session expires Lifetime after
// now.
func NewSession(courierID kernel.UUID, deviceInfo string, now time.Time) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	s := &Session{
		deviceInfo:   deviceInfo,
		token:        token,
		isActive:     true,
		expiresAt:    now.Add(Lifetime),
		lastActivity: now,
		createdAt:    now,
		guard:        guard.NewConstructorGuard(),
	}

	if err = errors.Join(s.setID(kernel.NewUUID()), s.setCourierID(courierID)); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSession reconstructs a session from persistent storage.
func RestoreSession(
	id kernel.UUID,
	courierID kernel.UUID,
	token string,
	deviceInfo string,
	isActive bool,
	expiresAt time.Time,
	lastActivity time.Time,
	createdAt time.Time,
) (*Session, error) {
	s := &Session{
		deviceInfo:   deviceInfo,
		isActive:     isActive,
		expiresAt:    expiresAt,
		lastActivity: lastActivity,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.setID(id), s.setCourierID(courierID), s.setToken(token)); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks if the session was properly constructed.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// IsEqual compares two sessions by identity.
func (s *Session) IsEqual(other *Session) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID { return s.id }

// CourierID returns the courier this session belongs to.
func (s *Session) CourierID() kernel.UUID { return s.courierID }

// Token returns the bearer credential.
func (s *Session) Token() string { return s.token }

// DeviceInfo returns the client device description captured at login.
func (s *Session) DeviceInfo() string { return s.deviceInfo }

// IsActive reports whether the session has not been logged out.
func (s *Session) IsActive() bool { return s.isActive }

// ExpiresAt returns the hard end of the session's life.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// LastActivity returns the time of the last authenticated request.
func (s *Session) LastActivity() time.Time { return s.lastActivity }

// CreatedAt returns the login time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// IsValid reports whether the session authenticates requests at the given
// time: it must be active and not expired.
func (s *Session) IsValid(now time.Time) bool {
	return s.isActive && now.Before(s.expiresAt)
}

// Touch refreshes the last activity timestamp.
func (s *Session) Touch(now time.Time) {
	s.lastActivity = now
}

// Deactivate closes the session. Deactivating twice is harmless, which keeps
// logout idempotent.
func (s *Session) Deactivate() {
	s.isActive = false
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Session) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	s.courierID = courierID
	return nil
}

func (s *Session) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	s.token = token
	return nil
}

// generateToken returns a URL-safe random token with tokenBytes of entropy.
func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
