package courier

import (
	"errors"
	"net/mail"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a courier without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system. It is an aggregate
// root that manages courier identity, credentials for the mobile app, and
// activity tracking.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and well-formed email
//   - The email is the login identifier and must be unique (enforced by storage)
//   - Passwords are stored as bcrypt hashes, never in clear
//   - Only active couriers can log in
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// email is the login identifier for the mobile app
	email string
	// passwordHash is the bcrypt hash of the courier's password
	passwordHash string
	// phone is the courier's contact number
	phone string
	// vehicleType describes what the courier drives, e.g. "motorbike"
	vehicleType string
	// vehiclePlate is the registration plate of the vehicle
	vehiclePlate string
	// isActive controls whether the courier can log in and take orders
	isActive bool
	// lastConnection is the last time the courier's app talked to the server
	lastConnection *time.Time
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// HashPassword produces a bcrypt hash suitable for NewCourier. The cost is
// bcrypt.DefaultCost.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NewCourier creates a new active Courier. The password must already be
// hashed with HashPassword; the domain never sees clear-text passwords
// except inside VerifyPassword.
func NewCourier(id kernel.UUID, name string, email string, passwordHash string, phone string) (*Courier, error) {
	courier := &Courier{
		phone:    phone,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setEmail(email),
		courier.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
func RestoreCourier(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	phone string,
	vehicleType string,
	vehiclePlate string,
	isActive bool,
	lastConnection *time.Time,
) (*Courier, error) {
	courier := &Courier{
		phone:          phone,
		vehicleType:    vehicleType,
		vehiclePlate:   vehiclePlate,
		isActive:       isActive,
		lastConnection: lastConnection,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setEmail(email),
		courier.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's name.
func (c *Courier) Name() string { return c.name }

// Email returns the courier's login email.
func (c *Courier) Email() string { return c.email }

// PasswordHash returns the stored bcrypt hash. Exposed for persistence only.
func (c *Courier) PasswordHash() string { return c.passwordHash }

// Phone returns the courier's contact number.
func (c *Courier) Phone() string { return c.phone }

// VehicleType returns what the courier drives.
func (c *Courier) VehicleType() string { return c.vehicleType }

// VehiclePlate returns the vehicle registration plate.
func (c *Courier) VehiclePlate() string { return c.vehiclePlate }

// IsActive reports whether the courier may log in and take orders.
func (c *Courier) IsActive() bool { return c.isActive }

// LastConnection returns the last time the courier's app talked to the
// server, nil when the courier never connected.
func (c *Courier) LastConnection() *time.Time { return c.lastConnection }

// VerifyPassword checks a clear-text password against the stored hash.
func (c *Courier) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(plain)) == nil
}

// ChangePassword replaces the stored hash. The new password must already be
// hashed with HashPassword.
func (c *Courier) ChangePassword(passwordHash string) error {
	return c.setPasswordHash(passwordHash)
}

// SetVehicle records what the courier drives.
func (c *Courier) SetVehicle(vehicleType string, vehiclePlate string) {
	c.vehicleType = vehicleType
	c.vehiclePlate = vehiclePlate
}

// RecordConnection updates the courier's last activity timestamp.
func (c *Courier) RecordConnection(now time.Time) {
	connection := now
	c.lastConnection = &connection
}

// Deactivate blocks the courier from logging in and taking orders.
func (c *Courier) Deactivate() {
	c.isActive = false
}

// Activate re-enables a deactivated courier.
func (c *Courier) Activate() {
	c.isActive = true
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	c.email = email
	return nil
}

func (c *Courier) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}

	c.passwordHash = passwordHash
	return nil
}
