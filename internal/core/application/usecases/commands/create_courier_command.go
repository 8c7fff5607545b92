package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrCreateCourierCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a new courier account. The password travels
// in plain text and is hashed by the handler before anything is persisted.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	name         string
	email        string
	password     string
	phone        string
	vehicleType  string
	vehiclePlate string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name string,
	email string,
	password string,
	phone string,
) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// SetVehicle attaches the courier's vehicle details.
func (c *CreateCourierCommand) SetVehicle(vehicleType string, vehiclePlate string) {
	c.vehicleType = vehicleType
	c.vehiclePlate = vehiclePlate
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the new courier's identifier.
func (c CreateCourierCommand) CourierID() kernel.UUID { return c.courierID }

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string { return c.name }

// Email returns the courier's login email.
func (c CreateCourierCommand) Email() string { return c.email }

// Password returns the plain-text password to hash.
func (c CreateCourierCommand) Password() string { return c.password }

// Phone returns the courier's phone number, possibly empty.
func (c CreateCourierCommand) Phone() string { return c.phone }

// VehicleType returns the vehicle type, possibly empty.
func (c CreateCourierCommand) VehicleType() string { return c.vehicleType }

// VehiclePlate returns the vehicle plate, possibly empty.
func (c CreateCourierCommand) VehiclePlate() string { return c.vehiclePlate }

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *CreateCourierCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
