package commands

import (
	"errors"

	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrLoginCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a courier signing in from the mobile app.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email      string
	password   string
	deviceInfo string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to authenticate a courier.
func NewLoginCommand(email string, password string, deviceInfo string) (LoginCommand, error) {
	cmd := LoginCommand{
		deviceInfo: deviceInfo,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setEmail(email), cmd.setPassword(password)); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginCommand) Email() string { return c.email }

// Password returns the plain-text password to verify.
func (c LoginCommand) Password() string { return c.password }

// DeviceInfo returns the client's self-description, possibly empty.
func (c LoginCommand) DeviceInfo() string { return c.deviceInfo }

func (c *LoginCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
