package commands

import (
	"errors"

	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrValidateTokenCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrValidateTokenCommandIsNotConstructed = errors.New(
	"ValidateTokenCommand must be created via NewValidateTokenCommand constructor",
)

// ValidateTokenCommand resolves a bearer token to the courier behind it.
// Every authenticated mobile request runs through this.
type ValidateTokenCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewValidateTokenCommand creates a command to validate a bearer token.
func NewValidateTokenCommand(token string) (ValidateTokenCommand, error) {
	cmd := ValidateTokenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setToken(token); err != nil {
		return ValidateTokenCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateTokenCommand) Validate() error {
	return c.guard.Validate(ErrValidateTokenCommandIsNotConstructed)
}

// Token returns the bearer token to resolve.
func (c ValidateTokenCommand) Token() string { return c.token }

func (c *ValidateTokenCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.token = token
	return nil
}
