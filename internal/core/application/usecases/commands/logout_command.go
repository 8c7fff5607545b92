package commands

import (
	"errors"

	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrLogoutCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand closes the session holding the given token.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a command to close a session.
func NewLogoutCommand(token string) (LogoutCommand, error) {
	cmd := LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setToken(token); err != nil {
		return LogoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// Token returns the bearer token to deactivate.
func (c LogoutCommand) Token() string { return c.token }

func (c *LogoutCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.token = token
	return nil
}
