package commands

import (
	"errors"

	"posdelivery/internal/pkg/guard"
)

// ErrCleanupSessionsCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCleanupSessionsCommandIsNotConstructed = errors.New(
	"CleanupSessionsCommand must be created via NewCleanupSessionsCommand constructor",
)

// CleanupSessionsCommand removes expired and deactivated sessions. Issued by
// the periodic cleanup job.
type CleanupSessionsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewCleanupSessionsCommand creates a command to sweep stale sessions.
func NewCleanupSessionsCommand() (CleanupSessionsCommand, error) {
	return CleanupSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupSessionsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupSessionsCommandIsNotConstructed)
}
