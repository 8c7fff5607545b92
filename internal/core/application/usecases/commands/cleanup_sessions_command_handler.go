package commands

import (
	"context"
	"time"
)

// CleanupSessionsCommandHandler sweeps stale sessions from storage.
type CleanupSessionsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewCleanupSessionsCommandHandler creates a handler for session cleanup.
func NewCleanupSessionsCommandHandler(uowFactory SessionUoWFactory) CleanupSessionsCommandHandler {
	return CleanupSessionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes sessions that are expired or deactivated and returns how
// many were removed.
func (h *CleanupSessionsCommandHandler) Handle(ctx context.Context, cmd CleanupSessionsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.SessionRepository().DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
