package commands

import (
	"context"
)

// LogoutCommandHandler closes sessions. Logging out with an unknown token
// succeeds: the client's goal, no live session for that token, is already met.
type LogoutCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewLogoutCommandHandler creates a handler for logout operations.
func NewLogoutCommandHandler(uowFactory SessionUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deactivates every session holding the token.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SessionRepository().DeactivateByToken(ctx, cmd.Token()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
