package commands

import (
	"context"
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/courier"
	"posdelivery/internal/pkg/errs"
)

// ValidateTokenCommandHandler resolves bearer tokens. A hit refreshes the
// session's last activity and the courier's connection time; expired,
// deactivated, or unknown tokens yield an AuthenticationError.
type ValidateTokenCommandHandler struct {
	uowFactory CourierSessionUoWFactory
}

// NewValidateTokenCommandHandler creates a handler for token validation.
func NewValidateTokenCommandHandler(uowFactory CourierSessionUoWFactory) ValidateTokenCommandHandler {
	return ValidateTokenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle looks the token up and returns the courier behind it.
func (h *ValidateTokenCommandHandler) Handle(ctx context.Context, cmd ValidateTokenCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	foundSession, err := uow.SessionRepository().GetByToken(ctx, cmd.Token())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return nil, errs.NewAuthenticationError("invalid or expired token")
		}
		return nil, err
	}

	now := time.Now()
	if !foundSession.IsValid(now) {
		return nil, errs.NewAuthenticationError("invalid or expired token")
	}

	foundCourier, err := uow.CourierRepository().Get(ctx, foundSession.CourierID())
	if err != nil {
		return nil, err
	}
	if !foundCourier.IsActive() {
		return nil, errs.NewAuthenticationError("invalid or expired token")
	}

	foundSession.Touch(now)
	if err = uow.SessionRepository().Update(ctx, foundSession); err != nil {
		return nil, err
	}

	foundCourier.RecordConnection(now)
	if err = uow.CourierRepository().Update(ctx, foundCourier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return foundCourier, nil
}
