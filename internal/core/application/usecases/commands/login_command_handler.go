package commands

import (
	"context"
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/courier"
	"posdelivery/internal/core/domain/model/session"
	"posdelivery/internal/pkg/errs"
)

// LoginResult carries everything the API needs after a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Courier   *courier.Courier
}

// LoginCommandHandler authenticates couriers and opens sessions. All
// rejection paths return an AuthenticationError with the same reason so the
// response does not reveal whether the email exists.
type LoginCommandHandler struct {
	uowFactory CourierSessionUoWFactory
}

// NewLoginCommandHandler creates a handler for login operations.
func NewLoginCommandHandler(uowFactory CourierSessionUoWFactory) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the credentials, opens a session, and records the
// courier's connection time inside a single transaction.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	foundCourier, err := uow.CourierRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return LoginResult{}, errs.NewAuthenticationError("invalid credentials")
		}
		return LoginResult{}, err
	}

	if !foundCourier.IsActive() || !foundCourier.VerifyPassword(cmd.Password()) {
		return LoginResult{}, errs.NewAuthenticationError("invalid credentials")
	}

	now := time.Now()

	newSession, err := session.NewSession(foundCourier.ID(), cmd.DeviceInfo(), now)
	if err != nil {
		return LoginResult{}, err
	}

	if err = uow.SessionRepository().Add(ctx, newSession); err != nil {
		return LoginResult{}, err
	}

	foundCourier.RecordConnection(now)
	if err = uow.CourierRepository().Update(ctx, foundCourier); err != nil {
		return LoginResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:     newSession.Token(),
		ExpiresAt: newSession.ExpiresAt(),
		Courier:   foundCourier,
	}, nil
}
