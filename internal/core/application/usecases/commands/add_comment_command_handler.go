package commands

import (
	"context"
	"time"

	"posdelivery/internal/core/ports"
	"posdelivery/internal/pkg/errs"
)

// AddCommentCommandHandler handles courier comments on orders.
type AddCommentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAddCommentCommandHandler creates a handler for comment operations.
func NewAddCommentCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) AddCommentCommandHandler {
	return AddCommentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle appends the comment inside a single transaction and announces it
// after commit.
func (h *AddCommentCommandHandler) Handle(ctx context.Context, cmd AddCommentCommand) error {
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

	order, err := uow.DeliveryOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if order.CourierID() == nil || !order.CourierID().IsEqual(cmd.CourierID()) {
		return errs.NewPermissionDeniedError("order is assigned to another courier")
	}

	if err = order.AddCourierNote(cmd.Comment(), cmd.CourierName(), time.Now()); err != nil {
		return err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderCommented(ctx, order, cmd.Comment())
	return nil
}
