package commands

import (
	"context"
	"time"

	"posdelivery/internal/core/ports"
)

// FailDeliveryCommandHandler handles marking deliveries as failed.
type FailDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewFailDeliveryCommandHandler creates a handler for failure operations.
func NewFailDeliveryCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the failure inside a single transaction and announces the
// status change after commit.
func (h *FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) error {
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

	if err = order.Fail(cmd.Reason(), "staff", time.Now()); err != nil {
		return err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, order)
	return nil
}
