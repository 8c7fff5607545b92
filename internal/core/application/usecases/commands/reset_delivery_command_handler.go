package commands

import (
	"context"
	"time"

	"posdelivery/internal/core/ports"
)

// ResetDeliveryCommandHandler handles returning deliveries to the pending
// state so they can be dispatched again.
type ResetDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewResetDeliveryCommandHandler creates a handler for reset operations.
func NewResetDeliveryCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ResetDeliveryCommandHandler {
	return ResetDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reset inside a single transaction and announces the
// status change after commit.
func (h *ResetDeliveryCommandHandler) Handle(ctx context.Context, cmd ResetDeliveryCommand) error {
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

	if err = order.ResetToPending("staff", time.Now()); err != nil {
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
