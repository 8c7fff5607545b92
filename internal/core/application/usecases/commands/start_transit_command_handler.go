package commands

import (
	"context"
	"time"

	"posdelivery/internal/core/ports"
	"posdelivery/internal/pkg/errs"
)

// StartTransitCommandHandler handles the courier picking up an order. Only
// the courier the order is assigned to may start it.
type StartTransitCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewStartTransitCommandHandler creates a handler for start-transit operations.
func NewStartTransitCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the start inside a single transaction and announces the
// status change after commit.
func (h *StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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

	if err = order.StartTransit(cmd.CourierName(), time.Now()); err != nil {
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
