package commands

import (
	"context"
	"time"

	"posdelivery/internal/core/ports"
	"posdelivery/internal/pkg/errs"
)

// AssignCourierCommandHandler handles assignment of orders to couriers. The
// courier must exist and be active; the order must be pending or already
// assigned.
type AssignCourierCommandHandler struct {
	uowFactory AssignUoWFactory
	notifier   ports.Notifier
}

// NewAssignCourierCommandHandler creates a handler for assignment operations.
func NewAssignCourierCommandHandler(uowFactory AssignUoWFactory, notifier ports.Notifier) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment inside a single transaction and announces
// the status change after commit.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	courier, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !courier.IsActive() {
		return errs.NewValueIsInvalidError("courierID")
	}

	order, err := uow.DeliveryOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Assign(courier.ID(), "staff", time.Now()); err != nil {
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
