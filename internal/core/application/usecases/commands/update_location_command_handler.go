package commands

import (
	"context"
	"time"

	"posdelivery/internal/pkg/errs"
)

// UpdateLocationCommandHandler handles courier position reports. Only the
// courier the order is assigned to may report positions for it.
type UpdateLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLocationCommandHandler creates a handler for position reports.
func NewUpdateLocationCommandHandler(uowFactory OrderUoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the position snapshot to the order's history inside a
// single transaction.
func (h *UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
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

	if err = order.UpdateLocation(cmd.Location(), cmd.CourierName(), time.Now()); err != nil {
		return err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
