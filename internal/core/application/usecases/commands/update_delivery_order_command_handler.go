package commands

import (
	"context"
	"time"

	"posdelivery/internal/pkg/errs"
)

// UpdateDeliveryOrderCommandHandler handles staff edits of an order. Each
// edited field goes through its own aggregate operation so the history log
// records every change.
type UpdateDeliveryOrderCommandHandler struct {
	uowFactory UpdateOrderUoWFactory
}

// NewUpdateDeliveryOrderCommandHandler creates a handler for order edits.
func NewUpdateDeliveryOrderCommandHandler(uowFactory UpdateOrderUoWFactory) UpdateDeliveryOrderCommandHandler {
	return UpdateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the requested edits inside a single transaction. A command
// with no changes is rejected.
func (h *UpdateDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.HasChanges() {
		return errs.NewValueIsRequiredError("changes")
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

	now := time.Now()

	if priority := cmd.Priority(); priority != nil {
		if err = order.SetPriority(*priority, "", now); err != nil {
			return err
		}
	}

	if zoneID := cmd.ZoneID(); zoneID != nil {
		deliveryZone, zoneErr := uow.ZoneRepository().Get(ctx, *zoneID)
		if zoneErr != nil {
			return zoneErr
		}
		if err = order.SetZone(*zoneID, deliveryZone.Name(), "", now); err != nil {
			return err
		}
	}

	if note := cmd.WarehouseNote(); note != "" {
		if err = order.AddWarehouseNote(note, "", now); err != nil {
			return err
		}
	}

	if estimated := cmd.EstimatedDeliveryAt(); estimated != nil {
		order.SetEstimatedDeliveryAt(*estimated)
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
