package commands

import (
	"context"
	"time"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/ports"
	"posdelivery/internal/pkg/errs"
)

// CreateDeliveryOrderCommandHandler handles the business logic for order
// creation: it draws the next order number from the sequence, builds the
// aggregate in pending status, and applies zone defaults when a zone was
// requested.
type CreateDeliveryOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	sequence   ports.SequenceGenerator
}

// NewCreateDeliveryOrderCommandHandler creates a handler for order creation.
func NewCreateDeliveryOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	sequence ports.SequenceGenerator,
) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
	}
}

// Handle processes the order creation command inside a single transaction.
// A requested zone must exist and be active; its cost and time estimate fill
// any values the command left open.
func (h *CreateDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryOrderCommand) error {
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

	number, err := h.sequence.NextOrderNumber(ctx)
	if err != nil {
		return err
	}

	order, err := delivery.NewDeliveryOrder(
		cmd.OrderID(),
		number,
		cmd.CustomerName(),
		cmd.DeliveryAddress(),
		cmd.DeliveryPhone(),
		cmd.Priority(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	order.SetPosOrderRef(cmd.PosOrderRef())
	order.SetCustomerNotes(cmd.CustomerNotes())
	if err = order.SetPaymentMethod(cmd.PaymentMethod()); err != nil {
		return err
	}
	if cmd.Cost() != nil {
		if err = order.SetCost(*cmd.Cost()); err != nil {
			return err
		}
	}
	if cmd.Location() != nil {
		if err = order.SetDeliveryLocation(*cmd.Location()); err != nil {
			return err
		}
	}

	if cmd.ZoneID() != nil {
		zone, zoneErr := uow.ZoneRepository().Get(ctx, *cmd.ZoneID())
		if zoneErr != nil {
			return zoneErr
		}
		if !zone.IsActive() {
			return errs.NewValueIsInvalidError("zoneID")
		}
		if err = order.ApplyZoneDefaults(zone.ID(), zone.Cost(), zone.EstimatedMinutes()); err != nil {
			return err
		}
	}

	if err = uow.DeliveryOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
