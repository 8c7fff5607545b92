package commands

import (
	"context"
)

// RateDeliveryCommandHandler handles customer ratings of completed
// deliveries.
type RateDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRateDeliveryCommandHandler creates a handler for rating operations.
func NewRateDeliveryCommandHandler(uowFactory OrderUoWFactory) RateDeliveryCommandHandler {
	return RateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the rating inside a single transaction. The aggregate
// rejects ratings of orders that have not been completed.
func (h *RateDeliveryCommandHandler) Handle(ctx context.Context, cmd RateDeliveryCommand) error {
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

	if err = order.Rate(cmd.Rating(), cmd.Comment()); err != nil {
		return err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
