package commands

import (
	"context"
	"time"

	"posdelivery/internal/core/ports"
	"posdelivery/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler handles delivery completion. Proof
// requirements come from the workspace settings: when photo or signature is
// mandatory the completion is rejected unless the matching payload arrived
// with the command.
type CompleteDeliveryCommandHandler struct {
	uowFactory CompleteUoWFactory
	notifier   ports.Notifier
}

// NewCompleteDeliveryCommandHandler creates a handler for completion operations.
func NewCompleteDeliveryCommandHandler(uowFactory CompleteUoWFactory, notifier ports.Notifier) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion inside a single transaction and announces
// the status change after commit.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	now := time.Now()

	if cmd.Photo() != "" {
		if err = order.AttachPhoto(cmd.Photo(), cmd.CourierName(), now); err != nil {
			return err
		}
	}
	if cmd.Signature() != "" {
		if err = order.AttachSignature(cmd.Signature()); err != nil {
			return err
		}
	}

	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return err
	}

	if err = order.Complete(settings.PhotoRequired(), settings.SignatureRequired(), cmd.CourierName(), now); err != nil {
		return err
	}

	if cmd.Comment() != "" {
		if err = order.AddCourierNote(cmd.Comment(), cmd.CourierName(), now); err != nil {
			return err
		}
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
