package commands_test

import (
	"testing"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResetDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := newAssignedOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewResetDeliveryCommand(order.ID())

	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("OrderStatusChanged", ctx, order).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetDeliveryCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.StatusPending, order.Status())
	assert.Nil(t, order.CourierID())
	assert.Nil(t, order.AssignedAt())
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestResetDeliveryCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	order := newInTransitOrder(t, courierID)
	require.NoError(t, order.Complete(false, false, "Bob", order.CreatedAt()))
	cmd, _ := commands.NewResetDeliveryCommand(order.ID())

	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetDeliveryCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, delivery.StatusCompleted, order.Status())
}
