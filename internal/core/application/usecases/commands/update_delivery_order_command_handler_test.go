package commands_test

import (
	"context"
	"testing"
	"time"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUpdateOrderUoW struct{ mock.Mock }

func (m *MockUpdateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryOrderRepository)
}
func (m *MockUpdateOrderUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
}

type MockUpdateOrderUoWFactory struct{ mock.Mock }

func (m *MockUpdateOrderUoWFactory) Create() commands.UpdateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.UpdateOrderUoW)
}

func TestUpdateDeliveryOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := newPendingOrder(t)
	newZone := newTestZone(t)
	eta := time.Now().Add(2 * time.Hour)

	cmd, err := commands.NewUpdateDeliveryOrderCommand(order.ID())
	require.NoError(t, err)
	require.NoError(t, cmd.SetPriority(delivery.PriorityUrgent))
	require.NoError(t, cmd.SetZoneID(newZone.ID()))
	cmd.SetWarehouseNote("fragile, pack with foam")
	require.NoError(t, cmd.SetEstimatedDeliveryAt(eta))

	orders := new(MockOrderRepository)
	zones := new(MockZoneRepository)
	uow := new(MockUpdateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("ZoneRepository").Return(zones).Once(),
		zones.On("Get", mock.Anything, newZone.ID()).Return(newZone, nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUpdateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.PriorityUrgent, order.Priority())
	require.NotNil(t, order.ZoneID())
	assert.True(t, order.ZoneID().IsEqual(newZone.ID()))
	assert.Contains(t, order.WarehouseNotes(), "fragile, pack with foam")
	require.NotNil(t, order.EstimatedDeliveryAt())
	assert.True(t, order.EstimatedDeliveryAt().Equal(eta))
	orders.AssertExpectations(t)
	zones.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryOrderCommandHandler_Handle_NoChanges(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateDeliveryOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockUpdateOrderUoWFactory)
	h := commands.NewUpdateDeliveryOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateDeliveryOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateDeliveryOrderCommand{} // not constructed properly
	factory := new(MockUpdateOrderUoWFactory)
	h := commands.NewUpdateDeliveryOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
