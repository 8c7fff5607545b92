package commands_test

import (
	"context"
	"testing"
	"time"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/domain/model/settings"
	"posdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompleteSettingsRepository struct{ mock.Mock }

func (m *MockCompleteSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Settings), args.Error(1)
}
func (m *MockCompleteSettingsRepository) Update(_ context.Context, _ *settings.Settings) error {
	return nil
}

type MockCompleteUoW struct{ mock.Mock }

func (m *MockCompleteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompleteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompleteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompleteUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryOrderRepository)
}
func (m *MockCompleteUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockCompleteUoWFactory struct{ mock.Mock }

func (m *MockCompleteUoWFactory) Create() commands.CompleteUoW {
	args := m.Called()
	return args.Get(0).(commands.CompleteUoW)
}

func newInTransitOrder(t *testing.T, courierID kernel.UUID) *delivery.DeliveryOrder {
	t.Helper()
	o := newAssignedOrder(t, courierID)
	require.NoError(t, o.StartTransit("Bob", time.Now()))
	return o
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	order := newInTransitOrder(t, courierID)
	cmd, _ := commands.NewCompleteDeliveryCommand(order.ID(), courierID, "Bob")

	cfg := settings.NewDefaultSettings()

	orders := new(MockOrderRepository)
	store := new(MockCompleteSettingsRepository)
	uow := new(MockCompleteUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("SettingsRepository").Return(store).Once(),
		store.On("Get", mock.Anything).Return(cfg, nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("OrderStatusChanged", ctx, order).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.StatusCompleted, order.Status())
	orders.AssertExpectations(t)
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_PhotoRequiredMissing(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	order := newInTransitOrder(t, courierID)
	cmd, _ := commands.NewCompleteDeliveryCommand(order.ID(), courierID, "Bob")

	cfg := settings.NewDefaultSettings()
	cfg.RequirePhoto(true)

	orders := new(MockOrderRepository)
	store := new(MockCompleteSettingsRepository)
	uow := new(MockCompleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("SettingsRepository").Return(store).Once(),
		store.On("Get", mock.Anything).Return(cfg, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, delivery.StatusInTransit, order.Status())
	orders.AssertExpectations(t)
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_PhotoRequiredProvided(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	order := newInTransitOrder(t, courierID)
	cmd, _ := commands.NewCompleteDeliveryCommand(order.ID(), courierID, "Bob")
	cmd.SetPhoto("aGVsbG8=")

	cfg := settings.NewDefaultSettings()
	cfg.RequirePhoto(true)

	orders := new(MockOrderRepository)
	store := new(MockCompleteSettingsRepository)
	uow := new(MockCompleteUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("SettingsRepository").Return(store).Once(),
		store.On("Get", mock.Anything).Return(cfg, nil).Once(),
		uow.On("DeliveryOrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("OrderStatusChanged", ctx, order).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.StatusCompleted, order.Status())
	require.Equal(t, "aGVsbG8=", order.Photo())
}
