package commands_test

import (
	"testing"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCommentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	order := newAssignedOrder(t, courierID)
	cmd, _ := commands.NewAddCommentCommand(order.ID(), courierID, "Bob", "customer not answering")

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
		notifier.On("OrderCommented", ctx, order, "customer not answering").Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCommentCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Contains(t, order.CourierNotes(), "customer not answering")
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAddCommentCommandHandler_Handle_ForeignOrder(t *testing.T) {
	ctx := t.Context()
	order := newAssignedOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewAddCommentCommand(order.ID(), kernel.NewUUID(), "Bob", "hello")

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

	h := commands.NewAddCommentCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)

	var denied *errs.PermissionDeniedError
	assert.ErrorAs(t, err, &denied)
	assert.Empty(t, order.CourierNotes())
}

func TestNewAddCommentCommand_EmptyComment(t *testing.T) {
	_, err := commands.NewAddCommentCommand(kernel.NewUUID(), kernel.NewUUID(), "Bob", "")
	require.Error(t, err)
}
