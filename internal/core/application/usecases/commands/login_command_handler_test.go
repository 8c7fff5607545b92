package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/domain/model/courier"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/domain/model/session"
	"posdelivery/internal/core/ports"
	"posdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoginCourierRepository struct{ mock.Mock }

func (m *MockLoginCourierRepository) Add(_ context.Context, _ *courier.Courier) error {
	return errors.New("not implemented in mock")
}
func (m *MockLoginCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockLoginCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}
func (m *MockLoginCourierRepository) GetByEmail(ctx context.Context, email string) (*courier.Courier, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockLoginSessionRepository struct{ mock.Mock }

func (m *MockLoginSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockLoginSessionRepository) Update(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockLoginSessionRepository) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}
func (m *MockLoginSessionRepository) DeactivateByToken(_ context.Context, _ string) error {
	return errors.New("not implemented in mock")
}
func (m *MockLoginSessionRepository) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type MockCourierSessionUoW struct{ mock.Mock }

func (m *MockCourierSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCourierSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCourierSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCourierSessionUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}
func (m *MockCourierSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockCourierSessionUoWFactory struct{ mock.Mock }

func (m *MockCourierSessionUoWFactory) Create() commands.CourierSessionUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierSessionUoW)
}

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	account := newTestCourier(t, "secret")
	cmd, _ := commands.NewLoginCommand(account.Email(), "secret", `{"device":"test"}`)

	couriers := new(MockLoginCourierRepository)
	sessions := new(MockLoginSessionRepository)
	uow := new(MockCourierSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(couriers).Once(),
		couriers.On("GetByEmail", mock.Anything, account.Email()).Return(account, nil).Once(),
		uow.On("SessionRepository").Return(sessions).Once(),
		sessions.On("Add", mock.Anything, mock.AnythingOfType("*session.Session")).Return(nil).Once(),
		uow.On("CourierRepository").Return(couriers).Once(),
		couriers.On("Update", mock.Anything, account).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, result.Token, 43)
	assert.True(t, result.ExpiresAt.After(time.Now()))
	assert.True(t, result.Courier.IsEqual(account))
	assert.NotNil(t, account.LastConnection())
	couriers.AssertExpectations(t)
	sessions.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	account := newTestCourier(t, "secret")
	cmd, _ := commands.NewLoginCommand(account.Email(), "wrong", "")

	couriers := new(MockLoginCourierRepository)
	uow := new(MockCourierSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(couriers).Once(),
		couriers.On("GetByEmail", mock.Anything, account.Email()).Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	var authErr *errs.AuthenticationError
	assert.ErrorAs(t, err, &authErr)
	couriers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLoginCommand("nobody@example.com", "secret", "")

	couriers := new(MockLoginCourierRepository)
	uow := new(MockCourierSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(couriers).Once(),
		couriers.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "nobody@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	var authErr *errs.AuthenticationError
	assert.ErrorAs(t, err, &authErr)
}

func TestLoginCommandHandler_Handle_InactiveAccount(t *testing.T) {
	ctx := t.Context()
	account := newTestCourier(t, "secret")
	account.Deactivate()
	cmd, _ := commands.NewLoginCommand(account.Email(), "secret", "")

	couriers := new(MockLoginCourierRepository)
	uow := new(MockCourierSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(couriers).Once(),
		couriers.On("GetByEmail", mock.Anything, account.Email()).Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	var authErr *errs.AuthenticationError
	assert.ErrorAs(t, err, &authErr)
}
