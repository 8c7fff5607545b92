package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/domain/model/session"
	"posdelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCleanupSessionRepository struct{ mock.Mock }

func (m *MockCleanupSessionRepository) Add(_ context.Context, _ *session.Session) error {
	return errors.New("not implemented in mock")
}
func (m *MockCleanupSessionRepository) Update(_ context.Context, _ *session.Session) error {
	return errors.New("not implemented in mock")
}
func (m *MockCleanupSessionRepository) GetByToken(_ context.Context, _ string) (*session.Session, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCleanupSessionRepository) DeactivateByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockCleanupSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockSessionUoW struct{ mock.Mock }

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

func TestCleanupSessionsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCleanupSessionsCommand()
	require.NoError(t, err)

	sessions := new(MockCleanupSessionRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessions).Once(),
		sessions.On("DeleteExpired", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCleanupSessionsCommandHandler(factory)
	removed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	sessions.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLogoutCommandHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLogoutCommand("some-token")
	require.NoError(t, err)

	sessions := new(MockCleanupSessionRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessions).Once(),
		sessions.On("DeactivateByToken", mock.Anything, "some-token").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogoutCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	sessions.AssertExpectations(t)
	uow.AssertExpectations(t)
}
