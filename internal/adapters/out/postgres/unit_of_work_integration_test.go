package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"posdelivery/internal/adapters/out/postgres"
	"posdelivery/internal/adapters/out/postgres/courierrepo"
	"posdelivery/internal/adapters/out/postgres/deliveryrepo"
	"posdelivery/internal/adapters/out/postgres/sessionrepo"
	"posdelivery/internal/adapters/out/postgres/settingsrepo"
	"posdelivery/internal/adapters/out/postgres/zonerepo"
	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/domain/model/zone"
	"posdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the unit
// of work and the atomicity of the order number sequence against a real
// PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the full schema
	suite.Require().NoError(db.AutoMigrate(
		&deliveryrepo.OrderDTO{},
		&deliveryrepo.StageTimeDTO{},
		&deliveryrepo.HistoryDTO{},
		&courierrepo.CourierDTO{},
		&sessionrepo.SessionDTO{},
		&zonerepo.ZoneDTO{},
		&settingsrepo.SettingsDTO{},
		&postgres.CounterDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE delivery_orders, delivery_stage_times, delivery_history, " +
			"couriers, courier_sessions, delivery_zones, delivery_settings, delivery_counters").Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createPendingOrder()
	suite.Require().NoError(uow.DeliveryOrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// Visible through a separate unit of work after commit
	verifyUow := suite.factory.Create()
	retrieved, err := verifyUow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Number(), retrieved.Number())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createPendingOrder()
	suite.Require().NoError(uow.DeliveryOrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	verifyUow := suite.factory.Create()
	_, err := verifyUow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_ReturnsError() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	ctx := context.Background()

	uow := suite.factory.Create()
	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_DoesNotNest() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createPendingOrder()
	suite.Require().NoError(uow.DeliveryOrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	_, err := verifyUow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_SpansAllRepositories() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testZone, err := zone.NewZone(kernel.NewUUID(), "Downtown", "DT", decimal.NewFromInt(5), 30)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ZoneRepository().Add(ctx, testZone))

	testOrder := suite.createPendingOrder()
	suite.Require().NoError(uow.DeliveryOrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	var zoneCount, orderCount int64
	suite.Require().NoError(suite.db.Model(&zonerepo.ZoneDTO{}).Count(&zoneCount).Error)
	suite.Require().NoError(suite.db.Model(&deliveryrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Equal(int64(0), zoneCount)
	suite.Equal(int64(0), orderCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettingsRepository_FirstGet_CreatesDefaults() {
	ctx := context.Background()

	uow := suite.factory.Create()
	cfg, err := uow.SettingsRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.False(cfg.PhotoRequired())

	var count int64
	suite.Require().NoError(suite.db.Model(&settingsrepo.SettingsDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	// Subsequent reads reuse the row instead of inserting another
	_, err = uow.SettingsRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Model(&settingsrepo.SettingsDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSequenceGenerator_NumbersAreSequential() {
	ctx := context.Background()

	generator := postgres.NewGormSequenceGenerator(suite.db)

	first, err := generator.NextOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.Equal("DEL-00001", first)

	second, err := generator.NextOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.Equal("DEL-00002", second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSequenceGenerator_ConcurrentCallers_NoDuplicates() {
	ctx := context.Background()

	generator := postgres.NewGormSequenceGenerator(suite.db)

	const callers = 10
	numbers := make(chan string, callers)
	failures := make(chan error, callers)

	for range callers {
		go func() {
			number, err := generator.NextOrderNumber(ctx)
			if err != nil {
				failures <- err
				return
			}
			numbers <- number
		}()
	}

	seen := make(map[string]bool, callers)
	for range callers {
		select {
		case number := <-numbers:
			suite.False(seen[number], "number %s handed out twice", number)
			seen[number] = true
		case err := <-failures:
			suite.Failf("Unexpected error from sequence generator", "%v", err)
		}
	}

	suite.Len(seen, callers)
}

// createPendingOrder creates a pending order with a unique number.
func (suite *UnitOfWorkIntegrationTestSuite) createPendingOrder() *delivery.DeliveryOrder {
	id := kernel.NewUUID()
	number := fmt.Sprintf("DEL-%s", id.String()[:8])
	testOrder, err := delivery.NewDeliveryOrder(
		id, number, "Alice", "12 Main St", "+1555123",
		delivery.PriorityNormal, time.Now())
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
