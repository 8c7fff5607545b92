package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"posdelivery/internal/adapters/out/postgres/courierrepo"
	"posdelivery/internal/adapters/out/postgres/deliveryrepo"
	"posdelivery/internal/core/application/usecases/queries"
	"posdelivery/internal/core/domain/model/courier"
	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for tests that seed data through
// repositories without a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetCourierOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetCourierOrdersQueryHandler
	orderRepo   *deliveryrepo.GormDeliveryOrderRepository
	courierRepo *courierrepo.GormCourierRepository
	testCourier *courier.Courier
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&deliveryrepo.OrderDTO{},
		&deliveryrepo.StageTimeDTO{},
		&deliveryrepo.HistoryDTO{},
		&courierrepo.CourierDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCourierOrdersQueryHandler(db)
	suite.orderRepo = deliveryrepo.NewGormDeliveryOrderRepository(db, &mockAggregateTracker{})
	suite.courierRepo = courierrepo.NewGormCourierRepository(db, &mockAggregateTracker{})

	// Create a test courier for assigned orders
	hash, err := courier.HashPassword("s3cret")
	suite.Require().NoError(err)
	suite.testCourier, err = courier.NewCourier(kernel.NewUUID(), "Test Courier", "courier@example.com", hash, "+1555987")
	suite.Require().NoError(err)
	err = suite.courierRepo.Add(ctx, suite.testCourier)
	suite.Require().NoError(err)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE delivery_orders, delivery_stage_times, delivery_history CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetCourierOrdersQuery(suite.testCourier.ID(), "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_DefaultFilter_ReturnsWorkingSetOnly() {
	ctx := context.Background()

	assigned := suite.seedOrder(delivery.PriorityNormal, time.Now())
	inTransit := suite.seedOrder(delivery.PriorityNormal, time.Now())
	suite.Require().NoError(inTransit.StartTransit("Test Courier", time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, inTransit))

	completed := suite.seedOrder(delivery.PriorityNormal, time.Now())
	suite.Require().NoError(completed.StartTransit("Test Courier", time.Now()))
	suite.Require().NoError(completed.Complete(false, false, "Test Courier", time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, completed))

	query, err := queries.NewGetCourierOrdersQuery(suite.testCourier.ID(), "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[assigned.ID()])
	suite.True(resultIDs[inTransit.ID()])
	suite.False(resultIDs[completed.ID()])
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_StatusFilter_NarrowsResults() {
	ctx := context.Background()

	suite.seedOrder(delivery.PriorityNormal, time.Now())
	inTransit := suite.seedOrder(delivery.PriorityNormal, time.Now())
	suite.Require().NoError(inTransit.StartTransit("Test Courier", time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, inTransit))

	query, err := queries.NewGetCourierOrdersQuery(suite.testCourier.ID(), "in_transit")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(inTransit.ID(), result[0].ID)
	suite.Equal("in_transit", result[0].Status)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_Ordering_UrgentFirstThenNewest() {
	ctx := context.Background()

	oldNormal := suite.seedOrder(delivery.PriorityNormal, time.Now().Add(-2*time.Hour))
	newNormal := suite.seedOrder(delivery.PriorityNormal, time.Now().Add(-time.Hour))
	urgent := suite.seedOrder(delivery.PriorityUrgent, time.Now().Add(-3*time.Hour))

	query, err := queries.NewGetCourierOrdersQuery(suite.testCourier.ID(), "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(urgent.ID(), result[0].ID)
	suite.Equal("urgent", result[0].Priority)
	suite.Equal(newNormal.ID(), result[1].ID)
	suite.Equal(oldNormal.ID(), result[2].ID)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_OtherCouriersOrders_AreExcluded() {
	ctx := context.Background()

	suite.seedOrder(delivery.PriorityNormal, time.Now())

	otherCourierID := kernel.NewUUID()
	foreign := suite.newOrder(delivery.PriorityNormal, time.Now())
	suite.Require().NoError(foreign.Assign(otherCourierID, "staff", time.Now()))
	suite.Require().NoError(suite.orderRepo.Add(ctx, foreign))

	query, err := queries.NewGetCourierOrdersQuery(suite.testCourier.ID(), "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.NotEqual(foreign.ID(), result[0].ID)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCourierOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCourierOrdersQuery constructor")
}

// newOrder builds a pending order with a unique number and given creation time.
func (suite *GetCourierOrdersQueryHandlerTestSuite) newOrder(
	priority delivery.Priority, createdAt time.Time,
) *delivery.DeliveryOrder {
	id := kernel.NewUUID()
	number := fmt.Sprintf("DEL-%s", id.String()[:8])
	o, err := delivery.NewDeliveryOrder(id, number, "Alice", "12 Main St", "+1555123", priority, createdAt)
	suite.Require().NoError(err)
	return o
}

// seedOrder persists an order assigned to the suite's courier.
func (suite *GetCourierOrdersQueryHandlerTestSuite) seedOrder(
	priority delivery.Priority, createdAt time.Time,
) *delivery.DeliveryOrder {
	o := suite.newOrder(priority, createdAt)
	suite.Require().NoError(o.Assign(suite.testCourier.ID(), "staff", createdAt))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestGetCourierOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCourierOrdersQueryHandlerTestSuite))
}
