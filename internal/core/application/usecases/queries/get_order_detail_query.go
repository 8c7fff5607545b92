package queries

import (
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery retrieves a single order with its full history log,
// proof-of-delivery payloads, and timing information.
type GetOrderDetailQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query for one order's full detail.
func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// SetCourierID restricts the query to orders assigned to the given courier.
// The mobile API sets this so a courier cannot read another courier's orders.
func (q *GetOrderDetailQuery) SetCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = &courierID
	return nil
}

// OrderID returns the requested order.
func (q GetOrderDetailQuery) OrderID() kernel.UUID { return q.orderID }

// CourierID returns the courier restriction, nil when unrestricted.
func (q GetOrderDetailQuery) CourierID() *kernel.UUID { return q.courierID }

// OrderHistoryItem is one history log line of an order.
type OrderHistoryItem struct {
	EventType   string
	OldValue    string
	NewValue    string
	Description string
	Actor       string
	CreatedAt   time.Time
}

// GetOrderDetailQueryResponse is the full read model of one order.
type GetOrderDetailQueryResponse struct {
	ID                  kernel.UUID
	Number              string
	PosOrderRef         string
	CustomerName        string
	DeliveryAddress     string
	DeliveryPhone       string
	Latitude            *float64
	Longitude           *float64
	CourierID           *kernel.UUID
	CourierName         string
	ZoneName            string
	Status              string
	Priority            string
	Cost                decimal.Decimal
	PaymentMethod       string
	CreatedAt           time.Time
	AssignedAt          *time.Time
	InTransitAt         *time.Time
	CompletedAt         *time.Time
	EstimatedDeliveryAt *time.Time
	Photo               string
	Signature           string
	Rating              *int
	RatingComment       string
	WarehouseNotes      string
	CourierNotes        string
	CustomerNotes       string
	History             []OrderHistoryItem
}
