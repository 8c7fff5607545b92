// Package queries contains read operations that bypass the domain model and
// read the database directly. Implements the query side of the CQRS
// architecture with raw SQL for optimal read performance.
package queries

import (
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves the orders on a courier's plate. Without a
// status filter it returns the working set: assigned and in-transit orders.
//
// Example:
//
//	query, err := NewGetCourierOrdersQuery(courierID, "")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get courier orders: %w", err)
//	}
//
//	fmt.Printf("%d orders to deliver\n", len(orders))
type GetCourierOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	statusFilter string

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for a courier's orders. The status
// filter is optional; when set it must name a known status.
func NewGetCourierOrdersQuery(courierID kernel.UUID, statusFilter string) (GetCourierOrdersQuery, error) {
	q := GetCourierOrdersQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}
	q.courierID = courierID

	if statusFilter != "" {
		if _, err := delivery.StatusFromString(statusFilter); err != nil {
			return GetCourierOrdersQuery{}, err
		}
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are requested.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID { return q.courierID }

// StatusFilter returns the requested status label, empty for the default
// working set.
func (q GetCourierOrdersQuery) StatusFilter() string { return q.statusFilter }

// GetCourierOrdersQueryResponse is one order in a courier's list.
type GetCourierOrdersQueryResponse struct {
	ID                  kernel.UUID
	Number              string
	CustomerName        string
	DeliveryAddress     string
	DeliveryPhone       string
	Status              string
	Priority            string
	Cost                decimal.Decimal
	PaymentMethod       string
	CustomerNotes       string
	CreatedAt           time.Time
	EstimatedDeliveryAt *time.Time
}
