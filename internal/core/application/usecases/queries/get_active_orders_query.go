package queries

import (
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order still in flight for the
// back-office dispatch board: pending, assigned, and in transit.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve orders in flight.
// This is a parameterless query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one in-flight order on the dispatch board.
type GetActiveOrdersQueryResponse struct {
	ID                  kernel.UUID
	Number              string
	CustomerName        string
	DeliveryAddress     string
	CourierName         string
	Status              string
	Priority            string
	Cost                decimal.Decimal
	CreatedAt           time.Time
	EstimatedDeliveryAt *time.Time
}
