package queries

import (
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSettlementReportQueryIsNotConstructed = errors.New(
	"SettlementReportQuery must be created via NewSettlementReportQuery constructor",
)

// SettlementReportQuery totals the money each courier collected on a given
// day, split by payment method, for the end-of-shift cash reconciliation.
type SettlementReportQuery struct { //nolint:recvcheck //using for validation
	day       time.Time
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSettlementReportQuery creates a settlement query for one calendar day.
func NewSettlementReportQuery(day time.Time) (SettlementReportQuery, error) {
	if day.IsZero() {
		return SettlementReportQuery{}, errors.New("settlement day is required")
	}

	return SettlementReportQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// SetCourierID narrows the report to a single courier.
func (q *SettlementReportQuery) SetCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = &courierID
	return nil
}

// Validate ensures the query was created through the constructor.
func (q SettlementReportQuery) Validate() error {
	return q.guard.Validate(ErrSettlementReportQueryIsNotConstructed)
}

// Day returns the calendar day the report covers.
func (q SettlementReportQuery) Day() time.Time { return q.day }

// CourierID returns the courier filter, nil for all couriers.
func (q SettlementReportQuery) CourierID() *kernel.UUID { return q.courierID }

// SettlementReportQueryResponse is one courier/payment-method line of the
// settlement report.
type SettlementReportQueryResponse struct {
	CourierID     kernel.UUID
	CourierName   string
	PaymentMethod string
	OrderCount    int
	Total         decimal.Decimal
}
