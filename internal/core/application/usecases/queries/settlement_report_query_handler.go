package queries

import (
	"context"
	"time"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettlementReportQueryHandler aggregates completed deliveries by courier
// and payment method straight in SQL.
type SettlementReportQueryHandler struct {
	db *gorm.DB
}

// NewSettlementReportQueryHandler creates a handler for settlement queries.
// Requires a GORM database connection for query execution.
func NewSettlementReportQueryHandler(db *gorm.DB) SettlementReportQueryHandler {
	return SettlementReportQueryHandler{db: db}
}

// Handle executes the report. Only orders completed within the query's
// calendar day count; rows come back grouped per courier and payment method.
func (h SettlementReportQueryHandler) Handle(
	ctx context.Context,
	query SettlementReportQuery,
) ([]SettlementReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dayStart := time.Date(
		query.Day().Year(), query.Day().Month(), query.Day().Day(),
		0, 0, 0, 0, query.Day().Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	sqlQuery := `
		SELECT
			o.courier_id,
			c.name,
			o.payment_method,
			COUNT(*),
			COALESCE(SUM(o.cost), 0)
		FROM delivery_orders o
		JOIN couriers c ON c.id = o.courier_id
		WHERE o.status = ?
			AND o.completed_at >= ? AND o.completed_at < ?
	`
	args := []any{delivery.StatusCompleted.String(), dayStart, dayEnd}

	if query.CourierID() != nil {
		sqlQuery += ` AND o.courier_id = ?`
		args = append(args, query.CourierID().String())
	}

	sqlQuery += `
		GROUP BY o.courier_id, c.name, o.payment_method
		ORDER BY c.name, o.payment_method
	`

	lines := make([]SettlementReportQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line SettlementReportQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&line.CourierName,
			&line.PaymentMethod,
			&line.OrderCount,
			&line.Total,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.CourierID = courierID
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
