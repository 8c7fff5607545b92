package queries

import (
	"context"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler retrieves a courier's orders from the
// database, most urgent first.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier order queries.
// Requires a GORM database connection for query execution.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by priority descending, then
// newest first, so urgent orders surface at the top of the courier's list.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]GetCourierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := []string{delivery.StatusAssigned.String(), delivery.StatusInTransit.String()}
	if query.StatusFilter() != "" {
		statuses = []string{query.StatusFilter()}
	}

	orders := make([]GetCourierOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_name,
			delivery_address,
			delivery_phone,
			status,
			priority,
			cost,
			payment_method,
			customer_notes,
			created_at,
			estimated_delivery_at
		FROM delivery_orders
		WHERE courier_id = ? AND status IN ?
		ORDER BY priority DESC, created_at DESC
	`, query.CourierID().String(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCourierOrdersQueryResponse
		var id uuid.UUID
		var priority int
		var cost decimal.Decimal

		err = rows.Scan(
			&id,
			&orderResp.Number,
			&orderResp.CustomerName,
			&orderResp.DeliveryAddress,
			&orderResp.DeliveryPhone,
			&orderResp.Status,
			&priority,
			&cost,
			&orderResp.PaymentMethod,
			&orderResp.CustomerNotes,
			&orderResp.CreatedAt,
			&orderResp.EstimatedDeliveryAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Priority = delivery.Priority(priority).String()
		orderResp.Cost = cost
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
