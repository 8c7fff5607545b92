package queries

import (
	"context"
	"database/sql"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database
// for the dispatch board, most urgent and oldest first.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for dispatch board queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns non-terminal orders sorted by priority
// descending, then oldest first so long-waiting orders are not buried.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_name,
			o.delivery_address,
			c.name,
			o.status,
			o.priority,
			o.cost,
			o.created_at,
			o.estimated_delivery_at
		FROM delivery_orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.status IN ?
		ORDER BY o.priority DESC, o.created_at
	`, []string{
		delivery.StatusPending.String(),
		delivery.StatusAssigned.String(),
		delivery.StatusInTransit.String(),
	}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var priority int
		var courierName sql.NullString

		err = rows.Scan(
			&id,
			&orderResp.Number,
			&orderResp.CustomerName,
			&orderResp.DeliveryAddress,
			&courierName,
			&orderResp.Status,
			&priority,
			&orderResp.Cost,
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
		orderResp.CourierName = courierName.String
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
