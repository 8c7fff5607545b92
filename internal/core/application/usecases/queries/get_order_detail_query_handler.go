package queries

import (
	"context"
	"database/sql"
	"errors"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler retrieves one order with its complete history
// from the database. Joins courier and zone names so the client does not
// need follow-up lookups.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist, and a PermissionDeniedError when a courier restriction is
// set and the order is not assigned to that courier.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	var resp GetOrderDetailQueryResponse
	var priority int
	var courierID uuid.NullUUID
	var courierName, zoneName sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.pos_order_ref,
			o.customer_name,
			o.delivery_address,
			o.delivery_phone,
			o.latitude,
			o.longitude,
			o.courier_id,
			c.name,
			z.name,
			o.status,
			o.priority,
			o.cost,
			o.payment_method,
			o.created_at,
			o.assigned_at,
			o.in_transit_at,
			o.completed_at,
			o.estimated_delivery_at,
			o.photo,
			o.signature,
			o.rating,
			o.rating_comment,
			o.warehouse_notes,
			o.courier_notes,
			o.customer_notes
		FROM delivery_orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		LEFT JOIN delivery_zones z ON z.id = o.zone_id
		WHERE o.id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&resp.Number,
		&resp.PosOrderRef,
		&resp.CustomerName,
		&resp.DeliveryAddress,
		&resp.DeliveryPhone,
		&resp.Latitude,
		&resp.Longitude,
		&courierID,
		&courierName,
		&zoneName,
		&resp.Status,
		&priority,
		&resp.Cost,
		&resp.PaymentMethod,
		&resp.CreatedAt,
		&resp.AssignedAt,
		&resp.InTransitAt,
		&resp.CompletedAt,
		&resp.EstimatedDeliveryAt,
		&resp.Photo,
		&resp.Signature,
		&resp.Rating,
		&resp.RatingComment,
		&resp.WarehouseNotes,
		&resp.CourierNotes,
		&resp.CustomerNotes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDetailQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderDetailQueryResponse{}, err
	}

	resp.ID = query.OrderID()
	resp.Priority = delivery.Priority(priority).String()
	resp.CourierName = courierName.String
	resp.ZoneName = zoneName.String

	if courierID.Valid {
		cID, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return GetOrderDetailQueryResponse{}, idErr
		}
		resp.CourierID = &cID
	}

	if restrict := query.CourierID(); restrict != nil {
		if resp.CourierID == nil || !resp.CourierID.IsEqual(*restrict) {
			return GetOrderDetailQueryResponse{}, errs.NewPermissionDeniedError("order is assigned to another courier")
		}
	}

	history, err := h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.History = history

	return resp, nil
}

func (h GetOrderDetailQueryHandler) loadHistory(ctx context.Context, orderID kernel.UUID) ([]OrderHistoryItem, error) {
	items := make([]OrderHistoryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			old_value,
			new_value,
			description,
			actor,
			created_at
		FROM delivery_history
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderHistoryItem
		err = rows.Scan(
			&item.EventType,
			&item.OldValue,
			&item.NewValue,
			&item.Description,
			&item.Actor,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
