package http

import (
	"net/http"
	"time"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/application/usecases/queries"
	"posdelivery/internal/core/domain/model/courier"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const apiVersion = "1.0"

// Mobile update actions accepted by MobileOrderUpdate.
const (
	actionStartDelivery    = "start_delivery"
	actionCompleteDelivery = "complete_delivery"
	actionAddComment       = "add_comment"
	actionUpdateLocation   = "update_location"
)

type courierProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	VehicleType  string `json:"vehicle_type,omitempty"`
	VehiclePlate string `json:"vehicle_plate,omitempty"`
}

func newCourierProfile(c *courier.Courier) courierProfile {
	return courierProfile{
		ID:           c.ID().String(),
		Name:         c.Name(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		VehicleType:  c.VehicleType(),
		VehiclePlate: c.VehiclePlate(),
	}
}

// GetConfig handles GET /api/delivery/config. The mobile app calls this
// before login to discover the endpoints it should talk to.
func (s *Server) GetConfig(ctx echo.Context) error {
	return respond(ctx, http.StatusOK, map[string]string{
		"server_url":    s.serverURL,
		"api_version":   apiVersion,
		"websocket_url": "",
	})
}

// MobileLogin handles POST /api/delivery/login.
func (s *Server) MobileLogin(ctx echo.Context) error {
	var req struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		DeviceInfo string `json:"device_info"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password, req.DeviceInfo)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"token":      result.Token,
		"expires_at": result.ExpiresAt.Format(time.RFC3339),
		"courier":    newCourierProfile(result.Courier),
	})
}

// MobileLogout handles POST /api/delivery/logout. Always succeeds for a
// well-formed request, even when the token is already gone.
func (s *Server) MobileLogout(ctx echo.Context) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewLogoutCommand(req.Token)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.Logout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "logged out"})
}

type mobileOrderItem struct {
	ID                  string          `json:"id"`
	Number              string          `json:"number"`
	CustomerName        string          `json:"customer_name"`
	DeliveryAddress     string          `json:"delivery_address"`
	DeliveryPhone       string          `json:"delivery_phone,omitempty"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	Cost                decimal.Decimal `json:"cost"`
	PaymentMethod       string          `json:"payment_method"`
	CustomerNotes       string          `json:"customer_notes,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	EstimatedDeliveryAt *time.Time      `json:"estimated_delivery_at,omitempty"`
}

// MobileOrders handles POST /api/delivery/orders. Returns the calling
// courier's working set, or a single status slice when a filter is given.
func (s *Server) MobileOrders(ctx echo.Context) error {
	var req struct {
		Token  string `json:"token"`
		Status string `json:"status"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	caller, err := s.authenticate(ctx, req.Token)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierOrdersQuery(caller.ID(), req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.CourierOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]mobileOrderItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, mobileOrderItem{
			ID:                  o.ID.String(),
			Number:              o.Number,
			CustomerName:        o.CustomerName,
			DeliveryAddress:     o.DeliveryAddress,
			DeliveryPhone:       o.DeliveryPhone,
			Status:              o.Status,
			Priority:            o.Priority,
			Cost:                o.Cost,
			PaymentMethod:       o.PaymentMethod,
			CustomerNotes:       o.CustomerNotes,
			CreatedAt:           o.CreatedAt,
			EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		})
	}

	return respond(ctx, http.StatusOK, items)
}

type mobileHistoryItem struct {
	EventType   string    `json:"event_type"`
	OldValue    string    `json:"old_value,omitempty"`
	NewValue    string    `json:"new_value,omitempty"`
	Description string    `json:"description,omitempty"`
	Actor       string    `json:"actor"`
	CreatedAt   time.Time `json:"created_at"`
}

type mobileOrderDetail struct {
	mobileOrderItem
	PosOrderRef    string              `json:"pos_order_ref,omitempty"`
	Latitude       *float64            `json:"latitude,omitempty"`
	Longitude      *float64            `json:"longitude,omitempty"`
	CourierName    string              `json:"courier_name,omitempty"`
	ZoneName       string              `json:"zone_name,omitempty"`
	AssignedAt     *time.Time          `json:"assigned_at,omitempty"`
	InTransitAt    *time.Time          `json:"in_transit_at,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	Photo          string              `json:"photo,omitempty"`
	Signature      string              `json:"signature,omitempty"`
	Rating         *int                `json:"rating,omitempty"`
	RatingComment  string              `json:"rating_comment,omitempty"`
	WarehouseNotes string              `json:"warehouse_notes,omitempty"`
	CourierNotes   string              `json:"courier_notes,omitempty"`
	History        []mobileHistoryItem `json:"history"`
}

// MobileOrderDetail handles POST /api/delivery/orders/:id. Couriers only see
// orders assigned to themselves; anything else answers with a permission
// error.
func (s *Server) MobileOrderDetail(ctx echo.Context) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	caller, err := s.authenticate(ctx, req.Token)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = query.SetCourierID(caller.ID()); err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.OrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	history := make([]mobileHistoryItem, 0, len(detail.History))
	for _, h := range detail.History {
		history = append(history, mobileHistoryItem{
			EventType:   h.EventType,
			OldValue:    h.OldValue,
			NewValue:    h.NewValue,
			Description: h.Description,
			Actor:       h.Actor,
			CreatedAt:   h.CreatedAt,
		})
	}

	return respond(ctx, http.StatusOK, mobileOrderDetail{
		mobileOrderItem: mobileOrderItem{
			ID:                  detail.ID.String(),
			Number:              detail.Number,
			CustomerName:        detail.CustomerName,
			DeliveryAddress:     detail.DeliveryAddress,
			DeliveryPhone:       detail.DeliveryPhone,
			Status:              detail.Status,
			Priority:            detail.Priority,
			Cost:                detail.Cost,
			PaymentMethod:       detail.PaymentMethod,
			CustomerNotes:       detail.CustomerNotes,
			CreatedAt:           detail.CreatedAt,
			EstimatedDeliveryAt: detail.EstimatedDeliveryAt,
		},
		PosOrderRef:    detail.PosOrderRef,
		Latitude:       detail.Latitude,
		Longitude:      detail.Longitude,
		CourierName:    detail.CourierName,
		ZoneName:       detail.ZoneName,
		AssignedAt:     detail.AssignedAt,
		InTransitAt:    detail.InTransitAt,
		CompletedAt:    detail.CompletedAt,
		Photo:          detail.Photo,
		Signature:      detail.Signature,
		Rating:         detail.Rating,
		RatingComment:  detail.RatingComment,
		WarehouseNotes: detail.WarehouseNotes,
		CourierNotes:   detail.CourierNotes,
		History:        history,
	})
}

// MobileOrderUpdate handles POST /api/delivery/orders/:id/update. Dispatches
// on the action field to the matching courier-initiated command.
func (s *Server) MobileOrderUpdate(ctx echo.Context) error {
	var req struct {
		Token     string   `json:"token"`
		Action    string   `json:"action"`
		Comment   string   `json:"comment"`
		Photo     string   `json:"photo"`
		Signature string   `json:"signature"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	caller, err := s.authenticate(ctx, req.Token)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()

	switch req.Action {
	case actionStartDelivery:
		cmd, cmdErr := commands.NewStartTransitCommand(orderID, caller.ID(), caller.Name())
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		err = s.handlers.StartTransit.Handle(reqCtx, cmd)

	case actionCompleteDelivery:
		cmd, cmdErr := commands.NewCompleteDeliveryCommand(orderID, caller.ID(), caller.Name())
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		if req.Photo != "" {
			cmd.SetPhoto(req.Photo)
		}
		if req.Signature != "" {
			cmd.SetSignature(req.Signature)
		}
		if req.Comment != "" {
			cmd.SetComment(req.Comment)
		}
		err = s.handlers.Complete.Handle(reqCtx, cmd)

	case actionAddComment:
		cmd, cmdErr := commands.NewAddCommentCommand(orderID, caller.ID(), caller.Name(), req.Comment)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		err = s.handlers.AddComment.Handle(reqCtx, cmd)

	case actionUpdateLocation:
		if req.Latitude == nil || req.Longitude == nil {
			return respondError(ctx, errs.NewValueIsRequiredError("latitude"))
		}
		cmd, cmdErr := commands.NewUpdateLocationCommand(
			orderID, caller.ID(), caller.Name(), *req.Latitude, *req.Longitude)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		err = s.handlers.UpdateLocation.Handle(reqCtx, cmd)

	default:
		return respondError(ctx, errs.NewValueIsInvalidError("action"))
	}

	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "order updated"})
}

// authenticate resolves a session token to the calling courier.
func (s *Server) authenticate(ctx echo.Context, token string) (*courier.Courier, error) {
	cmd, err := commands.NewValidateTokenCommand(token)
	if err != nil {
		return nil, err
	}

	return s.handlers.ValidateToken.Handle(ctx.Request().Context(), cmd)
}
