package http

import (
	"net/http"
	"time"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/application/usecases/queries"
	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		Phone        string `json:"phone"`
		VehicleType  string `json:"vehicle_type"`
		VehiclePlate string `json:"vehicle_plate"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}
	if req.VehicleType != "" || req.VehiclePlate != "" {
		cmd.SetVehicle(req.VehicleType, req.VehiclePlate)
	}

	if err = s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, map[string]string{"id": courierID.String()})
}

type courierRosterItem struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	VehicleType    string     `json:"vehicle_type,omitempty"`
	VehiclePlate   string     `json:"vehicle_plate,omitempty"`
	IsActive       bool       `json:"is_active"`
	LastConnection *time.Time `json:"last_connection,omitempty"`
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.handlers.AllCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	roster := make([]courierRosterItem, 0, len(couriers))
	for _, c := range couriers {
		roster = append(roster, courierRosterItem{
			ID:             c.ID.String(),
			Name:           c.Name,
			Email:          c.Email,
			Phone:          c.Phone,
			VehicleType:    c.VehicleType,
			VehiclePlate:   c.VehiclePlate,
			IsActive:       c.IsActive,
			LastConnection: c.LastConnection,
		})
	}

	return respond(ctx, http.StatusOK, roster)
}

// CreateOrder handles POST /api/v1/orders. The point of sale registers a
// delivery here when the cashier marks an order for delivery.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req struct {
		CustomerName    string   `json:"customer_name"`
		DeliveryAddress string   `json:"delivery_address"`
		DeliveryPhone   string   `json:"delivery_phone"`
		Priority        string   `json:"priority"`
		PaymentMethod   string   `json:"payment_method"`
		PosOrderRef     string   `json:"pos_order_ref"`
		CustomerNotes   string   `json:"customer_notes"`
		ZoneID          string   `json:"zone_id"`
		Cost            *string  `json:"cost"`
		Latitude        *float64 `json:"latitude"`
		Longitude       *float64 `json:"longitude"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	priority := delivery.PriorityNormal
	if req.Priority != "" {
		parsed, err := delivery.PriorityFromString(req.Priority)
		if err != nil {
			return respondError(ctx, err)
		}
		priority = parsed
	}

	paymentMethod := delivery.PaymentMethodCash
	if req.PaymentMethod != "" {
		paymentMethod = delivery.PaymentMethod(req.PaymentMethod)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryOrderCommand(
		orderID, req.CustomerName, req.DeliveryAddress, req.DeliveryPhone, priority, paymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd.SetPosOrderRef(req.PosOrderRef)
	cmd.SetCustomerNotes(req.CustomerNotes)

	if req.ZoneID != "" {
		zoneID, zoneErr := kernel.UUIDFromString(req.ZoneID)
		if zoneErr != nil {
			return respondError(ctx, zoneErr)
		}
		if zoneErr = cmd.SetZoneID(zoneID); zoneErr != nil {
			return respondError(ctx, zoneErr)
		}
	}

	if req.Cost != nil {
		cost, costErr := decimal.NewFromString(*req.Cost)
		if costErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("cost", costErr))
		}
		if costErr = cmd.SetCost(cost); costErr != nil {
			return respondError(ctx, costErr)
		}
	}

	if req.Latitude != nil && req.Longitude != nil {
		if locErr := cmd.SetLocation(*req.Latitude, *req.Longitude); locErr != nil {
			return respondError(ctx, locErr)
		}
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, map[string]string{"id": orderID.String()})
}

// UpdateOrder handles POST /api/v1/orders/:id. Staff edit the managed fields
// of an order: priority, zone, warehouse notes, and the promised delivery
// time. Absent fields stay untouched.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	var req struct {
		Priority            string     `json:"priority"`
		ZoneID              string     `json:"zone_id"`
		WarehouseNote       string     `json:"warehouse_note"`
		EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if req.Priority != "" {
		priority, priorityErr := delivery.PriorityFromString(req.Priority)
		if priorityErr != nil {
			return respondError(ctx, priorityErr)
		}
		if priorityErr = cmd.SetPriority(priority); priorityErr != nil {
			return respondError(ctx, priorityErr)
		}
	}

	if req.ZoneID != "" {
		zoneID, zoneErr := kernel.UUIDFromString(req.ZoneID)
		if zoneErr != nil {
			return respondError(ctx, zoneErr)
		}
		if zoneErr = cmd.SetZoneID(zoneID); zoneErr != nil {
			return respondError(ctx, zoneErr)
		}
	}

	cmd.SetWarehouseNote(req.WarehouseNote)

	if req.EstimatedDeliveryAt != nil {
		if etaErr := cmd.SetEstimatedDeliveryAt(*req.EstimatedDeliveryAt); etaErr != nil {
			return respondError(ctx, etaErr)
		}
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "order updated"})
}

// RateOrder handles POST /api/v1/orders/:id/rate. Staff record the
// customer's score when the store follows up on a completed delivery.
func (s *Server) RateOrder(ctx echo.Context) error {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRateDeliveryCommand(orderID, req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.Rate.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "rating recorded"})
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var req struct {
		CourierID string `json:"courier_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AssignCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "order assigned"})
}

// ResetOrder handles POST /api/v1/orders/:id/reset. Puts a stuck order back
// on the pending queue.
func (s *Server) ResetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewResetDeliveryCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.Reset.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "order reset"})
}

// FailOrder handles POST /api/v1/orders/:id/fail.
func (s *Server) FailOrder(ctx echo.Context) error {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewFailDeliveryCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.Fail.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "order failed"})
}

type activeOrderItem struct {
	ID                  string          `json:"id"`
	Number              string          `json:"number"`
	CustomerName        string          `json:"customer_name"`
	DeliveryAddress     string          `json:"delivery_address"`
	CourierName         string          `json:"courier_name,omitempty"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	Cost                decimal.Decimal `json:"cost"`
	CreatedAt           time.Time       `json:"created_at"`
	EstimatedDeliveryAt *time.Time      `json:"estimated_delivery_at,omitempty"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.handlers.ActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]activeOrderItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, activeOrderItem{
			ID:                  o.ID.String(),
			Number:              o.Number,
			CustomerName:        o.CustomerName,
			DeliveryAddress:     o.DeliveryAddress,
			CourierName:         o.CourierName,
			Status:              o.Status,
			Priority:            o.Priority,
			Cost:                o.Cost,
			CreatedAt:           o.CreatedAt,
			EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		})
	}

	return respond(ctx, http.StatusOK, items)
}

type settlementLine struct {
	CourierID     string          `json:"courier_id"`
	CourierName   string          `json:"courier_name"`
	PaymentMethod string          `json:"payment_method"`
	OrderCount    int             `json:"order_count"`
	Total         decimal.Decimal `json:"total"`
}

// GetSettlement handles GET /api/v1/settlement?date=YYYY-MM-DD&courier_id=.
// Without a date it reports today.
func (s *Server) GetSettlement(ctx echo.Context) error {
	day := time.Now()
	if date := ctx.QueryParam("date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("date", err))
		}
		day = parsed
	}

	query, err := queries.NewSettlementReportQuery(day)
	if err != nil {
		return respondError(ctx, err)
	}

	if courierParam := ctx.QueryParam("courier_id"); courierParam != "" {
		courierID, idErr := kernel.UUIDFromString(courierParam)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		if idErr = query.SetCourierID(courierID); idErr != nil {
			return respondError(ctx, idErr)
		}
	}

	lines, err := s.handlers.Settlement.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	report := make([]settlementLine, 0, len(lines))
	for _, line := range lines {
		report = append(report, settlementLine{
			CourierID:     line.CourierID.String(),
			CourierName:   line.CourierName,
			PaymentMethod: line.PaymentMethod,
			OrderCount:    line.OrderCount,
			Total:         line.Total,
		})
	}

	return respond(ctx, http.StatusOK, report)
}
