// Package http exposes the delivery application over REST. Two surfaces
// share one echo instance: the courier mobile API under /api/delivery, which
// authenticates with a session token carried in the request body, and the
// back-office API under /api/v1 used by the point of sale.
package http

import (
	"net/http"

	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder    commands.CreateDeliveryOrderCommandHandler
	UpdateOrder    commands.UpdateDeliveryOrderCommandHandler
	AssignCourier  commands.AssignCourierCommandHandler
	StartTransit   commands.StartTransitCommandHandler
	Complete       commands.CompleteDeliveryCommandHandler
	Fail           commands.FailDeliveryCommandHandler
	Reset          commands.ResetDeliveryCommandHandler
	AddComment     commands.AddCommentCommandHandler
	Rate           commands.RateDeliveryCommandHandler
	UpdateLocation commands.UpdateLocationCommandHandler
	CreateCourier  commands.CreateCourierCommandHandler
	Login          commands.LoginCommandHandler
	Logout         commands.LogoutCommandHandler
	ValidateToken  commands.ValidateTokenCommandHandler

	CourierOrders queries.GetCourierOrdersQueryHandler
	OrderDetail   queries.GetOrderDetailQueryHandler
	AllCouriers   queries.GetAllCouriersQueryHandler
	ActiveOrders  queries.GetActiveOrdersQueryHandler
	Settlement    queries.SettlementReportQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers  Handlers
	serverURL string
}

// NewServer creates an HTTP server. The server URL is echoed back to mobile
// clients through the config endpoint.
func NewServer(handlers Handlers, serverURL string) *Server {
	return &Server{
		handlers:  handlers,
		serverURL: serverURL,
	}
}

// RegisterRoutes mounts every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	mobile := e.Group("/api/delivery")
	mobile.GET("/config", s.GetConfig)
	mobile.POST("/login", s.MobileLogin)
	mobile.POST("/logout", s.MobileLogout)
	mobile.POST("/orders", s.MobileOrders)
	mobile.POST("/orders/:id", s.MobileOrderDetail)
	mobile.POST("/orders/:id/update", s.MobileOrderUpdate)

	backoffice := e.Group("/api/v1")
	backoffice.POST("/couriers", s.CreateCourier)
	backoffice.GET("/couriers", s.GetCouriers)
	backoffice.POST("/orders", s.CreateOrder)
	backoffice.POST("/orders/:id", s.UpdateOrder)
	backoffice.POST("/orders/:id/assign", s.AssignOrder)
	backoffice.POST("/orders/:id/rate", s.RateOrder)
	backoffice.POST("/orders/:id/reset", s.ResetOrder)
	backoffice.POST("/orders/:id/fail", s.FailOrder)
	backoffice.GET("/orders/active", s.GetActiveOrders)
	backoffice.GET("/settlement", s.GetSettlement)

	e.GET("/pos/delivery/receipt/html/:id", s.GetReceiptHTML)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
