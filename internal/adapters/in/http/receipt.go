package http

import (
	"html/template"
	"net/http"

	"posdelivery/internal/core/application/usecases/queries"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// receiptTemplate renders the delivery slip the cashier prints and tapes to
// the bag. Kept deliberately plain so thermal printers cope with it.
var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Delivery {{.Number}}</title>
<style>
body { font-family: monospace; max-width: 360px; margin: 0 auto; }
h1 { font-size: 1.2em; text-align: center; }
table { width: 100%; border-collapse: collapse; }
td { padding: 2px 0; vertical-align: top; }
td:first-child { font-weight: bold; width: 40%; }
hr { border: none; border-top: 1px dashed #000; }
.notes { white-space: pre-wrap; }
</style>
</head>
<body>
<h1>DELIVERY {{.Number}}</h1>
<hr>
<table>
<tr><td>Customer</td><td>{{.CustomerName}}</td></tr>
<tr><td>Address</td><td>{{.DeliveryAddress}}</td></tr>
{{if .DeliveryPhone}}<tr><td>Phone</td><td>{{.DeliveryPhone}}</td></tr>{{end}}
{{if .CourierName}}<tr><td>Courier</td><td>{{.CourierName}}</td></tr>{{end}}
{{if .ZoneName}}<tr><td>Zone</td><td>{{.ZoneName}}</td></tr>{{end}}
<tr><td>Status</td><td>{{.Status}}</td></tr>
<tr><td>Priority</td><td>{{.Priority}}</td></tr>
<tr><td>Payment</td><td>{{.PaymentMethod}}</td></tr>
<tr><td>Cost</td><td>{{.Cost}}</td></tr>
<tr><td>Created</td><td>{{.CreatedAt}}</td></tr>
{{if .EstimatedDeliveryAt}}<tr><td>ETA</td><td>{{.EstimatedDeliveryAt}}</td></tr>{{end}}
</table>
{{if .CustomerNotes}}<hr><div class="notes">{{.CustomerNotes}}</div>{{end}}
{{if .PosOrderRef}}<hr><div>POS ref: {{.PosOrderRef}}</div>{{end}}
<hr>
</body>
</html>
`))

type receiptData struct {
	Number              string
	CustomerName        string
	DeliveryAddress     string
	DeliveryPhone       string
	CourierName         string
	ZoneName            string
	Status              string
	Priority            string
	PaymentMethod       string
	Cost                string
	CreatedAt           string
	EstimatedDeliveryAt string
	CustomerNotes       string
	PosOrderRef         string
}

// GetReceiptHTML handles GET /pos/delivery/receipt/html/:id.
func (s *Server) GetReceiptHTML(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.OrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	data := receiptData{
		Number:          detail.Number,
		CustomerName:    detail.CustomerName,
		DeliveryAddress: detail.DeliveryAddress,
		DeliveryPhone:   detail.DeliveryPhone,
		CourierName:     detail.CourierName,
		ZoneName:        detail.ZoneName,
		Status:          detail.Status,
		Priority:        detail.Priority,
		PaymentMethod:   detail.PaymentMethod,
		Cost:            detail.Cost.StringFixed(2),
		CreatedAt:       detail.CreatedAt.Format("2006-01-02 15:04"),
		CustomerNotes:   detail.CustomerNotes,
		PosOrderRef:     detail.PosOrderRef,
	}
	if detail.EstimatedDeliveryAt != nil {
		data.EstimatedDeliveryAt = detail.EstimatedDeliveryAt.Format("2006-01-02 15:04")
	}

	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	ctx.Response().WriteHeader(http.StatusOK)
	return receiptTemplate.Execute(ctx.Response(), data)
}
