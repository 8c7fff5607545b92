package http

import (
	"errors"
	"net/http"
	"time"

	"posdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the wire format shared by every JSON endpoint. The HTTP status
// mirrors the success flag.
type envelope struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

// respond writes a success envelope with the given payload.
func respond(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{
		Success:   true,
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	})
}

// respondError converts an application error into its HTTP representation.
// Validation problems map to 400, authentication to 401, ownership to 403,
// missing objects to 404. Everything else is a 500 with the detail kept out
// of the response body.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
		authErr    *errs.AuthenticationError
		permErr    *errs.PermissionDeniedError
		notFound   *errs.ObjectNotFoundError
	)

	switch {
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.As(err, &permErr):
		status = http.StatusForbidden
		message = err.Error()
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		message = err.Error()
	}

	return ctx.JSON(status, envelope{
		Success:   false,
		Timestamp: time.Now().Format(time.RFC3339),
		Error:     message,
	})
}
