package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard error body for every failed request.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// ValidationErrorResponse extends the standard error body with per-field detail.
type ValidationErrorResponse struct {
	ErrorResponse
	FieldErrors map[string]string `json:"fieldErrors"`
}

func newErrorResponse(ctx echo.Context, status int, errorName, message string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     errorName,
		Message:   message,
		Path:      ctx.Request().URL.Path,
	}
}

// validationFailed writes the 400 body for requests rejected before any
// command or query ran.
func validationFailed(ctx echo.Context, fieldErrors map[string]string) error {
	return ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
		ErrorResponse: newErrorResponse(ctx, http.StatusBadRequest,
			"Validation Failed", "Request validation failed"),
		FieldErrors: fieldErrors,
	})
}

// translateError maps domain and application errors onto HTTP status codes
// and the standard error body. Unexpected errors are logged and answered with
// a generic 500 so internals never leak to clients.
func translateError(ctx echo.Context, err error) error {
	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusBadRequest, newErrorResponse(ctx,
			http.StatusBadRequest, "Invalid Status Transition", transitionErr.Error()))
	}

	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		message := err.Error()
		if id, ok := notFoundErr.ID.(string); ok {
			message = "Order not found with number: " + id
		}
		return ctx.JSON(http.StatusNotFound, newErrorResponse(ctx,
			http.StatusNotFound, "Order Not Found", message))
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return ctx.JSON(http.StatusBadRequest, newErrorResponse(ctx,
			http.StatusBadRequest, "Validation Failed", err.Error()))
	}

	ctx.Logger().Errorf("unexpected error: %v", err)
	return ctx.JSON(http.StatusInternalServerError, newErrorResponse(ctx,
		http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred"))
}
