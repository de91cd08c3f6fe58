package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/icatalog"
	"github.com/mybasket/basket-svc/internal/dal/interfaces/iorderrepo"
	"github.com/mybasket/basket-svc/internal/service/models/order"
	"github.com/mybasket/basket-svc/internal/service/services/cartsvc"
	"github.com/mybasket/basket-svc/internal/service/services/ordersvc"
)

// errorResponse is the error shape every failed request renders.
type errorResponse struct {
	Error string `json:"error"`
}

// JSON writes v to w as JSON with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Error writes err as the error shape, with the status code of its kind.
func Error(w http.ResponseWriter, err error) {
	JSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

// BadRequest writes err as the error shape with status 400, regardless
// of its kind. Used for malformed request bodies.
func BadRequest(w http.ResponseWriter, err error) {
	JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// statusFor maps service error kinds to HTTP status codes. Validation
// failures are client errors, absent entities are 404s, an unreachable
// catalog is a retryable 503 and everything else, the rolled back
// commit included, is a 500.
func statusFor(err error) int {
	var integrityErr *ordersvc.DataIntegrityError

	switch {
	case errors.Is(err, cartsvc.ErrInvalidQuantity),
		errors.Is(err, ordersvc.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition),
		errors.As(err, &integrityErr):
		return http.StatusBadRequest
	case errors.Is(err, cartsvc.ErrItemNotFound),
		errors.Is(err, icatalog.ErrProductNotFound),
		errors.Is(err, iorderrepo.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, icatalog.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
