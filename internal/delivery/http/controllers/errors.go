package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"fooddonation/internal/delivery/http/helpers"
	"fooddonation/internal/domain"
	"fooddonation/internal/metrics"
)

// errorResponder maps service errors onto HTTP responses.
type errorResponder struct {
	Logger *slog.Logger
	// ExposeErrors puts the error text in 500 bodies. Off in production.
	ExposeErrors bool
}

// writeError answers err for resource. Validation errors become 400 with the
// offending field, store outages 503, everything else 500.
func (e errorResponder) writeError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.RecordValidationFailure(resource, verr.Field)
		helpers.WriteJSONError(w, http.StatusBadRequest, verr.Message, verr.Field)
	case errors.Is(err, helpers.ErrBodyTooLarge), errors.Is(err, helpers.ErrMalformedJSON):
		metrics.RecordValidationFailure(resource, "")
		helpers.WriteDecodeError(w, err)
	case errors.Is(err, domain.ErrStoreNotConfigured):
		e.Logger.WarnContext(r.Context(), "store not configured", "path", r.URL.Path, "method", r.Method)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, "Database not configured", "")
	case errors.Is(err, domain.ErrStoreUnavailable):
		e.Logger.ErrorContext(r.Context(), "store unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, "Database unavailable", "")
	default:
		e.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		msg := "Internal Server Error"
		if e.ExposeErrors {
			msg = err.Error()
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, msg, "")
	}
}
