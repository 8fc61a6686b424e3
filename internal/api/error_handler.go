package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/airlinehq/airline-api/internal/api/metrics"
	"github.com/airlinehq/airline-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes by kind.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindAuth:
			metrics.AuthFailuresTotal.WithLabelValues("unauthenticated").Inc()
			return http.StatusUnauthorized, de.Message
		case domain.KindAuthz:
			metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
			return http.StatusForbidden, de.Message
		case domain.KindValidation:
			return http.StatusBadRequest, de.Message
		case domain.KindNotFound:
			return http.StatusNotFound, de.Message
		case domain.KindConflict:
			return http.StatusConflict, de.Message
		}
		// KindInternal falls through to the generic branch so the cause is
		// logged but never surfaced.
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
