package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/api/handler"
	"github.com/havenbridge/homecare-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string               `json:"error"`
	Details []handler.FieldError `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as a 400 with per-field details.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "validation failed",
				Details: ve.Fields,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth guard).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A rejected upload carries its reason to the client.
	var fre *domain.FileRejectedError
	if errors.As(err, &fre) {
		return http.StatusBadRequest, fre.Reason
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return http.StatusNotFound, "appointment not found"
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, "application not found"
	case errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, "message not found"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "invalid status value"
	case errors.Is(err, domain.ErrReplyTooShort):
		return http.StatusBadRequest, "reply must be at least 10 characters"
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Unknown email and wrong password are indistinguishable on purpose.
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusNotFound, "admin not found"
	case errors.Is(err, domain.ErrAdminExists):
		return http.StatusConflict, "admin already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
