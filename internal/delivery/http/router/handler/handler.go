// Package handler contains the HTTP request handlers.
package handler

import (
	"net/http"
	"slices"

	"beacon/internal/delivery/http/response"
	domainerrors "beacon/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// userIDFromContext extracts the authenticated user ID set by the auth middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	return userID, nil
}

// isAdmin reports whether the authenticated user carries the admin role.
func isAdmin(c echo.Context) bool {
	roles, ok := c.Get("roles").([]string)

	return ok && slices.Contains(roles, "admin")
}

// handleAppError renders domain errors through the response envelope and
// passes everything else to the central error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.ErrorMessage(), appErr.Details())
	}

	return errors.WithStack(err)
}
