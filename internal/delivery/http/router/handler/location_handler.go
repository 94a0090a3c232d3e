package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LocationHandler holds dependencies for user location handlers
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordLocationRequest represents the request body for recording a location
type RecordLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
}

// Record handles PUT /me/location
func (h *LocationHandler) Record(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req RecordLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid location input")
	}

	sample, err := h.uc.Record(c.Request().Context(), userID, req.Latitude, req.Longitude, entity.LocationSource(req.Source))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sample, "Location recorded")
}

// List handles GET /me/locations
func (h *LocationHandler) List(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	samples, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, samples, "Locations retrieved")
}
