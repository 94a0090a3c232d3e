package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler holds dependencies for push device handlers
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// Register handles POST /me/devices
func (h *DeviceHandler) Register(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid device input")
	}

	device, err := h.uc.Register(c.Request().Context(), userID, req.FCMToken, req.DeviceID, req.Platform)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered")
}
