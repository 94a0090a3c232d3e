package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DispatchHandler holds dependencies for sender-facing dispatch handlers
type DispatchHandler struct {
	uc     usecase.DispatchUsecase
	logger *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(uc usecase.DispatchUsecase, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles POST /dispatches and POST /admin/dispatches. Callers with
// the admin role broadcast without plan or quota limits.
func (h *DispatchHandler) Submit(c echo.Context) error {
	senderID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req usecase.DispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid dispatch input")
	}

	result, err := h.uc.Submit(c.Request().Context(), senderID, isAdmin(c), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	status := http.StatusCreated
	message := "Dispatch sent"
	if result.RequiresApproval {
		status = http.StatusAccepted
		message = "Dispatch submitted for approval"
	}

	return response.Success(c, status, result, message)
}

// Update handles PUT /dispatches/:id and PUT /admin/dispatches/:id
func (h *DispatchHandler) Update(c echo.Context) error {
	senderID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	dispatchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid dispatch ID")
	}

	var req usecase.UpdateDispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid dispatch input")
	}

	dispatch, err := h.uc.UpdatePending(c.Request().Context(), senderID, isAdmin(c), dispatchID, &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dispatch, "Dispatch updated")
}

// Delete handles DELETE /dispatches/:id and DELETE /admin/dispatches/:id
func (h *DispatchHandler) Delete(c echo.Context) error {
	actorID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	dispatchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid dispatch ID")
	}

	if err := h.uc.Delete(c.Request().Context(), actorID, isAdmin(c), dispatchID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Dispatch deleted")
}

// History handles GET /dispatches/history
func (h *DispatchHandler) History(c echo.Context) error {
	senderID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	limit, offset := paginationParams(c)

	digests, err := h.uc.History(c.Request().Context(), senderID, limit, offset)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, digests, "Dispatch history retrieved")
}

// ShareQR handles GET /dispatches/:id/qrcode
func (h *DispatchHandler) ShareQR(c echo.Context) error {
	senderID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	dispatchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid dispatch ID")
	}

	size := 0
	if sizeStr := c.QueryParam("size"); sizeStr != "" {
		if parsed, err := strconv.Atoi(sizeStr); err == nil && parsed > 0 {
			size = parsed
		}
	}

	png, err := h.uc.ShareQR(c.Request().Context(), senderID, dispatchID, size)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// paginationParams parses limit/offset query parameters with safe defaults.
func paginationParams(c echo.Context) (limit, offset int) {
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
