package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReviewHandler holds dependencies for the admin approval workflow handlers
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPending handles GET /admin/dispatches/pending
func (h *ReviewHandler) ListPending(c echo.Context) error {
	limit, offset := paginationParams(c)

	dispatches, err := h.uc.ListPending(c.Request().Context(), limit, offset)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dispatches, "Pending dispatches retrieved")
}

// Approve handles POST /admin/dispatches/:id/approve
func (h *ReviewHandler) Approve(c echo.Context) error {
	dispatchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid dispatch ID")
	}

	result, err := h.uc.Approve(c.Request().Context(), dispatchID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Dispatch approved and sent")
}

// RejectRequest represents the request body for rejecting a dispatch
type RejectRequest struct {
	Reason string `json:"reason"`
}

// Reject handles POST /admin/dispatches/:id/reject
func (h *ReviewHandler) Reject(c echo.Context) error {
	dispatchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid dispatch ID")
	}

	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid rejection input")
	}

	dispatch, err := h.uc.Reject(c.Request().Context(), dispatchID, req.Reason)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dispatch, "Dispatch rejected")
}
