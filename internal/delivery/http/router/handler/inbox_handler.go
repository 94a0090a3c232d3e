package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InboxHandler holds dependencies for recipient-facing notification handlers
type InboxHandler struct {
	uc     usecase.InboxUsecase
	logger *slog.Logger
}

// NewInboxHandler is the constructor for InboxHandler
func NewInboxHandler(uc usecase.InboxUsecase, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /notifications
func (h *InboxHandler) List(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	limit, offset := paginationParams(c)
	unreadOnly := c.QueryParam("unread") == "true"

	notifications, err := h.uc.List(c.Request().Context(), userID, unreadOnly, limit, offset)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved")
}

// MarkRead handles POST /notifications/:id/read
func (h *InboxHandler) MarkRead(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}

// UnreadCount handles GET /notifications/unread-count
func (h *InboxHandler) UnreadCount(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved")
}
