package handler

import (
	"log/slog"
	"net/http"

	"maple/internal/delivery/http/response"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for inbox handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// BroadcastRequest represents an administrative announcement.
type BroadcastRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// ListNotifications handles paging the user's inbox, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	limit, offset := parsePagination(c)

	notifications, err := h.uc.ListNotifications(c.Request().Context(), &usecase.ListNotificationsInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// UnreadCount handles counting the user's unread notifications.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// MarkRead handles marking one notification read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked read"}, "Notification marked read")
}

// MarkAllRead handles marking every unread notification read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	flipped, err := h.uc.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": flipped}, "Notifications marked read")
}

// Broadcast handles pushing an announcement to every customer (staff only).
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	adminID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Broadcast(c.Request().Context(), &usecase.BroadcastInput{
		Title:   req.Title,
		Body:    req.Body,
		AdminID: adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Broadcast sent successfully")
}
