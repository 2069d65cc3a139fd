package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

// NotificationHandler serves the caller's own notification inbox. The user
// id always comes from the validated claims, never from the request.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type notificationListResponse struct {
	Records []domain.Notification `json:"records"`
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

// List handles GET /v1/notifications.
//
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notificationListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	return h.list(c, false)
}

// ListUnread handles GET /v1/notifications/unread.
//
// @Summary      List the caller's unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notificationListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications/unread [get]
func (h *NotificationHandler) ListUnread(c echo.Context) error {
	return h.list(c, true)
}

func (h *NotificationHandler) list(c echo.Context, unreadOnly bool) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	notifications, err := h.service.ListForUser(c.Request().Context(), claims.ID, unreadOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationListResponse{Records: notifications})
}

// CountUnread handles GET /v1/notifications/unread/count.
//
// @Summary      Count the caller's unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications/unread/count [get]
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	count, err := h.service.CountUnread(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}

// MarkRead handles PUT /v1/notifications/:id/read.
//
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      204  "marked read"
// @Failure      404  {object}  map[string]string
// @Router       /v1/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.MarkRead(c.Request().Context(), c.Param("id"), claims.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead handles PUT /v1/notifications/read-all.
//
// @Summary      Mark all of the caller's notifications as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      204  "marked read"
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.MarkAllRead(c.Request().Context(), claims.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
