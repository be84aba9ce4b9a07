package handlers

import (
	"net/http"

	"slotbook/middleware"
	"slotbook/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the per-user notification feed.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// ListNotifications handles GET /api/notifications.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	items, unread, err := h.Service.List(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "unreadCount": unread})
}

// MarkNotificationRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.Service.MarkRead(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}

// MarkAllNotificationsRead handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	updated, err := h.Service.MarkAllRead(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
