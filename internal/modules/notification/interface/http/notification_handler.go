package handler

import (
	notificationService "NeuroLink/internal/modules/notification/application/service"
	"NeuroLink/pkg/back"
	"NeuroLink/pkg/xerr"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc notificationService.NotificationService
}

func NewNotificationHandler(svc notificationService.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	role := c.Query("role")
	name := c.Query("name")
	if role == "" || name == "" {
		back.Error(c, xerr.BadRequest, "role and name are required")
		return
	}
	notifications, err := h.svc.ListForRecipient(role, name)
	back.Result(c, notifications, err)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("notification_id")
	err := h.svc.MarkRead(id)
	back.Result(c, gin.H{"notification_id": id}, err)
}
