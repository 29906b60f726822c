package controllers

import (
	"github.com/gin-gonic/gin"

	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ListNotifications godoc
// @Summary List notifications for the caller
// @Tags Notifications
// @Produce json
// @Param unread_only query bool false "Only unread notifications"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications [get]
func (ctl *NotificationController) ListNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread_only") == "true"
	notifications, err := ctl.notificationService.ListNotifications(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Notifications fetched successfully")
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (ctl *NotificationController) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notificationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := ctl.notificationService.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}
