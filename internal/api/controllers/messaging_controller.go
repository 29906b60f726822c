package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comicvault/internal/models/request_models"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

type MessagingController struct {
	messagingService services.MessagingServiceInterface
}

func NewMessagingController(messagingService services.MessagingServiceInterface) *MessagingController {
	return &MessagingController{
		messagingService: messagingService,
	}
}

// SendMessage godoc
// @Summary Send a direct message to another collector
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages [post]
func (ctl *MessagingController) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	message, err := ctl.messagingService.SendMessage(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, message, "Message sent successfully")
}

// GetConversation godoc
// @Summary Get the conversation with another collector
// @Description Returns messages in both directions and marks received ones read
// @Tags Messages
// @Produce json
// @Param id path string true "Other account ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages/conversations/{id} [get]
func (ctl *MessagingController) GetConversation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	otherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	messages, err := ctl.messagingService.GetConversation(c.Request.Context(), userID, otherID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Conversation fetched successfully")
}

// UnreadCount godoc
// @Summary Count unread messages for the caller
// @Tags Messages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages/unread [get]
func (ctl *MessagingController) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := ctl.messagingService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"unread": count}, "Unread count fetched successfully")
}
