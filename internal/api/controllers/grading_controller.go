package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comicvault/internal/models/request_models"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

type GradingController struct {
	gradingService services.GradingServiceInterface
}

func NewGradingController(gradingService services.GradingServiceInterface) *GradingController {
	return &GradingController{
		gradingService: gradingService,
	}
}

// SubmitRequest godoc
// @Summary Submit cover photos for grading
// @Description Consumes one scan credit, then grades the cover with the vision model
// @Tags Grading
// @Accept json
// @Produce json
// @Param request body request_models.SubmitGradingRequest true "Grading payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /grading [post]
func (ctl *GradingController) SubmitRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SubmitGradingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := ctl.gradingService.SubmitRequest(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Grading completed successfully")
}

// ListRequests godoc
// @Summary List the caller's grading requests
// @Tags Grading
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /grading [get]
func (ctl *GradingController) ListRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requests, err := ctl.gradingService.ListRequests(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Grading requests fetched successfully")
}

// DeleteRequest godoc
// @Summary Delete a pending grading request
// @Tags Grading
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /grading/{id} [delete]
func (ctl *GradingController) DeleteRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := ctl.gradingService.DeleteRequest(c.Request.Context(), userID, requestID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Grading request deleted successfully")
}

// IdentifyComic godoc
// @Summary Identify a comic from a cover photo
// @Description Extracts title, issue number and publisher from a base64 cover image
// @Tags Grading
// @Accept json
// @Produce json
// @Param request body request_models.IdentifyComicRequest true "Cover image"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /grading/identify [post]
func (ctl *GradingController) IdentifyComic(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req request_models.IdentifyComicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identification, err := ctl.gradingService.IdentifyComic(c.Request.Context(), req.ImageBase64)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, identification, "Comic identified successfully")
}
