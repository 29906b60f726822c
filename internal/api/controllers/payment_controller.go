package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comicvault/internal/models/request_models"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// ListPlans godoc
// @Summary List purchasable plans
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/plans [get]
func (ctl *PaymentController) ListPlans(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	plans, err := ctl.paymentService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// CreateCheckout godoc
// @Summary Create a checkout link for a plan
// @Description Creates a pending transaction and returns the provider checkout URL
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (ctl *PaymentController) CreateCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkout, err := ctl.paymentService.CreateCheckoutForPlan(c.Request.Context(), userID, req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout link created successfully")
}

// HandleWebhook godoc
// @Summary Payment provider webhook
// @Description Verifies the webhook signature and applies the purchased plan
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/webhook [post]
func (ctl *PaymentController) HandleWebhook(c *gin.Context) {
	ctl.paymentService.HandleWebhook(c)
}
