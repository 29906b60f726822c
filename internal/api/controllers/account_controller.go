package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comicvault/internal/models/request_models"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

type AccountController struct {
	accountService     services.AccountServiceInterface
	entitlementService services.EntitlementServiceInterface
}

func NewAccountController(
	accountService services.AccountServiceInterface,
	entitlementService services.EntitlementServiceInterface,
) *AccountController {
	return &AccountController{
		accountService:     accountService,
		entitlementService: entitlementService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new collector account; the 3-day trial starts immediately
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a collector and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// Entitlements godoc
// @Summary Current entitlements
// @Description Effective tier, scan credits and storage usage for the caller
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/entitlements [get]
func (a *AccountController) Entitlements(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := a.entitlementService.Summary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Entitlements fetched successfully")
}
