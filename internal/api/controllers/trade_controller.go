package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

type TradeController struct {
	tradeService services.TradeServiceInterface
}

func NewTradeController(tradeService services.TradeServiceInterface) *TradeController {
	return &TradeController{
		tradeService: tradeService,
	}
}

// ProposeTrade godoc
// @Summary Propose a trade
// @Description Creates a pending trade offering comics from both parties
// @Tags Trades
// @Accept json
// @Produce json
// @Param request body request_models.ProposeTradeRequest true "Trade proposal"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trades [post]
func (ctl *TradeController) ProposeTrade(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.ProposeTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trade, err := ctl.tradeService.ProposeTrade(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trade, "Trade proposed successfully")
}

// RespondToTrade godoc
// @Summary Accept, reject or cancel a pending trade
// @Tags Trades
// @Accept json
// @Produce json
// @Param id path string true "Trade ID"
// @Param request body request_models.RespondTradeRequest true "Response payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trades/{id}/respond [post]
func (ctl *TradeController) RespondToTrade(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tradeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.RespondTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctl.tradeService.RespondToTrade(c.Request.Context(), userID, tradeID, db_models.TradeStatus(req.Status)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trade updated successfully")
}

// CompleteTrade godoc
// @Summary Settle an accepted trade
// @Description Swaps ownership of every comic in the trade atomically
// @Tags Trades
// @Produce json
// @Param id path string true "Trade ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trades/{id}/complete [post]
func (ctl *TradeController) CompleteTrade(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tradeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := ctl.tradeService.CompleteTrade(c.Request.Context(), userID, tradeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trade completed successfully")
}

// GetTrade godoc
// @Summary Get a trade with its items
// @Tags Trades
// @Produce json
// @Param id path string true "Trade ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trades/{id} [get]
func (ctl *TradeController) GetTrade(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tradeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	trade, err := ctl.tradeService.GetTrade(c.Request.Context(), userID, tradeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trade, "Trade fetched successfully")
}

// ListTrades godoc
// @Summary List trades involving the caller
// @Tags Trades
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trades [get]
func (ctl *TradeController) ListTrades(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trades, err := ctl.tradeService.ListTrades(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trades, "Trades fetched successfully")
}
