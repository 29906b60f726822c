package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP statuses:
// declined preconditions become 409, missing entities 404, ownership and
// credential problems 403/401, everything else 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrScanCreditsExhausted),
		errors.Is(err, ErrStorageLimitReached),
		errors.Is(err, ErrNothingToRefund),
		errors.Is(err, ErrTradeNotPending),
		errors.Is(err, ErrTradeNotAccepted),
		errors.Is(err, ErrComicAlreadyListed),
		errors.Is(err, ErrGradingNotPending),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrComicNotFound),
		errors.Is(err, ErrListingNotFound),
		errors.Is(err, ErrTradeNotFound),
		errors.Is(err, ErrGradingRequestNotFound),
		errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotOwner), errors.Is(err, ErrNotTradeParty):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrGradingUpstream):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
