package handlers

import (
	"log"
	"net/http"

	"qpay_billing/internal/usecase"
	"qpay_billing/pkg"

	"github.com/gin-gonic/gin"
)

// TokenHandler exposes the scheduler-internal token refresh
// endpoint. It exists for operational re-triggering; the normal path
// is the in-process scheduler.

type TokenHandler struct {
	refresher usecase.ITokenRefreshUseCase
}

func NewTokenHandler(refresher usecase.ITokenRefreshUseCase) *TokenHandler {
	return &TokenHandler{refresher: refresher}
}

func (h *TokenHandler) RefreshToken(c *gin.Context) {
	log.Printf("[token][handler] refresh start")

	if err := h.refresher.Refresh(c.Request.Context()); err != nil {
		log.Printf("[token][handler] refresh failed err=%v", err)
		appErr := pkg.NewDomainError("GATEWAY_AUTH_FAILED", "Failed to refresh gateway token", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[token][handler] refresh success")
	c.JSON(http.StatusOK, gin.H{"message": "Token updated successfully"})
}
