package routes

import (
	"qpay_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, tokenHandler *handlers.TokenHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/invoice-create", invoiceHandler.CreateInvoice)
		payments.GET("/invoice-status", invoiceHandler.InvoiceStatus)

		// Scheduler-internal; kept off the public prefix by ingress.
		payments.GET("/token-refresh", tokenHandler.RefreshToken)
	}
}
