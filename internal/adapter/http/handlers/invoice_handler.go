package handlers

import (
	"errors"
	"log"
	"net/http"

	request "qpay_billing/internal/adapter/http/dto/request"
	response "qpay_billing/internal/adapter/http/dto/response"
	"qpay_billing/internal/usecase"
	"qpay_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// InvoiceHandler handles HTTP requests for invoice creation and
// settlement status.

type InvoiceHandler struct {
	creation       usecase.IInvoiceCreationUseCase
	reconciliation usecase.IReconciliationUseCase
}

func NewInvoiceHandler(creation usecase.IInvoiceCreationUseCase, reconciliation usecase.IReconciliationUseCase) *InvoiceHandler {
	return &InvoiceHandler{creation: creation, reconciliation: reconciliation}
}

// CreateInvoice drives the create-invoice saga from the request body.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[invoice][handler] invalid payload err=%v", err)
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	methods, err := payload.ResolvePaymentMethods()
	if err != nil {
		log.Printf("[invoice][handler] unknown payment method order_id=%s", payload.ResolveOrderID())
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	orderID := payload.ResolveOrderID()
	log.Printf("[invoice][handler] create start order_id=%s amount=%d", orderID, payload.Amount)

	created, err := h.creation.CreateInvoice(c.Request.Context(), orderID, payload.Amount, methods)
	if err != nil {
		log.Printf("[invoice][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[invoice][handler] create success order_id=%s invoice_id=%s", orderID, created.Invoice.ID)
	c.JSON(http.StatusCreated, response.FromInvoiceCreation(created))
}

// InvoiceStatus triggers a reconciliation pass for the order in the
// `invoice` query param. The gateway's settlement callback and the
// polling scheduler both land here.
func (h *InvoiceHandler) InvoiceStatus(c *gin.Context) {
	orderID := c.Query("invoice")
	log.Printf("[invoice][handler] status start order_id=%q", orderID)
	if orderID == "" {
		c.JSON(http.StatusBadRequest, response.InvoiceStatusResponse{Status: response.InvoiceStatusFailure})
		return
	}

	outcome, err := h.reconciliation.CheckAndSettle(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[invoice][handler] status failed order_id=%s err=%v", orderID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, response.InvoiceStatusResponse{Status: response.InvoiceStatusFailure})
		return
	}

	log.Printf("[invoice][handler] status success order_id=%s outcome=%s", orderID, outcome)
	c.JSON(http.StatusOK, response.FromSettlementOutcome(outcome))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidInvoiceAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayAuthFailed):
		return pkg.NewDomainErrorSimple("GATEWAY_AUTH_FAILED", "Failed to authenticate with payment gateway", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayCreateFailed):
		return pkg.NewDomainErrorSimple("GATEWAY_CREATE_FAILED", "Failed to create invoice with payment gateway", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayCheckFailed):
		return pkg.NewDomainErrorSimple("GATEWAY_CHECK_FAILED", "Failed to check payment with payment gateway", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
