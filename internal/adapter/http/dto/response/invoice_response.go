package response

import (
	"encoding/json"

	"qpay_billing/internal/usecase"
)

// InvoiceCreateResponse is the presentation payload handed back to
// the caller: redirect URLs and QR codes from the gateway, keyed the
// way the order flow expects them.

type InvoiceCreateResponse struct {
	OrderID string          `json:"orderId"`
	Data    json.RawMessage `json:"data,omitempty"`
	QR      string          `json:"qr,omitempty"`
	QRImage string          `json:"qrImage,omitempty"`
}

func FromInvoiceCreation(c usecase.InvoiceCreation) InvoiceCreateResponse {
	return InvoiceCreateResponse{
		OrderID: c.Invoice.OrderID,
		Data:    c.URLs,
		QR:      c.QRText,
		QRImage: c.QRImage,
	}
}

// Invoice status vocabulary returned by the invoice-status route.

const (
	InvoiceStatusSuccess = "SUCCESS"
	InvoiceStatusPending = "PENDING"
	InvoiceStatusFailure = "FAILURE"
)

type InvoiceStatusResponse struct {
	Status string `json:"status"`
}

func FromSettlementOutcome(outcome usecase.SettlementOutcome) InvoiceStatusResponse {
	switch outcome {
	case usecase.SettlementOutcomeSettled, usecase.SettlementOutcomeAlreadySettled:
		return InvoiceStatusResponse{Status: InvoiceStatusSuccess}
	case usecase.SettlementOutcomePending:
		return InvoiceStatusResponse{Status: InvoiceStatusPending}
	default:
		return InvoiceStatusResponse{Status: InvoiceStatusFailure}
	}
}
