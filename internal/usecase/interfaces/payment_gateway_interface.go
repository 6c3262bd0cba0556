package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// GatewayInvoiceRequest is the provider-facing invoice creation
// payload (QPay wire format).

type GatewayInvoiceRequest struct {
	InvoiceCode         string `json:"invoice_code"`
	SenderInvoiceNo     string `json:"sender_invoice_no"`
	InvoiceReceiverCode string `json:"invoice_receiver_code"`
	InvoiceDescription  string `json:"invoice_description"`
	Amount              int64  `json:"amount"`
	CallbackURL         string `json:"callback_url"`
}

// GatewayInvoiceResponse is the provider's answer to an invoice
// creation. Raw keeps the full body for audit; the named fields are
// the presentation payload returned to the caller.

type GatewayInvoiceResponse struct {
	InvoiceID string          `json:"invoice_id"`
	URLs      json.RawMessage `json:"urls"`
	QRText    string          `json:"qr_text"`
	QRImage   string          `json:"qr_image"`
	Raw       json.RawMessage `json:"-"`
}

// GatewayPaymentStatus is the first settlement row of a payment
// check, plus the aggregate paid amount.

type GatewayPaymentStatus struct {
	PaymentID       string          `json:"payment_id"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentCurrency string          `json:"payment_currency"`
	PaymentWallet   string          `json:"payment_wallet"`
	PaymentType     string          `json:"payment_type"`
	Transactions    json.RawMessage `json:"p2p_transactions"`
	PaidAmount      int64           `json:"paid_amount"`
}

// GatewayPaymentStatusPaid is the final status the provider reports
// for a settled invoice.
const GatewayPaymentStatusPaid = "PAID"

// IPaymentGateway abstracts the external payment provider (QPay).
//
// All operations are single-attempt: retry and re-authentication
// policy belongs to the caller. A cached token may be supplied to
// CreateInvoice/CheckPayment; on a 401-class GatewayError the caller
// must Authenticate and try again.

type IPaymentGateway interface {
	Authenticate(ctx context.Context) (token string, err error)
	CreateInvoice(ctx context.Context, token string, req GatewayInvoiceRequest) (GatewayInvoiceResponse, error)
	CheckPayment(ctx context.Context, token string, thirdPartyInvoiceID string) (GatewayPaymentStatus, error)
}

// GatewayError is the typed failure surfaced for non-2xx responses,
// malformed payloads and transport errors. StatusCode is 0 when the
// provider was never reached.

type GatewayError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("qpay %s failed: status=%d body=%s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("qpay %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// IsGatewayUnauthorized reports whether err is a 401-class gateway
// failure, i.e. the supplied token was rejected.
func IsGatewayUnauthorized(err error) bool {
	var ge *GatewayError
	if !errors.As(err, &ge) {
		return false
	}
	return ge.StatusCode == http.StatusUnauthorized || ge.StatusCode == http.StatusForbidden
}

// IsGatewayTransient reports whether err looks retriable from the
// caller's side (transport failure or 5xx).
func IsGatewayTransient(err error) bool {
	var ge *GatewayError
	if !errors.As(err, &ge) {
		return false
	}
	return ge.StatusCode == 0 || ge.StatusCode >= http.StatusInternalServerError
}
