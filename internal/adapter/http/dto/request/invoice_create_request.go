package request

import (
	"errors"
	"strings"

	"qpay_billing/internal/domain/entities"
)

var (
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// InvoiceCreateRequest is the payload for the invoice-create route.
// paymentMethod is an array to match the order flow's contract; only
// qpay is wired to a provider.

type InvoiceCreateRequest struct {
	OrderID       string   `json:"orderId" binding:"required"`
	Amount        int64    `json:"amount" binding:"required"`
	PaymentMethod []string `json:"paymentMethod" binding:"required,min=1"`
}

func (r InvoiceCreateRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

func (r InvoiceCreateRequest) ResolvePaymentMethods() ([]entities.PaymentMethod, error) {
	methods := make([]entities.PaymentMethod, 0, len(r.PaymentMethod))
	for _, m := range r.PaymentMethod {
		switch v := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(m))); v {
		case entities.PaymentMethodQPay, entities.PaymentMethodMBank, entities.PaymentMethodCash:
			methods = append(methods, v)
		default:
			return nil, ErrUnknownPaymentMethod
		}
	}
	return methods, nil
}
