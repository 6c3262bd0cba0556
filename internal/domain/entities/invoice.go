package entities

import (
	"encoding/json"
	"time"
)

// InvoiceStatus represents the settlement lifecycle of an invoice.
//
// Transitions are one-way: awaiting -> paid. A paid invoice never
// reverts.

type InvoiceStatus string

const (
	InvoiceStatusAwaiting InvoiceStatus = "awaiting"
	InvoiceStatusPaid     InvoiceStatus = "paid"
)

// PaymentMethod is the set of methods a caller may request. Only QPay
// is wired to a provider; the others are accepted on input for
// forward compatibility with the order flow.

type PaymentMethod string

const (
	PaymentMethodQPay  PaymentMethod = "qpay"
	PaymentMethodMBank PaymentMethod = "mbank"
	PaymentMethodCash  PaymentMethod = "cash"
)

// Invoice is the canonical invoice for an order.
//
// Storage model (DynamoDB):
//   - PK: order_id (one invoice per order is enforced by a
//     conditional put on the partition key)
//
// Concurrency:
//   - Version starts at 1 and increments by exactly 1 on every
//     mutation. Settlement is a compare-and-swap conditioned on the
//     version the caller read, and every event publication carries
//     the version it was computed from.
//
// QPay linkage:
//   - ThirdPartyInvoiceID is the gateway's id for the remote invoice.
//   - InvoiceToken is the bearer token the invoice was created with;
//     reconciliation tries it first and re-authenticates when stale.
//   - ThirdPartyData keeps the raw gateway payload for audit.

type Invoice struct {
	ID                  string        `json:"id"`
	OrderID             string        `json:"order_id"`
	SupplierID          string        `json:"supplier_id"`
	MerchantID          string        `json:"merchant_id"`
	Status              InvoiceStatus `json:"status"`
	InvoiceAmount       int64         `json:"invoice_amount"`
	PaidAmount          *int64        `json:"paid_amount,omitempty"`
	PaymentMethod       PaymentMethod `json:"payment_method"`
	ThirdPartyInvoiceID string        `json:"third_party_invoice_id"`
	InvoiceToken        string        `json:"invoice_token"`
	ThirdPartyData      json.RawMessage `json:"third_party_data,omitempty"`
	Version             int64         `json:"version"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
