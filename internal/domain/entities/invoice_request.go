package entities

import "time"

// InvoiceRequest is the audit row written at the start of every
// creation attempt, before the gateway is called.
//
// It doubles as the idempotency trail: many rows may exist for one
// order (retries), but at most one carries a non-empty
// ThirdPartyInvoiceID, and that one links to the canonical Invoice.
// Rows are never deleted; a failed attempt keeps its row with an
// empty correlation id.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id

type InvoiceRequest struct {
	ID                  string        `json:"id"`
	OrderID             string        `json:"order_id"`
	PaymentMethod       PaymentMethod `json:"payment_method"`
	InvoiceAmount       int64         `json:"invoice_amount"`
	InvoiceCode         string        `json:"invoice_code"`
	SenderInvoiceNo     string        `json:"sender_invoice_no"`
	InvoiceReceiverCode string        `json:"invoice_receiver_code"`
	InvoiceDescription  string        `json:"invoice_description"`
	CallbackURL         string        `json:"callback_url"`
	InvoiceID           string        `json:"invoice_id,omitempty"`
	ThirdPartyInvoiceID string        `json:"third_party_invoice_id,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
