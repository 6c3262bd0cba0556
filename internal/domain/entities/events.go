package entities

// Event subjects published to the invoice event stream.

const (
	EventSubjectInvoiceCreated = "invoice:created"
	EventSubjectInvoicePaid    = "invoice:paid"
)

// InvoiceCreatedEvent is the snapshot published when the canonical
// invoice is persisted. Version is the invoice version the payload
// was computed from (always 1 for creation).

type InvoiceCreatedEvent struct {
	ID                  string        `json:"id"`
	OrderID             string        `json:"orderId"`
	Status              InvoiceStatus `json:"status"`
	InvoiceAmount       int64         `json:"invoiceAmount"`
	ThirdPartyInvoiceID string        `json:"thirdPartyInvoiceId"`
	PaymentMethod       PaymentMethod `json:"paymentMethod"`
	Version             int64         `json:"version"`
}

// InvoicePaidEvent is the snapshot published when settlement wins the
// compare-and-swap. Exactly one is ever produced per invoice.

type InvoicePaidEvent struct {
	ID                  string        `json:"id"`
	OrderID             string        `json:"orderId"`
	SupplierID          string        `json:"supplierId"`
	MerchantID          string        `json:"merchantId"`
	Status              InvoiceStatus `json:"status"`
	InvoiceAmount       int64         `json:"invoiceAmount"`
	PaidAmount          int64         `json:"paidAmount"`
	ThirdPartyInvoiceID string        `json:"thirdPartyInvoiceId"`
	PaymentMethod       PaymentMethod `json:"paymentMethod"`
	Version             int64         `json:"version"`
}
