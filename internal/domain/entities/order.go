package entities

// Order is the read-only snapshot of an order as reported by the
// order service. The payment service never mutates orders; it only
// needs the parties to stamp onto the invoice.

type Order struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplier_id"`
	MerchantID string `json:"merchant_id"`
}
