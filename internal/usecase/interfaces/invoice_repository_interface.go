package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"qpay_billing/internal/domain/entities"
)

// ErrVersionConflict is returned by Settle when the invoice version
// moved between read and write (a concurrent settlement won the
// compare-and-swap).
var ErrVersionConflict = errors.New("invoice version conflict")

// ErrInvoiceOrderTaken is returned by CreateLinked when an invoice
// already exists for the order.
var ErrInvoiceOrderTaken = errors.New("invoice already exists for order")

// IInvoiceRepository abstracts DynamoDB persistence for the canonical
// Invoice.
//
// The payment service must be able to:
//   - persist the canonical invoice and link its audit row in one
//     atomic unit (CreateLinked)
//   - read the invoice by order id (GetByOrderID)
//   - settle it with an optimistic compare-and-swap (Settle)

type IInvoiceRepository interface {
	// CreateLinked persists inv (version must be 1) and stamps the
	// invoice id + third-party invoice id onto the audit row
	// requestID within one transaction. Fails with
	// ErrInvoiceOrderTaken if an invoice already exists for the
	// order.
	CreateLinked(ctx context.Context, inv entities.Invoice, requestID string) (entities.Invoice, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Invoice, error)
	// Settle sets status=paid, paid amount and the settlement
	// payload, incrementing the version by 1, conditioned on the
	// stored version still being expectedVersion. A lost race yields
	// ErrVersionConflict and no write.
	Settle(ctx context.Context, orderID string, paidAmount int64, thirdPartyData json.RawMessage, expectedVersion int64) (entities.Invoice, error)
}
