package interfaces

import (
	"context"

	"qpay_billing/internal/domain/entities"
)

// IInvoiceRequestRepository abstracts DynamoDB persistence for the
// InvoiceRequest audit ledger.
//
// Rows are append-only: one Create per attempt, at most one
// correlation-id update on gateway success, never a delete.

type IInvoiceRequestRepository interface {
	Create(ctx context.Context, r entities.InvoiceRequest) (entities.InvoiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.InvoiceRequest, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.InvoiceRequest, error)
}
