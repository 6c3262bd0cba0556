package interfaces

import (
	"context"

	"qpay_billing/internal/domain/entities"
)

// IOrderService is the external order-service collaborator. GetByID
// returns a zero Order (empty ID) when the order does not exist.

type IOrderService interface {
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
}
