package interfaces

import (
	"context"

	"qpay_billing/internal/domain/entities"
)

// IGatewayTokenRepository abstracts the cached gateway credential.
// One row per origin, overwritten on refresh. Get returns a zero
// token (empty Token) when no refresh has happened yet.

type IGatewayTokenRepository interface {
	Get(ctx context.Context, origin entities.GatewayOrigin) (entities.GatewayToken, error)
	Put(ctx context.Context, t entities.GatewayToken) error
}
