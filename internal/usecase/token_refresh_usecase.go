package usecase

import (
	"context"
	"log"
	"time"

	"qpay_billing/internal/domain/entities"
	"qpay_billing/internal/usecase/interfaces"
)

// ITokenRefreshUseCase repopulates the cached gateway credential. It
// is invoked on a schedule; in-flight creation and reconciliation
// calls never wait on it, they fall back to on-demand auth.

type ITokenRefreshUseCase interface {
	Refresh(ctx context.Context) error
}

type TokenRefreshUseCase struct {
	tokenRepo interfaces.IGatewayTokenRepository
	gateway   interfaces.IPaymentGateway
}

var _ ITokenRefreshUseCase = (*TokenRefreshUseCase)(nil)

func NewTokenRefreshUseCase(tokenRepo interfaces.IGatewayTokenRepository, gateway interfaces.IPaymentGateway) *TokenRefreshUseCase {
	return &TokenRefreshUseCase{tokenRepo: tokenRepo, gateway: gateway}
}

func (u *TokenRefreshUseCase) Refresh(ctx context.Context) error {
	log.Printf("[token][usecase] refresh start origin=%s", entities.GatewayOriginQPay)

	token, err := u.gateway.Authenticate(ctx)
	if err != nil {
		log.Printf("[token][usecase] refresh auth failed err=%v", err)
		return err
	}

	err = u.tokenRepo.Put(ctx, entities.GatewayToken{
		Origin:      entities.GatewayOriginQPay,
		Token:       token,
		RefreshedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[token][usecase] refresh persist failed err=%v", err)
		return err
	}

	log.Printf("[token][usecase] refresh success origin=%s", entities.GatewayOriginQPay)
	return nil
}
