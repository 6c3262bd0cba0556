package usecase

import (
	"context"
	"errors"
	"testing"

	"qpay_billing/internal/domain/entities"
	mock_interfaces "qpay_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTokenRefreshUseCase_Refresh(t *testing.T) {
	t.Run("auth failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokenRepo := mock_interfaces.NewMockIGatewayTokenRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTokenRefreshUseCase(tokenRepo, gateway)

		gateway.EXPECT().Authenticate(gomock.Any()).Return("", errors.New("auth refused"))

		if err := uc.Refresh(context.Background()); err == nil || err.Error() != "auth refused" {
			t.Fatalf("expected auth refused, got %v", err)
		}
	})

	t.Run("persist failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokenRepo := mock_interfaces.NewMockIGatewayTokenRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTokenRefreshUseCase(tokenRepo, gateway)

		gateway.EXPECT().Authenticate(gomock.Any()).Return("tok-1", nil)
		tokenRepo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		if err := uc.Refresh(context.Background()); err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo down, got %v", err)
		}
	})

	t.Run("success stores the fresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokenRepo := mock_interfaces.NewMockIGatewayTokenRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTokenRefreshUseCase(tokenRepo, gateway)

		gateway.EXPECT().Authenticate(gomock.Any()).Return("tok-1", nil)
		tokenRepo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.GatewayToken{})).DoAndReturn(
			func(_ context.Context, tok entities.GatewayToken) error {
				if tok.Origin != entities.GatewayOriginQPay || tok.Token != "tok-1" {
					t.Fatalf("unexpected token: %+v", tok)
				}
				if tok.RefreshedAt.IsZero() {
					t.Fatalf("refreshed_at must be set")
				}
				return nil
			},
		)

		if err := uc.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
