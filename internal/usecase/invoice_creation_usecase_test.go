package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"qpay_billing/internal/domain/entities"
	"qpay_billing/internal/usecase/interfaces"
	mock_interfaces "qpay_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testCreationConfig = CreationConfig{
	InvoiceCode:         "TEST_INVOICE",
	InvoiceReceiverCode: "terminal",
	CallbackURL:         "http://localhost:8080/v1/payments/invoice-status?invoice=",
}

func TestInvoiceCreationUseCase_CreateInvoice_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewInvoiceCreationUseCase(nil, nil, nil, nil, nil, nil, testCreationConfig)
		_, err := uc.CreateInvoice(context.Background(), "  ", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		uc := NewInvoiceCreationUseCase(nil, nil, nil, nil, nil, nil, testCreationConfig)
		_, err := uc.CreateInvoice(context.Background(), "ord-1", 0, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrInvalidInvoiceAmount) {
			t.Fatalf("expected ErrInvalidInvoiceAmount, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc := NewInvoiceCreationUseCase(nil, nil, nil, nil, nil, nil, testCreationConfig)
		_, err := uc.CreateInvoice(context.Background(), "ord-1", -5, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrInvalidInvoiceAmount) {
			t.Fatalf("expected ErrInvalidInvoiceAmount, got %v", err)
		}
	})

	t.Run("no payment methods", func(t *testing.T) {
		uc := NewInvoiceCreationUseCase(nil, nil, nil, nil, nil, nil, testCreationConfig)
		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, nil)
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		uc := NewInvoiceCreationUseCase(nil, nil, nil, nil, nil, nil, testCreationConfig)
		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{"paypal"})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})
}

func TestInvoiceCreationUseCase_CreateInvoice_OrderChecks(t *testing.T) {
	t.Run("order lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		uc := NewInvoiceCreationUseCase(nil, nil, nil, nil, orders, nil, testCreationConfig)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("order svc down"))

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if err == nil || err.Error() != "order svc down" {
			t.Fatalf("expected order svc down, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		uc := NewInvoiceCreationUseCase(nil, nil, nil, nil, orders, nil, testCreationConfig)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("existing invoice conflicts before gateway is called", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceCreationUseCase(invoiceRepo, nil, nil, gateway, orders, nil, testCreationConfig)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
		invoiceRepo.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(entities.Invoice{ID: "inv-1", OrderID: "ord-1"}, nil)

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
	})
}

func TestInvoiceCreationUseCase_CreateInvoice_AuditRow(t *testing.T) {
	t.Run("audit row create error aborts the saga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIInvoiceRequestRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		uc := NewInvoiceCreationUseCase(invoiceRepo, requestRepo, nil, nil, orders, nil, testCreationConfig)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
		invoiceRepo.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(entities.Invoice{}, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InvoiceRequest{}, errors.New("dynamo down"))

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo down, got %v", err)
		}
	})

	t.Run("audit row carries the gateway request parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIInvoiceRequestRepository(ctrl)
		tokenRepo := mock_interfaces.NewMockIGatewayTokenRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceCreationUseCase(invoiceRepo, requestRepo, tokenRepo, gateway, orders, nil, testCreationConfig)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
		invoiceRepo.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(entities.Invoice{}, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InvoiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.InvoiceRequest) (entities.InvoiceRequest, error) {
				if r.ID == "" {
					t.Fatalf("audit row id must be set")
				}
				if r.OrderID != "ord-1" || r.SenderInvoiceNo != "ord-1" || r.InvoiceDescription != "ord-1" {
					t.Fatalf("unexpected audit row: %+v", r)
				}
				if r.InvoiceCode != "TEST_INVOICE" || r.InvoiceReceiverCode != "terminal" {
					t.Fatalf("config not applied: %+v", r)
				}
				if r.CallbackURL != testCreationConfig.CallbackURL+"ord-1" {
					t.Fatalf("callback url must end with the order id, got %s", r.CallbackURL)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("timestamps must be set")
				}
				return r, errors.New("stop here")
			},
		)

		_, _ = uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
	})
}

func TestInvoiceCreationUseCase_CreateInvoice_GatewayFailures(t *testing.T) {
	setup := func(ctrl *gomock.Controller) (*mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIInvoiceRequestRepository, *mock_interfaces.MockIGatewayTokenRepository, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIOrderService, *mock_interfaces.MockIEventPublisher, *InvoiceCreationUseCase) {
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIInvoiceRequestRepository(ctrl)
		tokenRepo := mock_interfaces.NewMockIGatewayTokenRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewInvoiceCreationUseCase(invoiceRepo, requestRepo, tokenRepo, gateway, orders, publisher, testCreationConfig)
		return invoiceRepo, requestRepo, tokenRepo, gateway, orders, publisher, uc
	}

	happyUntilGateway := func(invoiceRepo *mock_interfaces.MockIInvoiceRepository, requestRepo *mock_interfaces.MockIInvoiceRequestRepository, orders *mock_interfaces.MockIOrderService) {
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", SupplierID: "sup-1", MerchantID: "mer-1"}, nil)
		invoiceRepo.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(entities.Invoice{}, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.InvoiceRequest) (entities.InvoiceRequest, error) { return r, nil },
		)
	}

	t.Run("auth failure with empty cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, requestRepo, tokenRepo, gateway, orders, _, uc := setup(ctrl)

		happyUntilGateway(invoiceRepo, requestRepo, orders)
		tokenRepo.EXPECT().Get(gomock.Any(), entities.GatewayOriginQPay).Return(entities.GatewayToken{}, nil)
		gateway.EXPECT().Authenticate(gomock.Any()).Return("", errors.New("auth refused"))

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrGatewayAuthFailed) {
			t.Fatalf("expected ErrGatewayAuthFailed, got %v", err)
		}
	})

	t.Run("token cache read error falls back to auth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, requestRepo, tokenRepo, gateway, orders, _, uc := setup(ctrl)

		happyUntilGateway(invoiceRepo, requestRepo, orders)
		tokenRepo.EXPECT().Get(gomock.Any(), entities.GatewayOriginQPay).Return(entities.GatewayToken{}, errors.New("cache read"))
		gateway.EXPECT().Authenticate(gomock.Any()).Return("", errors.New("auth refused"))

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrGatewayAuthFailed) {
			t.Fatalf("expected ErrGatewayAuthFailed, got %v", err)
		}
	})

	t.Run("gateway create failure leaves no invoice and no event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, requestRepo, tokenRepo, gateway, orders, _, uc := setup(ctrl)

		happyUntilGateway(invoiceRepo, requestRepo, orders)
		tokenRepo.EXPECT().Get(gomock.Any(), entities.GatewayOriginQPay).Return(entities.GatewayToken{Origin: entities.GatewayOriginQPay, Token: "tok-1"}, nil)
		gateway.EXPECT().CreateInvoice(gomock.Any(), "tok-1", gomock.Any()).Return(interfaces.GatewayInvoiceResponse{}, &interfaces.GatewayError{Op: "invoice", StatusCode: http.StatusBadRequest, Body: "bad amount"})

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrGatewayCreateFailed) {
			t.Fatalf("expected ErrGatewayCreateFailed, got %v", err)
		}
	})

	t.Run("stale token triggers one re-auth retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, requestRepo, tokenRepo, gateway, orders, publisher, uc := setup(ctrl)

		happyUntilGateway(invoiceRepo, requestRepo, orders)
		tokenRepo.EXPECT().Get(gomock.Any(), entities.GatewayOriginQPay).Return(entities.GatewayToken{Origin: entities.GatewayOriginQPay, Token: "stale"}, nil)
		gateway.EXPECT().CreateInvoice(gomock.Any(), "stale", gomock.Any()).Return(interfaces.GatewayInvoiceResponse{}, &interfaces.GatewayError{Op: "invoice", StatusCode: http.StatusUnauthorized, Body: "token expired"})
		gateway.EXPECT().Authenticate(gomock.Any()).Return("fresh", nil)
		gateway.EXPECT().CreateInvoice(gomock.Any(), "fresh", gomock.Any()).Return(interfaces.GatewayInvoiceResponse{InvoiceID: "qpay-1", QRText: "qr"}, nil)
		invoiceRepo.EXPECT().CreateLinked(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, _ string) (entities.Invoice, error) {
				if inv.InvoiceToken != "fresh" {
					t.Fatalf("expected the fresh token on the invoice, got %s", inv.InvoiceToken)
				}
				return inv, nil
			},
		)
		publisher.EXPECT().Publish(gomock.Any(), entities.EventSubjectInvoiceCreated, gomock.Any(), int64(1), gomock.Any()).Return(nil)

		res, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QRText != "qr" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("re-auth failure maps to auth error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, requestRepo, tokenRepo, gateway, orders, _, uc := setup(ctrl)

		happyUntilGateway(invoiceRepo, requestRepo, orders)
		tokenRepo.EXPECT().Get(gomock.Any(), entities.GatewayOriginQPay).Return(entities.GatewayToken{Origin: entities.GatewayOriginQPay, Token: "stale"}, nil)
		gateway.EXPECT().CreateInvoice(gomock.Any(), "stale", gomock.Any()).Return(interfaces.GatewayInvoiceResponse{}, &interfaces.GatewayError{Op: "invoice", StatusCode: http.StatusUnauthorized, Body: "token expired"})
		gateway.EXPECT().Authenticate(gomock.Any()).Return("", errors.New("auth refused"))

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrGatewayAuthFailed) {
			t.Fatalf("expected ErrGatewayAuthFailed, got %v", err)
		}
	})
}

func TestInvoiceCreationUseCase_CreateInvoice_PersistAndPublish(t *testing.T) {
	setup := func(t *testing.T, ctrl *gomock.Controller) (*mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIEventPublisher, *InvoiceCreationUseCase) {
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIInvoiceRequestRepository(ctrl)
		tokenRepo := mock_interfaces.NewMockIGatewayTokenRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewInvoiceCreationUseCase(invoiceRepo, requestRepo, tokenRepo, gateway, orders, publisher, testCreationConfig)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", SupplierID: "sup-1", MerchantID: "mer-1"}, nil)
		invoiceRepo.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(entities.Invoice{}, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.InvoiceRequest) (entities.InvoiceRequest, error) { return r, nil },
		)
		tokenRepo.EXPECT().Get(gomock.Any(), entities.GatewayOriginQPay).Return(entities.GatewayToken{Origin: entities.GatewayOriginQPay, Token: "tok-1", RefreshedAt: time.Now()}, nil)
		return invoiceRepo, gateway, publisher, uc
	}

	t.Run("lost creation race maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, gateway, _, uc := setup(t, ctrl)

		gateway.EXPECT().CreateInvoice(gomock.Any(), "tok-1", gomock.Any()).Return(interfaces.GatewayInvoiceResponse{InvoiceID: "qpay-1"}, nil)
		invoiceRepo.EXPECT().CreateLinked(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Invoice{}, interfaces.ErrInvoiceOrderTaken)

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
	})

	t.Run("success persists version 1 and publishes the creation event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, gateway, publisher, uc := setup(t, ctrl)

		gateway.EXPECT().CreateInvoice(gomock.Any(), "tok-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req interfaces.GatewayInvoiceRequest) (interfaces.GatewayInvoiceResponse, error) {
				if req.InvoiceCode != "TEST_INVOICE" || req.SenderInvoiceNo != "ord-1" || req.Amount != 100 {
					t.Fatalf("unexpected gateway request: %+v", req)
				}
				return interfaces.GatewayInvoiceResponse{
					InvoiceID: "qpay-1",
					URLs:      json.RawMessage(`[{"name":"qPay wallet"}]`),
					QRText:    "qr-text",
					QRImage:   "qr-image",
					Raw:       json.RawMessage(`{"invoice_id":"qpay-1"}`),
				}, nil
			},
		)
		invoiceRepo.EXPECT().CreateLinked(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, requestID string) (entities.Invoice, error) {
				if inv.ID == "" || requestID == "" {
					t.Fatalf("ids must be set")
				}
				if inv.OrderID != "ord-1" || inv.SupplierID != "sup-1" || inv.MerchantID != "mer-1" {
					t.Fatalf("order fields not carried: %+v", inv)
				}
				if inv.Status != entities.InvoiceStatusAwaiting || inv.Version != 1 {
					t.Fatalf("expected awaiting v1, got status=%s version=%d", inv.Status, inv.Version)
				}
				if inv.ThirdPartyInvoiceID != "qpay-1" || inv.InvoiceToken != "tok-1" {
					t.Fatalf("gateway linkage missing: %+v", inv)
				}
				return inv, nil
			},
		)
		publisher.EXPECT().Publish(gomock.Any(), entities.EventSubjectInvoiceCreated, gomock.Any(), int64(1), gomock.AssignableToTypeOf(entities.InvoiceCreatedEvent{})).DoAndReturn(
			func(_ context.Context, _ string, aggregateID string, _ int64, payload any) error {
				event := payload.(entities.InvoiceCreatedEvent)
				if event.ID != aggregateID || event.OrderID != "ord-1" || event.Version != 1 {
					t.Fatalf("unexpected event: %+v", event)
				}
				return nil
			},
		)

		res, err := uc.CreateInvoice(context.Background(), " ord-1 ", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QRText != "qr-text" || res.QRImage != "qr-image" {
			t.Fatalf("presentation payload missing: %+v", res)
		}
		if string(res.URLs) != `[{"name":"qPay wallet"}]` {
			t.Fatalf("urls not carried: %s", res.URLs)
		}
	})

	t.Run("duplicate publish is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, gateway, publisher, uc := setup(t, ctrl)

		gateway.EXPECT().CreateInvoice(gomock.Any(), "tok-1", gomock.Any()).Return(interfaces.GatewayInvoiceResponse{InvoiceID: "qpay-1"}, nil)
		invoiceRepo.EXPECT().CreateLinked(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, _ string) (entities.Invoice, error) { return inv, nil },
		)
		publisher.EXPECT().Publish(gomock.Any(), entities.EventSubjectInvoiceCreated, gomock.Any(), int64(1), gomock.Any()).Return(interfaces.ErrEventVersionConflict)

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if err != nil {
			t.Fatalf("version conflict on publish must not fail creation, got %v", err)
		}
	})

	t.Run("other publish error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo, gateway, publisher, uc := setup(t, ctrl)

		gateway.EXPECT().CreateInvoice(gomock.Any(), "tok-1", gomock.Any()).Return(interfaces.GatewayInvoiceResponse{InvoiceID: "qpay-1"}, nil)
		invoiceRepo.EXPECT().CreateLinked(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, _ string) (entities.Invoice, error) { return inv, nil },
		)
		publisher.EXPECT().Publish(gomock.Any(), entities.EventSubjectInvoiceCreated, gomock.Any(), int64(1), gomock.Any()).Return(errors.New("outbox down"))

		_, err := uc.CreateInvoice(context.Background(), "ord-1", 100, []entities.PaymentMethod{entities.PaymentMethodQPay})
		if err == nil || err.Error() != "outbox down" {
			t.Fatalf("expected outbox down, got %v", err)
		}
	})
}
