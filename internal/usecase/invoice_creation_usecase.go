package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"qpay_billing/internal/domain/entities"
	"qpay_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidInvoiceAmount = errors.New("invalid invoice amount")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for order")
	ErrGatewayAuthFailed    = errors.New("gateway authentication failed")
	ErrGatewayCreateFailed  = errors.New("gateway invoice creation failed")
)

// CreationConfig carries the gateway request parameters injected from
// the environment. CallbackURL gets the order id appended, so the
// gateway's settlement callback lands on the invoice-status endpoint.

type CreationConfig struct {
	InvoiceCode         string
	InvoiceReceiverCode string
	CallbackURL         string
}

// InvoiceCreation is the result handed back to the caller: the
// persisted invoice plus the gateway's presentation payload
// (redirect URLs and QR codes).

type InvoiceCreation struct {
	Invoice entities.Invoice
	URLs    json.RawMessage
	QRText  string
	QRImage string
}

// IInvoiceCreationUseCase drives the create-invoice saga:
// audit write, gateway call, atomic persist+link, event publish.

type IInvoiceCreationUseCase interface {
	CreateInvoice(ctx context.Context, orderID string, amount int64, methods []entities.PaymentMethod) (InvoiceCreation, error)
}

type InvoiceCreationUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	requestRepo interfaces.IInvoiceRequestRepository
	tokenRepo   interfaces.IGatewayTokenRepository
	gateway     interfaces.IPaymentGateway
	orders      interfaces.IOrderService
	publisher   interfaces.IEventPublisher
	cfg         CreationConfig
}

var _ IInvoiceCreationUseCase = (*InvoiceCreationUseCase)(nil)

func NewInvoiceCreationUseCase(
	invoiceRepo interfaces.IInvoiceRepository,
	requestRepo interfaces.IInvoiceRequestRepository,
	tokenRepo interfaces.IGatewayTokenRepository,
	gateway interfaces.IPaymentGateway,
	orders interfaces.IOrderService,
	publisher interfaces.IEventPublisher,
	cfg CreationConfig,
) *InvoiceCreationUseCase {
	return &InvoiceCreationUseCase{
		invoiceRepo: invoiceRepo,
		requestRepo: requestRepo,
		tokenRepo:   tokenRepo,
		gateway:     gateway,
		orders:      orders,
		publisher:   publisher,
		cfg:         cfg,
	}
}

func (u *InvoiceCreationUseCase) CreateInvoice(ctx context.Context, orderID string, amount int64, methods []entities.PaymentMethod) (InvoiceCreation, error) {
	log.Printf("[invoice][usecase] create start order_id=%q amount=%d methods=%v", orderID, amount, methods)

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		log.Printf("[invoice][usecase] invalid order id (empty)")
		return InvoiceCreation{}, ErrInvalidOrderID
	}
	if amount <= 0 {
		log.Printf("[invoice][usecase] invalid amount order_id=%s amount=%d", orderID, amount)
		return InvoiceCreation{}, ErrInvalidInvoiceAmount
	}
	if err := validatePaymentMethods(methods); err != nil {
		log.Printf("[invoice][usecase] invalid payment methods order_id=%s methods=%v", orderID, methods)
		return InvoiceCreation{}, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[invoice][usecase] order lookup failed order_id=%s err=%v", orderID, err)
		return InvoiceCreation{}, err
	}
	if order.ID == "" {
		log.Printf("[invoice][usecase] order not found order_id=%s", orderID)
		return InvoiceCreation{}, ErrOrderNotFound
	}

	// Idempotency guard: an existing invoice is a conflict, checked
	// before the gateway is ever contacted.
	if existing, err := u.invoiceRepo.GetByOrderID(ctx, orderID); err != nil {
		log.Printf("[invoice][usecase] invoice lookup failed order_id=%s err=%v", orderID, err)
		return InvoiceCreation{}, err
	} else if existing.ID != "" {
		log.Printf("[invoice][usecase] invoice already exists order_id=%s invoice_id=%s", orderID, existing.ID)
		return InvoiceCreation{}, ErrInvoiceAlreadyExists
	}

	// The audit row is written outside any transaction: it must
	// survive every downstream failure as the record of the attempt.
	now := time.Now().UTC()
	auditRow := entities.InvoiceRequest{
		ID:                  uuid.NewString(),
		OrderID:             orderID,
		PaymentMethod:       entities.PaymentMethodQPay,
		InvoiceAmount:       amount,
		InvoiceCode:         u.cfg.InvoiceCode,
		SenderInvoiceNo:     orderID,
		InvoiceReceiverCode: u.cfg.InvoiceReceiverCode,
		InvoiceDescription:  orderID,
		CallbackURL:         u.cfg.CallbackURL + orderID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if _, err := u.requestRepo.Create(ctx, auditRow); err != nil {
		log.Printf("[invoice][usecase] audit row create failed order_id=%s err=%v", orderID, err)
		return InvoiceCreation{}, err
	}
	log.Printf("[invoice][usecase] audit row created order_id=%s request_id=%s", orderID, auditRow.ID)

	token, err := u.gatewayToken(ctx)
	if err != nil {
		log.Printf("[invoice][usecase] gateway auth failed order_id=%s err=%v", orderID, err)
		return InvoiceCreation{}, ErrGatewayAuthFailed
	}

	gwReq := interfaces.GatewayInvoiceRequest{
		InvoiceCode:         auditRow.InvoiceCode,
		SenderInvoiceNo:     auditRow.SenderInvoiceNo,
		InvoiceReceiverCode: auditRow.InvoiceReceiverCode,
		InvoiceDescription:  auditRow.InvoiceDescription,
		Amount:              amount,
		CallbackURL:         auditRow.CallbackURL,
	}

	gwResp, err := u.gateway.CreateInvoice(ctx, token, gwReq)
	if interfaces.IsGatewayUnauthorized(err) {
		// The cached token went stale; one fresh auth, one retry.
		log.Printf("[invoice][usecase] cached token rejected, re-authenticating order_id=%s", orderID)
		token, err = u.gateway.Authenticate(ctx)
		if err != nil {
			log.Printf("[invoice][usecase] re-authentication failed order_id=%s err=%v", orderID, err)
			return InvoiceCreation{}, ErrGatewayAuthFailed
		}
		gwResp, err = u.gateway.CreateInvoice(ctx, token, gwReq)
	}
	if err != nil {
		// The audit row stays behind, deliberately unmodified, as the
		// record of the failed attempt.
		log.Printf("[invoice][usecase] gateway create failed order_id=%s request_id=%s err=%v", orderID, auditRow.ID, err)
		return InvoiceCreation{}, ErrGatewayCreateFailed
	}
	log.Printf("[invoice][usecase] gateway create success order_id=%s third_party_invoice_id=%s", orderID, gwResp.InvoiceID)

	now = time.Now().UTC()
	inv := entities.Invoice{
		ID:                  uuid.NewString(),
		OrderID:             orderID,
		SupplierID:          order.SupplierID,
		MerchantID:          order.MerchantID,
		Status:              entities.InvoiceStatusAwaiting,
		InvoiceAmount:       amount,
		PaymentMethod:       entities.PaymentMethodQPay,
		ThirdPartyInvoiceID: gwResp.InvoiceID,
		InvoiceToken:        token,
		ThirdPartyData:      gwResp.Raw,
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	// Atomic unit: invoice put + audit-row correlation link. A
	// failure here leaves a remote invoice with no local counterpart;
	// no compensating cancel is issued, the remote invoice is left to
	// expire at the gateway and the audit row records the attempt.
	created, err := u.invoiceRepo.CreateLinked(ctx, inv, auditRow.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrInvoiceOrderTaken) {
			log.Printf("[invoice][usecase] lost creation race order_id=%s", orderID)
			return InvoiceCreation{}, ErrInvoiceAlreadyExists
		}
		log.Printf("[invoice][usecase] invoice persist failed order_id=%s err=%v", orderID, err)
		return InvoiceCreation{}, err
	}

	event := entities.InvoiceCreatedEvent{
		ID:                  created.ID,
		OrderID:             created.OrderID,
		Status:              created.Status,
		InvoiceAmount:       created.InvoiceAmount,
		ThirdPartyInvoiceID: created.ThirdPartyInvoiceID,
		PaymentMethod:       created.PaymentMethod,
		Version:             created.Version,
	}
	if err := u.publisher.Publish(ctx, entities.EventSubjectInvoiceCreated, created.ID, created.Version, event); err != nil {
		if errors.Is(err, interfaces.ErrEventVersionConflict) {
			log.Printf("[invoice][usecase] creation event already published order_id=%s invoice_id=%s", orderID, created.ID)
		} else {
			log.Printf("[invoice][usecase] creation event publish failed order_id=%s invoice_id=%s err=%v", orderID, created.ID, err)
			return InvoiceCreation{}, err
		}
	}

	log.Printf("[invoice][usecase] create success order_id=%s invoice_id=%s version=%d", orderID, created.ID, created.Version)
	return InvoiceCreation{
		Invoice: created,
		URLs:    gwResp.URLs,
		QRText:  gwResp.QRText,
		QRImage: gwResp.QRImage,
	}, nil
}

// gatewayToken returns the cached credential, falling back to an
// on-demand authentication when the cache is empty or unreadable.
func (u *InvoiceCreationUseCase) gatewayToken(ctx context.Context) (string, error) {
	cached, err := u.tokenRepo.Get(ctx, entities.GatewayOriginQPay)
	if err != nil {
		log.Printf("[invoice][usecase] token cache read failed err=%v", err)
	} else if cached.Token != "" {
		return cached.Token, nil
	}
	return u.gateway.Authenticate(ctx)
}

func validatePaymentMethods(methods []entities.PaymentMethod) error {
	if len(methods) == 0 {
		return ErrInvalidPaymentMethod
	}
	for _, m := range methods {
		switch m {
		case entities.PaymentMethodQPay, entities.PaymentMethodMBank, entities.PaymentMethodCash:
		default:
			return ErrInvalidPaymentMethod
		}
	}
	return nil
}
