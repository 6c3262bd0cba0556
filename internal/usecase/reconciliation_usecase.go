package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"qpay_billing/internal/domain/entities"
	"qpay_billing/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrGatewayCheckFailed = errors.New("gateway payment check failed")
)

// SettlementOutcome is the result of one reconciliation pass.

type SettlementOutcome string

const (
	SettlementOutcomeSettled        SettlementOutcome = "settled"
	SettlementOutcomeAlreadySettled SettlementOutcome = "already_settled"
	SettlementOutcomePending        SettlementOutcome = "pending"
)

// settlementSnapshot is the gateway payload stored on the invoice
// when it settles.

type settlementSnapshot struct {
	PaymentID       string          `json:"paymentId"`
	Status          string          `json:"status"`
	Currency        string          `json:"currency"`
	PaymentWallet   string          `json:"paymentWallet"`
	PaymentType     string          `json:"paymentType"`
	TransactionData json.RawMessage `json:"transactionData,omitempty"`
}

// IReconciliationUseCase confirms settlement against the gateway and
// transitions the invoice, race-safely, at most once.

type IReconciliationUseCase interface {
	CheckAndSettle(ctx context.Context, orderID string) (SettlementOutcome, error)
}

type ReconciliationUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
	publisher   interfaces.IEventPublisher
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IEventPublisher) *ReconciliationUseCase {
	return &ReconciliationUseCase{invoiceRepo: invoiceRepo, gateway: gateway, publisher: publisher}
}

func (u *ReconciliationUseCase) CheckAndSettle(ctx context.Context, orderID string) (SettlementOutcome, error) {
	log.Printf("[reconcile][usecase] check start order_id=%q", orderID)

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", ErrInvalidOrderID
	}

	inv, err := u.invoiceRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[reconcile][usecase] invoice lookup failed order_id=%s err=%v", orderID, err)
		return "", err
	}
	if inv.ID == "" {
		log.Printf("[reconcile][usecase] invoice not found order_id=%s", orderID)
		return "", ErrInvoiceNotFound
	}

	// Idempotent under repeated polling and duplicate callbacks.
	if inv.Status == entities.InvoiceStatusPaid {
		log.Printf("[reconcile][usecase] already settled order_id=%s invoice_id=%s", orderID, inv.ID)
		return SettlementOutcomeAlreadySettled, nil
	}

	status, err := u.gateway.CheckPayment(ctx, inv.InvoiceToken, inv.ThirdPartyInvoiceID)
	if interfaces.IsGatewayUnauthorized(err) {
		log.Printf("[reconcile][usecase] stored token rejected, re-authenticating order_id=%s", orderID)
		token, authErr := u.gateway.Authenticate(ctx)
		if authErr != nil {
			log.Printf("[reconcile][usecase] re-authentication failed order_id=%s err=%v", orderID, authErr)
			return "", ErrGatewayAuthFailed
		}
		status, err = u.gateway.CheckPayment(ctx, token, inv.ThirdPartyInvoiceID)
	}
	if err != nil {
		log.Printf("[reconcile][usecase] gateway check failed order_id=%s err=%v", orderID, err)
		return "", ErrGatewayCheckFailed
	}

	if status.PaymentStatus != interfaces.GatewayPaymentStatusPaid {
		log.Printf("[reconcile][usecase] still pending order_id=%s gateway_status=%q", orderID, status.PaymentStatus)
		return SettlementOutcomePending, nil
	}

	snapshot, err := json.Marshal(settlementSnapshot{
		PaymentID:       status.PaymentID,
		Status:          status.PaymentStatus,
		Currency:        status.PaymentCurrency,
		PaymentWallet:   status.PaymentWallet,
		PaymentType:     status.PaymentType,
		TransactionData: status.Transactions,
	})
	if err != nil {
		return "", err
	}

	paidAmount := status.PaidAmount
	if paidAmount == 0 {
		paidAmount = inv.InvoiceAmount
	}

	// Exactly one caller wins this compare-and-swap; everyone else
	// observes AlreadySettled and publishes nothing.
	settled, err := u.invoiceRepo.Settle(ctx, orderID, paidAmount, snapshot, inv.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[reconcile][usecase] lost settlement race order_id=%s invoice_id=%s", orderID, inv.ID)
			return SettlementOutcomeAlreadySettled, nil
		}
		log.Printf("[reconcile][usecase] settle failed order_id=%s err=%v", orderID, err)
		return "", err
	}

	event := entities.InvoicePaidEvent{
		ID:                  settled.ID,
		OrderID:             settled.OrderID,
		SupplierID:          settled.SupplierID,
		MerchantID:          settled.MerchantID,
		Status:              settled.Status,
		InvoiceAmount:       settled.InvoiceAmount,
		PaidAmount:          paidAmount,
		ThirdPartyInvoiceID: settled.ThirdPartyInvoiceID,
		PaymentMethod:       settled.PaymentMethod,
		Version:             settled.Version,
	}
	if err := u.publisher.Publish(ctx, entities.EventSubjectInvoicePaid, settled.ID, settled.Version, event); err != nil {
		if errors.Is(err, interfaces.ErrEventVersionConflict) {
			log.Printf("[reconcile][usecase] paid event already published order_id=%s invoice_id=%s", orderID, settled.ID)
		} else {
			log.Printf("[reconcile][usecase] paid event publish failed order_id=%s invoice_id=%s err=%v", orderID, settled.ID, err)
			return "", err
		}
	}

	log.Printf("[reconcile][usecase] settled order_id=%s invoice_id=%s version=%d paid_amount=%d", orderID, settled.ID, settled.Version, paidAmount)
	return SettlementOutcomeSettled, nil
}
