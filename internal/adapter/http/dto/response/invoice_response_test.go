package response

import (
	"encoding/json"
	"testing"

	"qpay_billing/internal/domain/entities"
	"qpay_billing/internal/usecase"
)

func TestFromInvoiceCreation(t *testing.T) {
	res := FromInvoiceCreation(usecase.InvoiceCreation{
		Invoice: entities.Invoice{ID: "inv-1", OrderID: "ord-1"},
		URLs:    json.RawMessage(`[{"name":"qPay wallet"}]`),
		QRText:  "qr-text",
		QRImage: "qr-image",
	})

	if res.OrderID != "ord-1" || res.QR != "qr-text" || res.QRImage != "qr-image" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if string(res.Data) != `[{"name":"qPay wallet"}]` {
		t.Fatalf("urls not carried: %s", res.Data)
	}
}

func TestFromSettlementOutcome(t *testing.T) {
	cases := []struct {
		outcome usecase.SettlementOutcome
		status  string
	}{
		{usecase.SettlementOutcomeSettled, InvoiceStatusSuccess},
		{usecase.SettlementOutcomeAlreadySettled, InvoiceStatusSuccess},
		{usecase.SettlementOutcomePending, InvoiceStatusPending},
		{usecase.SettlementOutcome("bogus"), InvoiceStatusFailure},
	}

	for _, tc := range cases {
		if got := FromSettlementOutcome(tc.outcome); got.Status != tc.status {
			t.Fatalf("for outcome %q expected %s, got %s", tc.outcome, tc.status, got.Status)
		}
	}
}
