package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"qpay_billing/internal/usecase/interfaces"
)

var ErrMissingQPayCredentials = errors.New("missing QPAY_USERNAME/QPAY_PASSWORD")
var ErrMissingQPayEndpoints = errors.New("missing QPAY endpoint configuration")

// QPayConfig carries the injected gateway configuration. Credentials
// and endpoints always come from the environment, never from source.

type QPayConfig struct {
	Username          string
	Password          string
	AuthTokenURL      string
	InvoiceRequestURL string
	PaymentCheckURL   string
	Timeout           time.Duration
}

// QPayGateway is the HTTP client for the QPay merchant API. Every
// call is single-attempt; the caller owns retry and re-auth policy.

type QPayGateway struct {
	cfg    QPayConfig
	client *http.Client
}

var _ interfaces.IPaymentGateway = (*QPayGateway)(nil)

func NewQPayGateway(cfg QPayConfig) (*QPayGateway, error) {
	if cfg.Username == "" || cfg.Password == "" {
		log.Printf("[gateway][qpay] missing credentials")
		return nil, ErrMissingQPayCredentials
	}
	if cfg.AuthTokenURL == "" || cfg.InvoiceRequestURL == "" || cfg.PaymentCheckURL == "" {
		log.Printf("[gateway][qpay] missing endpoint configuration")
		return nil, ErrMissingQPayEndpoints
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	log.Printf("[gateway][qpay] client initialized auth_url=%s", cfg.AuthTokenURL)
	return &QPayGateway{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}}, nil
}

type qpayAuthResponse struct {
	AccessToken string `json:"access_token"`
}

func (g *QPayGateway) Authenticate(ctx context.Context) (string, error) {
	log.Printf("[gateway][qpay] authenticate start")

	basic := base64.StdEncoding.EncodeToString([]byte(g.cfg.Username + ":" + g.cfg.Password))
	body, err := g.post(ctx, "authenticate", g.cfg.AuthTokenURL, "Basic "+basic, []byte("{}"))
	if err != nil {
		return "", err
	}

	var auth qpayAuthResponse
	if err := json.Unmarshal(body, &auth); err != nil || auth.AccessToken == "" {
		log.Printf("[gateway][qpay] authenticate malformed response err=%v", err)
		return "", &interfaces.GatewayError{Op: "authenticate", StatusCode: http.StatusOK, Body: truncate(body), Err: errors.New("malformed auth response")}
	}
	log.Printf("[gateway][qpay] authenticate success")
	return auth.AccessToken, nil
}

func (g *QPayGateway) CreateInvoice(ctx context.Context, token string, req interfaces.GatewayInvoiceRequest) (interfaces.GatewayInvoiceResponse, error) {
	log.Printf("[gateway][qpay] create-invoice start sender_invoice_no=%s amount=%d", req.SenderInvoiceNo, req.Amount)

	payload, err := json.Marshal(req)
	if err != nil {
		return interfaces.GatewayInvoiceResponse{}, &interfaces.GatewayError{Op: "create-invoice", Err: err}
	}

	body, err := g.post(ctx, "create-invoice", g.cfg.InvoiceRequestURL, "Bearer "+token, payload)
	if err != nil {
		return interfaces.GatewayInvoiceResponse{}, err
	}

	var resp interfaces.GatewayInvoiceResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.InvoiceID == "" {
		log.Printf("[gateway][qpay] create-invoice malformed response err=%v", err)
		return interfaces.GatewayInvoiceResponse{}, &interfaces.GatewayError{Op: "create-invoice", StatusCode: http.StatusOK, Body: truncate(body), Err: errors.New("malformed invoice response")}
	}
	resp.Raw = body

	log.Printf("[gateway][qpay] create-invoice success invoice_id=%s", resp.InvoiceID)
	return resp, nil
}

type qpayCheckRequest struct {
	ObjectType string          `json:"object_type"`
	ObjectID   string          `json:"object_id"`
	Offset     qpayCheckOffset `json:"offset"`
}

type qpayCheckOffset struct {
	PageNumber int `json:"page_number"`
	PageLimit  int `json:"page_limit"`
}

type qpayCheckResponse struct {
	Count      int                             `json:"count"`
	PaidAmount int64                           `json:"paid_amount"`
	Rows       []interfaces.GatewayPaymentStatus `json:"rows"`
}

func (g *QPayGateway) CheckPayment(ctx context.Context, token string, thirdPartyInvoiceID string) (interfaces.GatewayPaymentStatus, error) {
	log.Printf("[gateway][qpay] payment-check start invoice_id=%s", thirdPartyInvoiceID)

	payload, err := json.Marshal(qpayCheckRequest{
		ObjectType: "INVOICE",
		ObjectID:   thirdPartyInvoiceID,
		Offset:     qpayCheckOffset{PageNumber: 1, PageLimit: 100},
	})
	if err != nil {
		return interfaces.GatewayPaymentStatus{}, &interfaces.GatewayError{Op: "payment-check", Err: err}
	}

	body, err := g.post(ctx, "payment-check", g.cfg.PaymentCheckURL, "Bearer "+token, payload)
	if err != nil {
		return interfaces.GatewayPaymentStatus{}, err
	}

	var resp qpayCheckResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("[gateway][qpay] payment-check malformed response err=%v", err)
		return interfaces.GatewayPaymentStatus{}, &interfaces.GatewayError{Op: "payment-check", StatusCode: http.StatusOK, Body: truncate(body), Err: errors.New("malformed check response")}
	}
	if len(resp.Rows) == 0 {
		// No settlement rows yet: the invoice is still unpaid.
		log.Printf("[gateway][qpay] payment-check no rows invoice_id=%s", thirdPartyInvoiceID)
		return interfaces.GatewayPaymentStatus{}, nil
	}

	status := resp.Rows[0]
	if status.PaidAmount == 0 {
		status.PaidAmount = resp.PaidAmount
	}
	log.Printf("[gateway][qpay] payment-check success invoice_id=%s status=%s paid_amount=%d", thirdPartyInvoiceID, status.PaymentStatus, status.PaidAmount)
	return status, nil
}

func (g *QPayGateway) post(ctx context.Context, op, url, authorization string, payload []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &interfaces.GatewayError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authorization)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[gateway][qpay] %s transport failure err=%v", op, err)
		return nil, &interfaces.GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &interfaces.GatewayError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("[gateway][qpay] %s non-2xx status=%d", op, resp.StatusCode)
		return nil, &interfaces.GatewayError{Op: op, StatusCode: resp.StatusCode, Body: truncate(body)}
	}
	return body, nil
}

func truncate(b []byte) string {
	const max = 512
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max]
	}
	return s
}
