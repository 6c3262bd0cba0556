package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"qpay_billing/internal/domain/entities"
	"qpay_billing/internal/usecase/interfaces"
)

var ErrMissingOrderServiceURL = errors.New("missing ORDER_SERVICE_URL")

// OrderServiceClient resolves orders from the external order service.
// The payment service only reads; a missing order is reported as a
// zero Order, not an error.

type OrderServiceClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IOrderService = (*OrderServiceClient)(nil)

func NewOrderServiceClient(baseURL string) (*OrderServiceClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[orders][client] missing ORDER_SERVICE_URL")
		return nil, ErrMissingOrderServiceURL
	}
	return &OrderServiceClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *OrderServiceClient) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	url := fmt.Sprintf("%s/orders/%s", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Order{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[orders][client] lookup transport failure order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.Order{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[orders][client] lookup non-2xx order_id=%s status=%d", orderID, resp.StatusCode)
		return entities.Order{}, fmt.Errorf("order service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}
