package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"artiste_site/internal/domain/models"
)

var ErrNoRedirect = errors.New("payment: response has no redirect url")

type CheckoutItem struct {
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CheckoutRequest struct {
	OrderID       string         `json:"order_id"`
	CustomerEmail string         `json:"customer_email"`
	TotalAmount   float64        `json:"total_amount"`
	Items         []CheckoutItem `json:"items"`
}

type checkoutResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// Client запрашивает у платёжного шлюза ссылку для оплаты заказа
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Enabled is false when no endpoint is configured; checkout then ends without redirect.
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

func (c *Client) CreateCheckout(ctx context.Context, order models.Order) (string, error) {
	const op = "payment.Client.CreateCheckout"

	req := CheckoutRequest{
		OrderID:       order.ID.String(),
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		Items:         make([]CheckoutItem, 0, len(order.Items)),
	}
	for _, it := range order.Items {
		req.Items = append(req.Items, CheckoutItem{
			Title:    it.Title,
			ImageURL: it.ImageURL,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var out checkoutResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if out.Error == "" {
			out.Error = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("%s: %s", op, out.Error)
	}

	if out.URL == "" {
		return "", fmt.Errorf("%s: %w", op, ErrNoRedirect)
	}

	return out.URL, nil
}
