// Package inventory holds the HTTP client for the inventory service's stock
// query endpoint.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/acme/order-fulfillment/internal/order/domain"
)

const DefaultTimeout = 3 * time.Second

// Client implements application.StockChecker against the inventory service.
// Every request carries an explicit deadline; an unreachable service, a
// non-2xx status, or a timeout all come back as plain errors so the caller
// can classify them as an infrastructure failure rather than a rejection.
type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
	timeout time.Duration
}

func NewClient(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		log:     log,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

func (c *Client) Check(ctx context.Context, itemCodes []string) ([]domain.StockAvailability, error) {
	q := url.Values{}
	for _, code := range itemCodes {
		q.Add("itemCode", code)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/inventory?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build stock query: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stock query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stock query returned status %d", resp.StatusCode)
	}

	var out []domain.StockAvailability
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode stock query response: %w", err)
	}

	c.log.Debug("stock query ok", "codes", len(itemCodes), "responses", len(out))
	return out, nil
}
