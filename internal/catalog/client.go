// Package catalog fetches product records from the catalog service. The
// engine treats products as opaque payloads; this client only exists to
// enrich wishlist additions with the catalog's canonical record.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "github.com/imdova/medicova-store-sub004/pkg/errors"
	"github.com/imdova/medicova-store-sub004/pkg/httpclient"

	"github.com/imdova/medicova-store-sub004/internal/domain"
)

// Client talks to the catalog service over HTTP with retries and a circuit
// breaker.
type Client struct {
	baseURL string
	http    *httpclient.CircuitBreakerClient
	logger  *slog.Logger
}

// New creates a catalog client for the given base URL.
func New(baseURL string, logger *slog.Logger) *Client {
	inner := httpclient.New(httpclient.DefaultConfig())
	breaker := httpclient.NewCircuitBreakerClient(
		inner,
		httpclient.DefaultCircuitBreakerConfig("catalog"),
		logger,
	)

	return &Client{
		baseURL: baseURL,
		http:    breaker,
		logger:  logger,
	}
}

type productEnvelope struct {
	Data domain.Product `json:"data"`
}

// Product fetches the catalog record for the given product ID.
func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	url := fmt.Sprintf("%s/api/v1/products/%s", c.baseURL, id)

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog get product: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.Product{}, apperrors.NotFound("product", id)
	case resp.StatusCode != http.StatusOK:
		return domain.Product{}, fmt.Errorf("catalog get product: unexpected status %d", resp.StatusCode)
	}

	var envelope productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return domain.Product{}, fmt.Errorf("decode product response: %w", err)
	}

	return envelope.Data, nil
}
