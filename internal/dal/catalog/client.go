package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/icatalog"
	"github.com/mybasket/basket-svc/internal/service/models/money"
	"github.com/mybasket/basket-svc/internal/service/models/product"
)

// productResponse mirrors the product payload of the catalog service.
type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// toModel converts productResponse to product.Product.
func (r *productResponse) toModel() *product.Product {
	return &product.Product{
		ID:          r.ID,
		Name:        r.Name,
		PriceCents:  money.ToCents(r.Price),
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
	}
}

// Client resolves products against the catalog service over HTTP.
type Client struct {
	baseURL    string
	client     *http.Client
	maxRetries uint64
	backoff    time.Duration
}

// NewClient creates a new catalog Client configured from viper.
func NewClient() *Client {
	timeoutMs := viper.GetInt("catalog.timeout_ms")
	if timeoutMs == 0 {
		timeoutMs = 2000
	}

	maxRetries := viper.GetInt("catalog.retry.attempts")
	if maxRetries == 0 {
		maxRetries = 2
	}

	backoffMs := viper.GetInt("catalog.retry.backoff_ms")
	if backoffMs == 0 {
		backoffMs = 100
	}

	return &Client{
		baseURL: viper.GetString("catalog.base_url"),
		client: &http.Client{
			Timeout:   time.Duration(timeoutMs) * time.Millisecond,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxRetries: uint64(maxRetries),
		backoff:    time.Duration(backoffMs) * time.Millisecond,
	}
}

// GetProduct fetches the product from the catalog service. Transport
// failures and server errors are retried with a constant backoff and
// reported as icatalog.ErrUnavailable once the retries are exhausted.
func (c *Client) GetProduct(ctx context.Context, productID string) (*product.Product, error) {
	url := c.baseURL + "/api/products/" + productID

	var resp productResponse
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewConstant(c.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to build catalog request: %w", err)
		}

		res, err := c.client.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: %s", icatalog.ErrUnavailable, err.Error()))
		}
		defer res.Body.Close()

		switch {
		case res.StatusCode == http.StatusNotFound:
			return icatalog.ErrProductNotFound
		case res.StatusCode >= http.StatusInternalServerError:
			return retry.RetryableError(fmt.Errorf("%w: catalog returned status %d", icatalog.ErrUnavailable, res.StatusCode))
		case res.StatusCode != http.StatusOK:
			return fmt.Errorf("%w: catalog returned status %d", icatalog.ErrUnavailable, res.StatusCode)
		}

		if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
			return fmt.Errorf("failed to decode catalog response: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp.toModel(), nil
}
