package shipstation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shipsync/internal/model"
)

// apiBaseURL is the ShipStation REST API endpoint. The API
// authenticates with key/secret over Basic Auth.
const apiBaseURL = "https://ssapi.shipstation.com"

// userAgent identifies this client to ShipStation.
const userAgent = "shipsync/1.0"

// wooCommerceStoreName is the store-list entry the resolver looks for
// when no explicit store ID is configured. ShipStation names the
// connected sales channel after the platform.
const wooCommerceStoreName = "WooCommerce"

// Config holds ShipStation-specific client configuration.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string // override for tests; defaults to the public API
	Debug     bool   // request/response diagnostics
	Logger    *slog.Logger
}

// Client talks to the ShipStation REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	debug      bool
	logger     *slog.Logger
}

// New creates a ShipStation client with the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("API credentials are required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = apiBaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		debug:      cfg.Debug,
		logger:     logger,
	}, nil
}

// ResolveStoreID determines the destination store for synced orders.
// A configured non-zero ID wins; otherwise the account's store list is
// searched for the WooCommerce sales channel. No match is fatal for the
// run: orders cannot be submitted without a destination store.
func (c *Client) ResolveStoreID(ctx context.Context, configured int) (int, error) {
	if configured != 0 {
		return configured, nil
	}

	stores, err := c.ListStores(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing stores: %w", err)
	}

	for _, store := range stores {
		if store.StoreName == wooCommerceStoreName {
			return store.StoreID, nil
		}
	}
	return 0, model.NewStoreNotFoundError(wooCommerceStoreName)
}

// ListStores fetches the account's connected stores.
func (c *Client) ListStores(ctx context.Context) ([]Store, error) {
	body, err := c.do(ctx, http.MethodGet, "/stores", nil)
	if err != nil {
		return nil, err
	}

	var stores []Store
	if err := json.Unmarshal(body, &stores); err != nil {
		return nil, fmt.Errorf("parsing stores response: %w", err)
	}
	return stores, nil
}

// CreateOrders submits a batch of orders in one call.
func (c *Client) CreateOrders(ctx context.Context, orders []Order) (*CreateOrdersResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/orders/createorders", orders)
	if err != nil {
		return nil, err
	}

	var result CreateOrdersResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing createorders response: %w", err)
	}
	return &result, nil
}

// do executes a request against the ShipStation API and returns the
// response body. Non-2xx statuses become typed *model.APIError values.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		if c.debug {
			c.logger.Info("ShipStation request payload",
				slog.String("path", path), slog.Int("bytes", len(jsonBody)))
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.NewUpstreamError("ShipStation", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if c.debug {
		c.logger.Info("ShipStation response",
			slog.String("path", path), slog.Int("status", resp.StatusCode))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.parseErrorResponse(resp.StatusCode, body)
	}
	return body, nil
}

// parseErrorResponse converts a ShipStation error response to an APIError.
func (c *Client) parseErrorResponse(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return model.NewUnauthorizedError("ShipStation")
	case http.StatusTooManyRequests:
		return model.NewRateLimitError("ShipStation")
	default:
		return model.NewFetchError("ShipStation", statusCode, body)
	}
}
