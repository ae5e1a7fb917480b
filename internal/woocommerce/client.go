package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shipsync/internal/model"
	"shipsync/internal/transport"
)

// restAPIPath is the base path for WooCommerce REST API v3 endpoints.
// Must include /wp-json prefix for proper routing.
const restAPIPath = "/wp-json/wc/v3"

// userAgent identifies this client to upstream servers.
// Required: WooCommerce CDN/WAF rate-limits requests without User-Agent.
const userAgent = "shipsync/1.0"

// fetchPageSize is the per_page value sent on the orders request.
// WooCommerce defaults to 10 and caps at 100; the sync wants everything
// currently in "processing" in one call.
const fetchPageSize = 100

// requestTimeout bounds every call to the store, dial included.
const requestTimeout = 30 * time.Second

// Config holds WooCommerce-specific adapter configuration.
type Config struct {
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string
	Debug          bool // full per-order narration of everything fetched
	Logger         *slog.Logger
}

// Client fetches orders from a WooCommerce store via the REST API v3.
// REST v3 authenticates with consumer key/secret over Basic Auth
// (unlike the Store API, which uses nonce headers).
type Client struct {
	httpClient     *http.Client
	storeURL       string
	consumerKey    string
	consumerSecret string
	debug          bool
	logger         *slog.Logger
}

// New creates a WooCommerce client with the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.StoreURL == "" {
		return nil, fmt.Errorf("store URL is required")
	}
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, fmt.Errorf("API credentials are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Chrome TLS fingerprint transport avoids JA3-based rate limiting
	// on CDN-fronted stores. See internal/transport for rationale.
	return &Client{
		httpClient:     transport.NewClient(requestTimeout),
		storeURL:       strings.TrimSuffix(cfg.StoreURL, "/"),
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		debug:          cfg.Debug,
		logger:         logger,
	}, nil
}

// FetchProcessingOrders retrieves all orders currently in "processing"
// status and converts them to the internal order representation.
//
// A non-200 response is returned as a *model.APIError carrying the
// upstream status and body. There is no retry; the caller aborts the run.
func (c *Client) FetchProcessingOrders(ctx context.Context) ([]model.Order, error) {
	if c.debug {
		c.logger.Info("fetching orders from WooCommerce", slog.String("status", "processing"))
	}

	query := url.Values{}
	query.Set("status", "processing")
	query.Set("per_page", fmt.Sprint(fetchPageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.storeURL+restAPIPath+"/orders?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating orders request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.NewUpstreamError("WooCommerce", err)
	}
	defer resp.Body.Close()

	if c.debug {
		c.logger.Info("WooCommerce API response", slog.Int("status", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading orders response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseErrorResponse(resp.StatusCode, body)
	}

	var wireOrders []WooOrder
	if err := json.Unmarshal(body, &wireOrders); err != nil {
		return nil, fmt.Errorf("parsing orders response: %w", err)
	}

	orders := make([]model.Order, 0, len(wireOrders))
	for i := range wireOrders {
		order := OrderFromWire(&wireOrders[i])
		if c.debug {
			c.dumpOrder(&order)
		}
		orders = append(orders, order)
	}

	if c.debug {
		c.logger.Info("finished processing orders", slog.Int("count", len(orders)))
	}
	return orders, nil
}

// dumpOrder narrates one transformed order in full: header, both
// addresses, every line item, and the custom fields. This is the
// WC_Debug trace used to verify a store's data before turning
// submission on.
func (c *Client) dumpOrder(o *model.Order) {
	c.logger.Info("processing order",
		slog.Int("order_id", o.ID),
		slog.String("number", o.Number),
		slog.String("date", o.Date),
		slog.String("total", o.Total),
		slog.String("shipping_total", o.ShippingTotal),
		slog.String("total_tax", o.TotalTax),
		slog.String("payment_method", o.PaymentMethod),
		slog.String("customer_note", o.CustomerNote),
	)
	c.logger.Info("billing address", addressAttrs(&o.Billing)...)
	c.logger.Info("shipping address", addressAttrs(&o.Shipping)...)
	for _, item := range o.Items {
		c.logger.Info("line item",
			slog.Int("product_id", item.ProductID),
			slog.String("sku", item.SKU),
			slog.String("name", item.Name),
			slog.Int("quantity", item.Quantity),
			slog.String("price", item.Price),
		)
	}
	c.logger.Info("custom fields",
		slog.String("field1", o.CustomFields.Field1),
		slog.String("field2", o.CustomFields.Field2),
		slog.String("field3", o.CustomFields.Field3),
	)
}

// addressAttrs flattens an address into log attributes.
func addressAttrs(a *model.Address) []any {
	return []any{
		slog.String("name", a.FirstName+" "+a.LastName),
		slog.String("address1", a.Address1),
		slog.String("address2", a.Address2),
		slog.String("city", a.City),
		slog.String("state", a.State),
		slog.String("postcode", a.Postcode),
		slog.String("country", a.Country),
		slog.String("phone", a.Phone),
		slog.String("email", a.Email),
	}
}

// setHeaders sets the standard headers for REST v3 requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
}

// parseErrorResponse converts a WooCommerce error response to an APIError.
func (c *Client) parseErrorResponse(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return model.NewUnauthorizedError("WooCommerce")
	case http.StatusTooManyRequests:
		return model.NewRateLimitError("WooCommerce")
	default:
		return model.NewFetchError("WooCommerce", statusCode, body)
	}
}
