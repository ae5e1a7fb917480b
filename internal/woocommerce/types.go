// Package woocommerce implements the order fetch adapter for WooCommerce
// stores using the REST API v3. All WooCommerce-specific wire types,
// transforms, and HTTP client logic live here.
package woocommerce

import "encoding/json"

// === WooCommerce API Response Types ===

// WooOrder represents a WooCommerce REST v3 order response.
// Only the fields the sync consumes are declared; monetary totals are
// decimal strings ("99.00") per the v3 schema.
type WooOrder struct {
	ID            int           `json:"id"`
	Number        string        `json:"number"`
	DateCreated   string        `json:"date_created"`
	Status        string        `json:"status"`
	Billing       WooAddress    `json:"billing"`
	Shipping      WooAddress    `json:"shipping"`
	LineItems     []WooLineItem `json:"line_items"`
	Total         string        `json:"total"`
	ShippingTotal string        `json:"shipping_total"`
	TotalTax      string        `json:"total_tax"`
	CustomerNote  string        `json:"customer_note"`
	PaymentMethod string        `json:"payment_method"`
	MetaData      []WooMeta     `json:"meta_data"`
}

// WooAddress represents a WooCommerce address.
// Email and phone are populated on billing addresses only.
type WooAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// WooLineItem represents an ordered product on a v3 order.
// Price is a json.Number because WooCommerce emits it as a bare number
// in v3 but as a decimal string in some store configurations.
type WooLineItem struct {
	ID        int         `json:"id"`
	ProductID int         `json:"product_id"`
	SKU       string      `json:"sku"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	Price     json.Number `json:"price"`
}

// WooMeta is one key/value pair of arbitrary order metadata. Values are
// raw JSON: plugins store strings, arrays, and objects here.
type WooMeta struct {
	ID    int             `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// WooErrorResponse represents a WooCommerce API error.
type WooErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
	} `json:"data"`
}
