// Package shipstation implements the destination side of the sync: the
// ShipStation API client, the WooCommerce→ShipStation order mapper, and
// the submission buffer. All ShipStation-specific wire types live here.
package shipstation

// === ShipStation API Request/Response Types ===

// Order is a ShipStation order in the shape POST /orders/createorders
// accepts. Dates are the strings the source order carried; ShipStation
// accepts ISO 8601 timestamps verbatim.
//
// The optional fields (orderKey, gift, carrier/service/package codes,
// confirmation) are part of the schema but left unset by the mapper;
// omitempty keeps them off the wire.
type Order struct {
	OrderNumber              string           `json:"orderNumber"`
	OrderKey                 string           `json:"orderKey,omitempty"`
	OrderDate                string           `json:"orderDate"`
	PaymentDate              string           `json:"paymentDate"`
	OrderStatus              string           `json:"orderStatus"`
	CustomerUsername         string           `json:"customerUsername"`
	CustomerEmail            string           `json:"customerEmail"`
	BillTo                   Address          `json:"billTo"`
	ShipTo                   Address          `json:"shipTo"`
	Items                    []OrderItem      `json:"items"`
	AmountPaid               float64          `json:"amountPaid"`
	TaxAmount                float64          `json:"taxAmount"`
	ShippingAmount           float64          `json:"shippingAmount"`
	CustomerNotes            string           `json:"customerNotes"`
	InternalNotes            string           `json:"internalNotes,omitempty"`
	Gift                     bool             `json:"gift,omitempty"`
	GiftMessage              string           `json:"giftMessage,omitempty"`
	PaymentMethod            string           `json:"paymentMethod"`
	RequestedShippingService string           `json:"requestedShippingService,omitempty"`
	CarrierCode              string           `json:"carrierCode,omitempty"`
	ServiceCode              string           `json:"serviceCode,omitempty"`
	PackageCode              string           `json:"packageCode,omitempty"`
	Confirmation             string           `json:"confirmation,omitempty"`
	Dimensions               *Dimensions      `json:"dimensions,omitempty"`
	AdvancedOptions          *AdvancedOptions `json:"advancedOptions,omitempty"`
}

// Address is a ShipStation address. Company and the residential flag
// exist only on this side; the source never provides either, so both
// stay unset.
type Address struct {
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Street1     string `json:"street1"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"` // 2-letter code after normalization
	Phone       string `json:"phone,omitempty"`
	Residential *bool  `json:"residential,omitempty"`
}

// OrderItem is one line on an outbound order.
type OrderItem struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Weight    *Weight `json:"weight,omitempty"`
}

// Weight is an item or parcel weight.
type Weight struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

// Dimensions is the shipment container size.
type Dimensions struct {
	Units  string  `json:"units"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AdvancedOptions is ShipStation's advanced options bundle. The boolean
// options are literal "False" strings and the billing/merge/warehouse
// routing fields are empty strings: inert placeholders for features the
// sync does not drive, preserved exactly as the upstream contract
// expects them.
type AdvancedOptions struct {
	BillToAccount        string `json:"billToAccount"`
	BillToCountryCode    string `json:"billToCountryCode"`
	BillToMyOtherAccount string `json:"billToMyOtherAccount"`
	BillToParty          string `json:"billToParty"`
	BillToPostalCode     string `json:"billToPostalCode"`
	ContainsAlcohol      string `json:"containsAlcohol"`
	CustomField1         string `json:"customField1"`
	CustomField2         string `json:"customField2"`
	CustomField3         string `json:"customField3"`
	MergedIDs            string `json:"mergedIds"`
	MergedOrSplit        string `json:"mergedOrSplit"`
	NonMachinable        string `json:"nonMachinable"`
	ParentID             string `json:"parentId"`
	SaturdayDelivery     string `json:"saturdayDelivery"`
	Source               string `json:"source"`
	StoreID              int    `json:"storeId"`
	WarehouseID          string `json:"warehouseId"`
}

// Store is one entry from GET /stores.
type Store struct {
	StoreID   int    `json:"storeId"`
	StoreName string `json:"storeName"`
}

// CreateOrdersResponse is the response from POST /orders/createorders.
type CreateOrdersResponse struct {
	HasErrors bool                `json:"hasErrors"`
	Results   []CreateOrderResult `json:"results"`
}

// CreateOrderResult is the per-order outcome within a batch response.
type CreateOrderResult struct {
	OrderID      int    `json:"orderId"`
	OrderNumber  string `json:"orderNumber"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

// ErrorResponse is a ShipStation API error body.
type ErrorResponse struct {
	Message string `json:"Message"`
}
