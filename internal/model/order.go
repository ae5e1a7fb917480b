// Package model defines the internal order representation shared by the
// WooCommerce fetch side and the ShipStation submission side, plus the
// error and money helpers both adapters use.
package model

// Address is a source-side postal address. WooCommerce attaches phone
// and email to the billing address only; on shipping addresses both are
// always empty.
type Address struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	State     string
	Postcode  string
	Country   string // free text or ISO-2 code, normalized during mapping
	Phone     string
	Email     string
}

// LineItem is a single ordered product. Price is kept as the decimal
// string WooCommerce returned; parsing happens at the mapping boundary.
type LineItem struct {
	ProductID int
	SKU       string // may be empty
	Name      string
	Quantity  int
	Price     string
}

// CustomFields holds the three named metadata values forwarded to the
// fulfillment side. Absent keys resolve to the empty string.
type CustomFields struct {
	Field1 string
	Field2 string
	Field3 string
}

// Order is the internal representation of a source order, constructed
// fresh on every fetch and discarded after submission. Dates and
// monetary totals stay as the strings the source API returned so the
// outbound mapping controls all conversions.
type Order struct {
	ID            int
	Number        string
	Date          string // date_created, passed through verbatim
	Status        string
	Billing       Address
	Shipping      Address
	Items         []LineItem
	Total         string
	ShippingTotal string
	TotalTax      string
	CustomerNote  string
	PaymentMethod string
	CustomFields  CustomFields
}
