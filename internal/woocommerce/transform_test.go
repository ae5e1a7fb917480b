package woocommerce

import (
	"encoding/json"
	"testing"
)

func wireFixture() *WooOrder {
	return &WooOrder{
		ID:          2841,
		Number:      "2841",
		DateCreated: "2024-03-15T09:30:00",
		Status:      "processing",
		Billing: WooAddress{
			FirstName: "Jane",
			LastName:  "Doe",
			Address1:  "12 Hauptstrasse",
			Address2:  "Apt 4",
			City:      "Berlin",
			State:     "BE",
			Postcode:  "10115",
			Country:   "Germany",
			Email:     "jane@example.com",
			Phone:     "+49 30 1234567",
		},
		Shipping: WooAddress{
			FirstName: "Jane",
			LastName:  "Doe",
			Address1:  "12 Hauptstrasse",
			City:      "Berlin",
			State:     "BE",
			Postcode:  "10115",
			Country:   "DE",
			// WooCommerce sometimes echoes contact fields on shipping;
			// they must never survive the transform.
			Phone: "+49 30 7654321",
		},
		LineItems: []WooLineItem{
			{ID: 1, ProductID: 77, SKU: "MUG-01", Name: "Coffee Mug", Quantity: 2, Price: json.Number("9.50")},
			{ID: 2, ProductID: 78, SKU: "", Name: "Sticker Pack", Quantity: 1, Price: json.Number("3")},
		},
		Total:         "22.00",
		ShippingTotal: "4.90",
		TotalTax:      "3.51",
		CustomerNote:  "Ring the bell twice",
		PaymentMethod: "stripe",
		MetaData: []WooMeta{
			{Key: "_some_plugin_key", Value: json.RawMessage(`"ignored"`)},
			{Key: "_custom_field1", Value: json.RawMessage(`"gift-wrap"`)},
			{Key: "_custom_field1", Value: json.RawMessage(`"second-ignored"`)},
		},
	}
}

func TestOrderFromWire(t *testing.T) {
	o := OrderFromWire(wireFixture())

	if o.ID != 2841 || o.Number != "2841" {
		t.Errorf("identity fields = (%d, %q), want (2841, \"2841\")", o.ID, o.Number)
	}
	if o.Date != "2024-03-15T09:30:00" {
		t.Errorf("Date = %q, want passthrough of date_created", o.Date)
	}
	if o.Total != "22.00" || o.ShippingTotal != "4.90" || o.TotalTax != "3.51" {
		t.Errorf("totals not passed through verbatim: %q %q %q", o.Total, o.ShippingTotal, o.TotalTax)
	}
	if o.CustomerNote != "Ring the bell twice" || o.PaymentMethod != "stripe" {
		t.Errorf("note/payment = (%q, %q)", o.CustomerNote, o.PaymentMethod)
	}
}

func TestOrderFromWireAddresses(t *testing.T) {
	o := OrderFromWire(wireFixture())

	if o.Billing.Email != "jane@example.com" || o.Billing.Phone != "+49 30 1234567" {
		t.Errorf("billing contact fields lost: %+v", o.Billing)
	}
	if o.Shipping.Email != "" || o.Shipping.Phone != "" {
		t.Errorf("shipping address must carry no contact details, got email=%q phone=%q",
			o.Shipping.Email, o.Shipping.Phone)
	}
	if o.Shipping.Country != "DE" || o.Billing.Country != "Germany" {
		t.Errorf("country fields must pass through unnormalized at fetch time")
	}
}

func TestOrderFromWireLineItems(t *testing.T) {
	o := OrderFromWire(wireFixture())

	if len(o.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(o.Items))
	}
	first := o.Items[0]
	if first.ProductID != 77 || first.SKU != "MUG-01" || first.Name != "Coffee Mug" ||
		first.Quantity != 2 || first.Price != "9.50" {
		t.Errorf("first item = %+v", first)
	}
	if o.Items[1].SKU != "" {
		t.Errorf("empty SKU must survive as empty string, got %q", o.Items[1].SKU)
	}
}

func TestCustomFieldExtraction(t *testing.T) {
	o := OrderFromWire(wireFixture())

	// First match wins.
	if o.CustomFields.Field1 != "gift-wrap" {
		t.Errorf("Field1 = %q, want gift-wrap", o.CustomFields.Field1)
	}
	// Absent keys resolve to empty strings, not errors.
	if o.CustomFields.Field2 != "" || o.CustomFields.Field3 != "" {
		t.Errorf("absent custom fields = (%q, %q), want empty", o.CustomFields.Field2, o.CustomFields.Field3)
	}
}

func TestCustomFieldNonStringValue(t *testing.T) {
	meta := []WooMeta{
		{Key: "_custom_field1", Value: json.RawMessage(`{"nested":"object"}`)},
		{Key: "_custom_field2", Value: json.RawMessage(`null`)},
	}

	if got := customField(meta, "_custom_field1"); got != `{"nested":"object"}` {
		t.Errorf("non-string value = %q, want raw JSON text", got)
	}
	if got := customField(meta, "_custom_field2"); got != "" {
		t.Errorf("null value = %q, want empty string", got)
	}
}
