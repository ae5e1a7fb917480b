package woocommerce

import (
	"encoding/json"

	"shipsync/internal/model"
)

// Meta keys carrying the custom field values forwarded to fulfillment.
// Merchants set these via order meta (the leading underscore marks them
// hidden in the WooCommerce admin UI).
const (
	metaKeyCustomField1 = "_custom_field1"
	metaKeyCustomField2 = "_custom_field2"
	metaKeyCustomField3 = "_custom_field3"
)

// OrderFromWire converts a WooCommerce wire order to the internal
// representation. Pure; all monetary totals and the creation date stay
// as the strings WooCommerce returned.
func OrderFromWire(w *WooOrder) model.Order {
	items := make([]model.LineItem, len(w.LineItems))
	for i, item := range w.LineItems {
		items[i] = lineItemFromWire(&item)
	}

	return model.Order{
		ID:            w.ID,
		Number:        w.Number,
		Date:          w.DateCreated,
		Status:        w.Status,
		Billing:       addressFromWire(&w.Billing, true),
		Shipping:      addressFromWire(&w.Shipping, false),
		Items:         items,
		Total:         w.Total,
		ShippingTotal: w.ShippingTotal,
		TotalTax:      w.TotalTax,
		CustomerNote:  w.CustomerNote,
		PaymentMethod: w.PaymentMethod,
		CustomFields: model.CustomFields{
			Field1: customField(w.MetaData, metaKeyCustomField1),
			Field2: customField(w.MetaData, metaKeyCustomField2),
			Field3: customField(w.MetaData, metaKeyCustomField3),
		},
	}
}

// addressFromWire converts a wire address. WooCommerce only attaches
// phone/email to the billing variant; withContact=false blanks both so
// shipping addresses never carry contact details downstream.
func addressFromWire(a *WooAddress, withContact bool) model.Address {
	addr := model.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Postcode:  a.Postcode,
		Country:   a.Country,
	}
	if withContact {
		addr.Phone = a.Phone
		addr.Email = a.Email
	}
	return addr
}

// lineItemFromWire converts a wire line item, keeping the unit price as
// its decimal-string form.
func lineItemFromWire(item *WooLineItem) model.LineItem {
	return model.LineItem{
		ProductID: item.ProductID,
		SKU:       item.SKU,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price.String(),
	}
}

// customField scans the flat metadata list for the given key and
// returns its string value. First match wins; an absent key or a
// non-string value that cannot be decoded resolves to "".
func customField(meta []WooMeta, key string) string {
	for _, m := range meta {
		if m.Key != key {
			continue
		}
		var s string
		if err := json.Unmarshal(m.Value, &s); err == nil {
			return s
		}
		// Non-string metadata value: forward its raw JSON text.
		return string(m.Value)
	}
	return ""
}
