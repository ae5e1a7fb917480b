package shipstation

import (
	"shipsync/internal/countries"
	"shipsync/internal/model"
)

// StatusAwaitingShipment is the order status every synced order is
// created with: the whole point of the sync is to queue fulfillment.
const StatusAwaitingShipment = "awaiting_shipment"

// sourcePlatform tags synced orders with their origin in ShipStation.
const sourcePlatform = "WooCommerce"

// defaultItemWeight returns the fixed per-item weight. The source
// system carries no product weights, so every item gets 3 ounces. A
// deliberate default, not a computed value; keep it until a real weight
// source is integrated.
func defaultItemWeight() *Weight {
	return &Weight{Units: "ounces", Value: 3}
}

// defaultDimensions returns the fixed shipment container size.
func defaultDimensions() *Dimensions {
	return &Dimensions{Units: "inches", Length: 12, Width: 12, Height: 12}
}

// MapOrder converts an internal order to the ShipStation order schema.
// Pure and deterministic; the field mapping is the external contract
// with ShipStation and must stay exact:
//
//   - order_date and payment_date both take the source creation date
//   - status is always "awaiting_shipment"
//   - customer username is the billing "First Last" pair
//   - every item gets the constant 3-ounce weight
//   - the container is a constant 12×12×12 inch box
func MapOrder(o *model.Order, storeID int, norm *countries.Normalizer) Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = mapItem(&item)
	}

	return Order{
		OrderNumber:      o.Number,
		OrderDate:        o.Date,
		PaymentDate:      o.Date, // payment date assumed equal to order date
		OrderStatus:      StatusAwaitingShipment,
		CustomerUsername: fullName(&o.Billing),
		CustomerEmail:    o.Billing.Email,
		BillTo:           mapAddress(&o.Billing, norm),
		ShipTo:           mapAddress(&o.Shipping, norm),
		Items:            items,
		AmountPaid:       model.ParseAmount(o.Total),
		TaxAmount:        model.ParseAmount(o.TotalTax),
		ShippingAmount:   model.ParseAmount(o.ShippingTotal),
		CustomerNotes:    o.CustomerNote,
		PaymentMethod:    o.PaymentMethod,
		Dimensions:       defaultDimensions(),
		AdvancedOptions:  mapAdvancedOptions(o.CustomFields, storeID),
	}
}

// mapAddress converts a source address. Company stays unset (the source
// has no company field) and the residential flag stays unset (unknown).
// The country passes through the normalizer; on a lookup miss the
// original string is preserved so mapping never blocks.
func mapAddress(a *model.Address, norm *countries.Normalizer) Address {
	return Address{
		Name:       fullName(a),
		Street1:    a.Address1,
		Street2:    a.Address2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.Postcode,
		Country:    norm.Normalize(a.Country),
		Phone:      a.Phone,
	}
}

// mapItem converts a line item, attaching the constant default weight.
func mapItem(item *model.LineItem) OrderItem {
	return OrderItem{
		SKU:       item.SKU,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: model.ParseAmount(item.Price),
		Weight:    defaultItemWeight(),
	}
}

// mapAdvancedOptions builds the advanced options bundle: custom fields
// and store routing from the source order, everything else a fixed
// constant.
func mapAdvancedOptions(fields model.CustomFields, storeID int) *AdvancedOptions {
	return &AdvancedOptions{
		ContainsAlcohol:  "False",
		MergedOrSplit:    "False",
		NonMachinable:    "False",
		SaturdayDelivery: "False",
		Source:           sourcePlatform,
		StoreID:          storeID,
		CustomField1:     fields.Field1,
		CustomField2:     fields.Field2,
		CustomField3:     fields.Field3,
	}
}

// fullName joins the first/last name pair the way ShipStation displays it.
func fullName(a *model.Address) string {
	return a.FirstName + " " + a.LastName
}
