package schema

import (
	"fmt"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
)

// DeliveryStatus is the fulfilment state of an order.
type DeliveryStatus string

const (
	DeliveryPaymentPending  DeliveryStatus = "payment_pending"
	DeliveryPaymentReceived DeliveryStatus = "payment_received"
	DeliveryConfirmed       DeliveryStatus = "confirmed"
	DeliveryPreparing       DeliveryStatus = "preparing"
	DeliveryOutForDelivery  DeliveryStatus = "out_for_delivery"
	DeliveryDelivered       DeliveryStatus = "delivered"
	DeliveryCancelled       DeliveryStatus = "cancelled"
)

var deliveryStatusOptions = []field.Option{
	{Title: "⏳ Payment Pending", Value: string(DeliveryPaymentPending)},
	{Title: "✓ Payment Received", Value: string(DeliveryPaymentReceived)},
	{Title: "📋 Confirmed", Value: string(DeliveryConfirmed)},
	{Title: "📦 Preparing", Value: string(DeliveryPreparing)},
	{Title: "🚚 Out for Delivery", Value: string(DeliveryOutForDelivery)},
	{Title: "✅ Delivered", Value: string(DeliveryDelivered)},
	{Title: "❌ Cancelled", Value: string(DeliveryCancelled)},
}

// DeliveryStatuses returns every delivery status in workflow order.
func DeliveryStatuses() []DeliveryStatus { return valuesOf[DeliveryStatus](deliveryStatusOptions) }

// Valid reports whether s is a known delivery status.
func (s DeliveryStatus) Valid() bool { return contains(deliveryStatusOptions, string(s)) }

// Title returns the editor label of s.
func (s DeliveryStatus) Title() string { return titleOf(deliveryStatusOptions, string(s)) }

// PaymentStatus is the state of the payment attached to an order.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

var paymentStatusOptions = []field.Option{
	{Title: "⏳ Pending", Value: string(PaymentPending)},
	{Title: "✓ Paid", Value: string(PaymentPaid)},
	{Title: "✗ Failed", Value: string(PaymentFailed)},
	{Title: "↩ Refunded", Value: string(PaymentRefunded)},
}

// PaymentStatuses returns every payment status.
func PaymentStatuses() []PaymentStatus { return valuesOf[PaymentStatus](paymentStatusOptions) }

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool { return contains(paymentStatusOptions, string(s)) }

// Title returns the editor label of s.
func (s PaymentStatus) Title() string { return titleOf(paymentStatusOptions, string(s)) }

// Category groups products in the shop.
type Category string

const (
	CategoryClothing Category = "clothing"
	CategorySneakers Category = "sneakers"
	CategorySlippers Category = "slippers"
	CategoryGadgets  Category = "gadgets"
)

var categoryOptions = []field.Option{
	{Title: "Clothing", Value: string(CategoryClothing)},
	{Title: "Sneakers", Value: string(CategorySneakers)},
	{Title: "Slippers", Value: string(CategorySlippers)},
	{Title: "Gadgets", Value: string(CategoryGadgets)},
}

// Categories returns every product category.
func Categories() []Category { return valuesOf[Category](categoryOptions) }

// Valid reports whether c is a known category.
func (c Category) Valid() bool { return contains(categoryOptions, string(c)) }

// Title returns the editor label of c.
func (c Category) Title() string { return titleOf(categoryOptions, string(c)) }

// Gender is the audience a product is made for.
type Gender string

const (
	GenderWomen  Gender = "women"
	GenderMen    Gender = "men"
	GenderUnisex Gender = "unisex"
)

var genderOptions = []field.Option{
	{Title: "Women", Value: string(GenderWomen)},
	{Title: "Men", Value: string(GenderMen)},
	{Title: "Unisex", Value: string(GenderUnisex)},
}

// Genders returns every gender value.
func Genders() []Gender { return valuesOf[Gender](genderOptions) }

// Valid reports whether g is a known gender value.
func (g Gender) Valid() bool { return contains(genderOptions, string(g)) }

// ProductStatus tells whether a product can still be bought.
type ProductStatus string

const (
	ProductAvailable ProductStatus = "available"
	ProductSold      ProductStatus = "sold"
)

var productStatusOptions = []field.Option{
	{Title: "Available", Value: string(ProductAvailable)},
	{Title: "Sold", Value: string(ProductSold)},
}

// ProductStatuses returns every product status.
func ProductStatuses() []ProductStatus { return valuesOf[ProductStatus](productStatusOptions) }

// Valid reports whether s is a known product status.
func (s ProductStatus) Valid() bool { return contains(productStatusOptions, string(s)) }

// Clothing sizes offered for the clothing category.
var clothingSizes = []string{"6", "8", "10", "12", "14", "16", "18", "20"}

// ClothingSizes returns the sizes a clothing product may list.
func ClothingSizes() []string { return append([]string(nil), clothingSizes...) }

// ParseDeliveryStatus converts s into a DeliveryStatus.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	if d := DeliveryStatus(s); d.Valid() {
		return d, nil
	}
	return "", fmt.Errorf("schema: unknown delivery status %q", s)
}

// ParsePaymentStatus converts s into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	if p := PaymentStatus(s); p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("schema: unknown payment status %q", s)
}

func valuesOf[T ~string](opts []field.Option) []T {
	out := make([]T, len(opts))
	for i, o := range opts {
		out[i] = T(o.Value)
	}
	return out
}

func contains(opts []field.Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

func titleOf(opts []field.Option, v string) string {
	for _, o := range opts {
		if o.Value == v {
			return o.Title
		}
	}
	return v
}
