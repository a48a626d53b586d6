package schema

import (
	"strings"
	"time"

	"github.com/google/uuid"

	f "github.com/Fredasante/sanity-backend-bend-the-trendd/field"
)

func orderDocument() *Document {
	d := define(TypeOrder, "Orders",
		f.Text("orderId").Title("Order ID").
			Description("Unique order identifier (e.g., ORD-20250101-ABCD)").
			Required().ReadOnly(),

		f.Object("customerInfo",
			f.Text("fullName").Title("Full Name").Required(),
			f.Text("phone").Title("Phone Number").Required(),
			f.Text("email").Title("Email").Description("Optional - for order updates"),
			f.Text("userId").Title("User ID (Clerk)").Description("Clerk user ID if signed in, null for guest"),
		).Title("Customer Information").Required(),

		f.Object("deliveryInfo",
			f.Text("region").Title("Region").Description("e.g., Greater Accra, Ashanti, etc.").Required(),
			f.Text("city").Title("City/Town").Required(),
			f.LongText("address").Title("Delivery Address/Landmark").Description("Full address with landmarks for rider").Required(),
		).Title("Delivery Information"),

		f.ObjectList("items",
			f.Reference("product", TypeProduct).Title("Product").Required(),
			f.Object("productSnapshot",
				f.Text("name"),
				f.Number("price"),
				f.Number("discountPrice"),
				f.Text("mainImageUrl"),
				f.Text("size"),
				f.Text("color"),
			).Title("Product Snapshot").Description("Product details at time of order").WriteOnce(),
			f.Number("quantity").Title("Quantity").Required().Min(1).Integer(),
			f.Number("priceAtPurchase").Title("Price at Purchase").Required(),
		).Title("Order Items").Required().Min(1),

		f.Object("pricing",
			f.Number("subtotal").Title("Subtotal").Description("Total before discount").Required().Min(0),
			f.Number("discount").Title("Discount").Description("Discount amount").Default(0),
			f.Number("total").Title("Total Amount").Description("Final amount customer pays (after discount)").Required().Min(0),
			f.Text("couponCode").Title("Coupon Code Applied").Description("Coupon/promo code if used"),
		).Title("Order Total").Required(),

		f.Object("payment",
			f.Text("method").Title("Payment Method").
				Description("Payment method used (paystack handles card/mobile money selection)").Required(),
			f.Text("status").Title("Payment Status").Options(paymentStatusOptions...).
				Default(string(PaymentPending)).Required(),
			f.Text("paystackReference").Title("Paystack Reference").Description("Paystack transaction reference"),
			f.Number("amount").Title("Amount Paid").Description("Amount paid for items (in GH₵)"),
			f.DateTime("paidAt").Title("Paid At"),
		).Title("Payment").Required(),

		f.Text("deliveryStatus").Title("Delivery Status").Options(deliveryStatusOptions...).
			Default(string(DeliveryPaymentPending)).Required(),

		f.Object("confirmation",
			f.Boolean("isConfirmed").Title("Order Confirmed?").
				Description("Has the order been confirmed with customer?").Default(false),
			f.Text("confirmedBy").Title("Confirmed By").Description("Staff member who confirmed the order"),
			f.DateTime("confirmedAt").Title("Confirmed At"),
			f.DateTime("deliveryDateAgreed").Title("Agreed Delivery Date").Description("Date agreed with customer for delivery"),
		).Title("Order Confirmation"),

		f.LongText("customerNotes").Title("Customer Notes").Description("Special instructions from customer"),
		f.LongText("adminNotes").Title("Admin Notes").Description("Internal notes - inventory, packaging, etc."),

		f.DateTime("createdAt").Title("Order Date").DefaultNow(),
		f.DateTime("updatedAt").Title("Last Updated"),
		f.DateTime("deliveredAt").Title("Delivered At"),
	)

	d.Preview = map[string]string{
		"orderId":        "orderId",
		"customerName":   "customerInfo.fullName",
		"total":          "pricing.total",
		"paymentStatus":  "payment.status",
		"deliveryStatus": "deliveryStatus",
		"createdAt":      "createdAt",
	}
	d.Orderings = []Ordering{
		{Name: "createdAtDesc", Title: "Newest First", By: []OrderBy{{Field: "createdAt", Direction: Desc}}},
		{Name: "unpaid", Title: "Unpaid Orders", By: []OrderBy{{Field: "payment.status", Direction: Asc}}},
		{Name: "deliveryStatus", Title: "By Delivery Status", By: []OrderBy{{Field: "deliveryStatus", Direction: Asc}}},
	}
	return d
}

// OrderIDPrefix starts every generated order identifier.
const OrderIDPrefix = "ORD-"

// NewOrderID returns an identifier of the form ORD-YYYYMMDD-XXXX for an
// order placed at now. The suffix is taken from a random UUID.
func NewOrderID(now time.Time) string {
	return orderID(now, uuid.New())
}

func orderID(now time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:4])
	return OrderIDPrefix + now.UTC().Format("20060102") + "-" + suffix
}
