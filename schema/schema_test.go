package schema_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

func TestLookup_RegisteredTypes(t *testing.T) {
	assert.Equal(t, []string{"order", "product"}, schema.Names())

	for _, name := range schema.Names() {
		d, err := schema.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name)
		require.NoError(t, field.CheckUnique(d.Fields))
	}

	all := schema.All()
	require.Len(t, all, 2)
	assert.Equal(t, "order", all[0].Name)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := schema.Lookup("customer")
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrUnknownType))

	var ute *schema.UnknownTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "customer", ute.Name)
	assert.Contains(t, err.Error(), "order, product")

	assert.Panics(t, func() { schema.MustLookup("") })
}

func TestOrder_StructuralFacts(t *testing.T) {
	d := schema.MustLookup(schema.TypeOrder)

	items, ok := d.Field("items")
	require.True(t, ok)
	assert.Equal(t, field.KindObjectList, items.Kind)
	assert.True(t, items.Required)
	assert.Equal(t, 1, items.MinItems)

	qty, ok := items.Field("quantity")
	require.True(t, ok)
	assert.True(t, qty.Required)
	assert.True(t, qty.Integer)
	assert.Equal(t, 1.0, *qty.Min)

	snap, ok := items.Field("productSnapshot")
	require.True(t, ok)
	assert.True(t, snap.WriteOnce)
	assert.False(t, snap.Required)

	pricing, _ := d.Field("pricing")
	discount, ok := pricing.Field("discount")
	require.True(t, ok)
	v, ok := discount.StaticInitial()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	orderID, _ := d.Field("orderId")
	assert.True(t, orderID.ReadOnly)

	status, _ := d.Field("deliveryStatus")
	assert.Len(t, status.AllowedValues(), 7)
	assert.Equal(t, "📋 Confirmed", status.OptionTitle("confirmed"))
}

func TestProduct_SizesVisibility(t *testing.T) {
	d := schema.MustLookup(schema.TypeProduct)
	sizes, ok := d.Field("sizes")
	require.True(t, ok)
	assert.True(t, sizes.Required)
	assert.False(t, sizes.Hidden(field.Record{"category": "clothing"}))
	assert.True(t, sizes.Hidden(field.Record{"category": "gadgets"}))
	assert.Equal(t, schema.ClothingSizes(), sizes.AllowedValues())

	sl, ok := d.Field("slug")
	require.True(t, ok)
	assert.Equal(t, "name", sl.Source)
	assert.Equal(t, 96, sl.MaxLength)
}

func TestEnums(t *testing.T) {
	assert.Len(t, schema.DeliveryStatuses(), 7)
	for _, s := range schema.DeliveryStatuses() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, schema.DeliveryStatus("shipped").Valid())
	assert.Equal(t, "🚚 Out for Delivery", schema.DeliveryOutForDelivery.Title())

	p, err := schema.ParsePaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, schema.PaymentPaid, p)
	_, err = schema.ParsePaymentStatus("PAID")
	assert.Error(t, err)
	_, err = schema.ParseDeliveryStatus("lost")
	assert.Error(t, err)

	assert.Equal(t, []schema.Category{"clothing", "sneakers", "slippers", "gadgets"}, schema.Categories())
	assert.True(t, schema.GenderUnisex.Valid())
	assert.Len(t, schema.ProductStatuses(), 2)
	assert.Len(t, schema.PaymentStatuses(), 4)
}

func TestNewDocument_Order(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rec, err := schema.NewDocument(schema.TypeOrder, now)
	require.NoError(t, err)

	_, err = uuid.Parse(rec["_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "order", rec["_type"])
	assert.Regexp(t, regexp.MustCompile(`^ORD-20250314-[0-9A-F]{4}$`), rec["orderId"])
	assert.Equal(t, "payment_pending", rec["deliveryStatus"])
	assert.Equal(t, "2025-03-14T09:30:00Z", rec["createdAt"])

	payment, ok := field.AsRecord(rec["payment"])
	require.True(t, ok)
	assert.Equal(t, "pending", payment["status"])

	confirmation, ok := field.AsRecord(rec["confirmation"])
	require.True(t, ok)
	assert.Equal(t, false, confirmation["isConfirmed"])

	_, hasCustomer := rec["customerInfo"]
	assert.False(t, hasCustomer)
}

func TestNewDocument_Product(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rec, err := schema.NewDocument(schema.TypeProduct, now)
	require.NoError(t, err)

	assert.Equal(t, "women", rec["gender"])
	assert.Equal(t, "available", rec["status"])
	assert.Equal(t, false, rec["isFeatured"])
	_, hasOrderID := rec["orderId"]
	assert.False(t, hasOrderID)

	other, err := schema.NewDocument(schema.TypeProduct, now)
	require.NoError(t, err)
	assert.NotEqual(t, rec["_id"], other["_id"])

	_, err = schema.NewDocument("customer", now)
	assert.ErrorIs(t, err, schema.ErrUnknownType)
}

func TestNewOrderID(t *testing.T) {
	id := schema.NewOrderID(time.Date(2024, 12, 31, 23, 0, 0, 0, time.FixedZone("GMT+2", 2*3600)))
	assert.Regexp(t, `^ORD-20241231-[0-9A-F]{4}$`, id)
}

func TestOrdering_Sort(t *testing.T) {
	d := schema.MustLookup(schema.TypeOrder)

	newest, ok := d.Ordering("createdAtDesc")
	require.True(t, ok)
	recs := []field.Record{
		{"orderId": "a", "createdAt": "2025-01-01T10:00:00Z"},
		{"orderId": "b"},
		{"orderId": "c", "createdAt": "2025-01-03T10:00:00+02:00"},
		{"orderId": "d", "createdAt": "2025-01-02T10:00:00Z"},
	}
	newest.Sort(recs)
	assert.Equal(t, []string{"c", "d", "a", "b"}, orderIDs(recs))

	unpaid, ok := d.Ordering("unpaid")
	require.True(t, ok)
	recs = []field.Record{
		{"orderId": "1", "payment": map[string]any{"status": "pending"}},
		{"orderId": "2", "payment": map[string]any{"status": "paid"}},
		{"orderId": "3", "payment": map[string]any{"status": "failed"}},
		{"orderId": "4", "payment": map[string]any{"status": "paid"}},
	}
	unpaid.Sort(recs)
	assert.Equal(t, []string{"3", "2", "4", "1"}, orderIDs(recs))

	_, ok = d.Ordering("cheapest")
	assert.False(t, ok)
}

func TestOrdering_NumbersAndBooleans(t *testing.T) {
	o := schema.Ordering{By: []schema.OrderBy{
		{Field: "isFeatured", Direction: schema.Desc},
		{Field: "price", Direction: schema.Asc},
	}}
	recs := []field.Record{
		{"orderId": "x", "isFeatured": false, "price": 10},
		{"orderId": "y", "isFeatured": true, "price": 99.5},
		{"orderId": "z", "isFeatured": true, "price": 5},
	}
	o.Sort(recs)
	assert.Equal(t, []string{"z", "y", "x"}, orderIDs(recs))
}

func TestDefaultStudio(t *testing.T) {
	s := schema.DefaultStudio()
	assert.Equal(t, "f9rxg371", s.ProjectID)
	assert.Equal(t, "production", s.Dataset)
	assert.Equal(t, []string{schema.PluginStructure, schema.PluginVision}, s.Plugins)
	assert.True(t, s.AutoUpdates)
	assert.Equal(t, []string{"order", "product"}, s.Types)
}

func orderIDs(recs []field.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i], _ = r["orderId"].(string)
	}
	return out
}
