package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/validate"
)

func orderWithSnapshot() field.Record {
	rec := exampleOrder()
	rec["items"] = []any{
		map[string]any{
			"_key":            "a1",
			"product":         map[string]any{"_ref": "product-1", "_type": "reference"},
			"productSnapshot": map[string]any{"name": "Kente Wrap Dress", "price": 250.0},
			"quantity":        1,
			"priceAtPurchase": 250,
		},
		map[string]any{
			"_key":            "b2",
			"product":         map[string]any{"_ref": "product-2"},
			"quantity":        2,
			"priceAtPurchase": 40,
		},
	}
	return rec
}

func item(rec field.Record, i int) map[string]any {
	return rec["items"].([]any)[i].(map[string]any)
}

func TestUpdate_StatusTransitionIsAllowed(t *testing.T) {
	prev := orderWithSnapshot()
	next := orderWithSnapshot()
	next["deliveryStatus"] = "delivered"
	next["deliveredAt"] = "2025-02-01T12:00:00Z"
	item(next, 0)["productSnapshot"] = map[string]any{"name": "Kente Wrap Dress", "price": 250}

	assert.Empty(t, validate.Update(orderDoc, prev, next))
}

func TestUpdate_ReadOnlyOrderID(t *testing.T) {
	prev := orderWithSnapshot()
	next := orderWithSnapshot()
	next["orderId"] = "ORD-2"

	vs := validate.Update(orderDoc, prev, next)
	require.Len(t, vs, 1)
	assert.Equal(t, "orderId", vs[0].FieldPath)
	assert.Equal(t, issue.CodeReadOnly, vs[0].Code)
	assert.Equal(t, "ORD-2", vs[0].Actual)
}

func TestUpdate_SnapshotIsWriteOnce(t *testing.T) {
	prev := orderWithSnapshot()

	next := orderWithSnapshot()
	item(next, 0)["productSnapshot"] = map[string]any{"name": "Kente Wrap Dress", "price": 199.0}
	vs := validate.Update(orderDoc, prev, next)
	require.Len(t, vs, 1)
	assert.Equal(t, "items.0.productSnapshot", vs[0].FieldPath)
	assert.Equal(t, issue.CodeWriteOnce, vs[0].Code)

	next = orderWithSnapshot()
	delete(item(next, 0), "productSnapshot")
	vs = validate.Update(orderDoc, prev, next)
	require.Len(t, vs, 1)
	assert.Equal(t, issue.CodeWriteOnce, vs[0].Code)

	next = orderWithSnapshot()
	item(next, 1)["productSnapshot"] = map[string]any{"name": "Slides"}
	assert.Empty(t, validate.Update(orderDoc, prev, next), "first write is allowed")
}

func TestUpdate_ItemsMatchedByKey(t *testing.T) {
	prev := orderWithSnapshot()
	next := orderWithSnapshot()
	items := next["items"].([]any)
	next["items"] = []any{items[1], items[0]}

	assert.Empty(t, validate.Update(orderDoc, prev, next))

	item(next, 1)["productSnapshot"] = map[string]any{"name": "Other"}
	vs := validate.Update(orderDoc, prev, next)
	require.Len(t, vs, 1)
	assert.Equal(t, "items.1.productSnapshot", vs[0].FieldPath)
}

func TestUpdate_ItemsMatchedByIndexWithoutKeys(t *testing.T) {
	prev := exampleOrder()
	item(prev, 0)["productSnapshot"] = map[string]any{"name": "A"}
	next := exampleOrder()
	item(next, 0)["productSnapshot"] = map[string]any{"name": "B"}

	vs := validate.Update(orderDoc, prev, next)
	require.Len(t, vs, 1)
	assert.Equal(t, "items.0.productSnapshot", vs[0].FieldPath)
}

func TestUpdate_RecordViolationsComeFirst(t *testing.T) {
	prev := orderWithSnapshot()
	next := orderWithSnapshot()
	next["orderId"] = "ORD-9"
	next["deliveryStatus"] = "lost"

	vs := validate.Update(orderDoc, prev, next)
	assert.Equal(t, []string{"deliveryStatus", "orderId"}, vs.Paths())

	vs = validate.Update(orderDoc, prev, next, validate.FailFast())
	require.Len(t, vs, 1)
	assert.Equal(t, issue.CodeInvalidEnum, vs[0].Code)
}

func TestUpdate_NilPrevIsCreation(t *testing.T) {
	assert.Empty(t, validate.Update(orderDoc, nil, orderWithSnapshot()))
}
