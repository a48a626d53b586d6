package field_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
)

func TestBuilder_ObjectListWithNestedFields(t *testing.T) {
	s := field.ObjectList("items",
		field.Reference("product", "product").Required(),
		field.Number("quantity").Required().Min(1).Integer(),
	).Required().Min(1).Build()

	assert.Equal(t, field.KindObjectList, s.Kind)
	assert.True(t, s.Required)
	assert.Equal(t, 1, s.MinItems)
	assert.Nil(t, s.Min)
	require.Len(t, s.Fields, 2)

	q, ok := s.Field("quantity")
	require.True(t, ok)
	require.NotNil(t, q.Min)
	assert.Equal(t, 1.0, *q.Min)
	assert.True(t, q.Integer)

	p, ok := s.Field("product")
	require.True(t, ok)
	assert.Equal(t, []string{"product"}, p.To)
}

func TestBuilder_BuildIsACopy(t *testing.T) {
	b := field.Text("status").Values("a", "b")
	first := b.Build()
	b.Values("c")
	second := b.Build()

	assert.Equal(t, []string{"a", "b"}, first.AllowedValues())
	assert.Equal(t, []string{"c"}, second.AllowedValues())
}

func TestSpec_OptionsAndTitles(t *testing.T) {
	s := field.Text("status").Options(
		field.Option{Title: "Paid", Value: "paid"},
		field.Option{Title: "Pending", Value: "pending"},
	).Build()

	assert.True(t, s.Allows("paid"))
	assert.False(t, s.Allows("PAID"))
	assert.Equal(t, "Paid", s.OptionTitle("paid"))
	assert.Equal(t, "other", s.OptionTitle("other"))

	free := field.Text("note").Build()
	assert.True(t, free.Allows("anything"))
	assert.Nil(t, free.AllowedValues())
}

func TestSpec_HiddenUnless(t *testing.T) {
	s := field.TextList("sizes").HiddenUnless("category", "clothing").Build()

	assert.True(t, s.Conditional())
	assert.False(t, s.Hidden(field.Record{"category": "clothing"}))
	assert.True(t, s.Hidden(field.Record{"category": "sneakers"}))
	assert.True(t, s.Hidden(field.Record{}))
	assert.True(t, s.Hidden(nil))
	assert.Equal(t, `category != "clothing"`, s.HiddenRule())
	sibling, value, ok := s.VisibleWhen()
	require.True(t, ok)
	assert.Equal(t, "category", sibling)
	assert.Equal(t, "clothing", value)

	always := field.Text("name").Build()
	assert.False(t, always.Hidden(nil))
}

func TestSpec_InitialValues(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	static := field.Number("discount").Default(0).Build()
	v, ok := static.InitialValue(now)
	require.True(t, ok)
	assert.Equal(t, 0, v)
	_, isStatic := static.StaticInitial()
	assert.True(t, isStatic)

	computed := field.DateTime("createdAt").DefaultNow().Build()
	v, ok = computed.InitialValue(now)
	require.True(t, ok)
	assert.Equal(t, "2025-01-02T03:04:05Z", v)
	_, isStatic = computed.StaticInitial()
	assert.False(t, isStatic)

	none := field.Text("name").Build()
	assert.False(t, none.HasInitial())
}

func TestCheckUnique(t *testing.T) {
	ok := field.BuildAll(
		field.Text("name"),
		field.Object("info", field.Text("name")),
	)
	require.NoError(t, field.CheckUnique(ok))

	dup := field.BuildAll(
		field.Text("name"),
		field.Object("info", field.Text("a"), field.Text("a")),
	)
	err := field.CheckUnique(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"info."`)
}

func TestLookup(t *testing.T) {
	rec := field.Record{
		"customerInfo": map[string]any{"fullName": "Ama"},
		"items": []any{
			map[string]any{"quantity": 2},
		},
	}

	v, ok := field.Lookup(rec, "customerInfo.fullName")
	require.True(t, ok)
	assert.Equal(t, "Ama", v)

	v, ok = field.Lookup(rec, "items.0.quantity")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = field.Lookup(rec, "items.1.quantity")
	assert.False(t, ok)
	_, ok = field.Lookup(rec, "customerInfo.fullName.first")
	assert.False(t, ok)

	s, ok := field.LookupString(rec, "customerInfo.fullName")
	require.True(t, ok)
	assert.Equal(t, "Ama", s)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "array-of-object", field.KindObjectList.String())
	assert.Equal(t, "kind(99)", field.Kind(99).String())
	assert.True(t, field.KindTextList.IsList())
	assert.False(t, field.KindObject.IsList())
	assert.True(t, field.KindObject.HasFields())
}
