package field

import (
	"fmt"
	"time"
)

// Builder declares a Spec step by step.
//
//	field.Number("quantity").Title("Quantity").Required().Min(1).Integer()
//	field.Object("customerInfo",
//	    field.Text("fullName").Required(),
//	    field.Text("phone").Required(),
//	)
type Builder struct {
	s      Spec
	fields []*Builder
}

func newBuilder(name string, k Kind) *Builder {
	return &Builder{s: Spec{Name: name, Kind: k}}
}

// Text declares a single-line string field.
func Text(name string) *Builder { return newBuilder(name, KindText) }

// LongText declares a multi-line string field.
func LongText(name string) *Builder { return newBuilder(name, KindLongText) }

// Number declares a numeric field.
func Number(name string) *Builder { return newBuilder(name, KindNumber) }

// Boolean declares a boolean field.
func Boolean(name string) *Builder { return newBuilder(name, KindBoolean) }

// DateTime declares an RFC3339 timestamp field.
func DateTime(name string) *Builder { return newBuilder(name, KindDateTime) }

// Slug declares a slug field generated from the source field, capped at
// maxLength characters.
func Slug(name, source string, maxLength int) *Builder {
	b := newBuilder(name, KindSlug)
	b.s.Source = source
	b.s.MaxLength = maxLength
	return b
}

// Image declares an image asset reference.
func Image(name string) *Builder { return newBuilder(name, KindImage) }

// ImageList declares an array of image asset references.
func ImageList(name string) *Builder { return newBuilder(name, KindImageList) }

// Blocks declares a rich text field stored as a list of blocks.
func Blocks(name string) *Builder { return newBuilder(name, KindBlockList) }

// TextList declares an array of strings.
func TextList(name string) *Builder { return newBuilder(name, KindTextList) }

// Reference declares a reference to a document of one of the given types.
func Reference(name string, to ...string) *Builder {
	b := newBuilder(name, KindReference)
	b.s.To = append([]string(nil), to...)
	return b
}

// Object declares a nested object with its own fields.
func Object(name string, fields ...*Builder) *Builder {
	b := newBuilder(name, KindObject)
	b.fields = fields
	return b
}

// ObjectList declares an array whose elements are objects with the given
// fields.
func ObjectList(name string, fields ...*Builder) *Builder {
	b := newBuilder(name, KindObjectList)
	b.fields = fields
	return b
}

// Title sets the editor label.
func (b *Builder) Title(t string) *Builder { b.s.Title = t; return b }

// Description sets the editor help text.
func (b *Builder) Description(d string) *Builder { b.s.Description = d; return b }

// Required marks the field as required.
func (b *Builder) Required() *Builder { b.s.Required = true; return b }

// ReadOnly marks the field as not editable once the document exists.
func (b *Builder) ReadOnly() *Builder { b.s.ReadOnly = true; return b }

// WriteOnce marks the field as frozen after its first non-empty value.
func (b *Builder) WriteOnce() *Builder { b.s.WriteOnce = true; return b }

// Min sets an inclusive lower bound for numbers, or the minimum element count
// for lists.
func (b *Builder) Min(n float64) *Builder {
	if b.s.Kind.IsList() {
		b.s.MinItems = int(n)
		return b
	}
	b.s.Min = &n
	return b
}

// Integer restricts a number to whole values.
func (b *Builder) Integer() *Builder { b.s.Integer = true; return b }

// Options sets the closed value set.
func (b *Builder) Options(opts ...Option) *Builder {
	b.s.Options = append([]Option(nil), opts...)
	return b
}

// Values sets a closed value set whose titles equal the values.
func (b *Builder) Values(values ...string) *Builder {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Title: v, Value: v}
	}
	b.s.Options = opts
	return b
}

// Default sets a static initial value.
func (b *Builder) Default(v any) *Builder {
	b.s.initialStatic = v
	b.s.hasStatic = true
	b.s.initial = nil
	return b
}

// DefaultFunc sets an initial value computed at creation time.
func (b *Builder) DefaultFunc(fn Initial) *Builder {
	b.s.initial = fn
	b.s.initialStatic = nil
	b.s.hasStatic = false
	return b
}

// DefaultNow sets the creation timestamp as the initial value.
func (b *Builder) DefaultNow() *Builder {
	return b.DefaultFunc(func(now time.Time) any { return now.UTC().Format(time.RFC3339Nano) })
}

// HiddenWhen sets the visibility predicate; doc describes it for exports.
func (b *Builder) HiddenWhen(doc string, p Predicate) *Builder {
	b.s.hidden = p
	b.s.hiddenDoc = doc
	b.s.visibleKey, b.s.visibleValue = "", ""
	return b
}

// HiddenUnless hides the field unless the sibling field equals value.
func (b *Builder) HiddenUnless(sibling, value string) *Builder {
	b.HiddenWhen(fmt.Sprintf("%s != %q", sibling, value), func(parent Record) bool {
		v, _ := parent[sibling].(string)
		return v != value
	})
	b.s.visibleKey, b.s.visibleValue = sibling, value
	return b
}

// Build freezes the declaration into a Spec.
func (b *Builder) Build() *Spec {
	s := b.s
	s.To = append([]string(nil), b.s.To...)
	s.Options = append([]Option(nil), b.s.Options...)
	if len(b.fields) > 0 {
		s.Fields = make([]*Spec, len(b.fields))
		for i, fb := range b.fields {
			s.Fields[i] = fb.Build()
		}
	}
	return &s
}

// BuildAll builds every builder in order.
func BuildAll(bs ...*Builder) []*Spec {
	out := make([]*Spec, len(bs))
	for i, b := range bs {
		out[i] = b.Build()
	}
	return out
}
