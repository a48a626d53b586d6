package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
)

// NewDocument returns a fresh record of the named type carrying a new _id,
// its _type and every declared initial value. Nested objects are created
// only when one of their fields has an initial value. Orders also receive a
// generated orderId.
func NewDocument(typeName string, now time.Time) (field.Record, error) {
	doc, err := Lookup(typeName)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	rec := field.Record{
		"_id":   id.String(),
		"_type": doc.Name,
	}
	applyInitial(rec, doc.Fields, now)
	if doc.Name == TypeOrder {
		rec["orderId"] = orderID(now, id)
	}
	return rec, nil
}

// Initial returns only the declared initial values of doc, without system
// keys.
func (d *Document) Initial(now time.Time) field.Record {
	rec := field.Record{}
	applyInitial(rec, d.Fields, now)
	return rec
}

func applyInitial(dst field.Record, fields []*field.Spec, now time.Time) {
	for _, fs := range fields {
		if v, ok := fs.InitialValue(now); ok {
			dst[fs.Name] = v
			continue
		}
		if fs.Kind != field.KindObject {
			continue
		}
		nested := field.Record{}
		applyInitial(nested, fs.Fields, now)
		if len(nested) > 0 {
			dst[fs.Name] = nested
		}
	}
}
