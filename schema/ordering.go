package schema

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/codec"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
)

// Direction is a sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// OrderBy is one sort key of an Ordering.
type OrderBy struct {
	Field     string
	Direction Direction
}

// Ordering is a named list ordering offered to editors.
type Ordering struct {
	Name  string
	Title string
	By    []OrderBy
}

// Compare orders a and b by the ordering keys. Records lacking a key sort
// after records that have it, whatever the direction.
func (o Ordering) Compare(a, b field.Record) int {
	for _, by := range o.By {
		av, aok := lookupSortable(a, by.Field)
		bv, bok := lookupSortable(b, by.Field)
		switch {
		case !aok && !bok:
			continue
		case !aok:
			return 1
		case !bok:
			return -1
		}
		c := compareValues(av, bv)
		if by.Direction == Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// Sort sorts recs in place. Equal records keep their relative order.
func (o Ordering) Sort(recs []field.Record) {
	slices.SortStableFunc(recs, o.Compare)
}

func lookupSortable(rec field.Record, path string) (any, bool) {
	v, ok := field.Lookup(rec, path)
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return nil, false
	}
	return v, true
}

// compareValues ranks booleans before numbers before strings when the kinds
// differ.
func compareValues(a, b any) int {
	ar, br := rank(a), rank(b)
	if ar != br {
		return cmp.Compare(ar, br)
	}
	switch ar {
	case 0:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case 1:
		an, _ := codec.Number(a)
		bn, _ := codec.Number(b)
		return cmp.Compare(an, bn)
	}
	at, aok := codec.ParseDateTime(a)
	bt, bok := codec.ParseDateTime(b)
	if aok && bok {
		return at.Compare(bt)
	}
	return strings.Compare(toString(a), toString(b))
}

func rank(v any) int {
	if _, ok := v.(bool); ok {
		return 0
	}
	if _, ok := codec.Number(v); ok {
		return 1
	}
	return 2
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if t, ok := codec.ParseDateTime(v); ok {
		return codec.FormatDateTime(t)
	}
	return ""
}
