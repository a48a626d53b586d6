// Package schema is the registry of document types known to the studio:
// "order" and "product". The registry is built once at package
// initialization and never changes afterwards.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
)

// Registered document type names.
const (
	TypeOrder   = "order"
	TypeProduct = "product"
)

// ErrUnknownType matches every *UnknownTypeError.
var ErrUnknownType = errors.New("unknown document type")

// UnknownTypeError reports a lookup of a type that is not registered.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("schema: unknown document type %q (registered: %s)", e.Name, strings.Join(Names(), ", "))
}

// Is makes errors.Is(err, ErrUnknownType) hold.
func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }

// Document is the field specification tree of one document type. Documents
// returned by Lookup are shared and must be treated as read-only.
type Document struct {
	Name   string
	Title  string
	Fields []*field.Spec

	// Preview maps selection aliases to field paths, for example
	// "customerName" -> "customerInfo.fullName".
	Preview map[string]string

	Orderings []Ordering
}

// Field returns the top-level field with the given name.
func (d *Document) Field(name string) (*field.Spec, bool) { return field.Find(d.Fields, name) }

// Ordering returns the named list ordering.
func (d *Document) Ordering(name string) (Ordering, bool) {
	for _, o := range d.Orderings {
		if o.Name == name {
			return o, true
		}
	}
	return Ordering{}, false
}

func define(name, title string, fields ...*field.Builder) *Document {
	return &Document{Name: name, Title: title, Fields: field.BuildAll(fields...)}
}

var registry = mustRegistry(orderDocument(), productDocument())

func mustRegistry(docs ...*Document) map[string]*Document {
	out := make(map[string]*Document, len(docs))
	for _, d := range docs {
		if _, dup := out[d.Name]; dup {
			panic(fmt.Sprintf("schema: document %q registered twice", d.Name))
		}
		if err := field.CheckUnique(d.Fields); err != nil {
			panic(fmt.Sprintf("schema: document %q: %v", d.Name, err))
		}
		out[d.Name] = d
	}
	return out
}

// Lookup returns the document registered under name.
func Lookup(name string) (*Document, error) {
	d, ok := registry[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return d, nil
}

// MustLookup is like Lookup but panics on unknown names.
func MustLookup(name string) *Document {
	d, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Names returns the registered type names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// All returns the registered documents ordered by name.
func All() []*Document {
	names := Names()
	out := make([]*Document, len(names))
	for i, n := range names {
		out[i] = registry[n]
	}
	return out
}
