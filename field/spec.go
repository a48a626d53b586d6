// Package field describes the shape of document fields: their kind, presence
// and value constraints, initial values, and visibility.
//
// Specs are declared with the fluent builders in builder.go and frozen by
// Build. A built Spec is never mutated afterwards, so it can be shared by any
// number of concurrent validators.
package field

import (
	"fmt"
	"time"
)

// Kind is the value shape a field accepts.
type Kind int

const (
	KindText Kind = iota + 1
	KindLongText
	KindNumber
	KindBoolean
	KindDateTime
	KindSlug
	KindImage
	KindBlockList
	KindTextList
	KindObject
	KindReference
	KindObjectList
	KindImageList
)

var kindNames = map[Kind]string{
	KindText:       "text",
	KindLongText:   "long-text",
	KindNumber:     "number",
	KindBoolean:    "boolean",
	KindDateTime:   "date-time",
	KindSlug:       "slug",
	KindImage:      "image-reference",
	KindBlockList:  "rich-text-block-list",
	KindTextList:   "array-of-text",
	KindObject:     "object",
	KindReference:  "reference",
	KindObjectList: "array-of-object",
	KindImageList:  "array-of-image",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsText reports whether values of k are plain strings.
func (k Kind) IsText() bool { return k == KindText || k == KindLongText }

// IsList reports whether values of k are JSON arrays.
func (k Kind) IsList() bool {
	switch k {
	case KindBlockList, KindTextList, KindObjectList, KindImageList:
		return true
	}
	return false
}

// HasFields reports whether specs of kind k carry nested field specs.
func (k Kind) HasFields() bool { return k == KindObject || k == KindObjectList }

// Record is a document or nested object as decoded from JSON.
type Record = map[string]any

// Option is one entry of a closed value list (dropdown, radio or tags).
type Option struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

// Predicate decides from the sibling values of a field whether the field is
// relevant. It must be pure.
type Predicate func(parent Record) bool

// Initial produces the value a field receives when a document is created.
type Initial func(now time.Time) any

// Spec describes one field.
type Spec struct {
	Name        string
	Title       string
	Description string
	Kind        Kind

	Required  bool
	ReadOnly  bool
	WriteOnce bool

	// Numeric constraints; Min is nil when unbounded.
	Min     *float64
	Integer bool

	// MinItems applies to list kinds; 0 means no minimum.
	MinItems int

	// Slug options.
	Source    string
	MaxLength int

	// To lists the document types a reference may point at.
	To []string

	// Options is the closed value set. For KindTextList it applies to each
	// element.
	Options []Option

	initial       Initial
	initialStatic any
	hasStatic     bool
	hidden        Predicate
	hiddenDoc     string
	visibleKey    string
	visibleValue  string

	// Fields holds the nested specs of objects and of each element of an
	// object list.
	Fields []*Spec
}

// AllowedValues returns the option values in declaration order.
func (s *Spec) AllowedValues() []string {
	if len(s.Options) == 0 {
		return nil
	}
	out := make([]string, len(s.Options))
	for i, o := range s.Options {
		out[i] = o.Value
	}
	return out
}

// Allows reports whether v is in the closed value set. A spec without
// options allows everything.
func (s *Spec) Allows(v string) bool {
	if len(s.Options) == 0 {
		return true
	}
	for _, o := range s.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// OptionTitle returns the display title for value v, or v itself.
func (s *Spec) OptionTitle(v string) string {
	for _, o := range s.Options {
		if o.Value == v {
			return o.Title
		}
	}
	return v
}

// Hidden reports whether the field is irrelevant given its sibling values.
func (s *Spec) Hidden(parent Record) bool {
	if s.hidden == nil {
		return false
	}
	return s.hidden(parent)
}

// Conditional reports whether the field declares a visibility predicate.
func (s *Spec) Conditional() bool { return s.hidden != nil }

// HiddenRule describes the visibility predicate for documentation output.
func (s *Spec) HiddenRule() string { return s.hiddenDoc }

// VisibleWhen returns the sibling and value a HiddenUnless rule depends on.
func (s *Spec) VisibleWhen() (sibling, value string, ok bool) {
	return s.visibleKey, s.visibleValue, s.visibleKey != ""
}

// HasInitial reports whether the field declares an initial value.
func (s *Spec) HasInitial() bool { return s.initial != nil || s.hasStatic }

// StaticInitial returns the initial value when it does not depend on the
// creation time.
func (s *Spec) StaticInitial() (any, bool) { return s.initialStatic, s.hasStatic }

// InitialValue computes the initial value for a document created at now.
func (s *Spec) InitialValue(now time.Time) (any, bool) {
	switch {
	case s.hasStatic:
		return s.initialStatic, true
	case s.initial != nil:
		return s.initial(now), true
	}
	return nil, false
}

// Field returns the nested spec with the given name.
func (s *Spec) Field(name string) (*Spec, bool) {
	return Find(s.Fields, name)
}

// Find returns the spec with the given name from fields.
func Find(fields []*Spec, name string) (*Spec, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// CheckUnique verifies that names are unique within every object level.
func CheckUnique(fields []*Spec) error {
	return checkUnique(fields, "")
}

func checkUnique(fields []*Spec, prefix string) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("field: empty name under %q", prefix)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("field: duplicate name %q under %q", f.Name, prefix)
		}
		seen[f.Name] = struct{}{}
		if len(f.Fields) > 0 {
			if err := checkUnique(f.Fields, prefix+f.Name+"."); err != nil {
				return err
			}
		}
	}
	return nil
}
