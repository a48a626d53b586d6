// Package validate checks records against their document specification.
//
// Validation never fails: it returns the ordered list of violations, empty
// when the record is acceptable. Fields are visited depth first in declared
// order. For each field the visibility predicate is evaluated against the
// sibling values first; hidden fields are skipped whether present or not.
// Then presence, kind, allowed values, numeric bounds and list length are
// checked, and nested objects and list elements are visited.
//
// Slugs are accepted in any form within their maximum length; StrictSlugs
// also requires the lowercase dash-separated form.
package validate

import (
	"sort"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/i18n"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

// Record validates rec against doc.
func Record(doc *schema.Document, rec field.Record, opts ...Option) issue.Violations {
	w := &walker{cfg: newConfig(opts)}
	w.object(doc.Fields, rec, issue.Root)
	return w.out
}

// Fields validates obj against an arbitrary field list, reporting paths
// relative to base.
func Fields(fields []*field.Spec, obj field.Record, base issue.Path, opts ...Option) issue.Violations {
	w := &walker{cfg: newConfig(opts)}
	w.object(fields, obj, base)
	return w.out
}

type walker struct {
	cfg config
	out issue.Violations
}

func (w *walker) add(v issue.Violation) {
	if v.Message == "" {
		v.Message = i18n.T(v.Code)
	}
	w.out = append(w.out, v)
}

func (w *walker) stopped() bool { return w.cfg.failFast && len(w.out) > 0 }

func (w *walker) object(fields []*field.Spec, obj field.Record, p issue.Path) {
	for _, fs := range fields {
		if w.stopped() {
			return
		}
		w.field(fs, obj, p.Field(fs.Name))
	}
	if w.cfg.unknown == UnknownReport && !w.stopped() {
		w.unknownKeys(fields, obj, p)
	}
}

func (w *walker) field(fs *field.Spec, parent field.Record, p issue.Path) {
	if fs.Hidden(parent) {
		return
	}
	v, ok := parent[fs.Name]
	if Absent(fs, v, ok) {
		if fs.Required {
			w.add(p.Violation(issue.CodeRequired, "required", nil))
		}
		return
	}
	w.value(fs, v, p)
}

func (w *walker) unknownKeys(fields []*field.Spec, obj field.Record, p issue.Path) {
	var unknown []string
	for k := range obj {
		if field.IsSystemKey(k) {
			continue
		}
		if _, known := field.Find(fields, k); !known {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		if w.stopped() {
			return
		}
		w.add(p.Field(k).Violation(issue.CodeUnknownKey, "declared field", obj[k]))
	}
}

// Absent reports whether a value counts as not provided for fs: a missing
// key, null, an empty string for text and date-time kinds, or a slug
// without a current value.
func Absent(fs *field.Spec, v any, present bool) bool {
	if !present || v == nil {
		return true
	}
	switch fs.Kind {
	case field.KindText, field.KindLongText, field.KindDateTime:
		s, ok := v.(string)
		return ok && s == ""
	case field.KindSlug:
		s, ok := slugCurrent(v)
		return ok && s == ""
	}
	return false
}
