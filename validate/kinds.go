package validate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/codec"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/slug"
)

func (w *walker) value(fs *field.Spec, v any, p issue.Path) {
	switch fs.Kind {
	case field.KindText, field.KindLongText:
		s, ok := v.(string)
		if !ok {
			w.typeMismatch(fs.Kind, v, p)
			return
		}
		w.enum(fs, s, p)
	case field.KindNumber:
		w.number(fs, v, p)
	case field.KindBoolean:
		if _, ok := v.(bool); !ok {
			w.typeMismatch(fs.Kind, v, p)
		}
	case field.KindDateTime:
		w.dateTime(v, p)
	case field.KindSlug:
		w.slug(fs, v, p)
	case field.KindImage:
		if !isImage(v) {
			w.add(p.Violation(issue.CodeInvalidType, "image {asset: {_ref}}", v))
		}
	case field.KindReference:
		if !isReference(v) {
			w.add(p.Violation(issue.CodeInvalidType, "reference {_ref}", v))
		}
	case field.KindObject:
		obj, ok := field.AsRecord(v)
		if !ok {
			w.typeMismatch(fs.Kind, v, p)
			return
		}
		w.object(fs.Fields, obj, p)
	case field.KindTextList, field.KindImageList, field.KindBlockList, field.KindObjectList:
		w.list(fs, v, p)
	default:
		w.add(p.Violationf(issue.CodeInvalidType, v, "known kind, got %s", fs.Kind))
	}
}

func (w *walker) typeMismatch(k field.Kind, v any, p issue.Path) {
	w.add(p.Violation(issue.CodeInvalidType, k.String(), v))
}

func (w *walker) enum(fs *field.Spec, s string, p issue.Path) {
	if !fs.Allows(s) {
		w.add(p.Violation(issue.CodeInvalidEnum, "one of ["+strings.Join(fs.AllowedValues(), ", ")+"]", s))
	}
}

func (w *walker) number(fs *field.Spec, v any, p issue.Path) {
	n, ok := codec.Number(v)
	if !ok {
		w.typeMismatch(fs.Kind, v, p)
		return
	}
	if fs.Min != nil && n < *fs.Min {
		w.add(p.Violation(issue.CodeTooSmall, ">= "+strconv.FormatFloat(*fs.Min, 'g', -1, 64), v))
		if w.stopped() {
			return
		}
	}
	if fs.Integer && !codec.IsInteger(n) {
		w.add(p.Violation(issue.CodeNotInteger, "integer", v))
	}
}

func (w *walker) dateTime(v any, p issue.Path) {
	if _, ok := codec.ParseDateTime(v); ok {
		return
	}
	if _, isString := v.(string); isString {
		w.add(p.Violation(issue.CodeInvalidFormat, "RFC3339 date-time", v))
		return
	}
	w.typeMismatch(field.KindDateTime, v, p)
}

func (w *walker) slug(fs *field.Spec, v any, p issue.Path) {
	s, ok := slugCurrent(v)
	if !ok {
		w.add(p.Violation(issue.CodeInvalidType, "slug {current}", v))
		return
	}
	if fs.MaxLength > 0 && utf8.RuneCountInString(s) > fs.MaxLength {
		w.add(p.Violationf(issue.CodeTooLong, s, "max length %d", fs.MaxLength))
		return
	}
	if w.cfg.strictSlugs && !slug.Valid(s) {
		w.add(p.Violation(issue.CodeInvalidFormat, "lowercase slug", s))
	}
}

func (w *walker) list(fs *field.Spec, v any, p issue.Path) {
	items, ok := field.AsList(v)
	if !ok {
		w.typeMismatch(fs.Kind, v, p)
		return
	}
	if len(items) < fs.MinItems {
		w.add(p.Violationf(issue.CodeTooShort, len(items), "min length %d", fs.MinItems))
		if w.stopped() {
			return
		}
	}
	for i, item := range items {
		if w.stopped() {
			return
		}
		w.element(fs, item, p.Index(i))
	}
}

func (w *walker) element(fs *field.Spec, v any, p issue.Path) {
	switch fs.Kind {
	case field.KindTextList:
		s, ok := v.(string)
		if !ok {
			w.add(p.Violation(issue.CodeInvalidType, "text", v))
			return
		}
		w.enum(fs, s, p)
	case field.KindImageList:
		if !isImage(v) {
			w.add(p.Violation(issue.CodeInvalidType, "image {asset: {_ref}}", v))
		}
	case field.KindBlockList:
		obj, ok := field.AsRecord(v)
		if !ok {
			w.add(p.Violation(issue.CodeInvalidType, "block {_type}", v))
			return
		}
		if t, _ := obj["_type"].(string); t == "" {
			w.add(p.Field("_type").Violation(issue.CodeRequired, "required", nil))
		}
	case field.KindObjectList:
		obj, ok := field.AsRecord(v)
		if !ok {
			w.add(p.Violation(issue.CodeInvalidType, "object", v))
			return
		}
		w.object(fs.Fields, obj, p)
	}
}

// slugCurrent extracts the slug text from {current: "..."} or a bare string.
// A missing or null current yields "".
func slugCurrent(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case map[string]any:
		c, ok := t["current"]
		if !ok || c == nil {
			return "", true
		}
		s, ok := c.(string)
		return s, ok
	}
	return "", false
}

func isImage(v any) bool {
	obj, ok := field.AsRecord(v)
	if !ok {
		return false
	}
	asset, ok := field.AsRecord(obj["asset"])
	if !ok {
		return false
	}
	ref, _ := asset["_ref"].(string)
	return ref != ""
}

// isReference accepts {_ref: "id"} and a bare non-empty id.
func isReference(v any) bool {
	switch t := v.(type) {
	case string:
		return t != ""
	case map[string]any:
		ref, _ := t["_ref"].(string)
		return ref != ""
	}
	return false
}

// Describe renders the constraint summary of fs, as used in exports.
func Describe(fs *field.Spec) string {
	var parts []string
	if fs.Required {
		parts = append(parts, "required")
	}
	if fs.Min != nil {
		parts = append(parts, ">= "+strconv.FormatFloat(*fs.Min, 'g', -1, 64))
	}
	if fs.Integer {
		parts = append(parts, "integer")
	}
	if fs.MinItems > 0 {
		parts = append(parts, fmt.Sprintf("min length %d", fs.MinItems))
	}
	if fs.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("max length %d", fs.MaxLength))
	}
	if vals := fs.AllowedValues(); len(vals) > 0 {
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if rule := fs.HiddenRule(); rule != "" {
		parts = append(parts, "hidden when "+rule)
	}
	return strings.Join(parts, ", ")
}
