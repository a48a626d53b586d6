package validate

import (
	"reflect"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/codec"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

// Update validates next as a replacement for the stored prev. In addition to
// the checks of Record it reports read_only when a read-only field differs
// from its stored value, and write_once when a write-once field that was
// already set is changed or cleared. Object list elements are paired by
// their _key, falling back to their position.
func Update(doc *schema.Document, prev, next field.Record, opts ...Option) issue.Violations {
	w := &walker{cfg: newConfig(opts)}
	w.object(doc.Fields, next, issue.Root)
	if w.stopped() || prev == nil {
		return w.out
	}
	w.immutable(doc.Fields, prev, next, issue.Root)
	return w.out
}

func (w *walker) immutable(fields []*field.Spec, prev, next field.Record, p issue.Path) {
	for _, fs := range fields {
		if w.stopped() {
			return
		}
		fp := p.Field(fs.Name)
		pv, pok := prev[fs.Name]
		nv, nok := next[fs.Name]
		prevSet := !Absent(fs, pv, pok)
		nextSet := !Absent(fs, nv, nok)

		switch {
		case fs.ReadOnly:
			if prevSet != nextSet || (prevSet && !sameValue(pv, nv)) {
				w.add(fp.Violation(issue.CodeReadOnly, "unchanged", nv))
			}
			continue
		case fs.WriteOnce:
			if prevSet && (!nextSet || !sameValue(pv, nv)) {
				w.add(fp.Violation(issue.CodeWriteOnce, "unchanged once set", nv))
			}
			continue
		}

		if !prevSet || !nextSet {
			continue
		}
		switch fs.Kind {
		case field.KindObject:
			po, pok := field.AsRecord(pv)
			no, nok := field.AsRecord(nv)
			if pok && nok {
				w.immutable(fs.Fields, po, no, fp)
			}
		case field.KindObjectList:
			w.immutableList(fs, pv, nv, fp)
		}
	}
}

func (w *walker) immutableList(fs *field.Spec, pv, nv any, p issue.Path) {
	prevItems, ok := field.AsList(pv)
	if !ok {
		return
	}
	nextItems, ok := field.AsList(nv)
	if !ok {
		return
	}
	byKey := make(map[string]field.Record, len(prevItems))
	for _, it := range prevItems {
		if rec, ok := field.AsRecord(it); ok {
			if k, _ := rec["_key"].(string); k != "" {
				byKey[k] = rec
			}
		}
	}
	for i, it := range nextItems {
		if w.stopped() {
			return
		}
		next, ok := field.AsRecord(it)
		if !ok {
			continue
		}
		var prev field.Record
		if k, _ := next["_key"].(string); k != "" {
			prev = byKey[k]
		} else if i < len(prevItems) {
			prev, _ = field.AsRecord(prevItems[i])
		}
		if prev != nil {
			w.immutable(fs.Fields, prev, next, p.Index(i))
		}
	}
}

// sameValue compares decoded JSON values, treating numbers of different Go
// types as equal when their values are.
func sameValue(a, b any) bool {
	if an, ok := codec.Number(a); ok {
		bn, ok := codec.Number(b)
		return ok && an == bn
	}
	switch at := a.(type) {
	case map[string]any:
		bt, ok := b.(map[string]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for k, av := range at {
			bv, ok := bt[k]
			if !ok || !sameValue(av, bv) {
				return false
			}
		}
		return true
	case []any:
		bl, ok := field.AsList(b)
		if !ok || len(at) != len(bl) {
			return false
		}
		for i := range at {
			if !sameValue(at[i], bl[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}
