package field

import (
	"strconv"
	"strings"
)

// Lookup resolves a dot-joined path ("customerInfo.fullName", "items.0.product")
// inside rec. It reports false when any segment is missing or when a segment
// addresses something that is not an object or array.
func Lookup(rec Record, path string) (any, bool) {
	if path == "" {
		return rec, rec != nil
	}
	var cur any = rec
	for _, seg := range strings.Split(path, ".") {
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// LookupString is Lookup restricted to string values.
func LookupString(rec Record, path string) (string, bool) {
	v, ok := Lookup(rec, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// AsRecord returns v as a Record when it is a JSON object.
func AsRecord(v any) (Record, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// AsList returns v as a JSON array. Typed string slices are accepted so that
// records built in Go code validate like decoded JSON.
func AsList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// IsSystemKey reports whether key is a CMS-managed attribute such as _id,
// _type, _rev or _key.
func IsSystemKey(key string) bool { return strings.HasPrefix(key, "_") }
