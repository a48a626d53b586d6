// Package issue holds the violation model shared by the validator, the JSON
// source and the HTTP middleware.
//
// A Violation is data, not a failure: validation always returns the complete
// list so callers can surface every problem at once. Violations implements
// error for callers that prefer to return the list through an error value.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes. They are stable and safe to match on.
const (
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeInvalidEnum   = "invalid_enum"
	CodeTooSmall      = "too_small"
	CodeNotInteger    = "not_integer"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeInvalidFormat = "invalid_format"
	CodeUnknownKey    = "unknown_key"
	CodeDuplicateKey  = "duplicate_key"
	CodeParseError    = "parse_error"
	CodeReadOnly      = "read_only"
	CodeWriteOnce     = "write_once"
)

// Violation describes one failed constraint.
type Violation struct {
	// FieldPath is the dot-joined path from the document root, array indices
	// included as segments (for example "items.0.quantity"). The root is "".
	FieldPath string `json:"fieldPath"`
	Code      string `json:"code"`
	// Expected is a short, human-readable form of the constraint, such as
	// "min length 1" or "one of [pending paid failed refunded]".
	Expected string `json:"expectedConstraint"`
	Actual   any    `json:"actualValue,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (v Violation) String() string {
	p := v.FieldPath
	if p == "" {
		p = "(root)"
	}
	if v.Expected == "" {
		return fmt.Sprintf("%s at %s", v.Code, p)
	}
	return fmt.Sprintf("%s at %s (expected %s)", v.Code, p, v.Expected)
}

// Pointer renders FieldPath as an RFC 6901 JSON Pointer.
func (v Violation) Pointer() string { return ParsePath(v.FieldPath).Pointer() }

// Violations is an ordered list of violations. An empty list means valid.
type Violations []Violation

// Error summarizes the first few violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(vs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(vs[i].String())
	}
	if len(vs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(vs))
	}
	return b.String()
}

// OK reports whether the list is empty.
func (vs Violations) OK() bool { return len(vs) == 0 }

// Paths returns the field paths in order.
func (vs Violations) Paths() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.FieldPath
	}
	return out
}

// At returns the violations reported for exactly the given path.
func (vs Violations) At(path string) Violations {
	var out Violations
	for _, v := range vs {
		if v.FieldPath == path {
			out = append(out, v)
		}
	}
	return out
}

// Rebase prefixes every path with base. It is used when a nested document is
// validated on its own and its result is merged into a parent report.
func (vs Violations) Rebase(base Path) Violations {
	if len(vs) == 0 || len(base) == 0 {
		return vs
	}
	out := make(Violations, len(vs))
	for i, v := range vs {
		v.FieldPath = base.Join(ParsePath(v.FieldPath)).String()
		out[i] = v
	}
	return out
}

// Append appends violations to dst, initializing the slice when needed.
func Append(dst Violations, more ...Violation) Violations {
	if dst == nil {
		dst = Violations{}
	}
	return append(dst, more...)
}

// AsViolations extracts Violations from an error using errors.As.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}
