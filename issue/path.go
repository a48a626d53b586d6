package issue

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is an immutable field path. Segments are object keys or decimal array
// indices. Field and Index never alias the receiver's backing array, so a
// parent path can be shared by sibling branches during traversal.
type Path []string

// Root is the empty path.
var Root Path

// Field returns p extended with an object key.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	return append(append(make(Path, 0, len(p)+1), p...), name)
}

// Index returns p extended with an array index.
func (p Path) Index(i int) Path {
	return append(append(make(Path, 0, len(p)+1), p...), strconv.Itoa(i))
}

// Join appends other to p.
func (p Path) Join(other Path) Path {
	return append(append(make(Path, 0, len(p)+len(other)), p...), other...)
}

// String renders the dot-joined form used in Violation.FieldPath.
func (p Path) String() string { return strings.Join(p, ".") }

// Pointer renders p as an RFC 6901 JSON Pointer.
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	esc := make([]string, len(p))
	for i, s := range p {
		// escape '~' -> '~0', '/' -> '~1'
		esc[i] = strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
	}
	return "/" + strings.Join(esc, "/")
}

// Violation creates a Violation at p.
func (p Path) Violation(code, expected string, actual any) Violation {
	return Violation{FieldPath: p.String(), Code: code, Expected: expected, Actual: actual}
}

// Violationf is like Violation with a formatted expectation.
func (p Path) Violationf(code string, actual any, format string, args ...any) Violation {
	return p.Violation(code, fmt.Sprintf(format, args...), actual)
}

// ParsePath splits a dot-joined path. The empty string is the root.
func ParsePath(s string) Path {
	if s == "" {
		return Root
	}
	return Path(strings.Split(s, "."))
}
