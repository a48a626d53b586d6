// Package source turns JSON input into records: single documents, request
// bodies and NDJSON dataset exports. Numbers are kept as json.Number so that
// integer checks see the value exactly as written.
package source

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
)

// Decode parses data as one JSON object. Duplicate keys are returned as
// violations; malformed input, trailing data and non-object documents are
// errors.
func Decode(data []byte) (field.Record, issue.Violations, error) {
	dups, err := DuplicateKeys(data)
	if err != nil {
		return nil, nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, nil, fmt.Errorf("source: decode: %w", err)
	}
	rec, ok := v.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w (got %s)", ErrNotObject, jsonKind(v))
	}
	return rec, dups, nil
}

// Read is Decode over the whole of r.
func Read(r io.Reader) (field.Record, issue.Violations, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("source: read: %w", err)
	}
	return Decode(data)
}

// ParseViolation reports a decoding error as a violation at the document
// root, for callers that answer with a violation list only.
func ParseViolation(err error) issue.Violation {
	v := issue.Root.Violation(issue.CodeParseError, "JSON object", nil)
	v.Message = err.Error()
	return v
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	return "number"
}
