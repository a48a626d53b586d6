package trendd

import (
	"fmt"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/preview"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/source"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/validate"
)

// Validate checks rec against the document type docType. The error is
// non-nil only when docType is not registered.
func Validate(docType string, rec field.Record, opts ...validate.Option) (issue.Violations, error) {
	doc, err := schema.Lookup(docType)
	if err != nil {
		return nil, err
	}
	return validate.Record(doc, rec, opts...), nil
}

// ValidateUpdate checks next as the replacement of the stored record prev:
// on top of Validate, read-only fields must keep their value and write-once
// fields cannot change after they were set.
func ValidateUpdate(docType string, prev, next field.Record, opts ...validate.Option) (issue.Violations, error) {
	doc, err := schema.Lookup(docType)
	if err != nil {
		return nil, err
	}
	return validate.Update(doc, prev, next, opts...), nil
}

// ValidateJSON decodes data and validates it. Duplicate keys are reported
// before the record's own violations. The error covers unknown types and
// input that is not a single JSON object.
func ValidateJSON(docType string, data []byte, opts ...validate.Option) (issue.Violations, error) {
	doc, err := schema.Lookup(docType)
	if err != nil {
		return nil, err
	}
	rec, dups, err := source.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("trendd: decode %s: %w", docType, err)
	}
	return issue.Append(dups, validate.Record(doc, rec, opts...)...), nil
}

// Project returns the list summary of rec using the default projector.
func Project(docType string, rec field.Record) (preview.Summary, error) {
	doc, err := schema.Lookup(docType)
	if err != nil {
		return preview.Summary{}, err
	}
	return preview.Project(doc, rec), nil
}

// ProjectJSON decodes data and projects it.
func ProjectJSON(docType string, data []byte) (preview.Summary, error) {
	doc, err := schema.Lookup(docType)
	if err != nil {
		return preview.Summary{}, err
	}
	rec, _, err := source.Decode(data)
	if err != nil {
		return preview.Summary{}, fmt.Errorf("trendd: decode %s: %w", docType, err)
	}
	return preview.Project(doc, rec), nil
}
