// Package trendd validates and previews the documents of the Bend-the-trendd
// content studio: customer orders and catalog products.
//
//   - Declarative document types live in schema (field trees, enums,
//     orderings, studio wiring).
//   - validate checks a record against its type and returns every violation
//     with a dot-joined field path, a stable code and the failed constraint.
//   - preview projects a record onto the title/subtitle/media summary shown
//     in studio lists.
//
// This package is a thin facade over those packages keyed by document type
// name. JSON input goes through source, which also reports duplicate keys.
//
// Typical usage:
//
//	vs, err := trendd.ValidateJSON("order", body)
//	if err != nil {
//	    return err // unknown type or malformed JSON
//	}
//	if !vs.OK() {
//	    return vs
//	}
//	sum, _ := trendd.ProjectJSON("order", body)
package trendd
