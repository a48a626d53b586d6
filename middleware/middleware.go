// Package middleware validates JSON request bodies against a document type
// before they reach a handler.
//
// A request whose body is not a JSON object is answered with 400, a body
// that violates the document type with 422, both carrying
// {"issues": [...]}. Accepted records are stored in the request context.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/untillpro/goutils/logger"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/source"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/validate"
)

// DefaultMaxBytes bounds request bodies unless WithMaxBytes says otherwise.
const DefaultMaxBytes = 1 << 20

// Decoded is an accepted request body.
type Decoded struct {
	Type   string
	Record field.Record
}

type ctxKeyDecoded struct{}

// ContextWithDecoded attaches d to ctx.
func ContextWithDecoded(ctx context.Context, d Decoded) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded{}, d)
}

// DecodedFromContext retrieves the record stored by ValidateJSON.
func DecodedFromContext(ctx context.Context) (Decoded, bool) {
	d, ok := ctx.Value(ctxKeyDecoded{}).(Decoded)
	return d, ok
}

// ErrorPayload shapes violations for JSON responses.
func ErrorPayload(vs issue.Violations) map[string]any {
	if vs == nil {
		vs = issue.Violations{}
	}
	return map[string]any{"issues": vs}
}

// PreviousFunc loads the stored version of the record a request replaces.
// It returns a nil record when there is none.
type PreviousFunc func(r *http.Request) (field.Record, error)

// Option configures ValidateJSON.
type Option func(*config)

type config struct {
	validate      []validate.Option
	allowDupKeys  bool
	maxBytes      int64
	previous      PreviousFunc
	statusInvalid int
}

// WithValidateOptions passes options to the validator.
func WithValidateOptions(opts ...validate.Option) Option {
	return func(c *config) { c.validate = append(c.validate, opts...) }
}

// AllowDuplicateKeys accepts bodies that repeat an object key; the last
// value wins.
func AllowDuplicateKeys() Option { return func(c *config) { c.allowDupKeys = true } }

// WithMaxBytes bounds the request body size.
func WithMaxBytes(n int64) Option { return func(c *config) { c.maxBytes = n } }

// WithPrevious enables update checks against the stored record.
func WithPrevious(fn PreviousFunc) Option { return func(c *config) { c.previous = fn } }

// WithInvalidStatus sets the status used for violations, 422 by default.
func WithInvalidStatus(code int) Option { return func(c *config) { c.statusInvalid = code } }

// ValidateJSON returns middleware accepting only request bodies that are
// valid records of docType. It fails for unregistered types.
func ValidateJSON(docType string, opts ...Option) (func(http.Handler) http.Handler, error) {
	doc, err := schema.Lookup(docType)
	if err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}
	cfg := config{maxBytes: DefaultMaxBytes, statusInvalid: http.StatusUnprocessableEntity}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec, vs, status := cfg.check(doc, w, r)
			if status != 0 {
				if logger.IsVerbose() {
					logger.Verbose("middleware:", r.Method, r.URL.Path, "rejected", docType, "with", status, ":", vs.Error())
				}
				writeJSON(w, status, ErrorPayload(vs))
				return
			}
			ctx := ContextWithDecoded(r.Context(), Decoded{Type: doc.Name, Record: rec})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}, nil
}

// check returns a non-zero status when the request must be rejected.
func (c config) check(doc *schema.Document, w http.ResponseWriter, r *http.Request) (field.Record, issue.Violations, int) {
	body := http.MaxBytesReader(w, r.Body, c.maxBytes)
	rec, dups, err := source.Read(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, issue.Violations{source.ParseViolation(err)}, http.StatusRequestEntityTooLarge
		}
		return nil, issue.Violations{source.ParseViolation(err)}, http.StatusBadRequest
	}
	if len(dups) > 0 && !c.allowDupKeys {
		return nil, dups, http.StatusBadRequest
	}

	var vs issue.Violations
	if c.previous != nil {
		prev, err := c.previous(r)
		if err != nil {
			logger.Error("middleware: load previous", doc.Name, ":", err)
			return nil, nil, http.StatusInternalServerError
		}
		vs = validate.Update(doc, prev, rec, c.validate...)
	} else {
		vs = validate.Record(doc, rec, c.validate...)
	}
	if len(vs) > 0 {
		return nil, vs, c.statusInvalid
	}
	return rec, nil, 0
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("middleware: write response:", err)
	}
}
