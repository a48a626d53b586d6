// Package preview computes the list summaries editors see for a record.
//
// Projection is pure: it never mutates the record, never reads the clock and
// never fails. Missing or malformed inputs are rendered as placeholders or
// omitted.
package preview

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/codec"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

// Summary is the title, subtitle and media shown for a record in lists.
type Summary struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Media    any    `json:"media,omitempty"`
}

// DefaultCurrency prefixes every rendered amount unless overridden.
const DefaultCurrency = "GH₵"

const (
	iconPaid    = "✓"
	iconPending = "⏳"
	separator   = " • "
	placeholder = "-"
)

// Projector renders summaries with a fixed currency and time zone.
type Projector struct {
	currency string
	loc      *time.Location
}

// Option configures a Projector.
type Option func(*Projector)

// WithCurrency sets the amount prefix.
func WithCurrency(prefix string) Option { return func(p *Projector) { p.currency = prefix } }

// WithLocation sets the time zone order dates are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(p *Projector) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// New returns a Projector rendering amounts in GH₵ and dates in UTC unless
// configured otherwise.
func New(opts ...Option) *Projector {
	p := &Projector{currency: DefaultCurrency, loc: time.UTC}
	for _, o := range opts {
		if o != nil {
			o(p)
		}
	}
	return p
}

var defaultProjector = New()

// Project renders rec with the default Projector.
func Project(doc *schema.Document, rec field.Record) Summary {
	return defaultProjector.Project(doc, rec)
}

// Project renders the summary of rec. Documents that are neither orders nor
// products get a placeholder title.
func (p *Projector) Project(doc *schema.Document, rec field.Record) Summary {
	switch doc.Name {
	case schema.TypeOrder:
		return p.order(doc, rec)
	case schema.TypeProduct:
		return p.product(doc, rec)
	}
	return Summary{Title: placeholder}
}

func (p *Projector) order(doc *schema.Document, rec field.Record) Summary {
	sel := selector{doc: doc, rec: rec}

	icon := iconPending
	if status, _ := sel.string("paymentStatus"); status == string(schema.PaymentPaid) {
		icon = iconPaid
	}
	orderID, _ := sel.string("orderId")
	customer, _ := sel.string("customerName")
	title := icon + " " + orPlaceholder(orderID) + " - " + orPlaceholder(customer)

	var segs []string
	if total, ok := sel.number("total"); ok {
		segs = append(segs, p.amount(total))
	}
	if status, ok := sel.string("deliveryStatus"); ok && status != "" {
		segs = append(segs, status)
	}
	if created, ok := sel.value("createdAt"); ok {
		if t, ok := codec.ParseDateTime(created); ok {
			segs = append(segs, codec.FormatDate(t, p.loc))
		}
	}
	return Summary{Title: title, Subtitle: strings.Join(segs, separator)}
}

func (p *Projector) product(doc *schema.Document, rec field.Record) Summary {
	sel := selector{doc: doc, rec: rec}
	title, _ := sel.string("title")
	category, _ := sel.string("subtitle")
	media, _ := sel.value("media")
	return Summary{Title: title, Subtitle: capitalize(category), Media: media}
}

// ItemSummary renders one order line item: "<name> x<qty>" and the line
// amount.
func (p *Projector) ItemSummary(item field.Record) Summary {
	name, _ := field.LookupString(item, "productSnapshot.name")
	qv, _ := field.Lookup(item, "quantity")
	qty, qok := codec.Number(qv)
	pv, _ := field.Lookup(item, "priceAtPurchase")
	price, pok := codec.Number(pv)

	title := orPlaceholder(name) + " x"
	if qok {
		title += codec.FormatNumber(qty)
	} else {
		title += placeholder
	}
	var subtitle string
	if qok && pok {
		subtitle = p.amount(price * qty)
	}
	return Summary{Title: title, Subtitle: subtitle}
}

// Items renders every line item of an order.
func (p *Projector) Items(rec field.Record) []Summary {
	list, _ := field.AsList(rec["items"])
	out := make([]Summary, 0, len(list))
	for _, it := range list {
		item, _ := field.AsRecord(it)
		out = append(out, p.ItemSummary(item))
	}
	return out
}

func (p *Projector) amount(v float64) string { return p.currency + codec.FormatAmount(v) }

// selector reads the values a document's preview selects by alias.
type selector struct {
	doc *schema.Document
	rec field.Record
}

func (s selector) value(alias string) (any, bool) {
	path, ok := s.doc.Preview[alias]
	if !ok {
		path = alias
	}
	v, ok := field.Lookup(s.rec, path)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (s selector) string(alias string) (string, bool) {
	v, ok := s.value(alias)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s selector) number(alias string) (float64, bool) {
	v, ok := s.value(alias)
	if !ok {
		return 0, false
	}
	return codec.Number(v)
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
