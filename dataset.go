package trendd

import (
	"context"
	"io"

	"github.com/untillpro/goutils/logger"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/source"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/validate"
)

// LineReport is the outcome for one record of a dataset export.
type LineReport struct {
	Line       int              `json:"line"`
	ID         string           `json:"id,omitempty"`
	Type       string           `json:"type,omitempty"`
	Violations issue.Violations `json:"violations,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// DatasetReport summarizes ValidateDataset. Lines lists only records that
// failed: a decode error, duplicate keys or violations.
type DatasetReport struct {
	Checked int          `json:"checked"`
	Skipped int          `json:"skipped"`
	Invalid int          `json:"invalid"`
	Lines   []LineReport `json:"lines"`
}

// OK reports whether every checked record was valid.
func (r DatasetReport) OK() bool { return r.Invalid == 0 }

// ValidateDataset validates every order and product of an NDJSON export.
// Records of other types (assets, system documents) are skipped.
func ValidateDataset(ctx context.Context, r io.Reader, opts ...validate.Option) (DatasetReport, error) {
	rep := DatasetReport{Lines: []LineReport{}}
	err := source.EachNDJSON(ctx, r, func(e source.Entry) error {
		if e.Err != nil {
			rep.Invalid++
			rep.Lines = append(rep.Lines, LineReport{Line: e.Line, Error: e.Err.Error()})
			return nil
		}
		doc, err := schema.Lookup(e.Type)
		if err != nil {
			rep.Skipped++
			return nil
		}
		rep.Checked++
		vs := issue.Append(e.Duplicates, validate.Record(doc, e.Record, opts...)...)
		if len(vs) == 0 {
			return nil
		}
		rep.Invalid++
		id, _ := e.Record["_id"].(string)
		rep.Lines = append(rep.Lines, LineReport{Line: e.Line, ID: id, Type: e.Type, Violations: vs})
		return nil
	})
	if err != nil {
		return rep, err
	}
	if logger.IsVerbose() {
		logger.Verbose("dataset:", rep.Checked, "checked,", rep.Skipped, "skipped,", rep.Invalid, "invalid")
	}
	return rep, nil
}
