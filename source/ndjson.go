package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/untillpro/goutils/logger"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
)

// MaxLineBytes bounds a single NDJSON line.
const MaxLineBytes = 16 << 20

// ErrStop may be returned by an EachNDJSON callback to end the iteration
// early without an error.
var ErrStop = errors.New("source: stop")

// Entry is one line of a dataset export.
type Entry struct {
	// Line is 1-based.
	Line int
	// Type is the _type of the record, empty when absent.
	Type       string
	Record     field.Record
	Duplicates issue.Violations
	// Err is set when the line could not be decoded; Record is nil then.
	Err error
}

// EachNDJSON calls fn for every non-blank line of r. Lines that fail to
// decode are passed to fn with Err set. Iteration stops at the first error
// returned by fn, at a read error or when ctx is done.
func EachNDJSON(ctx context.Context, r io.Reader, fn func(Entry) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxLineBytes)

	line, records := 0, 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		e := Entry{Line: line}
		rec, dups, err := Decode(raw)
		if err != nil {
			e.Err = fmt.Errorf("line %d: %w", line, err)
			logger.Warning("dataset: skipping line", line, ":", err)
		} else {
			e.Record, e.Duplicates = rec, dups
			e.Type, _ = rec["_type"].(string)
			records++
		}
		if err := fn(e); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("source: read line %d: %w", line+1, err)
	}
	if logger.IsVerbose() {
		logger.Verbose("dataset: decoded", records, "records from", line, "lines")
	}
	return nil
}

// ReadNDJSON collects the records of the given types ("" keeps all). Lines
// that fail to decode are returned as errors joined together.
func ReadNDJSON(ctx context.Context, r io.Reader, docType string) ([]field.Record, error) {
	var (
		out  []field.Record
		errs []error
	)
	err := EachNDJSON(ctx, r, func(e Entry) error {
		if e.Err != nil {
			errs = append(errs, e.Err)
			return nil
		}
		if docType == "" || e.Type == docType {
			out = append(out, e.Record)
		}
		return nil
	})
	if err != nil {
		return out, err
	}
	return out, errors.Join(errs...)
}
