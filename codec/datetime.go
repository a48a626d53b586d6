// Package codec converts JSON wire values into the Go values the validator
// and the projector work with.
package codec

import (
	"time"
)

// DateLayout is the day/month/year layout used in previews.
const DateLayout = "02/01/2006"

// ParseDateTime accepts an RFC3339 string (fractional seconds optional) or a
// time.Time. Anything else reports false.
func ParseDateTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case string:
		pt, err := parseRFC3339(t)
		if err != nil {
			return time.Time{}, false
		}
		return pt, true
	default:
		return time.Time{}, false
	}
}

// FormatDateTime renders t in canonical UTC RFC3339 form.
func FormatDateTime(t time.Time) string {
	// RFC3339Nano trims trailing zeros
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatDate renders the calendar date of t in loc as dd/mm/yyyy. A nil
// location means UTC.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
