package codec

import (
	"math"
	"strconv"
)

// jsonNumber matches encoding/json.Number and the go-json equivalent without
// importing either.
type jsonNumber interface {
	Float64() (float64, error)
	String() string
}

// Number converts a decoded JSON number into float64. Strings are not
// numbers. NaN and infinities report false.
func Number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case jsonNumber:
		x, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsInteger reports whether f has no fractional part.
func IsInteger(f float64) bool { return f == math.Trunc(f) }

// FormatAmount renders f with exactly two decimals and no grouping.
func FormatAmount(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

// FormatNumber renders f in its shortest decimal form ("2", "2.5").
func FormatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
