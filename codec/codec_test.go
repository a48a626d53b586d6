package codec_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/codec"
)

func TestParseDateTime(t *testing.T) {
	got, ok := codec.ParseDateTime("2025-01-01T00:00:00Z")
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	got, ok = codec.ParseDateTime("2025-03-04T10:11:12.345Z")
	require.True(t, ok)
	assert.Equal(t, 345*time.Millisecond, time.Duration(got.Nanosecond()))

	_, ok = codec.ParseDateTime("04/03/2025")
	assert.False(t, ok)
	_, ok = codec.ParseDateTime(12)
	assert.False(t, ok)
	_, ok = codec.ParseDateTime(time.Time{})
	assert.False(t, ok)
}

func TestFormatDateTime_Canonical(t *testing.T) {
	ts := time.Date(2025, 1, 1, 1, 0, 0, 0, time.FixedZone("GMT+1", 3600))
	assert.Equal(t, "2025-01-01T00:00:00Z", codec.FormatDateTime(ts))
}

func TestFormatDate_DayMonthYear(t *testing.T) {
	ts := time.Date(2025, 2, 3, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "03/02/2025", codec.FormatDate(ts, nil))
	assert.Equal(t, "04/02/2025", codec.FormatDate(ts, time.FixedZone("UTC+2", 7200)))
}

func TestNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{in: 1.5, want: 1.5, ok: true},
		{in: 3, want: 3, ok: true},
		{in: int64(-2), want: -2, ok: true},
		{in: uint8(7), want: 7, ok: true},
		{in: json.Number("1234.5"), want: 1234.5, ok: true},
		{in: json.Number("x"), ok: false},
		{in: "12", ok: false},
		{in: nil, ok: false},
		{in: math.NaN(), ok: false},
		{in: math.Inf(1), ok: false},
	}
	for _, tc := range cases {
		got, ok := codec.Number(tc.in)
		assert.Equal(t, tc.ok, ok, "input %#v", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.50", codec.FormatAmount(1234.5))
	assert.Equal(t, "20.00", codec.FormatAmount(20))
	assert.Equal(t, "0.10", codec.FormatAmount(0.1))
	assert.True(t, codec.IsInteger(2))
	assert.False(t, codec.IsInteger(2.5))
	assert.Equal(t, "2", codec.FormatNumber(2))
	assert.Equal(t, "2.5", codec.FormatNumber(2.5))
}
