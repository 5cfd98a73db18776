package cellparse

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"json number", json.Number("1250.75"), 1250.75},
		{"plain string", "42", 42},
		{"dollars", "$1,250.50", 1250.5},
		{"australian dollars", "A$ 2,000", 2000},
		{"AU prefix", "AU$300", 300},
		{"euro", "€99", 99},
		{"non-breaking space", "1\u00a0000", 1000},
		{"accounting negative", "($150.00)", -150},
		{"minus sign", "-20", -20},
		{"blank", "", 0},
		{"text", "n/a", 0},
		{"NaN", math.NaN(), 0},
		{"Inf string", "Inf", 0},
		{"unsupported type", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)

	inputs := []string{
		"2026-01-12",
		"2026-1-12",
		"12/01/2026",
		"12/1/2026",
		"2026/01/12",
		"Monday 12 January 2026",
		"Monday, 12 January 2026",
		"Mon 12 Jan 2026",
		"12 January 2026",
		"January 12, 2026",
		"Jan 12, 2026",
		"12-Jan-2026",
		"12.01.2026",
		"2026-01-12T09:30:00Z",
		"2026-01-12 17:45:00",
		"  2026-01-12  ",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, ok := ParseDate(in)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "not a date", "31/02/2026", "2026-13-01", "46034", "31.02.2026"} {
		t.Run(in, func(t *testing.T) {
			_, ok := ParseDate(in)
			assert.False(t, ok)
		})
	}
}

func TestParseDate_DayMonthOrder(t *testing.T) {
	got, ok := ParseDate("03/04/2026")

	assert.True(t, ok)
	assert.Equal(t, time.April, got.Month(), "slash dates are day first")
	assert.Equal(t, 3, got.Day())
}

func TestNumber_ReportsFailure(t *testing.T) {
	v, ok := Number("A$500")
	assert.True(t, ok)
	assert.Equal(t, 500.0, v)

	for _, in := range []any{nil, "", "lots", "NaN", math.Inf(1), true} {
		_, ok := Number(in)
		assert.False(t, ok, "%v", in)
	}
}

func TestParseDate_GenericFallback(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"March 3, 2026", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)},
		{"2026-02-27T23:10:00Z", time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC)},
		{"2026-02-27 08:00:00", time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
