// Package cellparse reads loosely formatted spreadsheet cells.
package cellparse

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var numberReplacer = strings.NewReplacer(
	"A$", "", "AU$", "", "$", "", "€", "", "£", "",
	",", "", " ", "", "\u00a0", "",
)

// ParseNumber reads a currency or plain numeric cell, returning 0 on failure.
func ParseNumber(v any) float64 {
	f, _ := Number(v)
	return f
}

// Number reads a currency or plain numeric cell and reports whether it held
// a finite number.
func Number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := numberReplacer.Replace(strings.TrimSpace(n))
		negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
		s = strings.Trim(s, "()")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		if negative {
			parsed = -parsed
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var (
	isoLayouts  = []string{"2006-01-02", "2006-1-2"}
	dmyLayouts  = []string{"02/01/2006", "2/1/2006"}
	dotLayouts  = []string{"02.01.2006", "2.1.2006"}
	ymdLayouts  = []string{"2006/01/02", "2006/1/2"}
	longLayouts = []string{"2 January 2006", "2 Jan 2006", "2-Jan-2006", "02-Jan-2006"}
)

var weekdayNames = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {}, "friday": {}, "saturday": {}, "sunday": {},
	"mon": {}, "tue": {}, "tues": {}, "wed": {}, "thu": {}, "thur": {}, "thurs": {}, "fri": {}, "sat": {}, "sun": {},
}

// ParseDate accepts the date shapes found in manually maintained sheets and
// returns the calendar date at midnight UTC. Numeric-looking dates are day
// first; anything else goes through a generic parser.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || isDigits(s) {
		return time.Time{}, false
	}

	switch {
	case strings.Contains(s, "-") && len(s) <= 10 && isDigits(strings.ReplaceAll(s, "-", "")):
		return tryLayouts(s, isoLayouts)
	case strings.Count(s, "/") == 2:
		if strings.Index(s, "/") == 4 {
			return tryLayouts(s, ymdLayouts)
		}
		return tryLayouts(s, dmyLayouts)
	case strings.Count(s, ".") == 2 && isDigits(strings.ReplaceAll(s, ".", "")):
		return tryLayouts(s, dotLayouts)
	}

	if rest, ok := stripWeekday(s); ok {
		if t, ok := tryLayouts(rest, longLayouts); ok {
			return t, true
		}
	}
	if t, ok := tryLayouts(s, longLayouts); ok {
		return t, true
	}

	t, err := dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return dateOf(t), true
}

// isDigits reports whether s is made only of ASCII digits. A bare number is a
// spreadsheet serial or an amount, never a date.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// stripWeekday removes a leading weekday word, e.g. "Monday 12 January 2026".
func stripWeekday(s string) (string, bool) {
	first, rest, found := strings.Cut(s, " ")
	if !found {
		return "", false
	}
	first = strings.TrimSuffix(strings.ToLower(first), ",")
	if _, ok := weekdayNames[first]; !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func tryLayouts(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOf(t), true
		}
	}
	return time.Time{}, false
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
