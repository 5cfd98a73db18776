package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/cellparse"
)

// Column layout of a member sheet.
const (
	colDate = iota
	colRevenue
	colSales
	colAttended
	colBookings
	colCalls
)

// ParseRows converts a member sheet into records. The header row is always
// dropped, as is any row whose date cannot be parsed.
func ParseRows(rows []dashboard.RawRow) []dashboard.DailyRecord {
	if len(rows) < 2 {
		return nil
	}
	records := make([]dashboard.DailyRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rec, ok := ParseRow(row); ok {
			records = append(records, rec)
		}
	}
	return records
}

// ParseRow builds a DailyRecord from [date, revenue, sales, attended, bookings, calls].
// Numeric cells never fail; a missing or unparseable date rejects the row.
func ParseRow(row dashboard.RawRow) (dashboard.DailyRecord, bool) {
	date, ok := cellparse.ParseDate(cellString(row, colDate))
	if !ok {
		return dashboard.DailyRecord{}, false
	}
	return dashboard.DailyRecord{
		Date:     date,
		Revenue:  cellparse.ParseNumber(cell(row, colRevenue)),
		Sales:    parseCount(cell(row, colSales)),
		Attended: parseCount(cell(row, colAttended)),
		Bookings: parseCount(cell(row, colBookings)),
		Calls:    parseCount(cell(row, colCalls)),
	}, true
}

func cell(row dashboard.RawRow, i int) any {
	if i < len(row) {
		return row[i]
	}
	return nil
}

func cellString(row dashboard.RawRow, i int) string {
	switch v := cell(row, i).(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// parseCount truncates a count cell. Values outside the int range are
// treated as malformed and read as 0.
func parseCount(v any) int {
	f := math.Trunc(cellparse.ParseNumber(v))
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0
	}
	return int(f)
}
