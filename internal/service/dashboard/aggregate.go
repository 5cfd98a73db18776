package dashboard

import (
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
)

// Aggregate sums the records dated within [start, end] inclusive.
// No matching records yields the zero PeriodTotals.
func Aggregate(records []dashboard.DailyRecord, start, end time.Time) dashboard.PeriodTotals {
	start, end = dashboard.DateOf(start), dashboard.DateOf(end)

	var totals dashboard.PeriodTotals
	for _, rec := range records {
		d := dashboard.DateOf(rec.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		totals.Revenue += rec.Revenue
		totals.Sales += rec.Sales
		totals.Attended += rec.Attended
		totals.Bookings += rec.Bookings
		totals.Calls += rec.Calls
		totals.DaysWithData++
		totals.DailyData = append(totals.DailyData, rec)
	}
	if totals.DailyData == nil {
		totals.DailyData = []dashboard.DailyRecord{}
	}
	return totals
}

// ProRatedTargets scales the daily standards by the person's eligible working days.
func ProRatedTargets(daily dashboard.Targets, workingDays int) dashboard.Targets {
	return daily.Scale(float64(workingDays))
}

// Progress is the mean of actual/target across metrics, as a whole percentage.
// Metrics without a target contribute 0; no targets at all yields 0.
func Progress(totals dashboard.PeriodTotals, targets dashboard.Targets) int {
	var sum float64
	anyTarget := false
	for _, m := range dashboard.Metrics {
		target := targets.Get(m)
		if target <= 0 {
			continue
		}
		anyTarget = true
		sum += totals.Get(m) / target
	}
	if !anyTarget {
		return 0
	}
	return int(round(sum / float64(len(dashboard.Metrics)) * 100))
}
