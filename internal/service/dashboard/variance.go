package dashboard

import (
	"math"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
)

// CalculateVariance compares actual against target. DaysAheadBehind expresses
// the gap in days of dailyTarget, rounded to one decimal place.
func CalculateVariance(actual, target, dailyTarget float64) dashboard.Variance {
	diff := actual - target

	var percentage, days float64
	if target > 0 {
		percentage = round(diff / target * 100)
	}
	if dailyTarget > 0 {
		days = round(diff/dailyTarget*10) / 10
	}

	return dashboard.Variance{
		Diff:            diff,
		Percentage:      percentage,
		DaysAheadBehind: days,
	}
}

// CalculateVariances applies CalculateVariance to every metric.
func CalculateVariances(totals dashboard.PeriodTotals, targets, daily dashboard.Targets) dashboard.Variances {
	var v dashboard.Variances
	for _, m := range dashboard.Metrics {
		v.Set(m, CalculateVariance(totals.Get(m), targets.Get(m), daily.Get(m)))
	}
	return v
}

// round rounds half up, so -2.5 becomes -2 and 2.5 becomes 3.
func round(x float64) float64 {
	r := math.Floor(x + 0.5)
	if r == 0 {
		return 0 // avoid -0
	}
	return r
}
