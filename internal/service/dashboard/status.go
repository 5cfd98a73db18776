package dashboard

import (
	"sort"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
)

const (
	DefaultUnderperformingThreshold = -0.5
	maxShortfalls                   = 3
)

// StatusPolicy classifies a set of variances.
type StatusPolicy struct {
	// Any metric strictly below this many days behind is Underperforming
	UnderperformingThreshold float64
}

func DefaultStatusPolicy() StatusPolicy {
	return StatusPolicy{UnderperformingThreshold: DefaultUnderperformingThreshold}
}

// Classify applies, in order: any metric below the threshold is Underperforming,
// all metrics at or above zero is Overperforming, otherwise On Standard.
func (p StatusPolicy) Classify(v dashboard.Variances) dashboard.StatusResult {
	under := false
	allNonNegative := true
	worst := dashboard.Metrics[0]
	worstDays := v.Get(worst).DaysAheadBehind

	shortfalls := make([]dashboard.Shortfall, 0, len(dashboard.Metrics))
	for _, m := range dashboard.Metrics {
		days := v.Get(m).DaysAheadBehind
		if days < p.UnderperformingThreshold {
			under = true
		}
		if days < 0 {
			allNonNegative = false
			shortfalls = append(shortfalls, dashboard.Shortfall{Metric: m, DaysAheadBehind: days})
		}
		if days < worstDays {
			worst, worstDays = m, days
		}
	}

	sort.SliceStable(shortfalls, func(i, j int) bool {
		return shortfalls[i].DaysAheadBehind < shortfalls[j].DaysAheadBehind
	})
	if len(shortfalls) > maxShortfalls {
		shortfalls = shortfalls[:maxShortfalls]
	}

	status := dashboard.StatusOnStandard
	switch {
	case under:
		status = dashboard.StatusUnderperforming
	case allNonNegative:
		status = dashboard.StatusOverperforming
	}

	return dashboard.StatusResult{
		Status:               status,
		BiggestShortfall:     worst,
		BiggestShortfallDays: worstDays,
		Shortfalls:           shortfalls,
	}
}
