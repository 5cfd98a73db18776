package dashboard

import (
	"testing"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	records := []dashboard.DailyRecord{
		{Date: dashboard.Date(2025, time.December, 31), Revenue: 999, Sales: 9},
		{Date: jan(1), Revenue: 600, Sales: 1, Attended: 1, Bookings: 2, Calls: 20},
		{Date: jan(2).Add(9 * time.Hour), Revenue: 400, Sales: 1, Attended: 2, Bookings: 3, Calls: 25},
		{Date: jan(3), Revenue: 50},
	}

	got := Aggregate(records, jan(1), jan(2))

	assert.Equal(t, 1000.0, got.Revenue)
	assert.Equal(t, 2, got.Sales)
	assert.Equal(t, 3, got.Attended)
	assert.Equal(t, 5, got.Bookings)
	assert.Equal(t, 45, got.Calls)
	assert.Equal(t, 2, got.DaysWithData)
	require.Len(t, got.DailyData, 2)
	assert.Equal(t, 600.0, got.DailyData[0].Revenue)
}

func TestAggregate_NoRecords(t *testing.T) {
	got := Aggregate(nil, jan(1), jan(31))

	assert.Zero(t, got.Revenue)
	assert.Zero(t, got.DaysWithData)
	assert.NotNil(t, got.DailyData)
	assert.Empty(t, got.DailyData)
}

// Two days of data where the first day is a holiday: the target only covers
// the one remaining working day.
func TestAggregate_HolidayScenario(t *testing.T) {
	records := []dashboard.DailyRecord{
		{Date: jan(1), Revenue: 600},
		{Date: jan(2), Revenue: 400},
	}
	hs := NewHolidaySet([]time.Time{jan(1)})
	daily := dashboard.DefaultTargets()

	totals := Aggregate(records, jan(1), jan(2))
	wd := PersonWorkingDays(jan(1), jan(2), jan(1), hs)
	targets := ProRatedTargets(daily, wd)
	v := CalculateVariance(totals.Revenue, targets.Revenue, daily.Revenue)

	assert.Equal(t, 1, wd)
	assert.Equal(t, 500.0, targets.Revenue)
	assert.Equal(t, dashboard.Variance{Diff: 500, Percentage: 100, DaysAheadBehind: 1.0}, v)
}

func TestProRatedTargets(t *testing.T) {
	got := ProRatedTargets(dashboard.DefaultTargets(), 3)

	assert.Equal(t, dashboard.Targets{Revenue: 1500, Sales: 3, Attended: 6, Bookings: 12, Calls: 120}, got)
	assert.Equal(t, dashboard.Targets{}, ProRatedTargets(dashboard.DefaultTargets(), 0))
}

func TestProgress(t *testing.T) {
	targets := dashboard.DefaultTargets()

	half := dashboard.PeriodTotals{Revenue: 250, Sales: 1, Attended: 2, Bookings: 4, Calls: 20}
	assert.Equal(t, 80, Progress(half, targets))

	over := dashboard.PeriodTotals{Revenue: 1000, Sales: 2, Attended: 4, Bookings: 8, Calls: 80}
	assert.Equal(t, 200, Progress(over, targets))

	assert.Equal(t, 0, Progress(over, dashboard.Targets{}))

	// Only revenue has a target; the other metrics count as zero.
	assert.Equal(t, 20, Progress(dashboard.PeriodTotals{Revenue: 500}, dashboard.Targets{Revenue: 500}))
}
