package dashboard

import (
	"testing"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
)

func TestCalculateVariance(t *testing.T) {
	tests := []struct {
		name                  string
		actual, target, daily float64
		want                  dashboard.Variance
	}{
		{"on target", 1000, 1000, 500, dashboard.Variance{}},
		{"ahead", 1500, 1000, 500, dashboard.Variance{Diff: 500, Percentage: 50, DaysAheadBehind: 1.0}},
		{"nothing done", 0, 1000, 500, dashboard.Variance{Diff: -1000, Percentage: -100, DaysAheadBehind: -2.0}},
		{"percentage rounds", 1, 3, 1, dashboard.Variance{Diff: -2, Percentage: -67, DaysAheadBehind: -2.0}},
		{"days round to one decimal", 2, 3, 3, dashboard.Variance{Diff: -1, Percentage: -33, DaysAheadBehind: -0.3}},
		{"zero target", 5, 0, 1, dashboard.Variance{Diff: 5, Percentage: 0, DaysAheadBehind: 5.0}},
		{"zero target and daily", 5, 0, 0, dashboard.Variance{Diff: 5}},
		{"negative target", 5, -1, -1, dashboard.Variance{Diff: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateVariance(tt.actual, tt.target, tt.daily))
		})
	}
}

func TestCalculateVariance_Symmetry(t *testing.T) {
	for _, delta := range []float64{100, 250, 500, 1250} {
		ahead := CalculateVariance(1000+delta, 1000, 500)
		behind := CalculateVariance(1000-delta, 1000, 500)

		assert.Equal(t, ahead.Diff, -behind.Diff)
		assert.Equal(t, ahead.Percentage, -behind.Percentage)
		assert.Equal(t, ahead.DaysAheadBehind, -behind.DaysAheadBehind)
	}
}

func TestCalculateVariances(t *testing.T) {
	totals := dashboard.PeriodTotals{Revenue: 1000, Sales: 1, Attended: 4, Bookings: 4, Calls: 0}
	daily := dashboard.DefaultTargets()

	got := CalculateVariances(totals, daily.Scale(2), daily)

	assert.Equal(t, 0.0, got.Revenue.DaysAheadBehind)
	assert.Equal(t, -1.0, got.Sales.DaysAheadBehind)
	assert.Equal(t, 0.0, got.Attended.DaysAheadBehind)
	assert.Equal(t, -1.0, got.Bookings.DaysAheadBehind)
	assert.Equal(t, -2.0, got.Calls.DaysAheadBehind)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.0, round(2.5))
	assert.Equal(t, -2.0, round(-2.5))
	assert.Equal(t, -3.0, round(-2.6))
	assert.Equal(t, 0.0, round(-0.4))
	assert.False(t, round(-0.4) < 0 || 1/round(-0.4) < 0, "negative zero")
}
