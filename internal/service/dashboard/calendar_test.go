package dashboard

import (
	"testing"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
)

func jan(d int) time.Time { return dashboard.Date(2026, time.January, d) }

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		holidays HolidaySet
		want     int
	}{
		{"full week", jan(5), jan(9), nil, 5},
		{"holiday midweek", jan(5), jan(9), NewHolidaySet([]time.Time{jan(7)}), 4},
		{"holiday on weekend", jan(5), jan(11), NewHolidaySet([]time.Time{jan(10)}), 5},
		{"weekend only", jan(10), jan(11), nil, 0},
		{"single day", jan(12), jan(12), nil, 1},
		{"end before start", jan(9), jan(5), nil, 0},
		{"whole month with holidays", jan(1), jan(31), NewHolidaySet([]time.Time{jan(1), jan(26)}), 20},
		{"time of day ignored", jan(5).Add(15 * time.Hour), jan(9).Add(time.Hour), nil, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingDays(tt.start, tt.end, tt.holidays))
		})
	}
}

func TestWorkingDays_HolidayRemovesExactlyOneDay(t *testing.T) {
	base := WorkingDays(jan(1), jan(31), nil)
	for d := 1; d <= 31; d++ {
		day := jan(d)
		want := base
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			want--
		}
		assert.Equal(t, want, WorkingDays(jan(1), jan(31), NewHolidaySet([]time.Time{day})), day.Format("2006-01-02"))
	}
}

func TestWeekStart(t *testing.T) {
	assert.Equal(t, jan(12), WeekStart(jan(12)), "Monday")
	assert.Equal(t, jan(12), WeekStart(jan(16)), "Friday")
	assert.Equal(t, jan(5), WeekStart(jan(11)), "Sunday belongs to the previous week")
	assert.Equal(t, dashboard.Date(2025, time.December, 29), WeekStart(jan(1)))
}

func TestMonthBounds(t *testing.T) {
	assert.Equal(t, jan(1), MonthStart(jan(16)))
	assert.Equal(t, jan(31), MonthEnd(jan(16)))
	assert.Equal(t, dashboard.Date(2028, time.February, 29), MonthEnd(dashboard.Date(2028, time.February, 3)))
}

func TestMonthWorkingDays(t *testing.T) {
	hs := NewHolidaySet([]time.Time{jan(1), jan(26)})

	got := MonthWorkingDays(jan(12), hs)

	assert.Equal(t, dashboard.MonthWorkingDays{Total: 20, Used: 7, Remaining: 13}, got)
	assert.Equal(t, got.Total, got.Used+got.Remaining)
}

func TestWeekWorkingDays(t *testing.T) {
	got := WeekWorkingDays(jan(12), nil)

	assert.Equal(t, jan(12), got.Start)
	assert.Equal(t, jan(18), got.End)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 1, got.Used)
	assert.Equal(t, 4, got.Remaining)

	weekend := WeekWorkingDays(jan(18), nil)
	assert.Equal(t, 5, weekend.Used)
	assert.Equal(t, 0, weekend.Remaining)
}

func TestPersonWorkingDays(t *testing.T) {
	tests := []struct {
		name        string
		personStart time.Time
		want        int
	}{
		{"started before period", dashboard.Date(2025, time.June, 1), 8},
		{"started mid period", jan(8), 3},
		{"starts on period end", jan(12), 1},
		{"starts after period", jan(20), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PersonWorkingDays(jan(1), jan(12), tt.personStart, nil))
		})
	}
}

func TestActiveMembers(t *testing.T) {
	members := dashboard.DefaultTeamConfig().Members

	assert.Equal(t, 1, ActiveMembers(members, jan(14)))
	assert.Equal(t, 2, ActiveMembers(members, jan(15)))
	assert.Equal(t, 3, ActiveMembers(members, jan(20)))
}

func TestIsNewMember(t *testing.T) {
	today := jan(20)

	assert.True(t, IsNewMember(jan(15), today))
	assert.True(t, IsNewMember(jan(25), today), "future start in the same month")
	assert.False(t, IsNewMember(jan(1), today), "first of the month is not new")
	assert.False(t, IsNewMember(dashboard.Date(2025, time.December, 15), today))
	assert.False(t, IsNewMember(dashboard.Date(2025, time.January, 15), today), "same month, other year")
}

func TestDaysOnBoard(t *testing.T) {
	assert.Equal(t, 14, DaysOnBoard(jan(1), jan(15)))
	assert.Equal(t, 0, DaysOnBoard(jan(15), jan(15)))
	assert.Equal(t, 0, DaysOnBoard(jan(20), jan(15)))
}
