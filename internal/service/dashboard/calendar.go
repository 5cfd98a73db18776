package dashboard

import (
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
)

// HolidaySet holds calendar dates excluded from working-day counts.
type HolidaySet map[time.Time]struct{}

// NewHolidaySet normalises every date to its calendar day.
func NewHolidaySet(dates ...[]time.Time) HolidaySet {
	set := make(HolidaySet)
	for _, list := range dates {
		for _, d := range list {
			set[dashboard.DateOf(d)] = struct{}{}
		}
	}
	return set
}

func (h HolidaySet) Contains(t time.Time) bool {
	_, ok := h[dashboard.DateOf(t)]
	return ok
}

// WorkingDays counts Monday-Friday dates in [start, end] that are not holidays.
func WorkingDays(start, end time.Time, holidays HolidaySet) int {
	start, end = dashboard.DateOf(start), dashboard.DateOf(end)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if holidays.Contains(d) {
			continue
		}
		count++
	}
	return count
}

// MonthStart returns the first day of today's month.
func MonthStart(today time.Time) time.Time {
	return dashboard.Date(today.Year(), today.Month(), 1)
}

// MonthEnd returns the last day of today's month.
func MonthEnd(today time.Time) time.Time {
	return MonthStart(today).AddDate(0, 1, -1)
}

// WeekStart returns the Monday on or before today.
func WeekStart(today time.Time) time.Time {
	today = dashboard.DateOf(today)
	offset := int(today.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6 // Sunday
	}
	return today.AddDate(0, 0, -offset)
}

func MonthWorkingDays(today time.Time, holidays HolidaySet) dashboard.MonthWorkingDays {
	today = dashboard.DateOf(today)
	start, end := MonthStart(today), MonthEnd(today)
	return dashboard.MonthWorkingDays{
		Total:     WorkingDays(start, end, holidays),
		Used:      WorkingDays(start, today, holidays),
		Remaining: WorkingDays(today.AddDate(0, 0, 1), end, holidays),
	}
}

func WeekWorkingDays(today time.Time, holidays HolidaySet) dashboard.WeekWorkingDays {
	today = dashboard.DateOf(today)
	start := WeekStart(today)
	end := start.AddDate(0, 0, 6)
	return dashboard.WeekWorkingDays{
		Start:     start,
		End:       end,
		Total:     WorkingDays(start, end, holidays),
		Used:      WorkingDays(start, today, holidays),
		Remaining: WorkingDays(today.AddDate(0, 0, 1), end, holidays),
	}
}

// PersonWorkingDays counts the working days of [periodStart, periodEnd] on
// or after the person's start date.
func PersonWorkingDays(periodStart, periodEnd, personStart time.Time, holidays HolidaySet) int {
	effectiveStart := dashboard.DateOf(periodStart)
	if ps := dashboard.DateOf(personStart); ps.After(effectiveStart) {
		effectiveStart = ps
	}
	if effectiveStart.After(dashboard.DateOf(periodEnd)) {
		return 0
	}
	return WorkingDays(effectiveStart, periodEnd, holidays)
}

// ActiveMembers counts members whose start date is on or before asOf.
func ActiveMembers(members []dashboard.TeamMember, asOf time.Time) int {
	asOf = dashboard.DateOf(asOf)
	count := 0
	for _, m := range members {
		if !dashboard.DateOf(m.StartDate).After(asOf) {
			count++
		}
	}
	return count
}

// IsNewMember reports whether the member started in today's month after the 1st.
func IsNewMember(startDate, today time.Time) bool {
	return startDate.Year() == today.Year() &&
		startDate.Month() == today.Month() &&
		startDate.Day() > 1
}

// DaysOnBoard is the number of whole days since the start date, never negative.
func DaysOnBoard(startDate, today time.Time) int {
	days := int(dashboard.DateOf(today).Sub(dashboard.DateOf(startDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
