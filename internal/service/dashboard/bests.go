package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
)

// PersonalBests finds the best Monday-based week and calendar month by
// revenue and by sales. Ties go to the earlier period.
func PersonalBests(records []dashboard.DailyRecord) dashboard.PersonalBests {
	weeks := groupBy(records, WeekStart, func(start time.Time) string {
		year, week := start.ISOWeek()
		return fmt.Sprintf("Week %d (%d)", week, year)
	})
	months := groupBy(records, MonthStart, func(start time.Time) string {
		return start.Format("January 2006")
	})

	return dashboard.PersonalBests{
		BestRevenueWeek:  best(weeks, func(p *dashboard.PeriodBest) float64 { return p.Revenue }),
		BestSalesWeek:    best(weeks, func(p *dashboard.PeriodBest) float64 { return float64(p.Sales) }),
		BestRevenueMonth: best(months, func(p *dashboard.PeriodBest) float64 { return p.Revenue }),
		BestSalesMonth:   best(months, func(p *dashboard.PeriodBest) float64 { return float64(p.Sales) }),
	}
}

func groupBy(records []dashboard.DailyRecord, bucket func(time.Time) time.Time, label func(time.Time) string) []*dashboard.PeriodBest {
	index := make(map[time.Time]*dashboard.PeriodBest)
	for _, rec := range records {
		start := bucket(dashboard.DateOf(rec.Date))
		p, ok := index[start]
		if !ok {
			p = &dashboard.PeriodBest{Label: label(start), Start: start}
			index[start] = p
		}
		p.Revenue += rec.Revenue
		p.Sales += rec.Sales
		p.Attended += rec.Attended
		p.Bookings += rec.Bookings
		p.Calls += rec.Calls
	}

	periods := make([]*dashboard.PeriodBest, 0, len(index))
	for _, p := range index {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Start.Before(periods[j].Start) })
	return periods
}

func best(periods []*dashboard.PeriodBest, value func(*dashboard.PeriodBest) float64) *dashboard.PeriodBest {
	var top *dashboard.PeriodBest
	for _, p := range periods {
		if top == nil || value(p) > value(top) {
			top = p
		}
	}
	if top == nil {
		return nil
	}
	out := *top
	return &out
}
