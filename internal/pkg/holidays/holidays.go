package holidays

import (
	"time"
)

// Region tags a holiday as national or state specific.
type Region string

const (
	National Region = "National"
	NSW      Region = "NSW"
	VIC      Region = "VIC"
	QLD      Region = "QLD"
	WA       Region = "WA"
	SA       Region = "SA"
	TAS      Region = "TAS"
	ACT      Region = "ACT"
	NT       Region = "NT"
)

type Holiday struct {
	Date   time.Time
	Name   string
	Region Region
}

func day(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

// Australian public holidays for 2026. Regions are informational only;
// every listed date is excluded from working-day counts.
var australia2026 = []Holiday{
	{day(time.January, 1), "New Year's Day", National},
	{day(time.January, 26), "Australia Day", National},
	{day(time.April, 10), "Good Friday", National},
	{day(time.April, 11), "Easter Saturday", National},
	{day(time.April, 13), "Easter Monday", National},
	{day(time.April, 25), "ANZAC Day", National},
	{day(time.June, 15), "Queen's Birthday (most states)", National},
	{day(time.December, 25), "Christmas Day", National},
	{day(time.December, 26), "Boxing Day", National},

	{day(time.April, 12), "Easter Sunday", NSW},
	{day(time.May, 11), "Bank Holiday (NSW)", NSW},

	{day(time.March, 9), "Labour Day (VIC)", VIC},
	{day(time.November, 3), "Melbourne Cup Day", VIC},

	{day(time.May, 4), "Labour Day (QLD)", QLD},
	{day(time.August, 10), "Ekka (Brisbane)", QLD},

	{day(time.March, 2), "Labour Day (WA)", WA},
	{day(time.June, 1), "Western Australia Day", WA},

	{day(time.March, 9), "Adelaide Cup (SA)", SA},
	{day(time.October, 12), "Labour Day (SA)", SA},

	{day(time.February, 9), "Launceston Cup (TAS)", TAS},
	{day(time.May, 11), "Autumn Bank Holiday (TAS)", TAS},

	{day(time.March, 9), "Canberra Day", ACT},

	{day(time.May, 25), "Reconciliation Day (NT)", NT},
}

// ByMonth returns the holidays falling in the given month, in table order.
func ByMonth(year int, month time.Month) []Holiday {
	var out []Holiday
	for _, h := range australia2026 {
		if h.Date.Year() == year && h.Date.Month() == month {
			out = append(out, h)
		}
	}
	return out
}

// Dates returns every distinct holiday date.
func Dates() []time.Time {
	seen := make(map[time.Time]struct{}, len(australia2026))
	out := make([]time.Time, 0, len(australia2026))
	for _, h := range australia2026 {
		if _, ok := seen[h.Date]; ok {
			continue
		}
		seen[h.Date] = struct{}{}
		out = append(out, h.Date)
	}
	return out
}
