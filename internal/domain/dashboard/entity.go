package dashboard

import (
	"time"
)

// Metric identifies one of the five tracked KPIs.
type Metric string

const (
	MetricRevenue  Metric = "revenue"
	MetricSales    Metric = "sales"
	MetricAttended Metric = "attended"
	MetricBookings Metric = "bookings"
	MetricCalls    Metric = "calls"
)

// Metrics is the fixed metric order. Tie-breaks follow this order.
var Metrics = []Metric{MetricRevenue, MetricSales, MetricAttended, MetricBookings, MetricCalls}

// Status is the qualitative performance classification.
type Status string

const (
	StatusUnderperforming Status = "Underperforming"
	StatusOnStandard      Status = "On Standard"
	StatusOverperforming  Status = "Overperforming"
)

// DailyRecord is one parsed spreadsheet row.
type DailyRecord struct {
	Date     time.Time `json:"date"`
	Revenue  float64   `json:"revenue"`
	Sales    int       `json:"sales"`
	Attended int       `json:"attended"`
	Bookings int       `json:"bookings"`
	Calls    int       `json:"calls"`
}

// TeamMember identifies a person and the date they became eligible for targets.
type TeamMember struct {
	Key         string    `json:"key" validate:"required"`
	DisplayName string    `json:"display_name"`
	StartDate   time.Time `json:"start_date" validate:"required"`
}

// Targets holds one value per metric. Used both for daily standards and pro-rated totals.
type Targets struct {
	Revenue  float64 `json:"revenue" validate:"gte=0"`
	Sales    float64 `json:"sales" validate:"gte=0"`
	Attended float64 `json:"attended" validate:"gte=0"`
	Bookings float64 `json:"bookings" validate:"gte=0"`
	Calls    float64 `json:"calls" validate:"gte=0"`
}

func (t Targets) Get(m Metric) float64 {
	switch m {
	case MetricRevenue:
		return t.Revenue
	case MetricSales:
		return t.Sales
	case MetricAttended:
		return t.Attended
	case MetricBookings:
		return t.Bookings
	case MetricCalls:
		return t.Calls
	}
	return 0
}

func (t *Targets) Set(m Metric, v float64) {
	switch m {
	case MetricRevenue:
		t.Revenue = v
	case MetricSales:
		t.Sales = v
	case MetricAttended:
		t.Attended = v
	case MetricBookings:
		t.Bookings = v
	case MetricCalls:
		t.Calls = v
	}
}

// Scale multiplies every metric by n.
func (t Targets) Scale(n float64) Targets {
	return Targets{
		Revenue:  t.Revenue * n,
		Sales:    t.Sales * n,
		Attended: t.Attended * n,
		Bookings: t.Bookings * n,
		Calls:    t.Calls * n,
	}
}

func (t Targets) Add(o Targets) Targets {
	return Targets{
		Revenue:  t.Revenue + o.Revenue,
		Sales:    t.Sales + o.Sales,
		Attended: t.Attended + o.Attended,
		Bookings: t.Bookings + o.Bookings,
		Calls:    t.Calls + o.Calls,
	}
}

// TeamConfig is the per-request configuration read from the Config sheet or file.
type TeamConfig struct {
	TeamSize int          `json:"team_size" validate:"gte=0"`
	Targets  Targets      `json:"targets"`
	Holidays []time.Time  `json:"holidays"`
	Members  []TeamMember `json:"team_members" validate:"required,min=1,dive"`
}

// Member returns the configured member with the given key.
func (c *TeamConfig) Member(key string) (TeamMember, bool) {
	for _, m := range c.Members {
		if m.Key == key {
			return m, true
		}
	}
	return TeamMember{}, false
}

// DefaultTargets are used when no configuration can be read.
func DefaultTargets() Targets {
	return Targets{Revenue: 500, Sales: 1, Attended: 2, Bookings: 4, Calls: 40}
}

// DefaultTeamConfig is substituted as a whole whenever the configuration source fails.
func DefaultTeamConfig() *TeamConfig {
	return &TeamConfig{
		TeamSize: 3,
		Targets:  DefaultTargets(),
		Holidays: []time.Time{
			Date(2026, time.January, 1),
			Date(2026, time.January, 26),
			Date(2026, time.April, 25),
		},
		Members: []TeamMember{
			{Key: "Team Member 1", DisplayName: "FG & LT", StartDate: Date(2026, time.January, 1)},
			{Key: "Team Member 2", DisplayName: "Dylan Munro", StartDate: Date(2026, time.January, 15)},
			{Key: "Team Member 3", DisplayName: "Thomas Rennie", StartDate: Date(2026, time.January, 20)},
		},
	}
}

// PeriodTotals sums DailyRecords over a window.
type PeriodTotals struct {
	Revenue      float64       `json:"revenue"`
	Sales        int           `json:"sales"`
	Attended     int           `json:"attended"`
	Bookings     int           `json:"bookings"`
	Calls        int           `json:"calls"`
	DaysWithData int           `json:"days_with_data"`
	DailyData    []DailyRecord `json:"daily_data,omitempty"`
}

func (p PeriodTotals) Get(m Metric) float64 {
	switch m {
	case MetricRevenue:
		return p.Revenue
	case MetricSales:
		return float64(p.Sales)
	case MetricAttended:
		return float64(p.Attended)
	case MetricBookings:
		return float64(p.Bookings)
	case MetricCalls:
		return float64(p.Calls)
	}
	return 0
}

// Add merges the numeric totals of o into p. Daily data is not merged.
func (p PeriodTotals) Add(o PeriodTotals) PeriodTotals {
	p.Revenue += o.Revenue
	p.Sales += o.Sales
	p.Attended += o.Attended
	p.Bookings += o.Bookings
	p.Calls += o.Calls
	p.DaysWithData += o.DaysWithData
	return p
}

type Variance struct {
	Diff            float64 `json:"diff"`
	Percentage      float64 `json:"percentage"`
	DaysAheadBehind float64 `json:"days_ahead_behind"`
}

type Variances struct {
	Revenue  Variance `json:"revenue"`
	Sales    Variance `json:"sales"`
	Attended Variance `json:"attended"`
	Bookings Variance `json:"bookings"`
	Calls    Variance `json:"calls"`
}

func (v Variances) Get(m Metric) Variance {
	switch m {
	case MetricRevenue:
		return v.Revenue
	case MetricSales:
		return v.Sales
	case MetricAttended:
		return v.Attended
	case MetricBookings:
		return v.Bookings
	case MetricCalls:
		return v.Calls
	}
	return Variance{}
}

func (v *Variances) Set(m Metric, value Variance) {
	switch m {
	case MetricRevenue:
		v.Revenue = value
	case MetricSales:
		v.Sales = value
	case MetricAttended:
		v.Attended = value
	case MetricBookings:
		v.Bookings = value
	case MetricCalls:
		v.Calls = value
	}
}

type Shortfall struct {
	Metric          Metric  `json:"metric"`
	DaysAheadBehind float64 `json:"days_ahead_behind"`
}

type StatusResult struct {
	Status               Status      `json:"status"`
	BiggestShortfall     Metric      `json:"biggest_shortfall"`
	BiggestShortfallDays float64     `json:"biggest_shortfall_days"`
	Shortfalls           []Shortfall `json:"shortfalls"`
}

// PeriodPerformance is a member's (or the team's) result over one window.
type PeriodPerformance struct {
	Start       time.Time    `json:"start"`
	End         time.Time    `json:"end"`
	WorkingDays int          `json:"working_days"`
	Totals      PeriodTotals `json:"data"`
	Targets     Targets      `json:"targets"`
	Variances   Variances    `json:"variances"`
	Progress    int          `json:"progress"`
	StatusResult
}

type MemberPerformance struct {
	TeamMember
	IsNew           bool              `json:"is_new"`
	MTD             PeriodPerformance `json:"mtd"`
	WTD             PeriodPerformance `json:"wtd"`
	DataUnavailable bool              `json:"data_unavailable,omitempty"`
}

// Date returns the calendar date y-m-d at midnight UTC.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOf strips the time of day and zone from t, keeping its wall-clock date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// DateKey formats a calendar date as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
