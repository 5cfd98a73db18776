package dashboard

import "time"

// ========== WORKING DAYS ==========

// MonthWorkingDays is the working-day breakdown of the current month
type MonthWorkingDays struct {
	Total     int `json:"total"`
	Used      int `json:"used"`      // month start through today
	Remaining int `json:"remaining"` // tomorrow through month end
}

// WeekWorkingDays is the working-day breakdown of the current Monday-Sunday week
type WeekWorkingDays struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Total     int       `json:"total"`
	Used      int       `json:"used"`
	Remaining int       `json:"remaining"`
}

// ========== DASHBOARD SNAPSHOT ==========

// DashboardResponse is the full team snapshot
type DashboardResponse struct {
	MonthName          string              `json:"month_name"`
	Year               int                 `json:"year"`
	AsOf               time.Time           `json:"as_of"`
	WorkingDays        MonthWorkingDays    `json:"working_days"`
	WeekWorkingDays    WeekWorkingDays     `json:"week_working_days"`
	Config             *TeamConfig         `json:"config"`
	ActiveTeamMembers  int                 `json:"active_team_members"`
	TeamDailyStandards Targets             `json:"team_daily_standards"`
	TeamMTD            TeamPeriod          `json:"team_mtd"`
	TeamWTD            TeamPeriod          `json:"team_wtd"`
	MemberData         []MemberPerformance `json:"member_data"`
	NewMembers         []MemberPerformance `json:"new_members"`
	Degraded           bool                `json:"degraded"`
}

// TeamPeriod is the team-wide roll-up for one window
type TeamPeriod struct {
	Totals    PeriodTotals `json:"totals"`
	Targets   Targets      `json:"targets"`
	Variances Variances    `json:"variances"`
	StatusResult
}

// ========== MEMBER DETAIL ==========

// MemberDetailResponse is a single member's drill-down
type MemberDetailResponse struct {
	TeamMember
	IsNew         bool              `json:"is_new"`
	DaysOnBoard   int               `json:"days_on_board"`
	WeeksOnBoard  int               `json:"weeks_on_board"`
	DailyTargets  Targets           `json:"daily_targets"`
	MTD           PeriodPerformance `json:"mtd"`
	WTD           PeriodPerformance `json:"wtd"`
	PersonalBests PersonalBests     `json:"personal_bests"`
}

// PeriodBest is the aggregate of one calendar week or month
type PeriodBest struct {
	Label    string    `json:"label"`
	Start    time.Time `json:"start"`
	Revenue  float64   `json:"revenue"`
	Sales    int       `json:"sales"`
	Attended int       `json:"attended"`
	Bookings int       `json:"bookings"`
	Calls    int       `json:"calls"`
}

// PersonalBests are nil when the member has no records
type PersonalBests struct {
	BestRevenueWeek  *PeriodBest `json:"best_revenue_week"`
	BestSalesWeek    *PeriodBest `json:"best_sales_week"`
	BestRevenueMonth *PeriodBest `json:"best_revenue_month"`
	BestSalesMonth   *PeriodBest `json:"best_sales_month"`
}

// ========== DIRECTORY ==========

// MemberSummary is one row of the people directory
type MemberSummary struct {
	Key                  string    `json:"person_key"`
	DisplayName          string    `json:"display_name"`
	IsNew                bool      `json:"is_new"`
	StartDate            time.Time `json:"start_date"`
	WeeksOnBoard         int       `json:"weeks_on_board"`
	Status               Status    `json:"status"`
	RevenueMTD           float64   `json:"revenue_mtd"`
	BiggestShortfall     Metric    `json:"biggest_shortfall"`
	BiggestShortfallDays float64   `json:"biggest_shortfall_days"`
	DataUnavailable      bool      `json:"data_unavailable,omitempty"`
}

// ========== HOLIDAYS ==========

// HolidayResponse is one public holiday entry
type HolidayResponse struct {
	Date   string `json:"date"` // Format: "YYYY-MM-DD"
	Name   string `json:"name"`
	Region string `json:"region"`
}
