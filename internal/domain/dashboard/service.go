package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the team snapshot with every member's MTD and WTD performance.
	// An interrupted call may still return the all-unavailable snapshot of the loaded config.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// FallbackDashboard returns an all-zero snapshot with correct working days and targets
	FallbackDashboard(ctx context.Context) *DashboardResponse

	// GetMemberDetail returns one member's breakdown, daily records and personal bests
	GetMemberDetail(ctx context.Context, key string) (*MemberDetailResponse, error)

	// ListMembers returns one summary row per configured member
	ListMembers(ctx context.Context) ([]MemberSummary, error)

	// GetHolidays returns the public holidays of a month, defaulting to the current month
	GetHolidays(ctx context.Context, year, month int) ([]HolidayResponse, error)
}
