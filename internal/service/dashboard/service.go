package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/holidays"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const defaultFetchConcurrency = 4

type Options struct {
	Location           *time.Location
	Policy             *StatusPolicy
	UseHolidayCalendar bool
	FetchConcurrency   int
	Now                func() time.Time
}

type DashboardServiceImpl struct {
	rows    dashboard.RowSource
	configs dashboard.ConfigSource
	policy  StatusPolicy
	opts    Options
}

func NewDashboardService(rows dashboard.RowSource, configs dashboard.ConfigSource, opts Options) dashboard.DashboardService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FetchConcurrency <= 0 {
		opts.FetchConcurrency = defaultFetchConcurrency
	}
	policy := DefaultStatusPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}
	return &DashboardServiceImpl{
		rows:    rows,
		configs: configs,
		policy:  policy,
		opts:    opts,
	}
}

// memberRows is the isolated fetch result of one member
type memberRows struct {
	records []dashboard.DailyRecord
	err     error
}

// today returns the current calendar date in the configured location
func (s *DashboardServiceImpl) today() time.Time {
	return dashboard.DateOf(s.opts.Now().In(s.opts.Location))
}

// loadConfig falls back to the built-in defaults as a whole when the source fails
func (s *DashboardServiceImpl) loadConfig(ctx context.Context) *dashboard.TeamConfig {
	cfg, err := s.configs.LoadTeamConfig(ctx)
	if err == nil && cfg == nil {
		err = dashboard.ErrConfigMissing
	}
	if err == nil {
		err = validator.Struct(cfg)
	}
	if err != nil {
		slog.Warn("Team config unavailable, using defaults", "error", err)
		return dashboard.DefaultTeamConfig()
	}
	return cfg
}

func (s *DashboardServiceImpl) holidaySet(cfg *dashboard.TeamConfig) HolidaySet {
	if s.opts.UseHolidayCalendar {
		return NewHolidaySet(cfg.Holidays, holidays.Dates())
	}
	return NewHolidaySet(cfg.Holidays)
}

func (s *DashboardServiceImpl) fetchMember(ctx context.Context, key string) memberRows {
	rows, err := s.rows.FetchRows(ctx, key)
	if err != nil {
		return memberRows{err: fmt.Errorf("%w: %s: %w", dashboard.ErrUpstreamFetch, key, err)}
	}
	return memberRows{records: ParseRows(rows)}
}

// fetchAll fetches every member concurrently. A failing member never aborts the others.
func (s *DashboardServiceImpl) fetchAll(ctx context.Context, members []dashboard.TeamMember) []memberRows {
	results := make([]memberRows, len(members))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FetchConcurrency)
	for i, m := range members {
		i, m := i, m
		g.Go(func() error {
			results[i] = s.fetchMember(gCtx, m.Key)
			if results[i].err != nil {
				slog.Warn("Member rows unavailable", "member", m.Key, "error", results[i].err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// buildPeriod computes one member's performance over [start, end]
func (s *DashboardServiceImpl) buildPeriod(records []dashboard.DailyRecord, member dashboard.TeamMember, daily dashboard.Targets, start, end time.Time, hs HolidaySet) dashboard.PeriodPerformance {
	workingDays := PersonWorkingDays(start, end, member.StartDate, hs)
	totals := Aggregate(records, start, end)
	targets := ProRatedTargets(daily, workingDays)
	variances := CalculateVariances(totals, targets, daily)

	return dashboard.PeriodPerformance{
		Start:        start,
		End:          end,
		WorkingDays:  workingDays,
		Totals:       totals,
		Targets:      targets,
		Variances:    variances,
		Progress:     Progress(totals, targets),
		StatusResult: s.policy.Classify(variances),
	}
}

func (s *DashboardServiceImpl) buildMember(member dashboard.TeamMember, fetched memberRows, cfg *dashboard.TeamConfig, today time.Time, hs HolidaySet) dashboard.MemberPerformance {
	return dashboard.MemberPerformance{
		TeamMember:      member,
		IsNew:           IsNewMember(member.StartDate, today),
		MTD:             s.buildPeriod(fetched.records, member, cfg.Targets, MonthStart(today), today, hs),
		WTD:             s.buildPeriod(fetched.records, member, cfg.Targets, WeekStart(today), today, hs),
		DataUnavailable: fetched.err != nil,
	}
}

func (s *DashboardServiceImpl) teamPeriod(totals dashboard.PeriodTotals, targets, standards dashboard.Targets) dashboard.TeamPeriod {
	variances := CalculateVariances(totals, targets, standards)
	return dashboard.TeamPeriod{
		Totals:       totals,
		Targets:      targets,
		Variances:    variances,
		StatusResult: s.policy.Classify(variances),
	}
}

// assemble builds the snapshot from already fetched rows, one slot per configured member
func (s *DashboardServiceImpl) assemble(cfg *dashboard.TeamConfig, fetched []memberRows, today time.Time) *dashboard.DashboardResponse {
	hs := s.holidaySet(cfg)

	var (
		established []dashboard.MemberPerformance
		newMembers  []dashboard.MemberPerformance
		mtdTotals   dashboard.PeriodTotals
		wtdTotals   dashboard.PeriodTotals
		mtdTargets  dashboard.Targets
		wtdTargets  dashboard.Targets
		failures    int
	)

	for i, member := range cfg.Members {
		perf := s.buildMember(member, fetched[i], cfg, today, hs)
		if perf.DataUnavailable {
			failures++
		}

		mtdTotals = mtdTotals.Add(perf.MTD.Totals)
		wtdTotals = wtdTotals.Add(perf.WTD.Totals)
		mtdTargets = mtdTargets.Add(perf.MTD.Targets)
		wtdTargets = wtdTargets.Add(perf.WTD.Targets)

		if perf.IsNew {
			newMembers = append(newMembers, perf)
		} else {
			established = append(established, perf)
		}
	}

	byRevenue := func(list []dashboard.MemberPerformance) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].MTD.Totals.Revenue > list[j].MTD.Totals.Revenue
		})
	}
	byRevenue(established)
	byRevenue(newMembers)

	if failures > 0 {
		slog.Warn("Dashboard assembled with missing member data", "failed", failures, "members", len(cfg.Members))
	}

	active := ActiveMembers(cfg.Members, today)
	standards := cfg.Targets.Scale(float64(active))

	return &dashboard.DashboardResponse{
		MonthName:          today.Month().String(),
		Year:               today.Year(),
		AsOf:               today,
		WorkingDays:        MonthWorkingDays(today, hs),
		WeekWorkingDays:    WeekWorkingDays(today, hs),
		Config:             cfg,
		ActiveTeamMembers:  active,
		TeamDailyStandards: standards,
		TeamMTD:            s.teamPeriod(mtdTotals, mtdTargets, standards),
		TeamWTD:            s.teamPeriod(wtdTotals, wtdTargets, standards),
		MemberData:         nonNil(established),
		NewMembers:         nonNil(newMembers),
		Degraded:           failures > 0,
	}
}

// GetDashboard returns the full snapshot, fetching members in parallel. When
// ctx ends mid-fetch it returns the all-unavailable snapshot of the loaded
// config together with the error.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	cfg := s.loadConfig(ctx)
	today := s.today()

	fetched := s.fetchAll(ctx, cfg.Members)
	if err := ctx.Err(); err != nil {
		return s.unavailable(cfg, today), fmt.Errorf("dashboard assembly interrupted: %w", err)
	}

	return s.assemble(cfg, fetched, today), nil
}

// FallbackDashboard returns the zero-valued snapshot used when GetDashboard fails
func (s *DashboardServiceImpl) FallbackDashboard(ctx context.Context) *dashboard.DashboardResponse {
	cfg := dashboard.DefaultTeamConfig()
	if ctx.Err() == nil {
		cfg = s.loadConfig(ctx)
	}
	return s.unavailable(cfg, s.today())
}

// unavailable assembles cfg with every member's data marked unavailable
func (s *DashboardServiceImpl) unavailable(cfg *dashboard.TeamConfig, today time.Time) *dashboard.DashboardResponse {
	fetched := make([]memberRows, len(cfg.Members))
	for i := range fetched {
		fetched[i].err = dashboard.ErrUpstreamFetch
	}
	return s.assemble(cfg, fetched, today)
}

// GetMemberDetail returns one member's MTD/WTD breakdown and personal bests
func (s *DashboardServiceImpl) GetMemberDetail(ctx context.Context, key string) (*dashboard.MemberDetailResponse, error) {
	cfg := s.loadConfig(ctx)
	member, ok := cfg.Member(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", dashboard.ErrMemberNotFound, key)
	}

	fetched := s.fetchMember(ctx, key)
	if fetched.err != nil {
		return nil, fetched.err
	}

	today := s.today()
	perf := s.buildMember(member, fetched, cfg, today, s.holidaySet(cfg))
	days := DaysOnBoard(member.StartDate, today)

	return &dashboard.MemberDetailResponse{
		TeamMember:    member,
		IsNew:         perf.IsNew,
		DaysOnBoard:   days,
		WeeksOnBoard:  days / 7,
		DailyTargets:  cfg.Targets,
		MTD:           perf.MTD,
		WTD:           perf.WTD,
		PersonalBests: PersonalBests(fetched.records),
	}, nil
}

// ListMembers returns the people directory in configuration order
func (s *DashboardServiceImpl) ListMembers(ctx context.Context) ([]dashboard.MemberSummary, error) {
	cfg := s.loadConfig(ctx)
	today := s.today()
	hs := s.holidaySet(cfg)

	fetched := s.fetchAll(ctx, cfg.Members)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("member listing interrupted: %w", err)
	}

	summaries := make([]dashboard.MemberSummary, 0, len(cfg.Members))
	for i, member := range cfg.Members {
		perf := s.buildMember(member, fetched[i], cfg, today, hs)
		summaries = append(summaries, dashboard.MemberSummary{
			Key:                  member.Key,
			DisplayName:          member.DisplayName,
			IsNew:                perf.IsNew,
			StartDate:            member.StartDate,
			WeeksOnBoard:         DaysOnBoard(member.StartDate, today) / 7,
			Status:               perf.MTD.Status,
			RevenueMTD:           perf.MTD.Totals.Revenue,
			BiggestShortfall:     perf.MTD.BiggestShortfall,
			BiggestShortfallDays: perf.MTD.BiggestShortfallDays,
			DataUnavailable:      perf.DataUnavailable,
		})
	}
	return summaries, nil
}

// GetHolidays returns the public holidays of a month plus configured company holidays
func (s *DashboardServiceImpl) GetHolidays(ctx context.Context, year, month int) ([]dashboard.HolidayResponse, error) {
	today := s.today()
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}
	if month < 1 || month > 12 {
		return nil, errors.Join(dashboard.ErrInvalidDateRange, validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		})
	}

	out := make([]dashboard.HolidayResponse, 0)
	listed := make(map[string]struct{})
	if s.opts.UseHolidayCalendar {
		for _, h := range holidays.ByMonth(year, time.Month(month)) {
			key := dashboard.DateKey(h.Date)
			listed[key] = struct{}{}
			out = append(out, dashboard.HolidayResponse{Date: key, Name: h.Name, Region: string(h.Region)})
		}
	}

	cfg := s.loadConfig(ctx)
	for _, d := range cfg.Holidays {
		if d.Year() != year || int(d.Month()) != month {
			continue
		}
		key := dashboard.DateKey(d)
		if _, ok := listed[key]; ok {
			continue
		}
		listed[key] = struct{}{}
		out = append(out, dashboard.HolidayResponse{Date: key, Name: "Company holiday", Region: "Config"})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func nonNil(list []dashboard.MemberPerformance) []dashboard.MemberPerformance {
	if list == nil {
		return []dashboard.MemberPerformance{}
	}
	return list
}
