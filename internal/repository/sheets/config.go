package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/cellparse"
)

// ConfigSheet is the tab holding team configuration.
const ConfigSheet = "Config"

// Config sheet layout; values live in column B.
const (
	rowTeamSize     = 1
	rowTargetsStart = 2
	rowHolidays     = 9
	rowMembersStart = 12
)

// memberKeyPrefix marks member rows in column A; other rows in the block are notes.
const memberKeyPrefix = "Team Member"

type configRepositoryImpl struct {
	rows  dashboard.RowSource
	sheet string
}

// NewConfigRepository reads team configuration from the Config tab of any
// RowSource, so a workbook export shares the layout with the live sheet.
func NewConfigRepository(rows dashboard.RowSource, sheet string) dashboard.ConfigSource {
	if sheet == "" {
		sheet = ConfigSheet
	}
	return &configRepositoryImpl{rows: rows, sheet: sheet}
}

func (r *configRepositoryImpl) LoadTeamConfig(ctx context.Context) (*dashboard.TeamConfig, error) {
	rows, err := r.rows.FetchRows(ctx, r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read config sheet: %w", err)
	}
	return ParseConfigRows(rows)
}

// ParseConfigRows decodes the Config tab. Any malformed value fails the whole
// config; callers substitute defaults rather than patching single fields.
func ParseConfigRows(rows []dashboard.RawRow) (*dashboard.TeamConfig, error) {
	if len(rows) <= rowMembersStart {
		return nil, fmt.Errorf("%w: config sheet has %d rows", dashboard.ErrConfigMissing, len(rows))
	}

	var (
		cfg dashboard.TeamConfig
		err error
	)
	for i, m := range dashboard.Metrics {
		var v float64
		if v, err = requiredNumber(rows, rowTargetsStart+i, string(m)); err != nil {
			return nil, err
		}
		cfg.Targets.Set(m, v)
	}

	if cfg.Holidays, err = parseHolidays(value(rows, rowHolidays, 1)); err != nil {
		return nil, err
	}

	for i := rowMembersStart; i < len(rows); i++ {
		key := value(rows, i, 0)
		if key == "" {
			break
		}
		if !strings.HasPrefix(key, memberKeyPrefix) {
			continue
		}
		start := value(rows, i, 1)
		if start == "" {
			continue
		}
		date, ok := cellparse.ParseDate(start)
		if !ok {
			return nil, fmt.Errorf("%w: member %q has invalid start date %q", dashboard.ErrConfigMissing, key, start)
		}
		name := value(rows, i, 2)
		if name == "" {
			name = key
		}
		cfg.Members = append(cfg.Members, dashboard.TeamMember{Key: key, DisplayName: name, StartDate: date})
	}
	if len(cfg.Members) == 0 {
		return nil, fmt.Errorf("%w: no team members listed", dashboard.ErrConfigMissing)
	}

	cfg.TeamSize = len(cfg.Members)
	if raw := value(rows, rowTeamSize, 1); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid team size %q", dashboard.ErrConfigMissing, raw)
		}
		cfg.TeamSize = size
	}

	return &cfg, nil
}

func requiredNumber(rows []dashboard.RawRow, row int, name string) (float64, error) {
	raw := value(rows, row, 1)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s target is blank", dashboard.ErrConfigMissing, name)
	}
	v, ok := cellparse.Number(rows[row][1])
	if !ok {
		return 0, fmt.Errorf("%w: invalid %s target %q", dashboard.ErrConfigMissing, name, raw)
	}
	return v, nil
}

func parseHolidays(raw string) ([]time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	var out []time.Time
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, ok := cellparse.ParseDate(part)
		if !ok {
			return nil, fmt.Errorf("%w: invalid holiday %q", dashboard.ErrConfigMissing, part)
		}
		out = append(out, d)
	}
	return out, nil
}

func value(rows []dashboard.RawRow, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) || rows[row][col] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(rows[row][col]))
}
