package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/jwt"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/validator"
)

// DashboardJobs are the background jobs of the dashboard server
type DashboardJobs struct {
	configs    dashboard.ConfigSource
	jwtService jwt.Service
}

func NewDashboardJobs(configs dashboard.ConfigSource, jwtService jwt.Service) *DashboardJobs {
	return &DashboardJobs{configs: configs, jwtService: jwtService}
}

// RegisterJobs adds the config check (disabled when checkInterval is zero)
// and the hourly revoked-session purge.
func (j *DashboardJobs) RegisterJobs(scheduler *Scheduler, checkInterval time.Duration) {
	scheduler.AddJob(Job{
		Name:     "check_team_config",
		Interval: checkInterval,
		Timeout:  30 * time.Second,
		Fn:       j.CheckTeamConfig,
	})

	scheduler.AddJob(Job{
		Name:     "purge_revoked_sessions",
		Interval: time.Hour,
		Fn:       j.PurgeRevokedSessions,
	})
}

// CheckTeamConfig surfaces a broken Config source in the logs before a
// request silently falls back to the built-in defaults.
func (j *DashboardJobs) CheckTeamConfig(ctx context.Context) error {
	cfg, err := j.configs.LoadTeamConfig(ctx)
	if err != nil {
		return fmt.Errorf("team config unavailable, requests will use defaults: %w", err)
	}
	if cfg == nil {
		return dashboard.ErrConfigMissing
	}
	if err := validator.Struct(cfg); err != nil {
		return fmt.Errorf("team config invalid, requests will use defaults: %w", err)
	}

	slog.Info("Team config reachable", "members", len(cfg.Members), "holidays", len(cfg.Holidays))
	return nil
}

func (j *DashboardJobs) PurgeRevokedSessions(ctx context.Context) error {
	if n := j.jwtService.PurgeExpired(); n > 0 {
		slog.Info("Purged expired session revocations", "count", n)
	}
	return nil
}
