package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== SCHEDULER TESTS =====

func TestScheduler_AddJob_IgnoresDisabled(t *testing.T) {
	s := NewScheduler()
	s.AddJob(Job{Name: "off", Interval: 0, Fn: func(context.Context) error { return nil }})
	s.AddJob(Job{Name: "on", Interval: time.Minute, Fn: func(context.Context) error { return nil }})

	require.Len(t, s.jobs, 1)
	assert.Equal(t, "on", s.jobs[0].Name)
	assert.Equal(t, time.Minute, s.jobs[0].Timeout)
}

func TestScheduler_RunOnce_JoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	var ran atomic.Int32

	s := NewScheduler()
	s.AddJob(Job{Name: "ok", Interval: time.Minute, Fn: func(context.Context) error { ran.Add(1); return nil }})
	s.AddJob(Job{Name: "bad", Interval: time.Minute, Fn: func(context.Context) error { ran.Add(1); return boom }})

	err := s.RunOnce(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
	assert.Equal(t, int32(2), ran.Load())
}

func TestScheduler_Start_RunsImmediatelyAndStops(t *testing.T) {
	started := make(chan struct{}, 1)
	s := NewScheduler()
	s.AddJob(Job{Name: "tick", Interval: time.Hour, Fn: func(context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		return nil
	}})

	s.Start(context.Background())

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}

func TestScheduler_ExecuteJob_AppliesTimeout(t *testing.T) {
	s := NewScheduler()
	job := Job{Name: "slow", Interval: time.Hour, Timeout: 10 * time.Millisecond, Fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	err := s.executeJob(context.Background(), job)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ===== DASHBOARD JOB TESTS =====

type stubConfigs struct {
	cfg *dashboard.TeamConfig
	err error
}

func (s stubConfigs) LoadTeamConfig(ctx context.Context) (*dashboard.TeamConfig, error) {
	return s.cfg, s.err
}

func TestDashboardJobs_CheckTeamConfig_Success(t *testing.T) {
	jobs := NewDashboardJobs(stubConfigs{cfg: dashboard.DefaultTeamConfig()}, jwt.NewJWTService("secret", time.Hour, false))

	assert.NoError(t, jobs.CheckTeamConfig(context.Background()))
}

func TestDashboardJobs_CheckTeamConfig_SourceError(t *testing.T) {
	jobs := NewDashboardJobs(stubConfigs{err: dashboard.ErrConfigMissing}, jwt.NewJWTService("secret", time.Hour, false))

	err := jobs.CheckTeamConfig(context.Background())

	assert.ErrorIs(t, err, dashboard.ErrConfigMissing)
}

func TestDashboardJobs_CheckTeamConfig_Invalid(t *testing.T) {
	cfg := dashboard.DefaultTeamConfig()
	cfg.Members = nil
	jobs := NewDashboardJobs(stubConfigs{cfg: cfg}, jwt.NewJWTService("secret", time.Hour, false))

	err := jobs.CheckTeamConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "team_members")
}

func TestDashboardJobs_RegisterJobs(t *testing.T) {
	s := NewScheduler()
	NewDashboardJobs(stubConfigs{}, jwt.NewJWTService("secret", time.Hour, false)).RegisterJobs(s, 0)

	require.Len(t, s.jobs, 1)
	assert.Equal(t, "purge_revoked_sessions", s.jobs[0].Name)
}
