package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DASHBOARD_AUTH_TOKEN", "secret")
	t.Setenv("DATA_SOURCE", "workbook")
	t.Setenv("WORKBOOK_PATH", "tracker.xlsx")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "Australia/Adelaide", cfg.Dashboard.Location.String())
	assert.True(t, cfg.Dashboard.UseHolidayCalendar)
	assert.Equal(t, -0.5, cfg.Dashboard.UnderperformingThreshold)
	assert.Equal(t, 4, cfg.Dashboard.FetchConcurrency)
	assert.Equal(t, 15*time.Minute, cfg.Dashboard.SourceCheckInterval)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("USE_HOLIDAY_CALENDAR", "false")
	t.Setenv("STATUS_UNDERPERFORMING_THRESHOLD", "-1")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.False(t, cfg.Dashboard.UseHolidayCalendar)
	assert.Equal(t, -1.0, cfg.Dashboard.UnderperformingThreshold)
	assert.Equal(t, time.UTC, cfg.Dashboard.Location)
	assert.Equal(t, "DEBUG", cfg.SlogLevel().String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"APP_PORT": "eighty"}},
		{"port out of range", map[string]string{"APP_PORT": "70000"}},
		{"unknown data source", map[string]string{"DATA_SOURCE": "postgres"}},
		{"missing workbook path", map[string]string{"WORKBOOK_PATH": ""}},
		{"sheets without credentials", map[string]string{"DATA_SOURCE": "sheets"}},
		{"positive threshold", map[string]string{"STATUS_UNDERPERFORMING_THRESHOLD": "0.5"}},
		{"bad timezone", map[string]string{"APP_TIMEZONE": "Mars/Olympus"}},
		{"bad duration", map[string]string{"REQUEST_TIMEOUT": "soon"}},
		{"missing secret", map[string]string{"DASHBOARD_AUTH_TOKEN": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			assert.Error(t, err)
		})
	}
}
