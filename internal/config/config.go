package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/pkg/validator"
	"github.com/joho/godotenv"
)

const (
	DataSourceSheets   = "sheets"
	DataSourceWorkbook = "workbook"
)

type Config struct {
	App       AppConfig
	Auth      AuthConfig
	Google    GoogleConfig
	Workbook  WorkbookConfig
	Dashboard DashboardConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int           `json:"APP_PORT" validate:"gte=1,lte=65535"`
	Env            string        `json:"APP_ENV"`
	LogLevel       string        `json:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	AllowedOrigins []string      `json:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `json:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// AuthConfig holds the shared dashboard secret
type AuthConfig struct {
	SharedSecret string        `json:"DASHBOARD_AUTH_TOKEN" validate:"required"`
	PasswordHash string        `json:"DASHBOARD_PASSWORD_HASH"`
	SessionTTL   time.Duration `json:"SESSION_TTL" validate:"gt=0"`
}

// GoogleConfig holds the Sheets service account
type GoogleConfig struct {
	SpreadsheetID       string `json:"GOOGLE_SHEETS_SPREADSHEET_ID"`
	ServiceAccountEmail string `json:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	PrivateKey          string `json:"GOOGLE_PRIVATE_KEY"`
	BaseURL             string `json:"GOOGLE_SHEETS_BASE_URL"`
}

type WorkbookConfig struct {
	Path string `json:"WORKBOOK_PATH"`
}

// DashboardConfig tunes the performance engine
type DashboardConfig struct {
	DataSource               string         `json:"DATA_SOURCE" validate:"oneof=sheets workbook"`
	TeamConfigFile           string         `json:"TEAM_CONFIG_FILE"`
	Timezone                 string         `json:"APP_TIMEZONE" validate:"required"`
	Location                 *time.Location `json:"-"`
	UseHolidayCalendar       bool           `json:"USE_HOLIDAY_CALENDAR"`
	UnderperformingThreshold float64        `json:"STATUS_UNDERPERFORMING_THRESHOLD" validate:"lte=0"`
	FetchConcurrency         int            `json:"FETCH_CONCURRENCY" validate:"gte=1,lte=32"`
	// SourceCheckInterval of zero disables the background config check
	SourceCheckInterval time.Duration `json:"SOURCE_CHECK_INTERVAL" validate:"gte=0"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
		slog.Debug("No .env file found, using process environment")
	}

	config := &Config{}
	var errs []error

	config.App = AppConfig{
		Port:           getEnvInt("APP_PORT", 8080, &errs),
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second, &errs),
	}

	config.Auth = AuthConfig{
		SharedSecret: getEnv("DASHBOARD_AUTH_TOKEN", ""),
		PasswordHash: getEnv("DASHBOARD_PASSWORD_HASH", ""),
		SessionTTL:   getEnvDuration("SESSION_TTL", 7*24*time.Hour, &errs),
	}

	config.Google = GoogleConfig{
		SpreadsheetID:       getEnv("GOOGLE_SHEETS_SPREADSHEET_ID", ""),
		ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		PrivateKey:          getEnv("GOOGLE_PRIVATE_KEY", ""),
		BaseURL:             getEnv("GOOGLE_SHEETS_BASE_URL", ""),
	}

	config.Workbook = WorkbookConfig{
		Path: getEnv("WORKBOOK_PATH", ""),
	}

	config.Dashboard = DashboardConfig{
		DataSource:               strings.ToLower(getEnv("DATA_SOURCE", DataSourceSheets)),
		TeamConfigFile:           getEnv("TEAM_CONFIG_FILE", ""),
		Timezone:                 getEnv("APP_TIMEZONE", "Australia/Adelaide"),
		UseHolidayCalendar:       getEnvBool("USE_HOLIDAY_CALENDAR", true, &errs),
		UnderperformingThreshold: getEnvFloat("STATUS_UNDERPERFORMING_THRESHOLD", -0.5, &errs),
		FetchConcurrency:         getEnvInt("FETCH_CONCURRENCY", 4, &errs),
		SourceCheckInterval:      getEnvDuration("SOURCE_CHECK_INTERVAL", 15*time.Minute, &errs),
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	loc, err := time.LoadLocation(config.Dashboard.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	config.Dashboard.Location = loc

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.Struct(c); err != nil {
		return err
	}

	switch c.Dashboard.DataSource {
	case DataSourceSheets:
		if c.Google.SpreadsheetID == "" {
			return fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID is required")
		}
		if c.Google.ServiceAccountEmail == "" || c.Google.PrivateKey == "" {
			return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_EMAIL and GOOGLE_PRIVATE_KEY are required")
		}
	case DataSourceWorkbook:
		if c.Workbook.Path == "" {
			return fmt.Errorf("WORKBOOK_PATH is required")
		}
	}
	return nil
}

// IsProduction reports whether cookies must be marked Secure.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// SlogLevel maps LOG_LEVEL onto slog.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64, errs *[]error) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool, errs *[]error) bool {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return d
}
