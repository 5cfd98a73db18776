package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/config"
	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	appHTTP "github.com/elly-bignell/sales-dashboard/internal/handler/http"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/cron"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/jwt"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/oauth"
	"github.com/elly-bignell/sales-dashboard/internal/repository/file"
	"github.com/elly-bignell/sales-dashboard/internal/repository/sheets"
	"github.com/elly-bignell/sales-dashboard/internal/repository/workbook"
	serviceAuth "github.com/elly-bignell/sales-dashboard/internal/service/auth"
	dashboardService "github.com/elly-bignell/sales-dashboard/internal/service/dashboard"
	"github.com/go-chi/httplog/v3"
)

const appName = "sales-dashboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	rows, configs, err := newSources(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize data source", "source", cfg.Dashboard.DataSource, "error", err)
		os.Exit(1)
	}

	policy := dashboardService.StatusPolicy{UnderperformingThreshold: cfg.Dashboard.UnderperformingThreshold}
	DashboardService := dashboardService.NewDashboardService(rows, configs, dashboardService.Options{
		Location:           cfg.Dashboard.Location,
		Policy:             &policy,
		UseHolidayCalendar: cfg.Dashboard.UseHolidayCalendar,
		FetchConcurrency:   cfg.Dashboard.FetchConcurrency,
	})

	JWTService := jwt.NewJWTService(cfg.Auth.SharedSecret, cfg.Auth.SessionTTL, cfg.IsProduction())
	AuthService := serviceAuth.NewAuthService(JWTService, cfg.Auth.SharedSecret, cfg.Auth.PasswordHash)

	authHandler := appHTTP.NewAuthHandler(JWTService, AuthService)
	dashboardHandler := appHTTP.NewDashboardHandler(DashboardService)

	router := appHTTP.NewRouter(JWTService, authHandler, dashboardHandler, appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
		RequestTimeout: cfg.App.RequestTimeout,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.App.RequestTimeout + 5*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	cron.NewDashboardJobs(configs, JWTService).RegisterJobs(scheduler, cfg.Dashboard.SourceCheckInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	go func() {
		slog.Info("Server running", "addr", server.Addr, "source", cfg.Dashboard.DataSource)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}

// newSources picks the row source and the team config source. A YAML file
// overrides the Config tab when TEAM_CONFIG_FILE is set.
func newSources(ctx context.Context, cfg *config.Config) (dashboard.RowSource, dashboard.ConfigSource, error) {
	var rows dashboard.RowSource
	switch cfg.Dashboard.DataSource {
	case config.DataSourceWorkbook:
		rows = workbook.NewRowRepository(cfg.Workbook.Path)
	default:
		google, err := oauth.NewGoogleService(cfg.Google.ServiceAccountEmail, cfg.Google.PrivateKey, []string{oauth.SheetsReadOnlyScope})
		if err != nil {
			return nil, nil, err
		}
		rows, err = sheets.NewRowRepository(ctx, google.HTTPClient(ctx), cfg.Google.BaseURL, cfg.Google.SpreadsheetID)
		if err != nil {
			return nil, nil, err
		}
	}

	if cfg.Dashboard.TeamConfigFile != "" {
		return rows, file.NewConfigRepository(cfg.Dashboard.TeamConfigFile), nil
	}
	return rows, sheets.NewConfigRepository(rows, sheets.ConfigSheet), nil
}
