package http

import (
	"log/slog"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/handler/http/middleware"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// CacheControl lets browsers reuse a snapshot for five minutes.
const CacheControl = "private, max-age=300"

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(JWTService jwt.Service, authHandler AuthHandler, dashboardHandler DashboardHandler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(chiMiddleware.Timeout(opts.RequestTimeout))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Use(chiMiddleware.AllowContentType("application/json"))
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires a session cookie
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionVerifier(JWTService))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(chiMiddleware.SetHeader("Cache-Control", CacheControl))

			r.Get("/dashboard", dashboardHandler.GetDashboard)
			r.Get("/holidays", dashboardHandler.GetHolidays)
			r.Route("/people", func(r chi.Router) {
				r.Get("/", dashboardHandler.GetPeople)
				r.Get("/{personKey}", dashboardHandler.GetPerson)
			})
		})
	})
	return r
}
