package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/tanasitp/timesheet-management/internal/auth"
	"github.com/tanasitp/timesheet-management/internal/company"
	"github.com/tanasitp/timesheet-management/internal/holiday"
	"github.com/tanasitp/timesheet-management/internal/report"
	"github.com/tanasitp/timesheet-management/internal/timeentry"
	"github.com/tanasitp/timesheet-management/internal/transport/middleware"
	"github.com/tanasitp/timesheet-management/internal/transport/swagger"
	"github.com/tanasitp/timesheet-management/internal/user"
)

// Handlers bundles the per-module HTTP handlers the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	User      *user.Handler
	Company   *company.Handler
	TimeEntry *timeentry.Handler
	Report    *report.Handler
	Holiday   *holiday.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, rateLimiter *middleware.RateLimiter, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	if rateLimiter != nil {
		router.Use(rateLimiter.Middleware)
	}

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", h.Auth.Login)
				sr.Post("/register", h.Auth.Register)
				sr.Post("/refresh", h.Auth.RefreshToken)
				sr.Post("/logout", h.Auth.Logout)
			})
		}

		// Public holiday calendar (no auth required)
		if h.Holiday != nil {
			r.Get("/holidays", h.Holiday.GetHolidays)
		}

		if h.Auth != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(h.Auth.AuthMiddleware)

				pr.Post("/auth/change-password", h.Auth.ChangePassword)

				// Current user
				if h.User != nil {
					pr.Get("/users/me", h.User.GetCurrentUser)
					pr.Patch("/users/me", h.User.UpdateProfile)
				}

				// Company routes
				if h.Company != nil {
					pr.Route("/companies", func(cr chi.Router) {
						cr.Post("/", h.Company.CreateCompany)  // POST /companies
						cr.Get("/", h.Company.ListCompanies)   // GET /companies
						cr.Get("/{id}", h.Company.GetCompany)  // GET /companies/:id
						cr.Patch("/{id}", h.Company.UpdateCompany)
						cr.Delete("/{id}", h.Company.DeleteCompany)
					})
				}

				// Time entry routes
				if h.TimeEntry != nil {
					pr.Route("/time-entries", func(er chi.Router) {
						er.Post("/", h.TimeEntry.CreateEntry) // POST /time-entries
						er.Get("/", h.TimeEntry.ListEntries)  // GET /time-entries
						er.Get("/{id}", h.TimeEntry.GetEntry) // GET /time-entries/:id
						er.Patch("/{id}", h.TimeEntry.UpdateEntry)
						er.Delete("/{id}", h.TimeEntry.DeleteEntry)
					})
				}

				// Report routes
				if h.Report != nil {
					pr.Route("/reports", func(rr chi.Router) {
						rr.Get("/monthly", h.Report.GetMonthlyReport)
						rr.Get("/monthly/export", h.Report.ExportMonthlyReport)
					})
				}
			})
		}
	})
}
