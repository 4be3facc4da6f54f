package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/puntualhq/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Environment string
	LogLevel    string
}

// parseLogLevel maps the configured name to a slog level, defaulting to
// info for unknown names.
func parseLogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	notificationHandler NotificationHandler,
	vacationHandler VacationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logLevel := parseLogLevel(cfg.LogLevel)
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.AdminLogin)
			r.Post("/login/employee", authHandler.EmployeeLogin)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				// Employee self-service
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/punch", attendanceHandler.Record)
					r.Get("/today", attendanceHandler.TodaySummary)
					r.Get("/history", attendanceHandler.History)
					r.Get("/stats", attendanceHandler.MonthlyStats)
				})

				r.With(middleware.AdminOnly).Get("/report", attendanceHandler.DailyReport)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/calculate", payrollHandler.Calculate)
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)
			})

			r.Route("/company", func(r chi.Router) {
				r.Get("/", companyHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", companyHandler.Update)
					r.Route("/zones", func(r chi.Router) {
						r.Post("/", companyHandler.CreateZone)
						r.Get("/", companyHandler.ListZones)
						r.Put("/{id}", companyHandler.UpdateZone)
						r.Delete("/{id}", companyHandler.DeleteZone)
					})
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.EmployeeOnly).Get("/me", employeeHandler.Me)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Put("/read-all", notificationHandler.MarkAllAsRead)
				r.Put("/{id}/read", notificationHandler.MarkAsRead)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/", vacationHandler.Create)
					r.Get("/my", vacationHandler.ListMine)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", vacationHandler.ListCompany)
					r.Put("/{id}/approve", vacationHandler.Approve)
					r.Put("/{id}/reject", vacationHandler.Reject)
				})
			})
		})
	})

	return r
}
