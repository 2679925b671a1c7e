package http

import (
	"log/slog"
	"os"

	"github.com/cliniquenova/timeclock-backend-go/internal/config"
	"github.com/cliniquenova/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	settingsHandler SettingsHandler,
	backupHandler BackupHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/punches", attendanceHandler.ListPunches)
				r.Get("/work-hours", attendanceHandler.WorkHours)

				// Manager and admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/missing", attendanceHandler.MissingPunches)
					r.Route("/lateness", func(r chi.Router) {
						r.Get("/", attendanceHandler.ListLateness)
						r.Get("/stats", attendanceHandler.LatenessStats)
					})
					r.Route("/absences", func(r chi.Router) {
						r.Get("/", attendanceHandler.ListAbsences)
						r.Post("/", attendanceHandler.MarkAbsence)
					})
				})
			})

			// Manager and admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/attendance/export", reportHandler.AttendanceReport)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Get("/{id}", userHandler.Get)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", settingsHandler.Get)
					r.Put("/", settingsHandler.Update)
				})

				r.Route("/backup", func(r chi.Router) {
					r.Get("/export", backupHandler.Export)
					r.Post("/import", backupHandler.Import)
				})
			})
		})
	})
	return r
}
