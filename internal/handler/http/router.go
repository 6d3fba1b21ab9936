package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/ems-backend-go/internal/config"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
	"github.com/staffhub/ems-backend-go/internal/handler/http/middleware"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth        AuthHandler
	User        UserHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Performance PerformanceHandler
	Settings    SettingsHandler
	Shift       ShiftHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/api/health"))

	// Uploaded files (avatars, documents, payslips) are served straight off
	// the local storage directory.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", h.User.List)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}/role", h.User.UpdateRole)
				r.Put("/{id}/status", h.User.UpdateStatus)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).
					Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Post("/{id}/avatar", h.Employee.UploadAvatar)
					r.Post("/{id}/documents", h.Employee.UploadDocument)
				})

				r.With(middleware.RequirePermission(user.PermissionEmployeeDelete)).
					Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAttendanceClock))
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/", h.Attendance.List)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Get("/balance/{employeeId}", h.Leave.Balance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApply))
					r.Post("/", h.Leave.Apply)
					r.Put("/{id}", h.Leave.Update)
					r.Delete("/{id}", h.Leave.Delete)
				})

				r.With(middleware.RequirePermission(user.PermissionLeaveReview)).
					Put("/{id}/approve", h.Leave.Review)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.List)
				r.Get("/{id}", h.Payroll.Get)
				r.Get("/employee/{employeeId}", h.Payroll.ListByEmployee)

				r.With(middleware.RequirePermission(user.PermissionPayrollGenerate)).
					Post("/generate", h.Payroll.Generate)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Payroll.Create)
					r.Post("/calculate", h.Payroll.Calculate)
					r.Post("/structure", h.Payroll.DefineStructure)
				})

				r.With(middleware.RequirePermission(user.PermissionPayrollManage)).
					Put("/{id}/status", h.Payroll.UpdateStatus)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPerformanceView))
				r.Get("/", h.Performance.List)
				r.Get("/{id}", h.Performance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPerformanceManage))
					r.Post("/", h.Performance.Create)
					r.Put("/{id}", h.Performance.Update)
				})

				r.With(middleware.RequirePermission(user.PermissionPerformanceDelete)).
					Delete("/{id}", h.Performance.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionSettingsView))

				r.Route("/departments", func(r chi.Router) {
					r.Get("/", h.Settings.ListDepartments)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
						r.Post("/", h.Settings.CreateDepartment)
						r.Put("/{id}", h.Settings.UpdateDepartment)
						r.Delete("/{id}", h.Settings.DeleteDepartment)
					})
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", h.Settings.ListHolidays)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
						r.Post("/", h.Settings.CreateHoliday)
						r.Delete("/{id}", h.Settings.DeleteHoliday)
					})
				})

				r.Route("/leave-types", func(r chi.Router) {
					r.Get("/", h.Settings.ListLeaveTypes)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
						r.Post("/", h.Settings.CreateLeaveType)
						r.Put("/{id}", h.Settings.UpdateLeaveType)
						r.Delete("/{id}", h.Settings.DeleteLeaveType)
					})
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionShiftView))
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.Get)
				r.Get("/{id}/employees", h.Shift.ListEmployees)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionShiftManage))
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Post("/{id}/assign", h.Shift.Assign)
				})

				r.With(middleware.RequirePermission(user.PermissionShiftDelete)).
					Delete("/{id}", h.Shift.Delete)
			})
		})
	})
	return r
}
