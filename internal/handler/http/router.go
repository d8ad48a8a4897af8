package http

import (
	"log/slog"
	"os"

	"github.com/empdesk/empdesk-backend-go/internal/handler/http/middleware"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	departmentHandler DepartmentHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "empdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth/login", func(r chi.Router) {
			r.Post("/admin", authHandler.LoginAdmin)
			r.Post("/employee", authHandler.LoginEmployee)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Employee self-service
			r.Route("/me", func(r chi.Router) {
				r.Route("/attendances", func(r chi.Router) {
					r.Post("/", attendanceHandler.RecordMine)
					r.Get("/", attendanceHandler.ListMine)
				})
				r.Route("/leave-requests", func(r chi.Router) {
					r.Post("/", leaveHandler.SubmitMine)
					r.Get("/", leaveHandler.ListMine)
				})
				r.Get("/payslip", payrollHandler.GetMyPayslip)
				r.Get("/payslips", payrollHandler.GetMyHistory)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/departments", func(r chi.Router) {
					r.Post("/", departmentHandler.Create)
					r.Get("/", departmentHandler.List)
				})

				r.Route("/leave-requests", func(r chi.Router) {
					r.Get("/pending", leaveHandler.ListPending)
					r.Post("/{leaveRequestId}/approve", leaveHandler.Approve)
					r.Post("/{leaveRequestId}/reject", leaveHandler.Reject)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", employeeHandler.Create)
					r.Get("/", employeeHandler.List)

					r.Route("/{employeeId}", func(r chi.Router) {
						r.Get("/", employeeHandler.GetByID)
						r.Put("/", employeeHandler.Update)
						r.Delete("/", employeeHandler.Delete)

						r.Route("/dependents", func(r chi.Router) {
							r.Post("/", employeeHandler.AddDependent)
							r.Get("/", employeeHandler.ListDependents)
							r.Delete("/{dependentId}", employeeHandler.RemoveDependent)
						})

						r.Route("/attendances", func(r chi.Router) {
							r.Post("/", attendanceHandler.RecordForEmployee)
							r.Get("/", attendanceHandler.ListForEmployee)
						})

						r.Get("/leave-requests", leaveHandler.ListForEmployee)

						r.Get("/payslip", payrollHandler.GetEmployeePayslip)
						r.Get("/payslips", payrollHandler.GetEmployeeHistory)
						r.Get("/salary-estimate", payrollHandler.GetEmployeeEstimate)
					})
				})
			})
		})
	})
	return r
}
