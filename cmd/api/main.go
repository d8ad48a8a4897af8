package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/empdesk/empdesk-backend-go/internal/config"
	appHTTP "github.com/empdesk/empdesk-backend-go/internal/handler/http"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/database"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/jwt"
	"github.com/empdesk/empdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/empdesk/empdesk-backend-go/internal/service/attendance"
	authService "github.com/empdesk/empdesk-backend-go/internal/service/auth"
	departmentService "github.com/empdesk/empdesk-backend-go/internal/service/department"
	dependentService "github.com/empdesk/empdesk-backend-go/internal/service/dependent"
	employeeService "github.com/empdesk/empdesk-backend-go/internal/service/employee"
	leaveService "github.com/empdesk/empdesk-backend-go/internal/service/leave"
	payrollService "github.com/empdesk/empdesk-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "empdesk"),
		slog.String("env", cfg.App.Env),
	)

	adminRepo := postgresql.NewAdminRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	dependentRepo := postgresql.NewDependentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(adminRepo, employeeRepo, JWTService)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo)
	dependentSvc := dependentService.NewDependentService(dependentRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	payslipSvc := payrollService.NewPayslipService(
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		dependentRepo,
		logger.With(slog.String("component", "payroll")),
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, dependentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payslipSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		departmentHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
