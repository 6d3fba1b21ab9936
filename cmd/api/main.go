package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffhub/ems-backend-go/internal/config"
	appHTTP "github.com/staffhub/ems-backend-go/internal/handler/http"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
	"github.com/staffhub/ems-backend-go/internal/pkg/email"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
	"github.com/staffhub/ems-backend-go/internal/pkg/oauth"
	"github.com/staffhub/ems-backend-go/internal/pkg/pdf"
	"github.com/staffhub/ems-backend-go/internal/pkg/storage"
	"github.com/staffhub/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub/ems-backend-go/internal/service/attendance"
	authService "github.com/staffhub/ems-backend-go/internal/service/auth"
	employeeService "github.com/staffhub/ems-backend-go/internal/service/employee"
	leaveService "github.com/staffhub/ems-backend-go/internal/service/leave"
	payrollService "github.com/staffhub/ems-backend-go/internal/service/payroll"
	performanceService "github.com/staffhub/ems-backend-go/internal/service/performance"
	settingsService "github.com/staffhub/ems-backend-go/internal/service/settings"
	shiftService "github.com/staffhub/ems-backend-go/internal/service/shift"
	userService "github.com/staffhub/ems-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		[]string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
	)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	pdfGenerator := pdf.NewGenerator("StaffHub")

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, emailService, cfg.Leave.DefaultAnnualBalance)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, pdfGenerator, fileStorage, emailService)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, employeeRepo)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		User:        appHTTP.NewUserHandler(userSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Settings:    appHTTP.NewSettingsHandler(settingsSvc),
		Shift:       appHTTP.NewShiftHandler(shiftSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
