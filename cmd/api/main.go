package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/puntualhq/timeclock-backend-go/internal/config"
	appHTTP "github.com/puntualhq/timeclock-backend-go/internal/handler/http"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/database"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/puntualhq/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/puntualhq/timeclock-backend-go/internal/service/attendance"
	authService "github.com/puntualhq/timeclock-backend-go/internal/service/auth"
	companyService "github.com/puntualhq/timeclock-backend-go/internal/service/company"
	employeeService "github.com/puntualhq/timeclock-backend-go/internal/service/employee"
	notificationService "github.com/puntualhq/timeclock-backend-go/internal/service/notification"
	payrollService "github.com/puntualhq/timeclock-backend-go/internal/service/payroll"
	vacationService "github.com/puntualhq/timeclock-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	profileRepo := postgresql.NewProfileRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	calculationRepo := postgresql.NewCalculationRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)

	jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Error initializing JWT service: ", err)
	}

	notificationSvc := notificationService.NewNotificationService(notificationRepo, employeeRepo)
	authSvc := authService.NewAuthService(profileRepo, employeeRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(punchRepo, employeeRepo, companyRepo, notificationSvc, cfg.DefaultLocation())
	payrollSvc := payrollService.NewPayrollService(calculationRepo, punchRepo, employeeRepo)
	companySvc := companyService.NewCompanyService(companyRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	vacationSvc := vacationService.NewVacationService(vacationRepo, notificationSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Environment: cfg.App.Env,
			LogLevel:    cfg.App.LogLevel,
		},
		jwtService,
		authHandler,
		attendanceHandler,
		payrollHandler,
		companyHandler,
		employeeHandler,
		notificationHandler,
		vacationHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
