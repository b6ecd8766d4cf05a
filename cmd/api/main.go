package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/config"
	"github.com/facade-tech/workforce-backend-go/internal/fixtures"
	appHTTP "github.com/facade-tech/workforce-backend-go/internal/handler/http"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/jwt"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/llm"
	"github.com/facade-tech/workforce-backend-go/internal/repository/postgresql"
	advanceService "github.com/facade-tech/workforce-backend-go/internal/service/advance"
	attendanceService "github.com/facade-tech/workforce-backend-go/internal/service/attendance"
	auditService "github.com/facade-tech/workforce-backend-go/internal/service/audit"
	authService "github.com/facade-tech/workforce-backend-go/internal/service/auth"
	employeeService "github.com/facade-tech/workforce-backend-go/internal/service/employee"
	payoutService "github.com/facade-tech/workforce-backend-go/internal/service/payout"
	payrollService "github.com/facade-tech/workforce-backend-go/internal/service/payroll"
	projectService "github.com/facade-tech/workforce-backend-go/internal/service/project"
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

	ctx := context.Background()
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		fmt.Println("Error preparing schema:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	txManager := postgresql.NewTxManager(db)

	seeded, err := fixtures.SeedIfEmpty(ctx, employeeRepo, projectRepo)
	if err != nil {
		fmt.Println("Error seeding defaults:", err)
		return
	}
	if seeded {
		fmt.Println("Seeded default employees and projects")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	llmClient := llm.NewAnthropicClient(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)

	authSvc := authService.NewAuthService(employeeRepo, settingsRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, advanceRepo, txManager)
	projectSvc := projectService.NewProjectService(projectRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, projectRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	payoutSvc := payoutService.NewPayoutService(payoutRepo, employeeRepo, attendanceRepo, advanceRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, projectRepo, attendanceRepo, advanceRepo, payoutRepo)
	auditSvc := auditService.NewAuditService(employeeRepo, projectRepo, attendanceRepo, advanceRepo, llmClient)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	payoutHandler := appHTTP.NewPayoutHandler(payoutSvc)
	reportHandler := appHTTP.NewReportHandler(payrollSvc)
	auditHandler := appHTTP.NewAuditHandler(auditSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{CORSOrigin: cfg.App.CORSOrigin, Env: cfg.App.Env},
		jwtService,
		authHandler,
		employeeHandler,
		projectHandler,
		attendanceHandler,
		advanceHandler,
		payoutHandler,
		reportHandler,
		auditHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
