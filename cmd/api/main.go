package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cliniquenova/timeclock-backend-go/internal/config"
	appHTTP "github.com/cliniquenova/timeclock-backend-go/internal/handler/http"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cliniquenova/timeclock-backend-go/internal/repository/sqlite"
	attendanceService "github.com/cliniquenova/timeclock-backend-go/internal/service/attendance"
	serviceAuth "github.com/cliniquenova/timeclock-backend-go/internal/service/auth"
	backupService "github.com/cliniquenova/timeclock-backend-go/internal/service/backup"
	employeeService "github.com/cliniquenova/timeclock-backend-go/internal/service/employee"
	reportService "github.com/cliniquenova/timeclock-backend-go/internal/service/report"
	settingsService "github.com/cliniquenova/timeclock-backend-go/internal/service/settings"
	userService "github.com/cliniquenova/timeclock-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	punchRepo := sqlite.NewPunchRepository(db)
	latenessRepo := sqlite.NewLatenessRepository(db)
	absenceRepo := sqlite.NewAbsenceRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, punchRepo, latenessRepo, absenceRepo, employeeRepo, settingsRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	backupSvc := backupService.NewBackupService(db, userRepo, employeeRepo, punchRepo, latenessRepo, absenceRepo, settingsRepo)
	reportSvc := reportService.NewReportService(punchRepo)

	if err := userSvc.EnsureSeedAdmin(
		context.Background(),
		cfg.SeedAdmin.Username,
		cfg.SeedAdmin.Password,
		cfg.SeedAdmin.LastName,
		cfg.SeedAdmin.FirstName,
	); err != nil {
		fmt.Println("Error ensuring seed admin:", err)
		return
	}

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	backupHandler := appHTTP.NewBackupHandler(backupSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		userHandler,
		employeeHandler,
		attendanceHandler,
		settingsHandler,
		backupHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
