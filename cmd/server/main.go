package main

import (
	"log"
	"net/http"

	_ "staffdesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"staffdesk/internal/auth"
	"staffdesk/internal/config"
	"staffdesk/internal/db"
	"staffdesk/internal/handler"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
	"staffdesk/internal/router"
	"staffdesk/internal/service"
)

// @title Staffdesk API
// @version 1.0
// @description Employee-record management API with user accounts and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations; unique indexes on email, phone, username and
	// employee_id back the service-level uniqueness checks.
	if err := gormDB.AutoMigrate(
		&model.Employee{},
		&model.UserAccount{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	userAccountRepo := repository.NewUserAccountRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize services
	employeeService := service.NewEmployeeService(employeeRepo)
	userAccountService := service.NewUserAccountService(userAccountRepo)
	authService := service.NewAuthService(userAccountRepo, jwtService, tokenStore)

	// Initialize handlers
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	userHandler := handler.NewUserHandler(userAccountService)
	authHandler := handler.NewAuthHandler(authService, userAccountService, employeeService)

	// Register routes
	router.Register(e, cfg, employeeHandler, userHandler, authHandler)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
