package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"workgroup/internal/cache"
	"workgroup/internal/config"
	"workgroup/internal/credentials"
	"workgroup/internal/db"
	"workgroup/internal/handler"
	"workgroup/internal/model"
	"workgroup/internal/repository"
	"workgroup/internal/router"
	"workgroup/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Employee{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	caches := cache.NewManager(cfg.CacheTTL, cfg.CacheMaxUsers)
	userRepo := repository.NewUserRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	codec := credentials.NewBcryptCodec()

	userService := service.NewUserService(userRepo, caches, codec)
	employeeService := service.NewEmployeeService(employeeRepo)

	userHandler := handler.NewUserHandler(userService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	e := echo.New()
	router.Register(e, userHandler, employeeHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
