package main

import (
	"net/http"
	"os"

	_ "shiftbook/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shiftbook/internal/config"
	"shiftbook/internal/db"
	"shiftbook/internal/handler"
	"shiftbook/internal/logger"
	"shiftbook/internal/model"
	"shiftbook/internal/repository"
	"shiftbook/internal/router"
	"shiftbook/internal/service"
)

// @title Shiftbook API
// @version 1.0
// @description Scheduling-records service managing persons, shifts, and overtime.
// @BasePath /
// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name access_token
func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Overtime{},
			&model.Shift{},
			&model.Person{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("drop table (may not exist)")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Person{},
		&model.Shift{},
		&model.Overtime{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	// Initialize repositories
	personRepo := repository.NewPersonRepository(gormDB)
	shiftRepo := repository.NewShiftRepository(gormDB)
	overtimeRepo := repository.NewOvertimeRepository(gormDB)

	// Initialize services
	personService := service.NewPersonService(personRepo, shiftRepo, log)
	shiftService := service.NewShiftService(shiftRepo, log)
	overtimeService := service.NewOvertimeService(overtimeRepo, shiftRepo)

	// Initialize handlers
	personHandler := handler.NewPersonHandler(personService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	overtimeHandler := handler.NewOvertimeHandler(overtimeService)

	// Register routes
	router.Register(e, cfg, log, personHandler, shiftHandler, overtimeHandler)

	if cfg.APIKey == "" {
		log.Warn().Msg("API_KEY is empty, requests without an access_token header will pass")
	}

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
