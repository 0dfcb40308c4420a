package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"eventease/config"
	delivery "eventease/internal/delivery/http"
	"eventease/internal/delivery/http/controllers"
	"eventease/internal/repository/postgres"
	"eventease/internal/services"
)

// @title           EventEase API
// @version         1.0
// @description     Event management backend: events, users, RSVPs, and tasks.
// @BasePath        /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "error", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	eventService := services.NewEventService(eventRepo, userRepo, cfg.DBTimeout)
	userService := services.NewUserService(userRepo, cfg.DBTimeout)
	rsvpService := services.NewRSVPService(rsvpRepo, eventRepo, userRepo, cfg.DBTimeout)
	taskService := services.NewTaskService(taskRepo, eventRepo, userRepo, cfg.DBTimeout)

	router := delivery.NewRouter(
		logger,
		controllers.NewRSVPController(logger, rsvpService),
		controllers.NewEventController(logger, eventService),
		controllers.NewUserController(logger, userService),
		controllers.NewTaskController(logger, taskService),
		cfg.AllowedOrigins,
	)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
