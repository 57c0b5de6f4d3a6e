package main

import (
	"log"

	api "tasktracker-backend/cmd/api"
	"tasktracker-backend/internal/task/controller"
	"tasktracker-backend/internal/task/domain"
	taskRepo "tasktracker-backend/internal/task/repository"
	taskUsecase "tasktracker-backend/internal/task/usecase"
	"tasktracker-backend/pkg/config"
	"tasktracker-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize repository and use case (dependency injection)
	repo := taskRepo.NewGormTaskRepository(db)
	taskUc := taskUsecase.NewTaskUsecase(repo)

	// Start the debounced query controller and prime it with the
	// identity filter so the live snapshot fills on boot.
	queryCtrl := controller.NewQueryController(repo, cfg.DebounceInterval)
	handler := api.NewHandler(taskUc, queryCtrl, cfg)
	queryCtrl.Start()
	defer queryCtrl.Stop()
	queryCtrl.SetFilter(domain.MatchAll())

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
