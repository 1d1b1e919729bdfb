package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"langportal/internal/config"
	"langportal/internal/database"
	"langportal/internal/handlers"
	"langportal/internal/repository"
	"langportal/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Optionally seed starter data
	if cfg.SeedOnStartup {
		seedService := service.NewSeedService(db, cfg.SeedsPath)
		if err := seedService.Seed(); err != nil {
			log.Printf("Warning: Failed to seed starter data: %v", err)
		}
	}

	// Initialize repositories
	wordRepo := repository.NewWordRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	systemRepo := repository.NewSystemRepository(db)

	// Initialize services
	wordService := service.NewWordService(wordRepo)
	groupService := service.NewGroupService(groupRepo, sessionRepo)
	studyService := service.NewStudyService(sessionRepo, activityRepo)
	dashboardService := service.NewDashboardService(statsRepo)
	systemService := service.NewSystemService(systemRepo, statsRepo)

	// Initialize handlers and routes
	router := handlers.NewRouter(&handlers.Handlers{
		Words:      handlers.NewWordsHandler(wordService),
		Groups:     handlers.NewGroupsHandler(groupService),
		Sessions:   handlers.NewSessionsHandler(studyService),
		Activities: handlers.NewActivitiesHandler(studyService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
		System:     handlers.NewSystemHandler(systemService),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine so shutdown can be handled
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
