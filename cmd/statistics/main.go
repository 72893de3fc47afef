package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/linguaverse/statistics-service/internal/client"
	"github.com/linguaverse/statistics-service/internal/config"
	"github.com/linguaverse/statistics-service/internal/handlers"
	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/repository"
	"github.com/linguaverse/statistics-service/internal/server"
	"github.com/linguaverse/statistics-service/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	logging.SetDefault(logger)

	log.Printf("Starting Statistics service on port %d", cfg.Server.Port)
	if *configPath != "" {
		log.Printf("Loaded config from: %s", *configPath)
	}

	// Initialize repository
	var repo repository.Repository
	switch cfg.Database.Type {
	case "postgres":
		connString := cfg.Database.Postgres.ConnString()

		// Run database migrations
		log.Println("Running database migrations...")
		m, err := migrate.New("file://migrations", connString)
		if err != nil {
			log.Fatalf("Failed to initialize migrations: %v", err)
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Database migrations completed")

		pgRepo, err := repository.NewPostgresRepository(context.Background(), connString)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		repo = pgRepo
	default:
		log.Println("Using in-memory event store (development mode)")
		repo = repository.NewInMemoryRepository()
	}
	defer repo.Close()

	// Initialize downstream service clients
	timeout := cfg.Services.ClientTimeout
	lessons := client.NewLessonClient(cfg.Services.LessonURL, timeout, logger)
	vocabulary := client.NewVocabularyClient(cfg.Services.VocabularyURL, timeout, logger)
	users := client.NewUsersClient(cfg.Services.UsersURL, timeout, logger)

	// Initialize service and handlers
	svc := service.NewService(repo, lessons, vocabulary, users, logger)
	handler := handlers.NewHandler(svc, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Statistics service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
