package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobtrack/config"
	"jobtrack/internal/app"
	"jobtrack/internal/database"
	"jobtrack/internal/server"
	"jobtrack/internal/storage"
	"jobtrack/internal/storage/postgres"
	"jobtrack/internal/storage/sqlite"

	_ "jobtrack/docs" // Generated swagger docs

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// @title           Jobtrack API
// @version         1.0
// @description     Personal job-application tracker. CRUD over a single jobs collection.

// @host      localhost:8080
// @BasePath  /
// @schemes   http
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var jobRepo storage.JobRepository
	var closeStore func() error

	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open sqlite store: %v", err)
		}
		jobRepo = store
		closeStore = store.Close
	case "postgres":
		dsn := database.DSN(cfg.DB)
		if err := database.Migrate("up", dsn); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		dbPool, err := database.NewConnectionPool(cfg.DB)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		jobRepo = postgres.NewJobRepo(dbPool)
		closeStore = func() error { dbPool.Close(); return nil }
	default:
		log.Fatalf("Unknown storage driver: %q", cfg.Storage.Driver)
	}
	defer closeStore()

	validate := validator.New()

	application := &app.Application{
		Config:    cfg,
		JobRepo:   jobRepo,
		Validator: validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
