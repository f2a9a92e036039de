package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/brickfolio/property-portfolio-backend/internal/api"
	"github.com/brickfolio/property-portfolio-backend/internal/auth"
	"github.com/brickfolio/property-portfolio-backend/internal/config"
	"github.com/brickfolio/property-portfolio-backend/internal/database"
	"github.com/brickfolio/property-portfolio-backend/internal/repository"
	"github.com/brickfolio/property-portfolio-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	ownerRepo := repository.NewOwnerRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	liquidationRepo := repository.NewLiquidationRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	ownerService := service.NewOwnerService(ownerRepo)
	transactionService := service.NewTransactionService(
		transactionRepo,
		propertyRepo,
	)
	propertyService := service.NewPropertyService(
		db,
		propertyRepo,
		transactionRepo,
		liquidationRepo,
	)
	portfolioService := service.NewPortfolioService(
		propertyRepo,
		transactionService,
	)
	snapshotService := service.NewSnapshotService(
		snapshotRepo,
		propertyRepo,
	)

	// Session token manager. Without a configured key a random one is
	// generated, so tokens do not survive restarts.
	sessionKey := cfg.Session.Key
	if sessionKey == "" {
		sessionKey, err = auth.GenerateKey()
		if err != nil {
			log.Fatalf("Failed to generate session key: %v", err)
		}
		log.Println("SESSION_KEY not set, generated ephemeral session key")
	}
	sessions, err := auth.NewSessionManager(sessionKey, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Schedule daily valuation snapshots
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Snapshot.CronSpec, snapshotService.RunScheduled); err != nil {
		log.Fatalf("Failed to schedule valuation snapshots: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Owner:       ownerService,
		Property:    propertyService,
		Transaction: transactionService,
		Portfolio:   portfolioService,
		Snapshot:    snapshotService,
	}, sessions, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
