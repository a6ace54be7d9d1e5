// cmd/hades-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/api/rest/v1"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/app"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/infrastructure/connector"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/infrastructure/persistence"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// An empty path runs on defaults and HADES_* environment variables
	configPath := os.Getenv("CONFIG_PATH")

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db                *gorm.DB
	extractionService documents.DocumentExtractionService
	metadataService   documents.DocumentMetadataService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	documentRepo, err := persistence.NewGormDocumentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document repository: %w", err)
	}

	ocrConnector, err := connector.NewOCRConnector(context.Background(), &cfg.OCR, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create OCR connector: %w", err)
	}
	log.Info("OCR connector initialized", "provider", cfg.OCR.Provider)

	extractionService, err := app.NewDocumentExtractionService(documentRepo, ocrConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document extraction service: %w", err)
	}

	metadataService, err := app.NewDocumentMetadataService(documentRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:                db,
		extractionService: extractionService,
		metadataService:   metadataService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Multipart bodies above this are spooled to disk
	r.MaxMultipartMemory = v1.MaxImageSize

	if err := v1.SetupRoutes(r, &cfg.Auth, deps.extractionService, deps.metadataService); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server", "port", cfg.Port, "auth_enabled", cfg.Auth.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
