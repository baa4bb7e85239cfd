package app

import (
	"fmt"
	"os"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/figura/internal/common"
	"github.com/ternarybob/figura/internal/handlers"
	"github.com/ternarybob/figura/internal/interfaces"
	"github.com/ternarybob/figura/internal/services/extractor"
	"github.com/ternarybob/figura/internal/services/inspector"
	"github.com/ternarybob/figura/internal/services/janitor"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Extraction services
	ExtractionService interfaces.ExtractionService
	InspectorService  interfaces.PDFInspector
	JanitorService    *janitor.Service

	// HTTP handlers
	APIHandler     *handlers.APIHandler
	HealthHandler  *handlers.HealthHandler
	ExtractHandler *handlers.ExtractHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize services
	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// Initialize handlers
	if err := app.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	logger.Info().
		Str("jar_path", cfg.Extractor.JarPath).
		Str("data_dir", cfg.Extractor.DataDir).
		Msg("Application initialization complete")

	return app, nil
}

// initServices initializes all business services in dependency order
func (a *App) initServices() error {
	// Per-request scratch workspaces are created under the data dir
	if err := os.MkdirAll(a.Config.Extractor.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir %s: %w", a.Config.Extractor.DataDir, err)
	}

	// Inspector is optional. Extraction runs fine without it.
	if a.Config.Inspector.Enabled {
		a.InspectorService = inspector.NewService(a.Logger)
		a.Logger.Debug().Msg("PDF inspector initialized")
	}

	a.ExtractionService = extractor.NewService(a.Config.Extractor, a.InspectorService, a.Logger)
	a.Logger.Debug().Msg("Extraction service initialized")

	// A missing JAR degrades the service but should not block startup,
	// the container may mount it after the process comes up
	if exists, path := a.ExtractionService.JarStatus(); !exists {
		a.Logger.Warn().
			Str("jar_path", path).
			Msg("Extraction JAR not found - extraction requests will fail until it is available")
	}

	a.JanitorService = janitor.NewService(a.Config.Janitor, a.Config.Extractor.DataDir, a.Logger)
	if err := a.JanitorService.Start(); err != nil {
		return fmt.Errorf("failed to start janitor service: %w", err)
	}
	a.Logger.Debug().Msg("Janitor service initialized")

	return nil
}

// initHandlers initializes all HTTP handlers
func (a *App) initHandlers() error {
	a.APIHandler = handlers.NewAPIHandler()
	a.HealthHandler = handlers.NewHealthHandler(a.ExtractionService, a.Logger)
	a.ExtractHandler = handlers.NewExtractHandler(a.ExtractionService, a.Logger)
	a.Logger.Debug().Msg("HTTP handlers initialized")
	return nil
}

// Close closes all application resources
func (a *App) Close() error {
	if a.JanitorService != nil {
		a.JanitorService.Stop()
		a.Logger.Info().Msg("Janitor service stopped")
	}

	return nil
}
