package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"
	"github.com/ternarybob/figura/internal/common"
	"github.com/ternarybob/figura/internal/services/extractor"
	"github.com/ternarybob/figura/internal/services/inspector"
)

func main() {
	// Load configuration. The config file is optional, defaults plus
	// environment variables cover container deployments.
	configPath := os.Getenv("FIGURA_CONFIG")
	if configPath == "" {
		if _, err := os.Stat("figura.toml"); err == nil {
			configPath = "figura.toml"
		}
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize minimal logger for MCP server (console only, no file output)
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn") // Minimal logging to avoid cluttering MCP stdio

	// Scratch workspaces land in the same data dir the HTTP service uses
	if err := os.MkdirAll(config.Extractor.DataDir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("data_dir", config.Extractor.DataDir).Msg("Failed to create data dir")
	}

	// Initialize services. The inspector is always wired here so MCP
	// clients get PDF metadata even when the HTTP service disables preflight.
	inspectorService := inspector.NewService(logger)
	extractionService := extractor.NewService(config.Extractor, inspectorService, logger)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"figura",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register extraction tools
	mcpServer.AddTool(createExtractFiguresTool(), handleExtractFigures(extractionService, logger))
	mcpServer.AddTool(createInspectPDFTool(), handleInspectPDF(inspectorService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
