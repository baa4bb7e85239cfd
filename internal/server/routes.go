package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Extraction endpoints
	mux.HandleFunc("/extract", s.app.ExtractHandler.UploadHandler)
	mux.HandleFunc("/extract-from-path", s.app.ExtractHandler.FromPathHandler)

	// Health endpoint used by container orchestration
	mux.HandleFunc("/health", s.app.HealthHandler.GetHealthHandler)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
