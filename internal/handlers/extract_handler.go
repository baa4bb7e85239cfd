package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/figura/internal/interfaces"
	"github.com/ternarybob/figura/internal/models"
)

// maxStderrChars caps how much tool output is echoed back to clients on
// extraction failure.
const maxStderrChars = 1000

// ExtractHandler serves the figure extraction endpoints
type ExtractHandler struct {
	service interfaces.ExtractionService
	logger  arbor.ILogger
}

// NewExtractHandler creates a new ExtractHandler
func NewExtractHandler(service interfaces.ExtractionService, logger arbor.ILogger) *ExtractHandler {
	return &ExtractHandler{
		service: service,
		logger:  logger,
	}
}

// extractFromPathRequest is the body of POST /extract-from-path
type extractFromPathRequest struct {
	PDFPath string `json:"pdf_path"`
}

// UploadHandler handles POST /extract
// Accepts a PDF as multipart/form-data under the field name "pdf".
func (h *ExtractHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "No PDF file provided")
		return
	}
	defer file.Close()

	// Unreachable via net/http, which files filename-less parts under
	// form values; FormFile above already returns the 400 for those.
	if header.Filename == "" {
		WriteError(w, http.StatusBadRequest, "Empty filename")
		return
	}

	figures, err := h.service.Extract(r.Context(), interfaces.ExtractionRequest{
		Payload:  file,
		Filename: header.Filename,
	})
	if err != nil {
		h.writeExtractionError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, models.FiguresResponse{Figures: figures})
}

// FromPathHandler handles POST /extract-from-path
// Accepts {"pdf_path": "..."} referencing a PDF on a mounted volume.
func (h *ExtractHandler) FromPathHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req extractFromPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PDFPath == "" {
		WriteError(w, http.StatusBadRequest, "No pdf_path provided")
		return
	}

	figures, err := h.service.Extract(r.Context(), interfaces.ExtractionRequest{Path: req.PDFPath})
	if err != nil {
		if errors.Is(err, interfaces.ErrPDFNotFound) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("PDF not found: %s", req.PDFPath))
			return
		}
		h.writeExtractionError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, models.FiguresResponse{Figures: figures})
}

// writeExtractionError maps service failures onto HTTP status codes:
// timeout -> 504, tool exit -> 500 with truncated stderr, anything
// else -> 500 with the error message.
func (h *ExtractHandler) writeExtractionError(w http.ResponseWriter, err error) {
	if errors.Is(err, interfaces.ErrTimeout) {
		WriteError(w, http.StatusGatewayTimeout, "Processing timeout")
		return
	}

	var toolErr *interfaces.ToolError
	if errors.As(err, &toolErr) {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "pdffigures2 extraction failed",
			"stderr": truncate(toolErr.Stderr, maxStderrChars),
		})
		return
	}

	h.logger.Error().Err(err).Msg("Extraction failed")
	WriteError(w, http.StatusInternalServerError, err.Error())
}

// truncate returns the first n characters of s, never cutting inside a
// multi-byte character.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
