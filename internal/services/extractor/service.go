// -----------------------------------------------------------------------
// Extraction Service - Runs the pdffigures2 CLI behind a Go API
// Stages input, invokes the tool, normalizes output, always cleans up
// -----------------------------------------------------------------------

package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/figura/internal/common"
	"github.com/ternarybob/figura/internal/interfaces"
	"github.com/ternarybob/figura/internal/models"
)

// Service shells out to the pdffigures2 CLI for each request. Every
// request gets its own scratch directory under the data root, removed
// unconditionally when the request finishes.
type Service struct {
	config    common.ExtractorConfig
	inspector interfaces.PDFInspector
	logger    arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.ExtractionService = (*Service)(nil)

// NewService creates a new extraction service. The inspector is optional;
// when present each PDF is inspected before the tool runs, for logging
// only. The tool remains authoritative over what can be processed.
func NewService(config common.ExtractorConfig, inspector interfaces.PDFInspector, logger arbor.ILogger) *Service {
	return &Service{
		config:    config,
		inspector: inspector,
		logger:    logger,
	}
}

// Extract runs the extraction tool against the PDF described by req.
func (s *Service) Extract(ctx context.Context, req interfaces.ExtractionRequest) ([]models.Figure, error) {
	if req.Payload == nil && req.Path == "" {
		return nil, fmt.Errorf("no pdf provided")
	}
	if req.Payload != nil && req.Path != "" {
		return nil, fmt.Errorf("both pdf payload and path provided")
	}

	// Referenced paths are validated before any scratch space is created
	if req.Payload == nil {
		if _, err := os.Stat(req.Path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", interfaces.ErrPDFNotFound, req.Path)
			}
			return nil, fmt.Errorf("failed to stat pdf %s: %w", req.Path, err)
		}
		s.warnIfOutsideDataRoot(req.Path)
	}

	ws, err := newWorkspace(s.config.DataDir)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithCorrelationId(ws.id)
	defer func() {
		if err := ws.cleanup(); err != nil {
			log.Warn().Err(err).Str("dir", ws.dir).Msg("Failed to remove work directory")
		}
	}()

	pdfPath := req.Path
	if req.Payload != nil {
		staged, err := ws.stage(req.Payload)
		if err != nil {
			return nil, err
		}
		pdfPath = staged
		log.Debug().Str("filename", req.Filename).Msg("Staged uploaded PDF")
	}

	// Preflight is observational. Documents the inspector rejects are
	// still handed to the tool.
	if s.inspector != nil {
		if info, err := s.inspector.Inspect(ctx, pdfPath); err != nil {
			log.Warn().Err(err).Msg("PDF preflight failed")
		} else {
			log.Info().
				Int("pages", info.Pages).
				Bool("encrypted", info.Encrypted).
				Int64("file_size", info.FileSize).
				Msg("PDF preflight")
		}
	}

	result, err := s.runTool(ctx, log, pdfPath, ws.outputPrefix())
	if err != nil {
		return nil, err
	}

	figures, err := parseOutput(ws.outputFileFor(pdfPath))
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("figures", len(figures)).
		Dur("elapsed", result.Duration).
		Msg("Extraction completed")

	return figures, nil
}

// JarStatus reports whether the tool JAR is present on disk.
func (s *Service) JarStatus() (bool, string) {
	_, err := os.Stat(s.config.JarPath)
	return err == nil, s.config.JarPath
}

// warnIfOutsideDataRoot flags path-based requests that reference files
// outside the mounted data root. Such paths are still served since
// operators legitimately mount PDFs elsewhere, but the access is logged.
func (s *Service) warnIfOutsideDataRoot(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return
	}
	absRoot, err := filepath.Abs(s.config.DataDir)
	if err != nil {
		return
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		s.logger.Warn().Str("path", path).Msg("Requested PDF is outside the data root")
	}
}
