// -----------------------------------------------------------------------
// Inspector Service - Reports structural PDF facts via pdfcpu
// -----------------------------------------------------------------------

package inspector

import (
	"context"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/figura/internal/interfaces"
	"github.com/ternarybob/figura/internal/models"
)

// Service reads PDF structure natively, without touching the extraction
// tool. Used for preflight logging and the inspect_pdf MCP tool.
type Service struct {
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.PDFInspector = (*Service)(nil)

// NewService creates a new PDF inspector
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Inspect reads the document and returns page count, encryption status,
// and file size.
func (s *Service) Inspect(ctx context.Context, path string) (*models.PDFInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrPDFNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat pdf %s: %w", path, err)
	}

	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	info := &models.PDFInfo{
		Path:      path,
		Pages:     pdfCtx.PageCount,
		Encrypted: pdfCtx.Encrypt != nil,
		FileSize:  stat.Size(),
	}

	s.logger.Debug().
		Str("path", path).
		Int("pages", info.Pages).
		Bool("encrypted", info.Encrypted).
		Int64("file_size", info.FileSize).
		Msg("Inspected PDF")

	return info, nil
}
