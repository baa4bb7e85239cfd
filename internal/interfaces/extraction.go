// -----------------------------------------------------------------------
// Extraction Interfaces - Figure extraction and PDF inspection contracts
// -----------------------------------------------------------------------

package interfaces

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ternarybob/figura/internal/models"
)

// Sentinel errors returned by ExtractionService implementations.
// Transports map these onto their own status codes.
var (
	// ErrPDFNotFound indicates the referenced PDF path does not exist.
	ErrPDFNotFound = errors.New("pdf not found")

	// ErrTimeout indicates the extraction tool exceeded its wall-clock limit.
	ErrTimeout = errors.New("processing timeout")
)

// ToolError indicates the extraction tool ran but exited non-zero.
// Stderr carries the tool's diagnostic output.
type ToolError struct {
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("extraction tool exited with code %d", e.ExitCode)
}

// ExtractionRequest describes one PDF whose figures should be extracted.
// Exactly one of Payload or Path must be set.
type ExtractionRequest struct {
	// Payload is uploaded PDF content that will be staged to disk before
	// the tool runs. Filename carries the client-supplied name and is
	// used for logging only.
	Payload  io.Reader
	Filename string

	// Path references a PDF already on local disk (for mounted volumes).
	Path string
}

// ExtractionService runs the external figure extraction tool against a PDF
// and returns the normalized figure list.
type ExtractionService interface {
	// Extract runs the tool against the request's PDF and returns the
	// parsed figures.
	// Returns an empty (non-nil) slice when the document has no figures.
	// Returns ErrPDFNotFound, ErrTimeout, or *ToolError on failure.
	Extract(ctx context.Context, req ExtractionRequest) ([]models.Figure, error)

	// JarStatus reports whether the tool JAR is present on disk, along
	// with its configured path. Used by health reporting.
	JarStatus() (exists bool, path string)
}

// PDFInspector reports structural facts about a PDF without invoking the
// extraction tool.
type PDFInspector interface {
	// Inspect reads the document and returns page count, encryption
	// status, and file size.
	Inspect(ctx context.Context, path string) (*models.PDFInfo, error)
}
