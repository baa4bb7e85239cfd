package extractor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/figura/internal/common"
)

// stagedPDFName is the filename given to uploaded PDF content inside a
// workspace. The tool derives its output filename from this stem.
const stagedPDFName = "input.pdf"

// workspace is a per-request scratch directory under the data root. Its
// name doubles as the request correlation id.
type workspace struct {
	id  string
	dir string
}

// newWorkspace creates a uniquely named scratch directory under dataDir.
func newWorkspace(dataDir string) (*workspace, error) {
	id := common.NewWorkspaceID()
	dir := filepath.Join(dataDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create work directory %s: %w", dir, err)
	}
	return &workspace{id: id, dir: dir}, nil
}

// stage writes uploaded PDF content into the workspace and returns the
// staged file path.
func (w *workspace) stage(r io.Reader) (string, error) {
	path := filepath.Join(w.dir, stagedPDFName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create staged pdf: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write staged pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write staged pdf: %w", err)
	}
	return path, nil
}

// outputPrefix returns the tool's -d argument: the workspace path with a
// trailing separator so output lands inside the workspace as
// <prefix><stem>.json rather than beside it.
func (w *workspace) outputPrefix() string {
	return w.dir + string(os.PathSeparator)
}

// outputFileFor returns where the tool writes figure data for the given
// input: the input filename with its extension swapped for .json,
// appended to the output prefix. Leading dots never start an extension,
// so a bare dotfile like ".pdf" keeps its full name (".pdf.json").
func (w *workspace) outputFileFor(pdfPath string) string {
	base := filepath.Base(pdfPath)
	stem := base
	if ext := filepath.Ext(base); ext != "" && strings.Trim(base[:len(base)-len(ext)], ".") != "" {
		stem = base[:len(base)-len(ext)]
	}
	return filepath.Join(w.dir, stem+".json")
}

// cleanup removes the workspace and everything in it. The returned error
// is for logging only; cleanup never masks the request outcome.
func (w *workspace) cleanup() error {
	return os.RemoveAll(w.dir)
}
