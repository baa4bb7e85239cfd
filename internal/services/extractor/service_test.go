package extractor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/figura/internal/common"
	"github.com/ternarybob/figura/internal/interfaces"
)

// fakeToolSuccess mimics the CLI: it derives the output filename from the
// input PDF's stem and writes figure JSON under the -d prefix.
const fakeToolSuccess = `#!/bin/sh
pdf="$4"
prefix="$6"
stem=$(basename "$pdf")
stem="${stem%.*}"
cat > "${prefix}${stem}.json" <<'JSON'
[{"name":"Figure 1","page":1,"caption":"First figure.","regionBoundary":{"x1":10,"y1":20,"x2":300,"y2":400},"imageBoundary":{"x1":12,"y1":22,"x2":298,"y2":380}}]
JSON
exit 0
`

const fakeToolFailure = `#!/bin/sh
echo "Exception in thread main java.lang.OutOfMemoryError" >&2
exit 2
`

// fakeToolBadJSON exits zero but leaves garbage where figure JSON belongs.
const fakeToolBadJSON = `#!/bin/sh
pdf="$4"
prefix="$6"
stem=$(basename "$pdf")
stem="${stem%.*}"
echo "this is not json" > "${prefix}${stem}.json"
exit 0
`

const fakeToolHangs = `#!/bin/sh
sleep 5
`

const fakeToolNoOutput = `#!/bin/sh
exit 0
`

// newTestService wires a Service around a fake java executable so the
// full stage -> run -> parse -> cleanup path is exercised without a JVM.
func newTestService(t *testing.T, script string, timeout time.Duration) (*Service, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool requires a POSIX shell")
	}

	binDir := t.TempDir()
	javaBin := filepath.Join(binDir, "java")
	require.NoError(t, os.WriteFile(javaBin, []byte(script), 0755))

	dataDir := t.TempDir()
	cfg := common.ExtractorConfig{
		JarPath:    filepath.Join(binDir, "pdffigures2.jar"),
		DataDir:    dataDir,
		JavaBin:    javaBin,
		EntryClass: "org.allenai.pdffigures2.FigureExtractorBatchCli",
		Timeout:    common.Duration(timeout),
	}
	return NewService(cfg, nil, arbor.NewLogger()), dataDir
}

func assertNoLeftovers(t *testing.T, dataDir string) {
	t.Helper()
	entries, err := os.ReadDir(dataDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directories must be removed after each request")
}

func TestExtract_FromUpload(t *testing.T) {
	service, dataDir := newTestService(t, fakeToolSuccess, 10*time.Second)

	figures, err := service.Extract(context.Background(), interfaces.ExtractionRequest{
		Payload:  strings.NewReader("%PDF-1.4 fake content"),
		Filename: "paper.pdf",
	})
	require.NoError(t, err)
	require.Len(t, figures, 1)

	fig := figures[0]
	assert.Equal(t, "Figure 1", fig.Name)
	assert.Equal(t, "Figure", fig.FigType, "tool omitted figType, default applies")
	assert.Equal(t, 1, fig.Page)
	assert.Equal(t, "First figure.", fig.Caption)
	assert.Equal(t, 10.0, fig.RegionBoundary.X1)
	assert.JSONEq(t, `{"x1":12,"y1":22,"x2":298,"y2":380}`, string(fig.ImageBoundary))

	assertNoLeftovers(t, dataDir)
}

func TestExtract_FromPath(t *testing.T) {
	service, dataDir := newTestService(t, fakeToolSuccess, 10*time.Second)

	pdfDir := t.TempDir()
	pdfPath := filepath.Join(pdfDir, "mypaper.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 fake content"), 0644))

	figures, err := service.Extract(context.Background(), interfaces.ExtractionRequest{Path: pdfPath})
	require.NoError(t, err)
	require.Len(t, figures, 1)
	assert.Equal(t, "Figure 1", figures[0].Name)

	// Source file is never part of the scratch space
	_, err = os.Stat(pdfPath)
	assert.NoError(t, err, "referenced PDF must not be deleted")
	assertNoLeftovers(t, dataDir)
}

func TestExtract_PathNotFound(t *testing.T) {
	service, dataDir := newTestService(t, fakeToolSuccess, 10*time.Second)

	_, err := service.Extract(context.Background(), interfaces.ExtractionRequest{
		Path: filepath.Join(t.TempDir(), "missing.pdf"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrPDFNotFound))

	assertNoLeftovers(t, dataDir)
}

func TestExtract_ToolFailure(t *testing.T) {
	service, dataDir := newTestService(t, fakeToolFailure, 10*time.Second)

	_, err := service.Extract(context.Background(), interfaces.ExtractionRequest{
		Payload:  strings.NewReader("%PDF-1.4"),
		Filename: "broken.pdf",
	})
	require.Error(t, err)

	var toolErr *interfaces.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 2, toolErr.ExitCode)
	assert.Contains(t, toolErr.Stderr, "OutOfMemoryError")

	assertNoLeftovers(t, dataDir)
}

func TestExtract_Timeout(t *testing.T) {
	service, dataDir := newTestService(t, fakeToolHangs, 100*time.Millisecond)

	start := time.Now()
	_, err := service.Extract(context.Background(), interfaces.ExtractionRequest{
		Payload:  strings.NewReader("%PDF-1.4"),
		Filename: "slow.pdf",
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrTimeout))
	assert.Less(t, elapsed, 3*time.Second, "tool process must be killed at the deadline")

	assertNoLeftovers(t, dataDir)
}

func TestExtract_NoOutputFileMeansNoFigures(t *testing.T) {
	service, dataDir := newTestService(t, fakeToolNoOutput, 10*time.Second)

	figures, err := service.Extract(context.Background(), interfaces.ExtractionRequest{
		Payload:  strings.NewReader("%PDF-1.4"),
		Filename: "empty.pdf",
	})
	require.NoError(t, err)
	assert.NotNil(t, figures)
	assert.Empty(t, figures)

	assertNoLeftovers(t, dataDir)
}

func TestExtract_MalformedOutput(t *testing.T) {
	service, dataDir := newTestService(t, fakeToolBadJSON, 10*time.Second)

	_, err := service.Extract(context.Background(), interfaces.ExtractionRequest{
		Payload:  strings.NewReader("%PDF-1.4"),
		Filename: "garbled.pdf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse tool output")

	assertNoLeftovers(t, dataDir)
}

func TestExtract_NoInputProvided(t *testing.T) {
	service, _ := newTestService(t, fakeToolSuccess, 10*time.Second)

	_, err := service.Extract(context.Background(), interfaces.ExtractionRequest{})
	assert.Error(t, err)
}

func TestExtract_BothInputsProvided(t *testing.T) {
	service, _ := newTestService(t, fakeToolSuccess, 10*time.Second)

	pdfPath := filepath.Join(t.TempDir(), "mypaper.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0644))

	_, err := service.Extract(context.Background(), interfaces.ExtractionRequest{
		Payload:  strings.NewReader("%PDF-1.4"),
		Filename: "paper.pdf",
		Path:     pdfPath,
	})
	assert.Error(t, err)
}

func TestJarStatus(t *testing.T) {
	service, _ := newTestService(t, fakeToolSuccess, 10*time.Second)

	exists, path := service.JarStatus()
	assert.False(t, exists)
	assert.Equal(t, service.config.JarPath, path)

	require.NoError(t, os.WriteFile(service.config.JarPath, []byte("jar"), 0644))
	exists, _ = service.JarStatus()
	assert.True(t, exists)
}
