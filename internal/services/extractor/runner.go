package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/figura/internal/interfaces"
)

// runResult captures a completed tool invocation.
type runResult struct {
	Stderr   string
	Duration time.Duration
}

// runTool invokes the extraction CLI against pdfPath under the configured
// wall-clock limit. The process is killed when the limit expires and
// ErrTimeout is returned. A non-zero exit becomes a *ToolError carrying
// the captured stderr.
func (s *Service) runTool(ctx context.Context, log arbor.ILogger, pdfPath, outputPrefix string) (*runResult, error) {
	timeout := time.Duration(s.config.Timeout)
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	classpath := BuildClasspath(s.config.JarPath, s.config.LibDir)
	cmd := exec.CommandContext(runCtx, s.config.JavaBin,
		"-cp", classpath,
		s.config.EntryClass,
		pdfPath,
		"-d", outputPrefix,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().
		Str("java", s.config.JavaBin).
		Str("pdf", pdfPath).
		Dur("timeout", timeout).
		Msg("Running extraction tool")

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if runCtx.Err() == context.DeadlineExceeded {
		log.Warn().Dur("elapsed", elapsed).Msg("Extraction tool timed out")
		return nil, interfaces.ErrTimeout
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Error().
				Int("exit_code", exitErr.ExitCode()).
				Str("stderr", stderr.String()).
				Msg("Extraction tool failed")
			return nil, &interfaces.ToolError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		// Tool never started (missing java binary, permission problem)
		return nil, fmt.Errorf("failed to run %s: %w", s.config.JavaBin, err)
	}

	return &runResult{
		Stderr:   stderr.String(),
		Duration: elapsed,
	}, nil
}
