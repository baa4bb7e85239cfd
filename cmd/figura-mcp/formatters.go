package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ternarybob/figura/internal/interfaces"
	"github.com/ternarybob/figura/internal/models"
)

// formatFigures formats extracted figures as markdown
func formatFigures(pdfPath string, figures []models.Figure) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Figures in %s (%d found)\n\n", pdfPath, len(figures)))

	if len(figures) == 0 {
		sb.WriteString("No figures found.\n")
		return sb.String()
	}

	for i, fig := range figures {
		name := fig.Name
		if name == "" {
			name = "(unnamed)"
		}
		sb.WriteString(fmt.Sprintf("### %d. %s %s\n", i+1, fig.FigType, name))
		sb.WriteString(fmt.Sprintf("**Page:** %d\n", fig.Page))
		sb.WriteString(fmt.Sprintf("**Region:** (%.1f, %.1f) - (%.1f, %.1f)\n\n",
			fig.RegionBoundary.X1, fig.RegionBoundary.Y1,
			fig.RegionBoundary.X2, fig.RegionBoundary.Y2))

		// Caption preview (first 300 chars)
		caption := fig.Caption
		if len(caption) > 300 {
			caption = caption[:300] + "..."
		}
		if caption != "" {
			sb.WriteString("#### Caption:\n")
			sb.WriteString(caption)
			sb.WriteString("\n\n")
		}
		sb.WriteString("---\n\n")
	}

	return sb.String()
}

// formatPDFInfo formats PDF metadata as markdown
func formatPDFInfo(info *models.PDFInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", info.Path))
	sb.WriteString(fmt.Sprintf("**Pages:** %d\n", info.Pages))
	sb.WriteString(fmt.Sprintf("**Encrypted:** %t\n", info.Encrypted))
	sb.WriteString(fmt.Sprintf("**File size:** %d bytes\n", info.FileSize))
	return sb.String()
}

// formatExtractionError renders extraction failures as readable text
func formatExtractionError(pdfPath string, err error) string {
	var toolErr *interfaces.ToolError
	switch {
	case errors.Is(err, interfaces.ErrPDFNotFound):
		return fmt.Sprintf("PDF not found: %s", pdfPath)
	case errors.Is(err, interfaces.ErrTimeout):
		return "Extraction timed out"
	case errors.As(err, &toolErr):
		return fmt.Sprintf("pdffigures2 failed with exit code %d:\n```\n%s\n```",
			toolErr.ExitCode, toolErr.Stderr)
	default:
		return fmt.Sprintf("Extraction error: %v", err)
	}
}

// formatInspectError renders inspector failures as readable text
func formatInspectError(pdfPath string, err error) string {
	if errors.Is(err, interfaces.ErrPDFNotFound) {
		return fmt.Sprintf("PDF not found: %s", pdfPath)
	}
	return fmt.Sprintf("Inspect error: %v", err)
}
