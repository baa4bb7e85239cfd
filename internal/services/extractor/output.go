package extractor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ternarybob/figura/internal/models"
)

// rawFigure mirrors the tool's JSON output. The figType pointer
// distinguishes an absent key from an empty value so the default is
// applied only when the key is missing.
type rawFigure struct {
	Name           string           `json:"name"`
	FigType        *string          `json:"figType"`
	Page           int              `json:"page"`
	Caption        string           `json:"caption"`
	RegionBoundary *models.Boundary `json:"regionBoundary"`
	ImageBoundary  json.RawMessage  `json:"imageBoundary"`
}

// parseOutput reads the tool's JSON output file and normalizes it. The
// tool writes no file at all when a document contains no figures, so a
// missing file yields an empty result rather than an error.
func parseOutput(path string) ([]models.Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Figure{}, nil
		}
		return nil, fmt.Errorf("failed to read tool output %s: %w", path, err)
	}
	return normalizeFigures(data)
}

// normalizeFigures converts raw tool output into the wire format,
// filling defaults for any field the tool omitted. Coordinates default
// to zero individually, and imageBoundary passes through untouched.
func normalizeFigures(data []byte) ([]models.Figure, error) {
	var raw []rawFigure
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tool output: %w", err)
	}

	figures := make([]models.Figure, 0, len(raw))
	for _, rf := range raw {
		fig := models.Figure{
			Name:          rf.Name,
			FigType:       models.DefaultFigType,
			Page:          rf.Page,
			Caption:       rf.Caption,
			ImageBoundary: rf.ImageBoundary,
		}
		if rf.FigType != nil {
			fig.FigType = *rf.FigType
		}
		if rf.RegionBoundary != nil {
			fig.RegionBoundary = *rf.RegionBoundary
		}
		figures = append(figures, fig)
	}
	return figures, nil
}
