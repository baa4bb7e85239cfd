package models

import "encoding/json"

// DefaultFigType is assigned when the extraction tool omits a figure's type.
const DefaultFigType = "Figure"

// Boundary is an axis-aligned rectangle in PDF coordinate space.
type Boundary struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Figure represents a single detected figure or table.
// Field order matches the wire format returned to clients.
type Figure struct {
	Name           string          `json:"name"`           // e.g. "Figure 1", "Table 2"
	FigType        string          `json:"figType"`        // "Figure" or "Table"
	Page           int             `json:"page"`           // Page index as reported by the tool
	Caption        string          `json:"caption"`        // Full caption text
	RegionBoundary Boundary        `json:"regionBoundary"` // Figure region including caption
	ImageBoundary  json.RawMessage `json:"imageBoundary"`  // Figure content only, null when the tool omits it
}

// FiguresResponse is the envelope returned by extraction endpoints.
type FiguresResponse struct {
	Figures []Figure `json:"figures"`
}
