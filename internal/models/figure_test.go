package models

import (
	"encoding/json"
	"testing"
)

func TestFigure_MarshalWireFormat(t *testing.T) {
	fig := Figure{
		Name:           "Figure 1",
		FigType:        "Figure",
		Page:           2,
		Caption:        "An example.",
		RegionBoundary: Boundary{X1: 100, Y1: 200, X2: 500, Y2: 600},
		ImageBoundary:  json.RawMessage(`{"x1":110,"y1":210,"x2":490,"y2":550}`),
	}

	data, err := json.Marshal(fig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"name":"Figure 1","figType":"Figure","page":2,"caption":"An example.",` +
		`"regionBoundary":{"x1":100,"y1":200,"x2":500,"y2":600},` +
		`"imageBoundary":{"x1":110,"y1":210,"x2":490,"y2":550}}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestFigure_MarshalNullImageBoundary(t *testing.T) {
	fig := Figure{Name: "Table 1", FigType: "Table"}

	data, err := json.Marshal(fig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// imageBoundary must be present and explicitly null, not omitted
	want := `{"name":"Table 1","figType":"Table","page":0,"caption":"",` +
		`"regionBoundary":{"x1":0,"y1":0,"x2":0,"y2":0},"imageBoundary":null}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestFiguresResponse_EmptySliceMarshalsAsArray(t *testing.T) {
	resp := FiguresResponse{Figures: []Figure{}}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if string(data) != `{"figures":[]}` {
		t.Errorf("Marshal() = %s, want {\"figures\":[]}", data)
	}
}
