package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ternarybob/arbor"
)

func TestGetHealthHandler_Healthy(t *testing.T) {
	mockService := &mockExtractionService{
		jarStatusFunc: func() (bool, string) {
			return true, "/app/pdffigures2.jar"
		},
	}

	handler := NewHealthHandler(mockService, arbor.NewLogger())
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.GetHealthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", body["status"])
	}
	if body["jar_exists"] != true {
		t.Errorf("Expected jar_exists true, got %v", body["jar_exists"])
	}
	if body["jar_path"] != "/app/pdffigures2.jar" {
		t.Errorf("Expected jar_path '/app/pdffigures2.jar', got %v", body["jar_path"])
	}
}

func TestGetHealthHandler_Degraded(t *testing.T) {
	mockService := &mockExtractionService{
		jarStatusFunc: func() (bool, string) {
			return false, "/app/pdffigures2.jar"
		},
	}

	handler := NewHealthHandler(mockService, arbor.NewLogger())
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.GetHealthHandler(rec, req)

	// Missing JAR degrades the service but the endpoint itself still answers
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != "degraded" {
		t.Errorf("Expected status 'degraded', got %v", body["status"])
	}
	if body["jar_exists"] != false {
		t.Errorf("Expected jar_exists false, got %v", body["jar_exists"])
	}
}

func TestGetHealthHandler_MethodNotAllowed(t *testing.T) {
	handler := NewHealthHandler(&mockExtractionService{}, arbor.NewLogger())
	req := httptest.NewRequest("POST", "/health", nil)
	rec := httptest.NewRecorder()

	handler.GetHealthHandler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
}
