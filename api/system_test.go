package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codesumanr/portfolio-api/api"
)

func TestHealthHandler(t *testing.T) {
	h := &api.SystemHandler{}
	w := httptest.NewRecorder()
	h.HealthHandler(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Service != "portfolio-api" {
		t.Fatalf("unexpected health payload: %+v", resp)
	}
}

func TestVersionHandler(t *testing.T) {
	h := &api.SystemHandler{}
	w := httptest.NewRecorder()
	h.VersionHandler("1.2.3", "2026-01-02T03:04:05Z")(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	var resp struct {
		Version   string `json:"version"`
		BuildTime string `json:"buildTime"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Version != "1.2.3" || resp.BuildTime != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected version payload: %+v", resp)
	}
}

func TestPortfolioHandlers(t *testing.T) {
	h := &api.PortfolioHandler{}

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("root: expected 200 got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.Info(w, httptest.NewRequest(http.MethodGet, "/portfolio-info", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("info: expected 200 got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, k := range []string{"name", "role", "email", "github", "linkedin"} {
		if v, ok := resp[k].(string); !ok || v == "" {
			t.Fatalf("portfolio-info missing %q: %v", k, resp)
		}
	}
	if success, _ := resp["success"].(bool); !success {
		t.Fatalf("portfolio-info not marked successful")
	}
}
