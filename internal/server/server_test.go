package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sitegen-ai/sitegen/internal/generator"
	"github.com/sitegen-ai/sitegen/internal/llm"
)

// stubProvider records requests and returns a canned response or error.
type stubProvider struct {
	calls    []llm.CompletionRequest
	response *llm.CompletionResponse
	err      error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func newTestServer(provider llm.Provider) *Server {
	svc := generator.NewService(provider, "test-model", 0, 0)
	return New(Config{Port: 0, AllowAll: true}, svc, nil)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	req := httptest.NewRequest("OPTIONS", "/api/generate", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestOptionsReturnsOK(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	req := httptest.NewRequest("OPTIONS", "/api/generate", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for OPTIONS, got %d", w.Code)
	}
}

func TestDefaultSystemPromptEndpoint(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	req := httptest.NewRequest("GET", "/api/system-prompt/default", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["prompt"] != generator.DefaultSystemPrompt {
		t.Error("expected byte-identical default system prompt")
	}
}
