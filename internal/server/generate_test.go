package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sitegen-ai/sitegen/internal/db"
	"github.com/sitegen-ai/sitegen/internal/generator"
	"github.com/sitegen-ai/sitegen/internal/llm"
	"github.com/sitegen-ai/sitegen/internal/usage"
)

const validDoc = "<!DOCTYPE html><html><body>generated</body></html>"

func docStub(content string) *stubProvider {
	return &stubProvider{
		response: &llm.CompletionResponse{
			Content:      content,
			InputTokens:  100,
			OutputTokens: 400,
			Model:        "test-model",
		},
	}
}

func postGenerate(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestGenerateSuccess(t *testing.T) {
	provider := docStub(validDoc)
	srv := newTestServer(provider)

	w := postGenerate(t, srv, `{"prompt":"Build a portfolio site"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success   bool   `json:"success"`
		Code      string `json:"code"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if !strings.HasPrefix(resp.Code, "<!DOCTYPE html>") {
		t.Errorf("code should start with doctype: %q", resp.Code)
	}
	if !strings.HasSuffix(resp.Code, "</html>") {
		t.Errorf("code should end with </html>: %q", resp.Code)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp not RFC3339: %q", resp.Timestamp)
	}

	if len(provider.calls) != 1 {
		t.Fatalf("expected exactly 1 outbound call, got %d", len(provider.calls))
	}
	msgs := provider.calls[0].Messages
	if msgs[0].Role != llm.RoleSystem || msgs[1].Role != llm.RoleUser {
		t.Errorf("unexpected message roles: %q, %q", msgs[0].Role, msgs[1].Role)
	}
	if msgs[1].Content != "Build a portfolio site" {
		t.Errorf("user message = %q", msgs[1].Content)
	}
}

func TestGenerateMissingPrompt(t *testing.T) {
	provider := docStub(validDoc)
	srv := newTestServer(provider)

	for _, body := range []string{`{}`, `{"prompt":""}`, `{"prompt":"   "}`, `{"prompt":123}`, `not json`} {
		w := postGenerate(t, srv, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
	}

	if len(provider.calls) != 0 {
		t.Errorf("expected no outbound calls, got %d", len(provider.calls))
	}
}

func TestGenerateShortPrompt(t *testing.T) {
	provider := docStub(validDoc)
	srv := newTestServer(provider)

	w := postGenerate(t, srv, `{"prompt":"hi"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(resp.Error, "at least 10 characters") {
		t.Errorf("error should signal length violation: %q", resp.Error)
	}

	if len(provider.calls) != 0 {
		t.Errorf("expected no outbound calls, got %d", len(provider.calls))
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	provider := &stubProvider{err: &llm.TransportError{StatusCode: 500, Status: "Internal Server Error"}}
	srv := newTestServer(provider)

	w := postGenerate(t, srv, `{"prompt":"Build a portfolio site"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp struct {
		Error     string `json:"error"`
		Details   string `json:"details"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != "Failed to generate website" {
		t.Errorf("error = %q", resp.Error)
	}
	if !strings.Contains(resp.Details, "500") {
		t.Errorf("details should describe the transport failure: %q", resp.Details)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp not RFC3339: %q", resp.Timestamp)
	}
}

func TestGenerateInvalidModelOutput(t *testing.T) {
	provider := docStub("I'm sorry, I can't do that.")
	srv := newTestServer(provider)

	w := postGenerate(t, srv, `{"prompt":"Build a portfolio site"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != "Failed to generate website" {
		t.Errorf("error = %q", resp.Error)
	}
	if !strings.Contains(resp.Details, "not valid HTML") {
		t.Errorf("details = %q", resp.Details)
	}
}

func TestGenerateStripsFences(t *testing.T) {
	provider := docStub("```html\n" + validDoc + "\n```")
	srv := newTestServer(provider)

	w := postGenerate(t, srv, `{"prompt":"Build a portfolio site"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if strings.Contains(resp.Code, "```") {
		t.Errorf("fence markers in response code: %q", resp.Code)
	}
	if !generator.IsValidDocument(resp.Code) {
		t.Errorf("response code should be a valid document: %q", resp.Code)
	}
}

func TestGenerateCustomSystemPrompt(t *testing.T) {
	provider := docStub(validDoc)
	srv := newTestServer(provider)

	w := postGenerate(t, srv, `{"prompt":"Build a portfolio site","systemPrompt":"Dark mode only."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if got := provider.calls[0].Messages[0].Content; got != "Dark mode only." {
		t.Errorf("system message = %q", got)
	}
}

func TestGenerateRecordsUsage(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()
	store := usage.NewStore(database)

	provider := docStub(validDoc)
	svc := generator.NewService(provider, "test-model", 0, 0)
	srv := New(Config{Port: 0, AllowAll: true}, svc, store)

	postGenerate(t, srv, `{"prompt":"Build a portfolio site"}`)
	postGenerate(t, srv, `{"prompt":"hi"}`)

	entries, err := store.Query(context.Background(), usage.QueryFilter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}

	byOutcome := map[usage.Outcome]usage.Entry{}
	for _, e := range entries {
		byOutcome[e.Outcome] = e
	}
	ok, found := byOutcome[usage.OutcomeOK]
	if !found {
		t.Fatal("expected an ok entry")
	}
	if ok.InputTokens != 100 || ok.OutputTokens != 400 {
		t.Errorf("ok entry tokens = %d/%d", ok.InputTokens, ok.OutputTokens)
	}
	if _, found := byOutcome[usage.OutcomeRejected]; !found {
		t.Error("expected a rejected entry for the short prompt")
	}
}
