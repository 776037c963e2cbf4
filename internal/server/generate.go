package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sitegen-ai/sitegen/internal/generator"
	"github.com/sitegen-ai/sitegen/internal/llm"
	"github.com/sitegen-ai/sitegen/internal/usage"
)

type generateRequest struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
}

type generateResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// handleGenerate is the generation endpoint. Input errors return 400 before
// any outbound call; upstream and validation failures return 500. No partial
// results, no retries.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Prompt is required and must be a string",
		})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Prompt is required and must be a string",
		})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if len(prompt) < generator.MinPromptLength {
		s.logGeneration(usage.Entry{
			PromptExcerpt: usage.Excerpt(prompt),
			Outcome:       usage.OutcomeRejected,
			Detail:        "prompt too short",
		})
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Prompt must be at least 10 characters long",
		})
		return
	}

	log.Printf("generating website for prompt: %s", usage.Excerpt(prompt))

	start := time.Now()
	result, err := s.svc.Generate(r.Context(), prompt, req.SystemPrompt)
	elapsed := time.Since(start)

	if err != nil {
		outcome := usage.OutcomeUpstreamError
		if errors.Is(err, generator.ErrInvalidDocument) {
			outcome = usage.OutcomeInvalidOutput
		}
		s.logGeneration(usage.Entry{
			PromptExcerpt: usage.Excerpt(prompt),
			Model:         s.svc.Model(),
			Outcome:       outcome,
			Detail:        err.Error(),
			Duration:      elapsed.Milliseconds(),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:     "Failed to generate website",
			Details:   err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	s.logGeneration(usage.Entry{
		PromptExcerpt: usage.Excerpt(prompt),
		Model:         result.Model,
		Outcome:       usage.OutcomeOK,
		Duration:      elapsed.Milliseconds(),
		InputTokens:   result.InputTokens,
		OutputTokens:  result.OutputTokens,
		CostUSD:       llm.EstimateCost(result.Model, result.InputTokens, result.OutputTokens),
	})

	writeJSON(w, http.StatusOK, generateResponse{
		Success:   true,
		Code:      result.Code,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleDefaultSystemPrompt serves the canonical default system prompt so the
// UI's reset action restores byte-identical text.
func (s *Server) handleDefaultSystemPrompt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"prompt": generator.DefaultSystemPrompt,
	})
}

// logGeneration records an entry in the generation log when one is
// configured. The request context is not used: the log write should survive
// a client that disconnects right after the response.
func (s *Server) logGeneration(entry usage.Entry) {
	if s.usageStore == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.usageStore.Record(ctx, entry); err != nil {
		log.Printf("recording generation entry: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
