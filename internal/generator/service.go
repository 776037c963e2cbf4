package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sitegen-ai/sitegen/internal/llm"
)

const (
	// MinPromptLength is the minimum trimmed prompt length accepted.
	MinPromptLength = 10

	// DefaultMaxTokens bounds the generated document size.
	DefaultMaxTokens = 8000

	// DefaultTemperature is the sampling temperature for generation.
	DefaultTemperature = 0.7
)

// ErrInvalidDocument is returned when the model's sanitized output does not
// look like a complete HTML document.
var ErrInvalidDocument = errors.New("generated content is not valid HTML")

// ValidatePrompt checks a user prompt before any outbound call is made.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if len(strings.TrimSpace(prompt)) < MinPromptLength {
		return fmt.Errorf("prompt must be at least %d characters long", MinPromptLength)
	}
	return nil
}

// Result holds a successfully generated document plus usage metadata.
type Result struct {
	Code         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Service runs the generation pipeline: build the two-message conversation,
// make a single completion call, strip fences, validate. One outbound call
// per invocation; no retries, no timeout of its own.
type Service struct {
	provider    llm.Provider
	model       string
	maxTokens   int
	temperature float64
}

// NewService creates a generation service. Zero maxTokens or temperature
// fall back to the defaults.
func NewService(provider llm.Provider, model string, maxTokens int, temperature float64) *Service {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &Service{
		provider:    provider,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Model returns the configured model identifier.
func (s *Service) Model() string { return s.model }

// Generate produces a complete HTML document for the given prompt. An empty
// systemPrompt selects DefaultSystemPrompt. The returned code has been
// fence-stripped and has passed IsValidDocument.
func (s *Service) Generate(ctx context.Context, prompt, systemPrompt string) (*Result, error) {
	system := strings.TrimSpace(systemPrompt)
	if system == "" {
		system = DefaultSystemPrompt
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: strings.TrimSpace(prompt)},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return nil, err
	}

	code := StripFences(resp.Content)
	if !IsValidDocument(code) {
		return nil, ErrInvalidDocument
	}

	model := resp.Model
	if model == "" {
		model = s.model
	}

	return &Result{
		Code:         code,
		Model:        model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
	}, nil
}
