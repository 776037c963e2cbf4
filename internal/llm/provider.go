package llm

import "context"

// Provider defines the interface for chat completion providers.
type Provider interface {
	// Complete sends a single completion request and returns the response.
	// A request makes exactly one outbound call: no retries.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
