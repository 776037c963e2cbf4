package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GatewayConfig configures a GatewayProvider. Endpoint, credential, and
// customer identifier are deployment-specific and always injected, never
// hard-coded.
type GatewayConfig struct {
	Endpoint   string // full chat-completions URL
	APIKey     string // bearer credential
	CustomerID string // sent as the customerId header when non-empty
	Client     *http.Client
}

// GatewayProvider implements Provider against an OpenAI-compatible
// chat-completions gateway via direct HTTP. This is the default provider:
// the hosted gateway fronts several upstream models behind one endpoint.
type GatewayProvider struct {
	cfg    GatewayConfig
	model  string
	client *http.Client
}

// NewGatewayProvider creates a gateway provider for the given endpoint.
func NewGatewayProvider(cfg GatewayConfig, model string) *GatewayProvider {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	return &GatewayProvider{
		cfg:    cfg,
		model:  model,
		client: client,
	}
}

func (p *GatewayProvider) Name() string {
	return "gateway"
}

type gatewayRequest struct {
	Model       string           `json:"model"`
	Messages    []gatewayMessage `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
}

type gatewayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type gatewayResponse struct {
	Choices []gatewayChoice `json:"choices"`
	Model   string          `json:"model"`
	Usage   gatewayUsage    `json:"usage"`
}

type gatewayChoice struct {
	Message      gatewayMessage `json:"message"`
	FinishReason string         `json:"finish_reason"`
}

type gatewayUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

func (p *GatewayProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	var messages []gatewayMessage
	for _, msg := range req.Messages {
		messages = append(messages, gatewayMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	apiReq := gatewayRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}
	if p.cfg.CustomerID != "" {
		httpReq.Header.Set("customerId", p.cfg.CustomerID)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &TransportError{
			StatusCode: httpResp.StatusCode,
			Status:     http.StatusText(httpResp.StatusCode),
			Body:       string(respBody),
		}
	}

	var apiResp gatewayResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gateway response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return nil, &EmptyResponseError{Model: model}
	}

	respModel := apiResp.Model
	if respModel == "" {
		respModel = model
	}

	return &CompletionResponse{
		Content:      apiResp.Choices[0].Message.Content,
		InputTokens:  apiResp.Usage.PromptTokens,
		OutputTokens: apiResp.Usage.CompletionTokens,
		Model:        respModel,
		FinishReason: apiResp.Choices[0].FinishReason,
	}, nil
}
