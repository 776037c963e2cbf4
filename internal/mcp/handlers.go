package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sitegen-ai/sitegen/internal/generator"
)

// handleGenerateWebsite runs a single generation and returns the HTML document.
func (s *Server) handleGenerateWebsite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: prompt"), nil
	}

	if err := generator.ValidatePrompt(prompt); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	systemPrompt := request.GetString("system_prompt", "")

	result, err := s.svc.Generate(ctx, prompt, systemPrompt)
	if err != nil {
		if errors.Is(err, generator.ErrInvalidDocument) {
			return mcp.NewToolResultError(
				"The model returned content that is not a complete HTML document. Try rephrasing the prompt.",
			), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	return mcp.NewToolResultText(result.Code), nil
}

// handleGetSystemPrompt returns the default system prompt.
func (s *Server) handleGetSystemPrompt(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(generator.DefaultSystemPrompt), nil
}
