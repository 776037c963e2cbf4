package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generateWebsiteTool defines the generate_website MCP tool.
var generateWebsiteTool = mcp.NewTool("generate_website",
	mcp.WithDescription("Generate a complete single-file HTML website from a natural language description. Returns the full HTML document including inline CSS and JavaScript."),
	mcp.WithString("prompt",
		mcp.Required(),
		mcp.Description("Description of the website to generate (at least 10 characters)"),
	),
	mcp.WithString("system_prompt",
		mcp.Description("Override the default system prompt that defines the output contract"),
	),
)

// getSystemPromptTool defines the get_system_prompt MCP tool.
var getSystemPromptTool = mcp.NewTool("get_system_prompt",
	mcp.WithDescription("Get the default system prompt used for website generation. Useful as a starting point for customized prompts."),
)
