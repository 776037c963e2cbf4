package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/sitegen-ai/sitegen/internal/generator"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes website generation tools.
type Server struct {
	svc *generator.Service
	mcp *server.MCPServer
}

// NewServer creates a new MCP server around the given generation service.
func NewServer(svc *generator.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"sitegen",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generateWebsiteTool, s.handleGenerateWebsite)
	s.mcp.AddTool(getSystemPromptTool, s.handleGetSystemPrompt)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
