// Package mcp exposes the resource directory to AI agents over the Model
// Context Protocol, so caseworkers' assistants can look up the same verified
// organizations the website lists.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/voicethroughimage/vti/internal/assistant"
	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/mode"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes directory tools.
type Server struct {
	library *content.Library
	assist  *assistant.Assistant
	fb      *mode.Fallback
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server. library adds community-submitted
// resources to the static directory and may be nil; assist enables the
// ask_resource_assistant tool when non-nil.
func NewServer(library *content.Library, assist *assistant.Assistant) *Server {
	s := &Server{
		library: library,
		assist:  assist,
		fb:      &mode.Fallback{},
	}

	s.mcp = server.NewMCPServer(
		"voicethroughimage",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchResourcesTool, s.handleSearchResources)
	s.mcp.AddTool(listCategoriesTool, s.handleListCategories)
	s.mcp.AddTool(listByCategoryTool, s.handleListByCategory)
	if s.assist != nil {
		s.mcp.AddTool(askAssistantTool, s.handleAskAssistant)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
