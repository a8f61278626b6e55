package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ytget/texture-checker/internal/validate"
)

// ServerName and ServerVersion identify the MCP server to clients
const (
	ServerName    = "texture-checker"
	ServerVersion = "0.1.0"
)

// NewTextureCheckerMCPServer creates an MCP server with all texture tools
// registered. Defaults fill arguments a client leaves out.
func NewTextureCheckerMCPServer(checker validate.Checker, defaults Defaults) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	registerTools(s, checker, defaults)

	return s
}
