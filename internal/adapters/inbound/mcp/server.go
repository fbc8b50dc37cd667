package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/polaxis/internal/application"
)

// NewPolaxisMCPServer creates an MCP server with all polaxis tools and
// resources registered against the given services.
func NewPolaxisMCPServer(classify *application.ClassifyService, compare *application.CompareService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"polaxis",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, classify, compare)
	registerResources(s, classify)

	return s
}
