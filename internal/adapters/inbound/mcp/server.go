package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/slicegen/slicegen/internal/application"
)

// NewSliceGenMCPServer creates an MCP server with every slicegen tool and
// resource registered. projectPath is the directory holding .slicegen.yaml;
// schema_file references in entity documents are read relative to it.
func NewSliceGenMCPServer(
	projectPath string,
	gen *application.GenerateService,
	imp *application.ImportService,
	exp *application.ExportService,
) *server.MCPServer {
	s := server.NewMCPServer(
		"slicegen",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, gen, imp, exp)
	registerResources(s)

	return s
}
