package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/slicegen/slicegen/internal/domain"
)

// registerResources registers the static slicegen resources.
func registerResources(s *server.MCPServer) {
	// 1. slicegen://types - everything an entity file may reference
	s.AddResource(
		mcplib.NewResource(
			"slicegen://types",
			"Types",
			mcplib.WithResourceDescription("Supported property types, id types and endpoints"),
			mcplib.WithMIMEType("application/json"),
		),
		jsonResource("slicegen://types", func() any { return domain.NewCatalog() }),
	)

	// 2. slicegen://defaults - what an entity file inherits when it omits a field
	s.AddResource(
		mcplib.NewResource(
			"slicegen://defaults",
			"Defaults",
			mcplib.WithResourceDescription("Built-in project configuration applied before .slicegen.yaml"),
			mcplib.WithMIMEType("application/json"),
		),
		jsonResource("slicegen://defaults", func() any { return domain.DefaultConfig() }),
	)
}

func jsonResource(uri string, build func() any) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(build(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", uri, err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
