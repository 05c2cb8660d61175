package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/slicegen/slicegen/internal/application"
	"github.com/slicegen/slicegen/internal/domain"
)

const entityDescription = "Entity description in YAML: entity_name, module_name, id_type, " +
	"has_can_updated, has_soft_delete, endpoints, properties (name, type, required, max_length) " +
	"and optionally schema with a tab-separated column listing"

func registerTools(
	s *server.MCPServer,
	projectPath string,
	gen *application.GenerateService,
	imp *application.ImportService,
	exp *application.ExportService,
) {
	// 1. slicegen_generate
	s.AddTool(
		mcplib.NewTool("slicegen_generate",
			mcplib.WithDescription("Generate every C# file of one CRUD slice and return them as JSON"),
			mcplib.WithString("entity",
				mcplib.Required(),
				mcplib.Description(entityDescription),
			),
			mcplib.WithBoolean("bundle", mcplib.Description("Return all files concatenated as one text instead of JSON")),
		),
		handleGenerate(projectPath, gen, exp),
	)

	// 2. slicegen_parse_schema
	s.AddTool(
		mcplib.NewTool("slicegen_parse_schema",
			mcplib.WithDescription("Convert a tab-separated column listing copied from a database designer into properties"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Column listing, one column per line"),
			),
			mcplib.WithBoolean("lenient", mcplib.Description("Also split columns on runs of two or more spaces")),
		),
		handleParseSchema(imp),
	)

	// 3. slicegen_routes
	s.AddTool(
		mcplib.NewTool("slicegen_routes",
			mcplib.WithDescription("List the HTTP routes the slice of an entity would expose"),
			mcplib.WithString("entity",
				mcplib.Required(),
				mcplib.Description(entityDescription),
			),
		),
		handleRoutes(projectPath, gen),
	)
}

func handleGenerate(projectPath string, gen *application.GenerateService, exp *application.ExportService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		doc, err := request.RequireString("entity")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		bundle, _ := request.GetArguments()["bundle"].(bool)

		cfg, err := gen.DecodeEntity(ctx, projectPath, []byte(doc))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		result, err := gen.Generate(ctx, cfg)
		if err != nil {
			return validationResult(err), nil
		}

		if bundle {
			var buf bytes.Buffer
			if err := exp.WriteBundle(ctx, &buf, result); err != nil {
				return errorResult(err.Error()), nil
			}
			return textResult(buf.String()), nil
		}
		return jsonResult(result)
	}
}

func handleParseSchema(imp *application.ImportService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		lenient, _ := request.GetArguments()["lenient"].(bool)

		return jsonResult(imp.Parse(ctx, text, lenient))
	}
}

func handleRoutes(projectPath string, gen *application.GenerateService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		doc, err := request.RequireString("entity")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := gen.DecodeEntity(ctx, projectPath, []byte(doc))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		routes, err := gen.Routes(cfg)
		if err != nil {
			return validationResult(err), nil
		}
		return jsonResult(routes)
	}
}

// validationResult reports every field failure as JSON so the caller can
// fix them in one pass.
func validationResult(err error) *mcplib.CallToolResult {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return errorResult(err.Error())
	}
	data, mErr := json.MarshalIndent(ve, "", "  ")
	if mErr != nil {
		return errorResult(err.Error())
	}
	return errorResult(string(data))
}

// jsonResult marshals v into a JSON text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
