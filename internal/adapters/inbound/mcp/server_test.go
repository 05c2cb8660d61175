package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicegen/slicegen/internal/adapters/outbound/config"
	"github.com/slicegen/slicegen/internal/adapters/outbound/entityfile"
	"github.com/slicegen/slicegen/internal/adapters/outbound/export"
	"github.com/slicegen/slicegen/internal/adapters/outbound/gitinfo"
	"github.com/slicegen/slicegen/internal/application"
	"github.com/slicegen/slicegen/internal/domain"
	"github.com/slicegen/slicegen/internal/domain/generator"
	"github.com/slicegen/slicegen/internal/domain/schema"
)

const articleYAML = `
entity_name: Article
endpoints: [Create, GetById]
properties:
  - name: Title
    type: string
    required: true
    max_length: 200
`

type testServices struct {
	gen *application.GenerateService
	imp *application.ImportService
	exp *application.ExportService
}

func newTestServices() testServices {
	logger := slog.New(slog.DiscardHandler)
	store := entityfile.New()
	return testServices{
		gen: application.NewGenerateService(logger, config.New(), store),
		imp: application.NewImportService(logger, store),
		exp: application.NewExportService(logger, export.NewDirWriter(), gitinfo.New(),
			export.NewZipExporter(), export.NewBundleExporter()),
	}
}

func callTool(t *testing.T, name string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	svcs := newTestServices()
	s := NewSliceGenMCPServer(t.TempDir(), svcs.gen, svcs.imp, svcs.exp)

	tool, ok := s.ListTools()[name]
	require.True(t, ok, "tool %q should be registered", name)

	var req mcplib.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	result, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func text(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestMCPServerHasTools(t *testing.T) {
	svcs := newTestServices()
	s := NewSliceGenMCPServer(".", svcs.gen, svcs.imp, svcs.exp)

	tools := s.ListTools()
	expectedTools := []string{
		"slicegen_generate",
		"slicegen_parse_schema",
		"slicegen_routes",
	}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools))
}

func TestGenerateTool(t *testing.T) {
	result := callTool(t, "slicegen_generate", map[string]any{"entity": articleYAML})
	require.False(t, result.IsError, text(t, result))

	var out domain.GeneratorResult
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &out))
	assert.Equal(t, 13, out.Summary.TotalFiles)
}

func TestGenerateTool_Bundle(t *testing.T) {
	result := callTool(t, "slicegen_generate", map[string]any{"entity": articleYAML, "bundle": true})
	require.False(t, result.IsError)
	assert.Contains(t, text(t, result), "// File: Fastlink.Portal.Business/Services/ArticleService.cs")
}

func TestGenerateTool_Invalid(t *testing.T) {
	result := callTool(t, "slicegen_generate", map[string]any{"entity": "entity_name: Article\n"})
	require.True(t, result.IsError)

	var ve domain.ValidationError
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &ve))
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "properties", ve.Errors[0].Field)
}

func TestGenerateTool_UnknownKey(t *testing.T) {
	result := callTool(t, "slicegen_generate", map[string]any{"entity": "entity_nme: Article\n"})
	assert.True(t, result.IsError)
	assert.Contains(t, text(t, result), "entity_nme")
}

func TestGenerateTool_MissingArgument(t *testing.T) {
	result := callTool(t, "slicegen_generate", map[string]any{})
	assert.True(t, result.IsError)
}

func TestParseSchemaTool(t *testing.T) {
	result := callTool(t, "slicegen_parse_schema", map[string]any{
		"text":    "title  nvarchar(100)  200  100  0",
		"lenient": true,
	})
	require.False(t, result.IsError)

	var report schema.Report
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &report))
	require.Len(t, report.Properties, 1)
	assert.Equal(t, "Title", report.Properties[0].Name)
	assert.True(t, report.Properties[0].IsRequired)
}

func TestRoutesTool(t *testing.T) {
	result := callTool(t, "slicegen_routes", map[string]any{"entity": articleYAML})
	require.False(t, result.IsError)

	var routes []generator.Route
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &routes))
	require.Len(t, routes, 2)
	assert.Equal(t, "/api/v1/article/get-article-by-id", routes[1].Path)
}

func TestResources(t *testing.T) {
	for _, uri := range []string{"slicegen://types", "slicegen://defaults"} {
		t.Run(uri, func(t *testing.T) {
			contents, err := jsonResource(uri, func() any { return domain.NewCatalog() })(context.Background(), mcplib.ReadResourceRequest{})
			require.NoError(t, err)
			require.Len(t, contents, 1)
			assert.Equal(t, uri, contents[0].(mcplib.TextResourceContents).URI)
		})
	}
}
