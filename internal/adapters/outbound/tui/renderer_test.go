package tui_test

import (
	"testing"

	"github.com/slicegen/slicegen/internal/adapters/outbound/tui"
	"github.com/slicegen/slicegen/internal/domain"
	"github.com/slicegen/slicegen/internal/domain/generator"
	"github.com/slicegen/slicegen/internal/domain/schema"
	"github.com/stretchr/testify/assert"
)

func sampleConfig() domain.EntityConfig {
	return domain.EntityConfig{
		ModuleName: "Portal",
		EntityName: "Article",
		Properties: []domain.PropertyDefinition{{Name: "Title", Type: domain.TypeString, IsRequired: true}},
		IdType:     domain.IdLong,
		Endpoints:  []domain.EndpointType{domain.EndpointCreate, domain.EndpointGetByID},
	}
}

func TestRenderResult_ContainsSummaryAndTree(t *testing.T) {
	cfg := sampleConfig()
	output := tui.RenderResult(cfg, generator.GenerateAll(cfg), nil)

	assert.Contains(t, output, "slicegen")
	assert.Contains(t, output, "Fastlink.Portal / Article")
	assert.Contains(t, output, "13 files")
	assert.Contains(t, output, "Endpoint")
	assert.Contains(t, output, "Fastlink.Portal.Endpoints/Endpoints/Article/")
	assert.Contains(t, output, "AdminCreateArticleEndpoint.cs")
	assert.Contains(t, output, "ArticleMappingProfile.cs.txt")
}

func TestRenderResult_Warnings(t *testing.T) {
	cfg := sampleConfig()
	output := tui.RenderResult(cfg, generator.GenerateAll(cfg), []string{"looks plural"})
	assert.Contains(t, output, "looks plural")
}

func TestRenderProperties(t *testing.T) {
	output := tui.RenderProperties(schema.Report{
		Properties: []domain.PropertyDefinition{
			{Name: "Code", Type: domain.TypeString, IsRequired: true, MaxLength: 32},
			{Name: "Id", Type: domain.TypeLong},
		},
		Skipped: []schema.Skip{{Line: 3, Reason: "empty name"}},
	})

	assert.Contains(t, output, "Code")
	assert.Contains(t, output, "required")
	assert.Contains(t, output, "max 32")
	assert.Contains(t, output, "audit field")
	assert.Contains(t, output, "line 3")
	assert.Contains(t, output, "empty name")
}

func TestRenderProperties_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderProperties(schema.Report{}), "No properties found.")
}

func TestRenderRoutes(t *testing.T) {
	output := tui.RenderRoutes(generator.Routes(sampleConfig()))
	assert.Contains(t, output, "POST")
	assert.Contains(t, output, "/api/v1/article/create-article")
	assert.Contains(t, output, "GetArticleById")
}

func TestRenderTypes(t *testing.T) {
	output := tui.RenderTypes(domain.NewCatalog())
	assert.Contains(t, output, "DateTime?")
	assert.Contains(t, output, "Guid")
	assert.Contains(t, output, "Get By Id")
}

func TestRenderValidation(t *testing.T) {
	output := tui.RenderValidation(&domain.ValidationError{Errors: []domain.FieldError{
		{Field: "entity_name", Message: "must not be empty"},
	}})
	assert.Contains(t, output, "Invalid entity")
	assert.Contains(t, output, "entity_name")
	assert.Contains(t, output, "must not be empty")
}
