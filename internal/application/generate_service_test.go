package application_test

import (
	"context"
	"strings"
	"testing"

	"github.com/slicegen/slicegen/internal/application"
	"github.com/slicegen/slicegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerateService(store *memEntityStore) *application.GenerateService {
	return application.NewGenerateService(discardLogger(), stubConfigLoader{cfg: domain.DefaultConfig()}, store)
}

func TestGenerateService_LoadEntityAppliesDefaultsAndSchema(t *testing.T) {
	store := newMemEntityStore()
	store.specs["article.yaml"] = domain.EntitySpec{
		EntityName: "Article",
		Properties: []domain.PropertyDefinition{{Name: "Title", Type: domain.TypeString, IsRequired: true}},
		Schema:     "Name\tType\nview_count\tint\t0\t0\t0\nid\tbigint\t0\t0\t0\n",
	}
	svc := newGenerateService(store)

	cfg, err := svc.LoadEntity(context.Background(), ".", "article.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Portal", cfg.ModuleName)
	assert.Equal(t, domain.IdLong, cfg.IdType)
	require.Len(t, cfg.Properties, 3)
	assert.Equal(t, "ViewCount", cfg.Properties[1].Name)
	assert.Equal(t, domain.TypeInt, cfg.Properties[1].Type)
	// audit columns are dropped by the generators, not the loader
	assert.Equal(t, "Id", cfg.Properties[2].Name)
}

func TestGenerateService_InlinePropertiesWinOverSchema(t *testing.T) {
	store := newMemEntityStore()
	store.specs["article.yaml"] = domain.EntitySpec{
		EntityName: "Article",
		Properties: []domain.PropertyDefinition{{Name: "Title", Type: domain.TypeString, IsRequired: true, MaxLength: 200}},
		Schema:     "title\tvarchar\t64\t0\t0\nsummary\tvarchar\t500\t0\t1",
	}
	svc := newGenerateService(store)
	ctx := context.Background()

	cfg, err := svc.LoadEntity(ctx, ".", "article.yaml")
	require.NoError(t, err)
	require.Len(t, cfg.Properties, 2)
	assert.Equal(t, 200, cfg.Properties[0].MaxLength)
	assert.Equal(t, "Summary", cfg.Properties[1].Name)

	result, err := svc.Generate(ctx, cfg)
	require.NoError(t, err)
	entity := result.FilesIn(domain.CategoryEntity)[0]
	assert.Equal(t, 1, strings.Count(entity.Content, " Title {"))
}

func TestGenerateService_LoadEntityMissing(t *testing.T) {
	svc := newGenerateService(newMemEntityStore())

	_, err := svc.LoadEntity(context.Background(), ".", "missing.yaml")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateService_ConfigError(t *testing.T) {
	store := newMemEntityStore()
	store.specs["a.yaml"] = domain.EntitySpec{EntityName: "Article"}
	svc := application.NewGenerateService(discardLogger(), stubConfigLoader{err: assert.AnError}, store)

	_, err := svc.LoadEntity(context.Background(), ".", "a.yaml")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGenerateService_DecodeEntity(t *testing.T) {
	svc := newGenerateService(newMemEntityStore())

	cfg, err := svc.DecodeEntity(context.Background(), ".", []byte("Article\n"))
	require.NoError(t, err)
	assert.Equal(t, "Article", cfg.EntityName)

	_, err = svc.DecodeEntity(context.Background(), ".", nil)
	assert.Error(t, err)
}

func TestGenerateService_GenerateRejectsInvalid(t *testing.T) {
	svc := newGenerateService(newMemEntityStore())

	result, err := svc.Generate(context.Background(), domain.EntityConfig{IdType: domain.IdLong})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGenerateService_Generate(t *testing.T) {
	svc := newGenerateService(newMemEntityStore())
	cfg := domain.EntitySpec{
		EntityName: "Article",
		Properties: []domain.PropertyDefinition{{Name: "Title", Type: domain.TypeString}},
		Endpoints:  []domain.EndpointType{domain.EndpointCreate, domain.EndpointGetByID},
	}.Resolve(domain.DefaultConfig())

	result, err := svc.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 13, result.Summary.TotalFiles)

	routes, err := svc.Routes(cfg)
	require.NoError(t, err)
	assert.Len(t, routes, 2)
}
