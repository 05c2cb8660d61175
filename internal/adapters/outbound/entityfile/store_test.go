package entityfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slicegen/slicegen/internal/adapters/outbound/entityfile"
	"github.com/slicegen/slicegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleYAML = `
entity_name: Article
module_name: Portal
id_type: long
has_soft_delete: false
endpoints: [Create, GetById]
properties:
  - name: Title
    type: string
    required: true
    max_length: 200
  - name: PublishedAt
    type: DateTime?
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestStore_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.yaml")
	writeFile(t, path, articleYAML)

	spec, err := entityfile.New().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Article", spec.EntityName)
	assert.Equal(t, domain.IdLong, spec.IdType)
	require.NotNil(t, spec.HasSoftDelete)
	assert.False(t, *spec.HasSoftDelete)
	assert.Nil(t, spec.HasCanUpdated)
	assert.Equal(t, []domain.EndpointType{domain.EndpointCreate, domain.EndpointGetByID}, spec.Endpoints)
	require.Len(t, spec.Properties, 2)
	assert.Equal(t, domain.PropertyDefinition{Name: "Title", Type: domain.TypeString, IsRequired: true, MaxLength: 200}, spec.Properties[0])
	assert.Equal(t, domain.TargetType("DateTime?"), spec.Properties[1].Type)
}

func TestStore_LoadMissing(t *testing.T) {
	_, err := entityfile.New().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RejectsUnknownKeys(t *testing.T) {
	_, err := entityfile.New().Decode([]byte("entity_name: Article\nentiy_name: typo\n"), ".")
	assert.Error(t, err)
}

func TestStore_RejectsEmptyDocument(t *testing.T) {
	_, err := entityfile.New().Decode([]byte(""), ".")
	assert.Error(t, err)
}

func TestStore_SchemaFileIsRelativeToEntity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "article.tsv"), "code\tvarchar\t32\t0\t0\n")
	path := filepath.Join(dir, "article.yaml")
	writeFile(t, path, "entity_name: Article\nschema_file: article.tsv\n")

	spec, err := entityfile.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "code\tvarchar\t32\t0\t0\n", spec.LinkedSchema)
}

func TestStore_SchemaFileMissing(t *testing.T) {
	_, err := entityfile.New().Decode([]byte("entity_name: A\nschema_file: nope.tsv\n"), t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schema_file")
}

func TestStore_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.yaml")
	writeFile(t, path, articleYAML)
	store := entityfile.New()

	spec, err := store.Load(path)
	require.NoError(t, err)
	spec.Properties = append(spec.Properties, domain.PropertyDefinition{Name: "Body", Type: domain.TypeString})
	spec.LinkedSchema = "must not be written"
	require.NoError(t, store.Save(path, spec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "must not be written")

	reloaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Len(t, reloaded.Properties, 3)
	assert.Equal(t, spec.HasSoftDelete, reloaded.HasSoftDelete)
}
