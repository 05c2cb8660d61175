package domain_test

import (
	"testing"

	"github.com/slicegen/slicegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c := domain.NewCatalog()

	assert.Len(t, c.PropertyTypes, 16)
	assert.Equal(t, domain.TypeString, c.PropertyTypes[0])
	assert.Equal(t, domain.TargetType("string?"), c.PropertyTypes[1])
	assert.Equal(t, []domain.IdType{domain.IdLong, domain.IdString, domain.IdGuid}, c.IdTypes)

	require.Len(t, c.Endpoints, 6)
	assert.Equal(t, domain.EndpointGetByID, c.Endpoints[3].Name)
	assert.Equal(t, "Get By Id", c.Endpoints[3].Label)
	assert.Equal(t, "GET", c.Endpoints[3].Method)
	assert.Equal(t, "POST", c.Endpoints[0].Method)

	last := c.Endpoints[5]
	assert.Equal(t, domain.EndpointGetAll, last.Name)
	assert.False(t, last.HasRequest)
	assert.False(t, last.HasValidator)
}
