package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestGetSearchFilterEscapesMetacharacters(t *testing.T) {
	params := &PaginationParams{Search: ".*"}

	filter := params.GetSearchFilter([]string{"name", "brand"})
	conditions, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, conditions, 2)

	name := conditions[0]["name"].(bson.M)
	assert.Equal(t, `\.\*`, name["$regex"])
	assert.Equal(t, "i", name["$options"])
}

func TestGetSearchFilterEmpty(t *testing.T) {
	params := &PaginationParams{}
	assert.Empty(t, params.GetSearchFilter([]string{"name"}))

	params = &PaginationParams{Search: "corolla"}
	assert.Empty(t, params.GetSearchFilter(nil))
}

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(&PaginationParams{Page: 2, PageSize: 10}, 35)

	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)
}
