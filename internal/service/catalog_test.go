package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwiseapp/giftwise-server/internal/store"
)

func TestListCategories(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	svc := NewCatalogService(s, testLogger())

	tags, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	assert.Equal(t, []string{"Books", "Coffee", "Sports"}, names)
}

func TestListItemsByTagPaginated(t *testing.T) {
	s := newTestStore(t)
	ids := seedCatalog(t, s)
	svc := NewCatalogService(s, testLogger())

	page, err := svc.ListItemsByTag(context.Background(), ids["Coffee"], store.PaginationParams{Page: 1, Limit: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	require.Len(t, page.Items, 1)
	// Cheapest first.
	assert.Equal(t, "Mug", page.Items[0].Name)
}

func TestListLatestItems(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	svc := NewCatalogService(s, testLogger())

	items, err := svc.ListLatestItems(context.Background(), 2)
	require.NoError(t, err)

	// Newest insertions come back first.
	require.Len(t, items, 2)
	assert.Equal(t, "Candle", items[0].Name)
	assert.Equal(t, "Ball", items[1].Name)
}
