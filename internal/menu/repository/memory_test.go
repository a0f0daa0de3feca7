package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/errors"
)

func testCatalog() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "pizza", Name: "Pizza", Price: 349, Category: domain.CategoryMain, Available: true, PrepMinutes: 20},
		{ID: "lasagna", Name: "Lasagna", Price: 320, Category: domain.CategoryMain, Available: false, PrepMinutes: 30},
		{ID: "tiramisu", Name: "Tiramisu", Price: 145, Category: domain.CategoryDessert, Available: true, PrepMinutes: 5},
	}
}

func TestMemoryMenuRepository_FindAvailable(t *testing.T) {
	repo := NewMemoryMenuRepository(testCatalog())

	items, err := repo.FindAvailable(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 2, "unavailable items are excluded")
	for _, item := range items {
		assert.True(t, item.Available)
	}
}

func TestMemoryMenuRepository_FindAvailable_CategoryFilter(t *testing.T) {
	repo := NewMemoryMenuRepository(testCatalog())

	category := domain.CategoryMain
	items, err := repo.FindAvailable(context.Background(), &category)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "pizza", items[0].ID)

	category = domain.CategoryBeverage
	items, err = repo.FindAvailable(context.Background(), &category)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryMenuRepository_FindByID(t *testing.T) {
	repo := NewMemoryMenuRepository(testCatalog())

	item, err := repo.FindByID(context.Background(), "lasagna")
	require.NoError(t, err)
	assert.Equal(t, "Lasagna", item.Name)
	assert.False(t, item.Available)
}

func TestMemoryMenuRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMemoryMenuRepository(testCatalog())

	item, err := repo.FindByID(context.Background(), "sushi")
	assert.Nil(t, item)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestDefaultCatalog_Categories(t *testing.T) {
	for _, item := range DefaultCatalog() {
		assert.True(t, item.Category.Valid(), "item %s has unrecognized category %q", item.ID, item.Category)
		assert.Greater(t, item.Price, 0.0)
	}
}
