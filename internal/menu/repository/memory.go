package repository

import (
	"context"
	"fmt"
	"sync"

	"tableside/internal/domain"
	"tableside/internal/errors"
)

// MemoryMenuRepository serves a fixed catalog from process memory.
type MemoryMenuRepository struct {
	mu    sync.RWMutex
	items []domain.MenuItem
}

func NewMemoryMenuRepository(items []domain.MenuItem) *MemoryMenuRepository {
	return &MemoryMenuRepository{items: items}
}

// DefaultCatalog seeds the memory backend so a fresh instance is orderable
// out of the box.
func DefaultCatalog() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "bruschetta", Name: "Bruschetta", Price: 95, Category: domain.CategoryAppetizer, Available: true, PrepMinutes: 10},
		{ID: "garlic-bread", Name: "Garlic Bread", Price: 75, Category: domain.CategoryAppetizer, Available: true, PrepMinutes: 8},
		{ID: "margherita", Name: "Margherita Pizza", Price: 349, Category: domain.CategoryMain, Available: true, PrepMinutes: 20},
		{ID: "carbonara", Name: "Spaghetti Carbonara", Price: 295, Category: domain.CategoryMain, Available: true, PrepMinutes: 18},
		{ID: "lasagna", Name: "Lasagna", Price: 320, Category: domain.CategoryMain, Available: false, PrepMinutes: 30},
		{ID: "tiramisu", Name: "Tiramisu", Price: 145, Category: domain.CategoryDessert, Available: true, PrepMinutes: 5},
		{ID: "panna-cotta", Name: "Panna Cotta", Price: 135, Category: domain.CategoryDessert, Available: true, PrepMinutes: 5},
		{ID: "lemonade", Name: "House Lemonade", Price: 55, Category: domain.CategoryBeverage, Available: true},
		{ID: "espresso", Name: "Espresso", Price: 40, Category: domain.CategoryBeverage, Available: true},
	}
}

func (r *MemoryMenuRepository) FindAvailable(ctx context.Context, category *domain.Category) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.MenuItem
	for _, item := range r.items {
		if !item.Available {
			continue
		}
		if category != nil && item.Category != *category {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (r *MemoryMenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("menu item with id %s not found", id))
}
