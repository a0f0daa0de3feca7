package service

import (
	"context"

	"tableside/internal/domain"
	apperrors "tableside/internal/errors"
)

type Repository interface {
	FindAvailable(ctx context.Context, category *domain.Category) ([]domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

type MenuService struct {
	repo Repository
}

func NewService(repo Repository) *MenuService {
	return &MenuService{repo: repo}
}

// ListAvailable returns the orderable catalog, optionally narrowed to one
// category. An empty category means no filter.
func (s *MenuService) ListAvailable(ctx context.Context, category string) ([]domain.MenuItem, error) {
	var filter *domain.Category
	if category != "" {
		c := domain.Category(category)
		if !c.Valid() {
			return nil, apperrors.NewValidationError("unrecognized category", apperrors.ValidationDetail{
				Field:   "category",
				Message: "category must be one of appetizer, main, dessert, beverage",
			})
		}
		filter = &c
	}

	return s.repo.FindAvailable(ctx, filter)
}

func (s *MenuService) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}
