package menu

import (
	"context"

	"tableside/internal/domain"
)

type Service interface {
	ListAvailable(ctx context.Context, category string) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

type Repository interface {
	FindAvailable(ctx context.Context, category *domain.Category) ([]domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
}
