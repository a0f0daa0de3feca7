package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tableside/internal/domain"
	"tableside/internal/errors"
)

type PostgresMenuRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMenuRepository(pool *pgxpool.Pool) *PostgresMenuRepository {
	return &PostgresMenuRepository{pool: pool}
}

func (r *PostgresMenuRepository) FindAvailable(ctx context.Context, category *domain.Category) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, price, category, available, prep_minutes
		FROM menu_items
		WHERE available = TRUE
	`
	var args []any
	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY category, name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Available, &item.PrepMinutes); err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresMenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, price, category, available, prep_minutes
		FROM menu_items
		WHERE id = $1`,
		id,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Available, &item.PrepMinutes)

	if err == pgx.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}
