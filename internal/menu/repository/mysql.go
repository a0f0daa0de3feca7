package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tableside/internal/domain"
	"tableside/internal/errors"
)

type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

func (r *MySQLMenuRepository) FindAvailable(ctx context.Context, category *domain.Category) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, price, category, available, prep_minutes
		FROM menu_items
		WHERE available = 1
	`
	var args []any
	if category != nil {
		query += " AND category = ?"
		args = append(args, *category)
	}
	query += " ORDER BY category, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
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

func (r *MySQLMenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, category, available, prep_minutes
		FROM menu_items
		WHERE id = ?`,
		id,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Available, &item.PrepMinutes)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}
