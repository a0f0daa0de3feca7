package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/errors"
)

func newOrder(tableNo int) *domain.Order {
	return &domain.Order{
		TableNo: tableNo,
		Items: []domain.OrderItem{
			{Name: "Pizza", Price: 349, Quantity: 2, Category: domain.CategoryMain, PrepMinutes: 20},
		},
		Total:            698,
		Status:           domain.StatusPending,
		EstimatedMinutes: 25,
	}
}

func TestMemoryOrderRepository_Create(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := newOrder(4)

	err := repo.Create(context.Background(), order)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
}

func TestMemoryOrderRepository_FindByID(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := newOrder(4)
	require.NoError(t, repo.Create(context.Background(), order))

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, 4, found.TableNo)
	assert.Len(t, found.Items, 1)

	// Mutating the returned copy must not touch the stored order.
	found.Status = domain.StatusServed
	again, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status)
}

func TestMemoryOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	found, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, found)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestMemoryOrderRepository_FindAll_Filters(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	first := newOrder(4)
	require.NoError(t, repo.Create(ctx, first))
	second := newOrder(7)
	require.NoError(t, repo.Create(ctx, second))
	_, err := repo.UpdateStatus(ctx, second.ID, domain.StatusPreparing)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx, domain.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := domain.StatusPreparing
	byStatus, err := repo.FindAll(ctx, domain.OrderFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, second.ID, byStatus[0].ID)

	tableNo := 4
	byTable, err := repo.FindAll(ctx, domain.OrderFilter{TableNo: &tableNo})
	require.NoError(t, err)
	require.Len(t, byTable, 1)
	assert.Equal(t, first.ID, byTable[0].ID)

	other := domain.StatusServed
	none, err := repo.FindAll(ctx, domain.OrderFilter{Status: &other})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryOrderRepository_FindAll_NewestFirst(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	first := newOrder(1)
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(2 * time.Millisecond)
	second := newOrder(2)
	require.NoError(t, repo.Create(ctx, second))

	all, err := repo.FindAll(ctx, domain.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestMemoryOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	order := newOrder(4)
	require.NoError(t, repo.Create(ctx, order))

	time.Sleep(2 * time.Millisecond)
	updated, err := repo.UpdateStatus(ctx, order.ID, domain.StatusReady)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusReady, updated.Status)
	assert.True(t, updated.UpdatedAt.After(order.UpdatedAt))
	assert.Equal(t, order.CreatedAt, updated.CreatedAt)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, found.Status)
}

func TestMemoryOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	updated, err := repo.UpdateStatus(context.Background(), "missing", domain.StatusReady)
	assert.Nil(t, updated)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
