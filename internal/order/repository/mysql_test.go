package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/errors"
	"tableside/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestMySQLOrderRepository_CreateAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	order := newOrder(4)
	require.NoError(t, repo.Create(ctx, order))
	require.NotEmpty(t, order.ID)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, 4, found.TableNo)
	assert.Equal(t, domain.StatusPending, found.Status)
	assert.Equal(t, 698.0, found.Total)
	assert.Equal(t, 25, found.EstimatedMinutes)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Pizza", found.Items[0].Name)
	assert.Equal(t, 2, found.Items[0].Quantity)
	assert.Equal(t, domain.CategoryMain, found.Items[0].Category)
	assert.True(t, found.CreatedAt.Equal(order.CreatedAt))
}

func TestMySQLOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	found, err := repo.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.Nil(t, found)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestMySQLOrderRepository_FindAll_FilterAndOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	first := newOrder(4)
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(2 * time.Millisecond)
	second := newOrder(7)
	require.NoError(t, repo.Create(ctx, second))
	_, err := repo.UpdateStatus(ctx, second.ID, domain.StatusPreparing)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx, domain.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest order first")

	status := domain.StatusPreparing
	tableNo := 7
	filtered, err := repo.FindAll(ctx, domain.OrderFilter{Status: &status, TableNo: &tableNo})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.ID, filtered[0].ID)
	require.Len(t, filtered[0].Items, 1)
}

func TestMySQLOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	order := newOrder(4)
	require.NoError(t, repo.Create(ctx, order))

	time.Sleep(2 * time.Millisecond)
	updated, err := repo.UpdateStatus(ctx, order.ID, domain.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, updated.Status)
	assert.True(t, updated.UpdatedAt.After(order.UpdatedAt))
}

func TestMySQLOrderRepository_UpdateStatus_SameStatusIsNotAMiss(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	order := newOrder(4)
	require.NoError(t, repo.Create(ctx, order))

	// Setting a status the order already holds must still resolve the
	// order, even when the UPDATE changes no row.
	first, err := repo.UpdateStatus(ctx, order.ID, domain.StatusReady)
	require.NoError(t, err)

	second, err := repo.UpdateStatus(ctx, order.ID, domain.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.StatusReady, second.Status)
}

func TestMySQLOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	updated, err := repo.UpdateStatus(context.Background(), "00000000-0000-0000-0000-000000000000", domain.StatusReady)
	assert.Nil(t, updated)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
