package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marblemanager/internal/domain"
	apperrors "marblemanager/internal/errors"
	"marblemanager/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func testOrder(id, userID string) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Order{
		ID:            id,
		UserID:        userID,
		PlanName:      "Premium Plan",
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		BaseAmount:    4236.44,
		GSTAmount:     762.56,
		TotalAmount:   4999,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order := testOrder("order-1", "user-1")
	address := "42 MG Road, Jaipur"
	order.ProjectAddress = &address

	require.NoError(t, repo.Insert(context.Background(), order))

	found, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", found.ID)
	assert.Equal(t, "user-1", found.UserID)
	assert.Equal(t, "Premium Plan", found.PlanName)
	assert.Equal(t, domain.PaymentStatusPending, found.PaymentStatus)
	assert.Equal(t, 4236.44, found.BaseAmount)
	assert.Equal(t, 762.56, found.GSTAmount)
	assert.Equal(t, 4999.0, found.TotalAmount)
	require.NotNil(t, found.ProjectAddress)
	assert.Equal(t, address, *found.ProjectAddress)
	assert.Nil(t, found.Notes)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order, err := repo.FindByID(context.Background(), "missing")
	assert.Error(t, err)
	assert.Nil(t, order)

	nfe, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestOrderRepository_FindByUserID_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	older := testOrder("order-1", "user-1")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	older.UpdatedAt = older.CreatedAt
	newer := testOrder("order-2", "user-1")
	other := testOrder("order-3", "user-2")

	require.NoError(t, repo.Insert(context.Background(), older))
	require.NoError(t, repo.Insert(context.Background(), newer))
	require.NoError(t, repo.Insert(context.Background(), other))

	orders, err := repo.FindByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-2", orders[0].ID)
	assert.Equal(t, "order-1", orders[1].ID)
}

func TestOrderRepository_FindAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	require.NoError(t, repo.Insert(context.Background(), testOrder("order-1", "user-1")))
	require.NoError(t, repo.Insert(context.Background(), testOrder("order-2", "user-2")))

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderRepository_UpdateStatus_PersistsAcrossReads(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	require.NoError(t, repo.Insert(context.Background(), testOrder("order-1", "user-1")))

	err := repo.UpdateStatus(context.Background(), "order-1", domain.PaymentStatusConfirmed)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusConfirmed, found.PaymentStatus)
	// Only the status changed.
	assert.Equal(t, "Premium Plan", found.PlanName)
	assert.Equal(t, 4999.0, found.TotalAmount)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), "missing", domain.PaymentStatusPaid)
	assert.Error(t, err)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
