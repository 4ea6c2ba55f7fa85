package database_test

import (
	"context"
	"testing"

	"bengkel/internal/database"
	"bengkel/internal/domain"
	"bengkel/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	require.NoError(t, database.Seed(context.Background(), db))
	return db
}

func TestSeed_FreshDatabase(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	users, err := repository.NewUserRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	customers, err := repository.NewCustomerRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	parts, err := repository.NewPartRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, parts, 4)

	methods, err := repository.NewPaymentMethodRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 4)
	assert.Equal(t, domain.StatusInactive, methods[3].Status)

	orders, err := repository.NewOrderRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, float64(580000), orders[0].TotalCost)
	assert.Equal(t, domain.PaymentPaid, orders[0].PaymentStatus)

	payments, err := repository.NewPaymentRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, float64(580000), payments[0].Amount)
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	require.NoError(t, database.Seed(ctx, db))

	parts, err := repository.NewPartRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, parts, 4)
}

func TestReset_RestoresDefaults(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	parts := repository.NewPartRepository(db)
	require.NoError(t, parts.Create(ctx, &domain.Part{ID: 99, Name: "Aki Kering", Stock: 10}))
	require.NoError(t, parts.Delete(ctx, 1))

	require.NoError(t, database.Reset(ctx, db))

	got, err := parts.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "Oli Mesin Super", got[0].Name)
}
