package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/IanTeda/personal-ledger/engine/category"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectUpdate(mockPool pgxmock.PgxPoolIface, c *category.Category) *pgxmock.ExpectedExec {
	return mockPool.ExpectExec("UPDATE categories\\s+SET code = \\$2").
		WithArgs(
			c.ID, c.Code, c.Name, c.Description, c.URLSlug, c.Type,
			c.Color, c.Icon, c.IsActive, pgxmock.AnyArg(),
		)
}

func TestUpdate(t *testing.T) {
	t.Run("Should update every mutable field and return the stored row", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := category.NewPostgresRepository(mockPool)
		c := newTestCategory(t, "GRO.FOO.BAR", "Groceries")
		c.Name = "Groceries and Household"
		stored := *c
		stored.UpdatedOn = time.Now().UTC()

		expectUpdate(mockPool, c).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockPool.ExpectQuery("SELECT (.+) FROM categories WHERE id = \\$1").
			WithArgs(c.ID).
			WillReturnRows(categoryRows(mockPool, &stored))

		got, err := repo.Update(context.Background(), c)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Groceries and Household", got.Name)
		assert.True(t, got.UpdatedOn.After(got.CreatedOn))
		assert.Equal(t, c.CreatedOn, got.CreatedOn)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
	t.Run("Should return not found when the row does not exist", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := category.NewPostgresRepository(mockPool)
		c := newTestCategory(t, "GRO.FOO.BAR", "Groceries")

		expectUpdate(mockPool, c).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		got, err := repo.Update(context.Background(), c)
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestUpdateMany(t *testing.T) {
	t.Run("Should return an empty slice for an empty batch without touching the store", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := category.NewPostgresRepository(mockPool)

		got, err := repo.UpdateMany(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
	t.Run("Should update the whole batch in one transaction", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := category.NewPostgresRepository(mockPool)
		first := newTestCategory(t, "GRO.FOO.BAR", "Groceries")
		second := newTestCategory(t, "UTL.PWR.001", "Electricity")

		mockPool.ExpectBegin()
		for _, c := range []*category.Category{first, second} {
			expectUpdate(mockPool, c).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			mockPool.ExpectQuery("SELECT (.+) FROM categories WHERE id = \\$1").
				WithArgs(c.ID).
				WillReturnRows(categoryRows(mockPool, c))
		}
		mockPool.ExpectCommit()

		got, err := repo.UpdateMany(context.Background(), []category.Category{*first, *second})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
	t.Run("Should roll back the whole batch when any row is missing", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := category.NewPostgresRepository(mockPool)
		first := newTestCategory(t, "GRO.FOO.BAR", "Groceries")
		missing := newTestCategory(t, "UTL.PWR.001", "Electricity")

		mockPool.ExpectBegin()
		expectUpdate(mockPool, first).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockPool.ExpectQuery("SELECT (.+) FROM categories WHERE id = \\$1").
			WithArgs(first.ID).
			WillReturnRows(categoryRows(mockPool, first))
		expectUpdate(mockPool, missing).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mockPool.ExpectRollback()

		got, err := repo.UpdateMany(context.Background(), []category.Category{*first, *missing})
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestUpdateActiveStatus(t *testing.T) {
	t.Run("Should deactivate a category leaving other fields untouched", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := category.NewPostgresRepository(mockPool)
		c := newTestCategory(t, "GRO.FOO.BAR", "Groceries")
		stored := *c
		stored.IsActive = false
		stored.UpdatedOn = time.Now().UTC()

		mockPool.ExpectExec("UPDATE categories\\s+SET is_active = \\$2").
			WithArgs(c.ID, false).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockPool.ExpectQuery("SELECT (.+) FROM categories WHERE id = \\$1").
			WithArgs(c.ID).
			WillReturnRows(categoryRows(mockPool, &stored))

		got, err := repo.UpdateActiveStatus(context.Background(), c.ID, false)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.IsActive)
		assert.Equal(t, c.Name, got.Name)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
	t.Run("Should reactivate a previously deactivated category", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := category.NewPostgresRepository(mockPool)
		c := newTestCategory(t, "GRO.FOO.BAR", "Groceries")
		stored := *c
		stored.IsActive = true

		mockPool.ExpectExec("UPDATE categories\\s+SET is_active = \\$2").
			WithArgs(c.ID, true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockPool.ExpectQuery("SELECT (.+) FROM categories WHERE id = \\$1").
			WithArgs(c.ID).
			WillReturnRows(categoryRows(mockPool, &stored))

		got, err := repo.UpdateActiveStatus(context.Background(), c.ID, true)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsActive)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
	t.Run("Should return not found for an unknown id", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := category.NewPostgresRepository(mockPool)
		c := newTestCategory(t, "GRO.FOO.BAR", "Groceries")

		mockPool.ExpectExec("UPDATE categories\\s+SET is_active = \\$2").
			WithArgs(c.ID, false).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		got, err := repo.UpdateActiveStatus(context.Background(), c.ID, false)
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}
