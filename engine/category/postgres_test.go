package category_test

import (
	"testing"

	"github.com/IanTeda/personal-ledger/engine/category"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var testColumns = []string{
	"id", "code", "name", "description", "url_slug", "category_type",
	"color", "icon", "is_active", "created_on", "updated_on",
}

func newTestCategory(t *testing.T, code, name string) *category.Category {
	t.Helper()
	c, err := category.New(code, name, category.TypeExpense)
	require.NoError(t, err)
	return c.WithSlug()
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool
}

func categoryRows(mockPool pgxmock.PgxPoolIface, cats ...*category.Category) *pgxmock.Rows {
	rows := mockPool.NewRows(testColumns)
	for _, c := range cats {
		rows.AddRow(
			c.ID, c.Code, c.Name, c.Description, c.URLSlug, c.Type,
			c.Color, c.Icon, c.IsActive, c.CreatedOn, c.UpdatedOn,
		)
	}
	return rows
}
