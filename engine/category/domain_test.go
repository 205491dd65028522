package category_test

import (
	"testing"

	"github.com/IanTeda/personal-ledger/engine/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Should create active category with fresh ID and UTC timestamps", func(t *testing.T) {
		c, err := category.New("GRO.FOO.BAR", "Groceries", category.TypeExpense)
		require.NoError(t, err)
		assert.False(t, c.ID.IsZero())
		assert.Equal(t, "GRO.FOO.BAR", c.Code)
		assert.Equal(t, "Groceries", c.Name)
		assert.Equal(t, category.TypeExpense, c.Type)
		assert.True(t, c.IsActive)
		assert.False(t, c.CreatedOn.IsZero())
		assert.Equal(t, c.CreatedOn, c.UpdatedOn)
		assert.Equal(t, "UTC", c.CreatedOn.Location().String())
	})
	t.Run("Should reject malformed code", func(t *testing.T) {
		_, err := category.New("groceries", "Groceries", category.TypeExpense)
		assert.ErrorContains(t, err, "invalid category code")
	})
	t.Run("Should reject empty name", func(t *testing.T) {
		_, err := category.New("GRO.FOO.BAR", "", category.TypeExpense)
		assert.ErrorContains(t, err, "name cannot be empty")
	})
	t.Run("Should reject unknown category type", func(t *testing.T) {
		_, err := category.New("GRO.FOO.BAR", "Groceries", category.Type("savings"))
		assert.ErrorContains(t, err, "invalid category type")
	})
}

func TestCategory_WithSlug(t *testing.T) {
	t.Run("Should derive slug from name", func(t *testing.T) {
		c, err := category.New("OFF.SUP.001", "Office Supplies", category.TypeExpense)
		require.NoError(t, err)
		c.WithSlug()
		require.NotNil(t, c.URLSlug)
		assert.Equal(t, "office-supplies", c.URLSlug.String())
	})
}

func TestValidateCode(t *testing.T) {
	t.Run("Should accept XXX.XXX.XXX uppercase alphanumerics", func(t *testing.T) {
		assert.NoError(t, category.ValidateCode("ABC.DEF.GHI"))
		assert.NoError(t, category.ValidateCode("A1C.0EF.9HI"))
	})
	t.Run("Should reject wrong group counts and lengths", func(t *testing.T) {
		assert.Error(t, category.ValidateCode("ABC.DEF"))
		assert.Error(t, category.ValidateCode("ABCD.DEF.GHI"))
		assert.Error(t, category.ValidateCode("AB.DEF.GHI"))
		assert.Error(t, category.ValidateCode("ABC.DEF.GHI.JKL"))
	})
	t.Run("Should reject lowercase and separators other than dots", func(t *testing.T) {
		assert.Error(t, category.ValidateCode("abc.def.ghi"))
		assert.Error(t, category.ValidateCode("ABC-DEF-GHI"))
		assert.Error(t, category.ValidateCode(""))
	})
}

func TestType_IsValid(t *testing.T) {
	t.Run("Should accept the five accounting classifications", func(t *testing.T) {
		for _, typ := range []category.Type{
			category.TypeAsset,
			category.TypeLiability,
			category.TypeIncome,
			category.TypeExpense,
			category.TypeEquity,
		} {
			assert.True(t, typ.IsValid(), "type %s should be valid", typ)
		}
	})
	t.Run("Should reject anything else", func(t *testing.T) {
		assert.False(t, category.Type("savings").IsValid())
		assert.False(t, category.Type("").IsValid())
	})
}

func TestParseType(t *testing.T) {
	t.Run("Should parse case-insensitively", func(t *testing.T) {
		typ, err := category.ParseType("Expense")
		require.NoError(t, err)
		assert.Equal(t, category.TypeExpense, typ)
	})
	t.Run("Should reject unknown type", func(t *testing.T) {
		_, err := category.ParseType("savings")
		assert.ErrorContains(t, err, "invalid category type")
	})
}
