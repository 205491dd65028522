package category

import (
	"context"

	"github.com/IanTeda/personal-ledger/engine/core"
)

// ListFilter narrows and pages a category listing. Nil filter fields mean
// "any". SortBy/SortDesc are accepted for forward compatibility but are not
// yet applied; results are always ordered by creation time descending.
type ListFilter struct {
	Type     *Type
	IsActive *bool
	SortBy   string
	SortDesc bool
	Offset   int
	Limit    int
}

// Repository defines the interface for category data access. Every operation
// round-trips to the store; no state is held between calls.
type Repository interface {
	// FindByID retrieves a category by its ID; (nil, nil) when absent.
	FindByID(ctx context.Context, id core.ID) (*Category, error)
	// FindByCode retrieves a category by its unique code; (nil, nil) when absent.
	FindByCode(ctx context.Context, code string) (*Category, error)
	// FindBySlug retrieves a category by its unique URL slug; (nil, nil) when absent.
	FindBySlug(ctx context.Context, slug core.Slug) (*Category, error)
	// FindByName retrieves categories whose name contains pattern, case-insensitively.
	FindByName(ctx context.Context, pattern string) ([]Category, error)
	// ListAll retrieves every category, newest first.
	ListAll(ctx context.Context) ([]Category, error)
	// ListActive retrieves active categories, newest first.
	ListActive(ctx context.Context) ([]Category, error)
	// ListInactive retrieves soft-deleted categories, newest first.
	ListInactive(ctx context.Context) ([]Category, error)
	// ListByType retrieves categories of the given accounting type.
	ListByType(ctx context.Context, categoryType Type) ([]Category, error)
	// ListActiveByType retrieves active categories of the given accounting type.
	ListActiveByType(ctx context.Context, categoryType Type) ([]Category, error)
	// ListAllPage retrieves a page of categories plus the total matching count.
	ListAllPage(ctx context.Context, offset, limit int) ([]Category, int64, error)
	// ListActivePage retrieves a page of active categories plus the total count.
	ListActivePage(ctx context.Context, offset, limit int) ([]Category, int64, error)
	// ListInactivePage retrieves a page of inactive categories plus the total count.
	ListInactivePage(ctx context.Context, offset, limit int) ([]Category, int64, error)
	// ListByTypePage retrieves a page of categories of a type plus the total count.
	ListByTypePage(ctx context.Context, categoryType Type, offset, limit int) ([]Category, int64, error)
	// ListActiveByTypePage retrieves a page of active categories of a type plus the total count.
	ListActiveByTypePage(ctx context.Context, categoryType Type, offset, limit int) ([]Category, int64, error)
	// ListWithFilters retrieves a page matching the optional filters plus the total count.
	ListWithFilters(ctx context.Context, filter ListFilter) ([]Category, int64, error)

	// Insert stores a new category and returns the canonical stored row.
	Insert(ctx context.Context, c *Category) (*Category, error)
	// InsertMany inserts a batch in one transaction, skipping rows that fail
	// individually; only fatal transaction errors abort the operation.
	InsertMany(ctx context.Context, categories []Category) ([]Category, error)
	// Upsert inserts the category or, on ID conflict, overwrites its mutable
	// fields, preserving id and created_on.
	Upsert(ctx context.Context, c *Category) (*Category, error)

	// Update replaces every mutable field of the row keyed by c.ID.
	Update(ctx context.Context, c *Category) (*Category, error)
	// UpdateMany updates a batch atomically; any missing row rolls back the
	// whole transaction with ErrCategoryNotFound.
	UpdateMany(ctx context.Context, categories []Category) ([]Category, error)
	// UpdateActiveStatus flips only is_active (and updated_on); the supported
	// soft-deactivation/reactivation mechanism.
	UpdateActiveStatus(ctx context.Context, id core.ID, isActive bool) (*Category, error)

	// Delete physically removes c's row.
	Delete(ctx context.Context, c *Category) error
	// DeleteByID physically removes the row with the given ID.
	DeleteByID(ctx context.Context, id core.ID) error
	// DeleteByCode physically removes the row with the given code.
	DeleteByCode(ctx context.Context, code string) error
	// DeleteBySlug physically removes the row with the given URL slug.
	DeleteBySlug(ctx context.Context, slug core.Slug) error
	// DeleteManyByID removes a batch atomically; any missing ID rolls back the
	// whole transaction with ErrCategoryNotFound.
	DeleteManyByID(ctx context.Context, ids []core.ID) error
	// DeleteInactive removes every soft-deleted row, returning the count.
	DeleteInactive(ctx context.Context) (int64, error)
	// DeleteAll removes every row, returning the count. Destructive; gating
	// belongs to the calling authorization layer.
	DeleteAll(ctx context.Context) (int64, error)
}
