package category

import (
	"context"
	"fmt"

	"github.com/IanTeda/personal-ledger/engine/core"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// FindByID retrieves a category by its primary key. Absence is not an error:
// the result is (nil, nil) when no row matches.
func (r *postgresRepository) FindByID(ctx context.Context, id core.ID) (*Category, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByCode retrieves a category by its unique code; (nil, nil) when absent.
func (r *postgresRepository) FindByCode(ctx context.Context, code string) (*Category, error) {
	return r.findOne(ctx, squirrel.Eq{"code": code})
}

// FindBySlug retrieves a category by its unique URL slug; (nil, nil) when absent.
func (r *postgresRepository) FindBySlug(ctx context.Context, slug core.Slug) (*Category, error) {
	return r.findOne(ctx, squirrel.Eq{"url_slug": slug})
}

func (r *postgresRepository) findOne(ctx context.Context, pred squirrel.Eq) (*Category, error) {
	query, args, err := selectBuilder().Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var c Category
	if err := pgxscan.Get(ctx, r.db, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}
	return &c, nil
}

// FindByName retrieves categories whose name contains pattern,
// case-insensitively, newest first. Names are not unique.
func (r *postgresRepository) FindByName(ctx context.Context, pattern string) ([]Category, error) {
	qb := selectBuilder().
		Where("name ILIKE ?", "%"+pattern+"%").
		OrderBy("created_on DESC")
	return r.list(ctx, qb)
}

// ListAll retrieves every category, newest first.
func (r *postgresRepository) ListAll(ctx context.Context) ([]Category, error) {
	return r.list(ctx, selectBuilder().OrderBy("created_on DESC"))
}

// ListActive retrieves active categories, newest first.
func (r *postgresRepository) ListActive(ctx context.Context) ([]Category, error) {
	qb := selectBuilder().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_on DESC")
	return r.list(ctx, qb)
}

// ListInactive retrieves soft-deleted categories, newest first.
func (r *postgresRepository) ListInactive(ctx context.Context) ([]Category, error) {
	qb := selectBuilder().
		Where(squirrel.Eq{"is_active": false}).
		OrderBy("created_on DESC")
	return r.list(ctx, qb)
}

// ListByType retrieves categories of the given accounting type, newest first.
func (r *postgresRepository) ListByType(ctx context.Context, categoryType Type) ([]Category, error) {
	qb := selectBuilder().
		Where(squirrel.Eq{"category_type": categoryType}).
		OrderBy("created_on DESC")
	return r.list(ctx, qb)
}

// ListActiveByType retrieves active categories of the given accounting type,
// newest first.
func (r *postgresRepository) ListActiveByType(ctx context.Context, categoryType Type) ([]Category, error) {
	qb := selectBuilder().
		Where(squirrel.Eq{"category_type": categoryType, "is_active": true}).
		OrderBy("created_on DESC")
	return r.list(ctx, qb)
}

func (r *postgresRepository) list(ctx context.Context, qb squirrel.SelectBuilder) ([]Category, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var categories []Category
	if err := pgxscan.Select(ctx, r.db, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("scanning categories: %w", err)
	}
	return categories, nil
}

// ListAllPage retrieves one page of categories plus the total row count. The
// total is computed independently of offset/limit so callers can derive page
// counts. No upper bound is enforced on limit here.
func (r *postgresRepository) ListAllPage(ctx context.Context, offset, limit int) ([]Category, int64, error) {
	return r.listPage(ctx, nil, offset, limit)
}

// ListActivePage retrieves one page of active categories plus the total count.
func (r *postgresRepository) ListActivePage(ctx context.Context, offset, limit int) ([]Category, int64, error) {
	return r.listPage(ctx, squirrel.Eq{"is_active": true}, offset, limit)
}

// ListInactivePage retrieves one page of inactive categories plus the total count.
func (r *postgresRepository) ListInactivePage(ctx context.Context, offset, limit int) ([]Category, int64, error) {
	return r.listPage(ctx, squirrel.Eq{"is_active": false}, offset, limit)
}

// ListByTypePage retrieves one page of categories of a type plus the total count.
func (r *postgresRepository) ListByTypePage(
	ctx context.Context,
	categoryType Type,
	offset, limit int,
) ([]Category, int64, error) {
	return r.listPage(ctx, squirrel.Eq{"category_type": categoryType}, offset, limit)
}

// ListActiveByTypePage retrieves one page of active categories of a type plus
// the total count.
func (r *postgresRepository) ListActiveByTypePage(
	ctx context.Context,
	categoryType Type,
	offset, limit int,
) ([]Category, int64, error) {
	return r.listPage(ctx, squirrel.Eq{"category_type": categoryType, "is_active": true}, offset, limit)
}

// ListWithFilters retrieves one page matching whichever optional filters are
// set, always returning the same (page, total) shape.
func (r *postgresRepository) ListWithFilters(ctx context.Context, filter ListFilter) ([]Category, int64, error) {
	// TODO: apply SortBy/SortDesc once the sort contract with the API layer
	// is settled; results are currently always created_on DESC.
	conj := squirrel.And{}
	if filter.Type != nil {
		conj = append(conj, squirrel.Eq{"category_type": *filter.Type})
	}
	if filter.IsActive != nil {
		conj = append(conj, squirrel.Eq{"is_active": *filter.IsActive})
	}
	var pred squirrel.Sqlizer
	if len(conj) > 0 {
		pred = conj
	}
	return r.listPage(ctx, pred, filter.Offset, filter.Limit)
}

func (r *postgresRepository) listPage(
	ctx context.Context,
	pred squirrel.Sqlizer,
	offset, limit int,
) ([]Category, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	countQB := squirrel.Select("COUNT(*)").
		From(tableName).
		PlaceholderFormat(squirrel.Dollar)
	pageQB := selectBuilder().OrderBy("created_on DESC")
	if pred != nil {
		countQB = countQB.Where(pred)
		pageQB = pageQB.Where(pred)
	}
	countQuery, countArgs, err := countQB.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building count query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting categories: %w", err)
	}
	pageQuery, pageArgs, err := pageQB.
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building page query: %w", err)
	}
	var categories []Category
	if err := pgxscan.Select(ctx, r.db, &categories, pageQuery, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("scanning categories: %w", err)
	}
	return categories, total, nil
}
