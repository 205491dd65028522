package category

import (
	"context"
	"fmt"

	"github.com/IanTeda/personal-ledger/engine/core"
	"github.com/IanTeda/personal-ledger/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// Delete physically removes c's row. Deletion is irreversible; soft
// deactivation goes through UpdateActiveStatus instead.
func (r *postgresRepository) Delete(ctx context.Context, c *Category) error {
	return r.DeleteByID(ctx, c.ID)
}

// DeleteByID physically removes the row with the given ID. Returns
// ErrCategoryNotFound when no row matches.
func (r *postgresRepository) DeleteByID(ctx context.Context, id core.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	logger.FromContext(ctx).Debug("Category deleted", "category_id", id)
	return nil
}

// DeleteByCode physically removes the row with the given code.
func (r *postgresRepository) DeleteByCode(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("deleting category by code %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	logger.FromContext(ctx).Debug("Category deleted", "category_code", code)
	return nil
}

// DeleteBySlug physically removes the row with the given URL slug.
func (r *postgresRepository) DeleteBySlug(ctx context.Context, slug core.Slug) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE url_slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("deleting category by slug %s: %w", slug, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	logger.FromContext(ctx).Debug("Category deleted", "category_slug", slug)
	return nil
}

// DeleteManyByID removes a batch of rows atomically: the first id that
// matches no row aborts and rolls back the entire batch with
// ErrCategoryNotFound. An empty input is a no-op success.
func (r *postgresRepository) DeleteManyByID(ctx context.Context, ids []core.ID) error {
	log := logger.FromContext(ctx)
	if len(ids) == 0 {
		log.Debug("Bulk delete called with empty ID list")
		return nil
	}
	err := r.withTransaction(ctx, func(tx pgx.Tx) error {
		for _, id := range ids {
			tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
			if err != nil {
				return fmt.Errorf("deleting category %s: %w", id, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("deleting category %s: %w", id, ErrCategoryNotFound)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("Bulk delete completed", "deleted", len(ids))
	return nil
}

// DeleteInactive unconditionally removes every soft-deleted row and returns
// the count removed; zero is a valid, non-error result.
func (r *postgresRepository) DeleteInactive(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE is_active = false`)
	if err != nil {
		return 0, fmt.Errorf("deleting inactive categories: %w", err)
	}
	deleted := tag.RowsAffected()
	logger.FromContext(ctx).Info("Inactive categories deleted", "deleted", deleted)
	return deleted, nil
}

// DeleteAll unconditionally removes every row and returns the count removed.
// There is no confirmation step at this layer; gating belongs to callers.
func (r *postgresRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories`)
	if err != nil {
		return 0, fmt.Errorf("deleting all categories: %w", err)
	}
	deleted := tag.RowsAffected()
	logger.FromContext(ctx).Warn("All categories deleted", "deleted", deleted)
	return deleted, nil
}
