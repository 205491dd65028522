package category

import (
	"context"
	"fmt"
	"time"

	"github.com/IanTeda/personal-ledger/engine/core"
	"github.com/IanTeda/personal-ledger/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const updateQuery = `UPDATE categories
SET code = $2, name = $3, description = $4, url_slug = $5, category_type = $6,
    color = $7, icon = $8, is_active = $9, updated_on = $10
WHERE id = $1`

const updateActiveStatusQuery = `UPDATE categories
SET is_active = $2, updated_on = CURRENT_TIMESTAMP
WHERE id = $1`

// Update replaces every mutable field of the row keyed by c.ID and stamps
// updated_on with the current UTC time. id and created_on are never touched.
// Returns ErrCategoryNotFound when no row matches.
func (r *postgresRepository) Update(ctx context.Context, c *Category) (*Category, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx, updateQuery,
		c.ID, c.Code, c.Name, c.Description, c.URLSlug, c.Type,
		c.Color, c.Icon, c.IsActive, now,
	)
	if err != nil {
		return nil, fmt.Errorf("updating category %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrCategoryNotFound
	}
	updated, err := fetchByID(ctx, r.db, c.ID)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("Category updated",
		"category_id", updated.ID,
		"updated_on", updated.UpdatedOn,
	)
	return updated, nil
}

// UpdateMany updates a batch of categories atomically: if any target row is
// missing, the whole transaction rolls back and ErrCategoryNotFound is
// returned with no partial effects. Strictly all-or-nothing, unlike
// InsertMany.
func (r *postgresRepository) UpdateMany(ctx context.Context, categories []Category) ([]Category, error) {
	log := logger.FromContext(ctx)
	if len(categories) == 0 {
		log.Debug("Bulk update called with empty list")
		return []Category{}, nil
	}
	updated := make([]Category, 0, len(categories))
	err := r.withTransaction(ctx, func(tx pgx.Tx) error {
		now := time.Now().UTC()
		for i := range categories {
			c := &categories[i]
			tag, err := tx.Exec(ctx, updateQuery,
				c.ID, c.Code, c.Name, c.Description, c.URLSlug, c.Type,
				c.Color, c.Icon, c.IsActive, now,
			)
			if err != nil {
				return fmt.Errorf("updating category %s: %w", c.ID, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("updating category %s: %w", c.ID, ErrCategoryNotFound)
			}
			row, err := fetchByID(ctx, tx, c.ID)
			if err != nil {
				return err
			}
			updated = append(updated, *row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info("Bulk update completed", "updated", len(updated))
	return updated, nil
}

// UpdateActiveStatus flips only is_active plus updated_on, leaving every
// other field untouched. This is the supported soft-deactivation and
// reactivation mechanism; applying the same status twice is a state-wise
// no-op though updated_on still advances. Returns ErrCategoryNotFound when
// the id does not exist.
func (r *postgresRepository) UpdateActiveStatus(ctx context.Context, id core.ID, isActive bool) (*Category, error) {
	tag, err := r.db.Exec(ctx, updateActiveStatusQuery, id, isActive)
	if err != nil {
		return nil, fmt.Errorf("updating category %s active status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrCategoryNotFound
	}
	updated, err := fetchByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("Category active status updated",
		"category_id", id,
		"is_active", isActive,
	)
	return updated, nil
}
