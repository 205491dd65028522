package category

import (
	"context"
	"fmt"

	"github.com/IanTeda/personal-ledger/pkg/logger"
)

const insertQuery = `INSERT INTO categories (id, code, name, description, url_slug, category_type, color, icon, is_active, created_on, updated_on)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const upsertQuery = `INSERT INTO categories (id, code, name, description, url_slug, category_type, color, icon, is_active, created_on, updated_on)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
	code = EXCLUDED.code,
	name = EXCLUDED.name,
	description = EXCLUDED.description,
	url_slug = EXCLUDED.url_slug,
	category_type = EXCLUDED.category_type,
	color = EXCLUDED.color,
	icon = EXCLUDED.icon,
	is_active = EXCLUDED.is_active,
	updated_on = EXCLUDED.updated_on`

// Insert stores a new category, then reads it back by id so the caller gets
// the canonical stored representation rather than the value it supplied.
// Uniqueness violations on code or url_slug surface as wrapped store errors
// (see IsUniqueViolation).
func (r *postgresRepository) Insert(ctx context.Context, c *Category) (*Category, error) {
	tag, err := r.db.Exec(ctx, insertQuery,
		c.ID, c.Code, c.Name, c.Description, c.URLSlug, c.Type,
		c.Color, c.Icon, c.IsActive, c.CreatedOn, c.UpdatedOn,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting category %s: %w", c.Code, err)
	}
	// Any count other than 1 is an anomaly worth flagging, but the real
	// failure signal is the constraint error above.
	if tag.RowsAffected() != 1 {
		logger.FromContext(ctx).Warn("Insert affected unexpected row count",
			"category_code", c.Code,
			"rows_affected", tag.RowsAffected(),
		)
	}
	inserted, err := fetchByID(ctx, r.db, c.ID)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("Category inserted",
		"category_id", inserted.ID,
		"category_code", inserted.Code,
	)
	return inserted, nil
}

// InsertMany inserts a batch inside one transaction. A row that fails
// individually (typically a uniqueness violation) is logged and skipped, and
// the loop continues; the transaction still commits whatever succeeded. This
// is deliberately NOT atomic, unlike UpdateMany/DeleteManyByID — callers get
// back only the rows that made it in. Only begin/commit/savepoint faults
// abort the whole operation.
func (r *postgresRepository) InsertMany(ctx context.Context, categories []Category) ([]Category, error) {
	log := logger.FromContext(ctx)
	if len(categories) == 0 {
		log.Debug("Bulk insert called with empty list")
		return []Category{}, nil
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Warn("Transaction rollback failed", "error", rbErr)
			}
		}
	}()
	inserted := make([]Category, 0, len(categories))
	failed := 0
	for i := range categories {
		c := &categories[i]
		// A failed statement poisons a Postgres transaction, so each row gets
		// its own savepoint to keep the continue-on-failure contract.
		if _, err := tx.Exec(ctx, "SAVEPOINT insert_row"); err != nil {
			return nil, fmt.Errorf("creating savepoint: %w", err)
		}
		if _, err := tx.Exec(ctx, insertQuery,
			c.ID, c.Code, c.Name, c.Description, c.URLSlug, c.Type,
			c.Color, c.Icon, c.IsActive, c.CreatedOn, c.UpdatedOn,
		); err != nil {
			failed++
			log.Warn("Skipping category that failed to insert",
				"category_code", c.Code,
				"error", err,
			)
			if _, rbErr := tx.Exec(ctx, "ROLLBACK TO SAVEPOINT insert_row"); rbErr != nil {
				return nil, fmt.Errorf("rolling back to savepoint: %w", rbErr)
			}
			continue
		}
		if _, err := tx.Exec(ctx, "RELEASE SAVEPOINT insert_row"); err != nil {
			return nil, fmt.Errorf("releasing savepoint: %w", err)
		}
		row, err := fetchByID(ctx, tx, c.ID)
		if err != nil {
			failed++
			log.Warn("Failed to read back inserted category",
				"category_id", c.ID,
				"error", err,
			)
			continue
		}
		inserted = append(inserted, *row)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	committed = true
	log.Info("Bulk insert completed",
		"requested", len(categories),
		"inserted", len(inserted),
		"failed", failed,
	)
	return inserted, nil
}

// Upsert inserts the category or, on primary-key conflict, overwrites its
// mutable fields while preserving id and created_on. The insert-vs-update
// classification comes from a pre-write existence check and feeds a log field
// only — affected-row-count conventions differ between engines and are never
// used for control flow.
func (r *postgresRepository) Upsert(ctx context.Context, c *Category) (*Category, error) {
	existing, err := r.FindByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	operation := "insert"
	if existing != nil {
		operation = "update"
	}
	if _, err := r.db.Exec(ctx, upsertQuery,
		c.ID, c.Code, c.Name, c.Description, c.URLSlug, c.Type,
		c.Color, c.Icon, c.IsActive, c.CreatedOn, c.UpdatedOn,
	); err != nil {
		return nil, fmt.Errorf("upserting category %s: %w", c.Code, err)
	}
	row, err := fetchByID(ctx, r.db, c.ID)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("Category upserted",
		"category_id", row.ID,
		"operation", operation,
	)
	return row, nil
}
