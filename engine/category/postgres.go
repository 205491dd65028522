package category

import (
	"context"
	"fmt"

	"github.com/IanTeda/personal-ledger/engine/core"
	"github.com/IanTeda/personal-ledger/engine/infra/store"
	"github.com/IanTeda/personal-ledger/pkg/logger"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

const tableName = "categories"

// columns is the canonical column order for the categories table.
var columns = []string{
	"id",
	"code",
	"name",
	"description",
	"url_slug",
	"category_type",
	"color",
	"icon",
	"is_active",
	"created_on",
	"updated_on",
}

// postgresRepository implements Repository against PostgreSQL. It references
// the shared connection pool; it never owns it.
type postgresRepository struct {
	db store.DBInterface
}

// NewPostgresRepository creates a new PostgreSQL category repository.
func NewPostgresRepository(db store.DBInterface) Repository {
	return &postgresRepository{db: db}
}

func selectBuilder() squirrel.SelectBuilder {
	return squirrel.Select(columns...).
		From(tableName).
		PlaceholderFormat(squirrel.Dollar)
}

// fetchByID reads back the canonical stored row after a write. q may be the
// pool or an open transaction.
func fetchByID(ctx context.Context, q pgxscan.Querier, id core.ID) (*Category, error) {
	query, args, err := selectBuilder().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var c Category
	if err := pgxscan.Get(ctx, q, &c, query, args...); err != nil {
		return nil, fmt.Errorf("reading back category %s: %w", id.String(), err)
	}
	return &c, nil
}

// withTransaction runs fn inside a transaction, committing on success and
// rolling back on error or panic.
func (r *postgresRepository) withTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.FromContext(ctx).Warn("Transaction rollback failed", "error", rbErr)
			}
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.FromContext(ctx).Warn("Transaction rollback failed", "error", rbErr)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()
	err = fn(tx)
	return err
}
