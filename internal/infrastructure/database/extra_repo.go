package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"localebot/internal/domain"
	"localebot/internal/domain/entities"
	"localebot/internal/ports/output"
)

var _ output.ExtraRepository = (*ExtraRepository)(nil)

// DBTX is the subset of *pgxpool.Pool and pgx.Tx the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const extraColumns = `id, locale, key, value, updated_by, created_at, updated_at`

const (
	listExtras = `SELECT ` + extraColumns + `
FROM translation_extras
ORDER BY locale, key`

	listExtrasByLocale = `SELECT ` + extraColumns + `
FROM translation_extras
WHERE locale = $1
ORDER BY key`

	upsertExtra = `INSERT INTO translation_extras (locale, key, value, updated_by)
VALUES ($1, $2, $3, $4)
ON CONFLICT (locale, key) DO UPDATE
SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = NOW()
RETURNING ` + extraColumns

	deleteExtra = `DELETE FROM translation_extras WHERE locale = $1 AND key = $2`
)

type ExtraRepository struct {
	db DBTX
}

func NewExtraRepository(db DBTX) *ExtraRepository {
	return &ExtraRepository{db: db}
}

func (r *ExtraRepository) List(ctx context.Context) ([]entities.Extra, error) {
	rows, err := r.db.Query(ctx, listExtras)
	if err != nil {
		return nil, fmt.Errorf("list extras: %w", err)
	}
	return collectExtras(rows)
}

func (r *ExtraRepository) ListByLocale(ctx context.Context, locale string) ([]entities.Extra, error) {
	rows, err := r.db.Query(ctx, listExtrasByLocale, locale)
	if err != nil {
		return nil, fmt.Errorf("list extras for %s: %w", locale, err)
	}
	return collectExtras(rows)
}

// Upsert inserts the extra or replaces the value stored for its locale and
// key. ID and timestamps are filled from the stored row.
func (r *ExtraRepository) Upsert(ctx context.Context, e *entities.Extra) error {
	var row extraRow
	err := r.db.QueryRow(ctx, upsertExtra, e.Locale, e.Key, e.Value, textOrNull(e.UpdatedBy)).
		Scan(row.scanTargets()...)
	if err != nil {
		return fmt.Errorf("upsert extra %s.%s: %w", e.Locale, e.Key, err)
	}
	*e = extraToDomain(row)
	return nil
}

func (r *ExtraRepository) Delete(ctx context.Context, locale, key string) error {
	tag, err := r.db.Exec(ctx, deleteExtra, locale, key)
	if err != nil {
		return fmt.Errorf("delete extra %s.%s: %w", locale, key, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s.%s", domain.ErrExtraNotFound, locale, key)
	}
	return nil
}

func collectExtras(rows pgx.Rows) ([]entities.Extra, error) {
	defer rows.Close()
	var out []entities.Extra
	for rows.Next() {
		var row extraRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("scan extra: %w", err)
		}
		out = append(out, extraToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate extras: %w", err)
	}
	return out, nil
}
