package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"localebot/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// extraRow mirrors a translation_extras row.
type extraRow struct {
	ID        int64
	Locale    string
	Key       string
	Value     string
	UpdatedBy pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (r *extraRow) scanTargets() []any {
	return []any{&r.ID, &r.Locale, &r.Key, &r.Value, &r.UpdatedBy, &r.CreatedAt, &r.UpdatedAt}
}

func extraToDomain(r extraRow) entities.Extra {
	return entities.Extra{
		ID:        uint(r.ID),
		Locale:    r.Locale,
		Key:       r.Key,
		Value:     r.Value,
		UpdatedBy: r.UpdatedBy.String,
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
