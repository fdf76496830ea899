package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"localebot/internal/domain"
	"localebot/internal/domain/entities"
)

// fakeDB answers queries from canned rows and records the last call.
type fakeDB struct {
	rows     []extraRow
	affected int64
	err      error

	lastSQL  string
	lastArgs []any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", f.affected)), nil
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{rows: f.rows, idx: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	if f.err != nil {
		return errRow{f.err}
	}
	return &fakeRows{rows: f.rows[:1], idx: 0}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type fakeRows struct {
	rows   []extraRow
	idx    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	src := r.rows[r.idx]
	values := src.scanTargets()
	if len(dest) != len(values) {
		return errors.New("column count mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			*d = *values[i].(*int64)
		case *string:
			*d = *values[i].(*string)
		case *pgtype.Text:
			*d = *values[i].(*pgtype.Text)
		case *pgtype.Timestamptz:
			*d = *values[i].(*pgtype.Timestamptz)
		default:
			return fmt.Errorf("unsupported destination %T", d)
		}
	}
	return nil
}

func sampleRow(id int64, locale, key, value string) extraRow {
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	return extraRow{
		ID:        id,
		Locale:    locale,
		Key:       key,
		Value:     value,
		UpdatedBy: pgtype.Text{String: "admin", Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: at, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: at, Valid: true},
	}
}

func TestExtraRepositoryList(t *testing.T) {
	t.Parallel()

	db := &fakeDB{rows: []extraRow{
		sampleRow(1, "en", "custom.footer", "Footer"),
		sampleRow(2, "fi", "custom.banner", "Tervetuloa"),
	}}
	repo := NewExtraRepository(db)

	extras, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, extras, 2)
	require.Equal(t, entities.Extra{
		ID:        2,
		Locale:    "fi",
		Key:       "custom.banner",
		Value:     "Tervetuloa",
		UpdatedBy: "admin",
		CreatedAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}, extras[1])
	require.Contains(t, db.lastSQL, "ORDER BY locale, key")

	_, err = repo.ListByLocale(context.Background(), "fi")
	require.NoError(t, err)
	require.Equal(t, []any{"fi"}, db.lastArgs)
}

func TestExtraRepositoryUpsert(t *testing.T) {
	t.Parallel()

	db := &fakeDB{rows: []extraRow{sampleRow(7, "fi", "custom.banner", "Tervetuloa")}}
	repo := NewExtraRepository(db)

	e := &entities.Extra{Locale: "fi", Key: "custom.banner", Value: "Tervetuloa", UpdatedBy: "admin"}
	require.NoError(t, repo.Upsert(context.Background(), e))
	require.Equal(t, uint(7), e.ID)
	require.False(t, e.CreatedAt.IsZero())
	require.True(t, strings.HasPrefix(db.lastSQL, "INSERT INTO translation_extras"))
	require.Equal(t, "fi", db.lastArgs[0])
	require.Equal(t, pgtype.Text{String: "admin", Valid: true}, db.lastArgs[3])
}

func TestExtraRepositoryDelete(t *testing.T) {
	t.Parallel()

	db := &fakeDB{affected: 1}
	repo := NewExtraRepository(db)
	require.NoError(t, repo.Delete(context.Background(), "fi", "custom.banner"))
	require.Equal(t, []any{"fi", "custom.banner"}, db.lastArgs)

	db.affected = 0
	err := repo.Delete(context.Background(), "fi", "custom.banner")
	require.ErrorIs(t, err, domain.ErrExtraNotFound)
	require.Equal(t, "extra_not_found", domain.Code(err))
}

func TestExtraRepositoryErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	repo := NewExtraRepository(&fakeDB{err: boom})
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.ErrorIs(t, err, boom)
	_, err = repo.ListByLocale(ctx, "fi")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, repo.Upsert(ctx, &entities.Extra{Locale: "fi", Key: "a", Value: "b"}), boom)
	require.ErrorIs(t, repo.Delete(ctx, "fi", "a"), boom)
}

func TestPgtypeHelpers(t *testing.T) {
	t.Parallel()

	require.True(t, pgtypeTimestamptzToTime(pgtype.Timestamptz{}).IsZero())
	require.Equal(t, pgtype.Text{}, textOrNull(""))
	require.Equal(t, "", extraToDomain(extraRow{}).UpdatedBy)
}
