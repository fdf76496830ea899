package output

import (
	"context"

	"localebot/internal/domain/entities"
)

type ExtraRepository interface {
	List(ctx context.Context) ([]entities.Extra, error)
	ListByLocale(ctx context.Context, locale string) ([]entities.Extra, error)
	Upsert(ctx context.Context, extra *entities.Extra) error
	Delete(ctx context.Context, locale, key string) error
}
