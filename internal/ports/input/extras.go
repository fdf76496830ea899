package input

import (
	"context"

	"localebot/internal/domain/entities"
)

type ExtrasUseCase interface {
	Set(ctx context.Context, locale, key, value, updatedBy string) error
	Remove(ctx context.Context, locale, key string) error
	List(ctx context.Context, locale string) ([]entities.Extra, error)
	Reload(ctx context.Context) error
}
