package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"localebot/internal/domain"
	"localebot/internal/domain/entities"
	"localebot/internal/logger"
	"localebot/internal/ports/input"
	"localebot/internal/ports/output"
)

var _ input.ExtrasUseCase = (*ExtrasService)(nil)

// ExtrasService keeps the extras overlay in sync with the stored extras.
type ExtrasService struct {
	repo    output.ExtraRepository
	extras  output.ExtrasStore
	locales map[string]bool
	logger  *slog.Logger
}

// NewExtrasService creates an ExtrasService. locales restricts which
// locales accept extras; empty allows any.
func NewExtrasService(
	repo output.ExtraRepository,
	extras output.ExtrasStore,
	locales []string,
	log *slog.Logger,
) *ExtrasService {
	if log == nil {
		log = logger.NewNope()
	}
	allowed := make(map[string]bool, len(locales))
	for _, l := range locales {
		allowed[l] = true
	}
	return &ExtrasService{
		repo:    repo,
		extras:  extras,
		locales: allowed,
		logger:  log,
	}
}

// Reload reads every extra and publishes them as the extras overlay.
func (s *ExtrasService) Reload(ctx context.Context) error {
	extras, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list extras: %w", err)
	}
	s.extras.SetExtras(entities.ExtrasToTree(extras))
	s.logger.DebugContext(ctx, "i18n: extras reloaded", slog.Int("count", len(extras)))
	return nil
}

// Set stores an extra and reloads the overlay.
func (s *ExtrasService) Set(ctx context.Context, locale, key, value, updatedBy string) error {
	locale, key, err := s.normalize(locale, key)
	if err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		return domain.ErrExtraValueEmpty
	}
	o := &entities.Extra{Locale: locale, Key: key, Value: value, UpdatedBy: updatedBy}
	if err := s.repo.Upsert(ctx, o); err != nil {
		return fmt.Errorf("upsert extra: %w", err)
	}
	return s.Reload(ctx)
}

// Remove deletes an extra and reloads the overlay.
func (s *ExtrasService) Remove(ctx context.Context, locale, key string) error {
	locale, key, err := s.normalize(locale, key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, locale, key); err != nil {
		return fmt.Errorf("delete extra: %w", err)
	}
	return s.Reload(ctx)
}

func (s *ExtrasService) List(ctx context.Context, locale string) ([]entities.Extra, error) {
	if locale == "" {
		return s.repo.List(ctx)
	}
	return s.repo.ListByLocale(ctx, locale)
}

// Run reloads the overlay every interval until ctx is done. Extras written
// by other processes become visible on the next tick.
func (s *ExtrasService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Reload(ctx); err != nil {
				s.logger.ErrorContext(ctx, "i18n: reload extras", slog.Any("error", err))
			}
		}
	}
}

// normalize validates locale and strips a leading root segment from key so
// extras match the paths searched in the extras overlay.
func (s *ExtrasService) normalize(locale, key string) (string, string, error) {
	locale = strings.TrimSpace(locale)
	key = strings.Trim(strings.TrimSpace(key), Separator)
	if locale == "" {
		return "", "", domain.ErrEmptyLocale
	}
	if len(s.locales) > 0 && !s.locales[locale] {
		return "", "", fmt.Errorf("%w: %s", domain.ErrUnknownLocale, locale)
	}
	key = strings.TrimPrefix(key, Root+Separator)
	if key == "" || key == Root {
		return "", "", domain.ErrEmptyKey
	}
	return locale, key, nil
}
