package input

import "localebot/internal/domain/entities"

// TranslationUseCase renders user-facing strings for one current locale.
type TranslationUseCase interface {
	Translate(scope string, opts ...entities.Options) string
	MessageFormat(key string, params map[string]any) string
	ToHumanSize(n float64) string
	CurrentLocale() string
	// ForLocale returns the same translator with another current locale.
	ForLocale(locale string) TranslationUseCase
	// MatchLocale maps a user supplied locale to the closest bundle locale.
	MatchLocale(code string) string
}
