package logger

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	guildKey ctxKey = iota
	userKey
	localeKey
)

// WithInteraction stores the Discord guild, user and locale of an
// interaction for InteractionExtractors.
func WithInteraction(ctx context.Context, guildID, userID, locale string) context.Context {
	ctx = context.WithValue(ctx, guildKey, guildID)
	ctx = context.WithValue(ctx, userKey, userID)
	return context.WithValue(ctx, localeKey, locale)
}

func stringExtractor(key ctxKey, name string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		v, ok := ctx.Value(key).(string)
		if !ok || v == "" {
			return slog.Attr{}, false
		}
		return slog.String(name, v), true
	}
}

// InteractionExtractors adds guild_id, user_id and locale when present.
func InteractionExtractors() []ContextExtractor {
	return []ContextExtractor{
		stringExtractor(guildKey, "guild_id"),
		stringExtractor(userKey, "user_id"),
		stringExtractor(localeKey, "locale"),
	}
}
