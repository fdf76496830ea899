package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"localebot/internal/application"
	"localebot/internal/domain"
	"localebot/internal/domain/entities"
	"localebot/internal/ports/input"
)

// HandleTranslate handles /t.
func (h *Handler) HandleTranslate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := h.context(i)
	tr := h.translatorFor(i)
	opts := optionMap(i.ApplicationCommandData().Options)

	if locale := opts.str(optLocale); locale != "" {
		tr = tr.ForLocale(tr.MatchLocale(locale))
	}
	content, err := translateReply(tr, opts.str(optKey), opts.number(optCount), opts.str(optParams))
	if err != nil {
		h.fail(ctx, s, i, tr, err)
		return
	}
	h.reply(ctx, s, i, content)
}

// HandleMessageFormat handles /mf.
func (h *Handler) HandleMessageFormat(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := h.context(i)
	tr := h.translatorFor(i)
	opts := optionMap(i.ApplicationCommandData().Options)

	if locale := opts.str(optLocale); locale != "" {
		tr = tr.ForLocale(tr.MatchLocale(locale))
	}
	content, err := messageFormatReply(tr, opts.str(optKey), opts.str(optParams))
	if err != nil {
		h.fail(ctx, s, i, tr, err)
		return
	}
	h.reply(ctx, s, i, content)
}

func translateReply(tr input.TranslationUseCase, key string, count *float64, rawParams string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", domain.ErrEmptyKey
	}
	value := tr.Translate(key, entities.Options{Params: parseParams(rawParams), Count: count})
	return header(tr, key) + "\n" + codeBlock(value), nil
}

// messageFormatReply accepts the key with or without the _MF suffix.
func messageFormatReply(tr input.TranslationUseCase, key, rawParams string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", domain.ErrEmptyKey
	}
	if !strings.HasSuffix(key, application.MessageSuffix) {
		key += application.MessageSuffix
	}
	value := tr.MessageFormat(key, parseParams(rawParams))
	return header(tr, key) + "\n" + codeBlock(value), nil
}

func header(tr input.TranslationUseCase, key string) string {
	return tr.Translate("bot.translated", entities.WithParams(map[string]any{"key": key}))
}

func codeBlock(s string) string {
	return "```\n" + strings.ReplaceAll(s, "```", "`\u200b``") + "\n```"
}
