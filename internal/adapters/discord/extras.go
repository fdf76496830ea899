package discord

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"localebot/internal/domain"
	"localebot/internal/domain/entities"
	"localebot/internal/ports/input"
	"localebot/pkg/datefmt"
	pkgdiscord "localebot/pkg/discord"
)

const (
	extraModalPrefix = "extra_modal:"
	extraValueInput  = "value"
	// Discord limits
	maxCustomID   = 100
	maxModalTitle = 45
	maxInputValue = 4000
)

// HandleExtra handles /extra: it stores, removes or opens the editor for an
// extra. Only administrators may change extras.
func (h *Handler) HandleExtra(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := h.context(i)
	tr := h.translatorFor(i)
	if !isAdministrator(i) {
		h.fail(ctx, s, i, tr, domain.ErrNotAdministrator)
		return
	}
	opts := optionMap(i.ApplicationCommandData().Options)
	locale := extraLocale(tr, opts.str(optLocale))
	key := opts.str(optKey)

	switch {
	case opts.flag(optRemove):
		h.removeExtra(ctx, s, i, tr, locale, key)
	case opts.str(optValue) != "":
		h.saveExtra(ctx, s, i, tr, locale, key, opts.str(optValue))
	default:
		if strings.TrimSpace(key) == "" {
			h.fail(ctx, s, i, tr, domain.ErrEmptyKey)
			return
		}
		if err := respondModal(s, i.Interaction, extraModal(tr, locale, key)); err != nil {
			h.logger.ErrorContext(ctx, "discord: open extra modal", "error", err)
		}
	}
}

// HandleExtraModalSubmit stores the value typed into the extra editor.
func (h *Handler) HandleExtraModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := h.context(i)
	tr := h.translatorFor(i)
	if !isAdministrator(i) {
		h.fail(ctx, s, i, tr, domain.ErrNotAdministrator)
		return
	}
	data := i.ModalSubmitData()
	locale, key, ok := parseExtraModalID(data.CustomID)
	if !ok {
		h.fail(ctx, s, i, tr, domain.ErrEmptyKey)
		return
	}
	h.saveExtra(ctx, s, i, tr, locale, key, pkgdiscord.ExtractTextInput(data, extraValueInput))
}

// HandleListExtras handles /extras.
func (h *Handler) HandleListExtras(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := h.context(i)
	tr := h.translatorFor(i)
	opts := optionMap(i.ApplicationCommandData().Options)

	locale := ""
	if l := opts.str(optLocale); l != "" {
		locale = extraLocale(tr, l)
	}
	extras, err := h.extras.List(ctx, locale)
	if err != nil {
		h.fail(ctx, s, i, tr, err)
		return
	}
	if err := respondEmbed(s, i.Interaction, extrasEmbed(tr, extras)); err != nil {
		h.logger.ErrorContext(ctx, "discord: respond", "error", err)
	}
}

func (h *Handler) saveExtra(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, tr input.TranslationUseCase, locale, key, value string) {
	if err := h.extras.Set(ctx, locale, key, value, resolveDisplayName(i.Member)); err != nil {
		h.fail(ctx, s, i, tr, err)
		return
	}
	h.logger.InfoContext(ctx, "discord: extra saved", "locale", locale, "key", key)
	h.reply(ctx, s, i, tr.Translate("bot.extra_saved", entities.WithParams(map[string]any{
		"key": strings.TrimSpace(key), "locale": locale,
	})))
}

func (h *Handler) removeExtra(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, tr input.TranslationUseCase, locale, key string) {
	if err := h.extras.Remove(ctx, locale, key); err != nil {
		h.fail(ctx, s, i, tr, err)
		return
	}
	h.logger.InfoContext(ctx, "discord: extra removed", "locale", locale, "key", key)
	h.reply(ctx, s, i, tr.Translate("bot.extra_removed", entities.WithParams(map[string]any{
		"key": strings.TrimSpace(key), "locale": locale,
	})))
}

// extraLocale keeps an explicit locale as typed (minus region separators) so
// the service can reject locales missing from the bundle.
func extraLocale(tr input.TranslationUseCase, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return tr.CurrentLocale()
	}
	return strings.ReplaceAll(raw, "-", "_")
}

func extraModalID(locale, key string) string {
	id := extraModalPrefix + locale + ":" + key
	if len(id) > maxCustomID {
		id = id[:maxCustomID]
		for !utf8.ValidString(id) {
			id = id[:len(id)-1]
		}
	}
	return id
}

func parseExtraModalID(id string) (locale, key string, ok bool) {
	rest, ok := strings.CutPrefix(id, extraModalPrefix)
	if !ok {
		return "", "", false
	}
	locale, key, ok = strings.Cut(rest, ":")
	if !ok || locale == "" || strings.TrimSpace(key) == "" {
		return "", "", false
	}
	return locale, key, true
}

// extraModal prefills the editor with the current rendering of key.
func extraModal(tr input.TranslationUseCase, locale, key string) *discordgo.InteractionResponseData {
	key = strings.TrimSpace(key)
	title := tr.Translate("bot.modal_title", entities.WithParams(map[string]any{"key": key}))
	if utf8.RuneCountInString(title) > maxModalTitle {
		title = string([]rune(title)[:maxModalTitle-1]) + "…"
	}

	current := tr.ForLocale(locale).Translate(key)
	if strings.HasPrefix(current, "[") && strings.HasSuffix(current, "]") {
		current = ""
	}
	if utf8.RuneCountInString(current) > maxInputValue {
		current = string([]rune(current)[:maxInputValue])
	}

	return &discordgo.InteractionResponseData{
		CustomID: extraModalID(locale, key),
		Title:    title,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:  extraValueInput,
					Label:     tr.Translate("bot.modal_label"),
					Style:     discordgo.TextInputParagraph,
					Value:     current,
					Required:  true,
					MaxLength: maxInputValue,
				},
			}},
		},
	}
}

func extrasEmbed(tr input.TranslationUseCase, extras []entities.Extra) *discordgo.MessageEmbed {
	title := tr.Translate("bot.extras_empty")
	if len(extras) > 0 {
		title = tr.Translate("bot.extras_count", entities.WithCount(float64(len(extras))))
	}

	size := 0
	for _, e := range extras {
		size += len(e.Value)
	}
	footer := tr.Translate("bot.extras_size", entities.WithParams(map[string]any{
		"size": tr.ToHumanSize(float64(size)),
	}))

	updated := func(e entities.Extra, when string) string {
		by := e.UpdatedBy
		if by == "" {
			by = "-"
		}
		return tr.Translate("bot.extra_updated", entities.WithParams(map[string]any{"when": when, "by": by}))
	}
	return pkgdiscord.BuildExtrasEmbed(title, extras, footer, datefmt.Get(tr.CurrentLocale()), updated)
}

