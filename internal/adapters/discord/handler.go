package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"localebot/internal/logger"
	"localebot/internal/ports/input"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	translations input.TranslationUseCase
	extras       input.ExtrasUseCase
	timezone     string
	now          func() time.Time
	logger       *slog.Logger
}

// NewHandler creates a Handler. timezone is used by /time when no zone is given.
func NewHandler(
	translations input.TranslationUseCase,
	extras input.ExtrasUseCase,
	timezone string,
	log *slog.Logger,
) *Handler {
	if log == nil {
		log = logger.NewNope()
	}
	return &Handler{
		translations: translations,
		extras:       extras,
		timezone:     timezone,
		now:          time.Now,
		logger:       log,
	}
}

// translatorFor picks the bundle locale closest to the user's Discord locale.
func (h *Handler) translatorFor(i *discordgo.InteractionCreate) input.TranslationUseCase {
	return h.translations.ForLocale(h.translations.MatchLocale(string(i.Locale)))
}

func (h *Handler) context(i *discordgo.InteractionCreate) context.Context {
	userID := ""
	if u := interactionUser(i); u != nil {
		userID = u.ID
	}
	return logger.WithInteraction(context.Background(), i.GuildID, userID, string(i.Locale))
}

func (h *Handler) reply(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := respondEphemeral(s, i.Interaction, content); err != nil {
		h.logger.ErrorContext(ctx, "discord: respond", slog.Any("error", err))
	}
}

func (h *Handler) fail(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, tr input.TranslationUseCase, err error) {
	h.logger.WarnContext(ctx, "discord: command failed",
		slog.String("command", commandName(i)), slog.Any("error", err))
	h.reply(ctx, s, i, errorMessage(tr, err))
}

func commandName(i *discordgo.InteractionCreate) string {
	if i.Type == discordgo.InteractionApplicationCommand {
		return i.ApplicationCommandData().Name
	}
	if i.Type == discordgo.InteractionModalSubmit {
		return i.ModalSubmitData().CustomID
	}
	return ""
}
