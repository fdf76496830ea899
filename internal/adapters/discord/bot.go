package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"localebot/internal/config"
	"localebot/internal/logger"
	"localebot/internal/ports/input"
)

// Bot is the Discord adapter.
type Bot struct {
	session      *discordgo.Session
	guildID      string
	handler      *Handler
	translations input.TranslationUseCase
	logger       *slog.Logger
}

// NewBot creates a Bot and wires the use cases into the interaction handler.
func NewBot(
	cfg *config.Config,
	translations input.TranslationUseCase,
	extras input.ExtrasUseCase,
	log *slog.Logger,
) (*Bot, error) {
	if log == nil {
		log = logger.NewNope()
	}
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session:      s,
		guildID:      cfg.GuildID,
		handler:      NewHandler(translations, extras, cfg.Timezone, log),
		translations: translations,
		logger:       log,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case cmdTranslate:
			b.handler.HandleTranslate(s, i)
		case cmdMessageFormat:
			b.handler.HandleMessageFormat(s, i)
		case cmdExtra:
			b.handler.HandleExtra(s, i)
		case cmdExtras:
			b.handler.HandleListExtras(s, i)
		case cmdTime:
			b.handler.HandleTime(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if strings.HasPrefix(i.ModalSubmitData().CustomID, extraModalPrefix) {
			b.handler.HandleExtraModalSubmit(s, i)
		}
	}
}

// Start registers the commands and runs the bot until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	commands := commandDefinitions(b.translations)
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, commands); err != nil {
		b.logger.Warn("discord: register commands", slog.Any("error", err))
	}

	b.logger.Info("discord: bot online",
		slog.String("user", b.session.State.User.Username),
		slog.Int("commands", len(commands)),
		slog.String("guild", b.guildID))
	<-ctx.Done()
	b.logger.Info("discord: shutting down")
	return nil
}
