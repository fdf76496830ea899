package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"localebot/internal/domain"
	"localebot/internal/domain/entities"
	"localebot/internal/ports/input"
	pkgdiscord "localebot/pkg/discord"
	"localebot/pkg/tz"
)

// HandleTime handles /time.
func (h *Handler) HandleTime(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := h.context(i)
	tr := h.translatorFor(i)
	opts := optionMap(i.ApplicationCommandData().Options)

	zone := opts.str(optZone)
	if zone == "" {
		zone = h.timezone
	}
	content, err := timeReply(tr, zone, h.now())
	if err != nil {
		h.fail(ctx, s, i, tr, err)
		return
	}
	h.reply(ctx, s, i, content)
}

func timeReply(tr input.TranslationUseCase, zone string, now time.Time) (string, error) {
	report, err := pkgdiscord.DescribeZone(zone, now, tr.CurrentLocale())
	if err != nil {
		if errors.Is(err, tz.ErrUnknownZone) {
			return "", fmt.Errorf("%w: %w", domain.ErrUnknownTimezone, err)
		}
		return "", err
	}

	out := tr.Translate("bot.time_in_zone", entities.WithParams(map[string]any{
		"time":   report.Time,
		"zone":   report.Zone + " " + report.Abbreviation,
		"offset": report.Offset,
	}))
	if report.NextChange == "" {
		return out + "\n" + tr.Translate("bot.no_transition"), nil
	}
	return out + "\n" + tr.Translate("bot.next_transition", entities.WithParams(map[string]any{
		"when":         report.NextChange,
		"relative":     report.NextRelative,
		"abbreviation": report.NextAbbreviation,
		"offset":       report.NextOffset,
	})), nil
}
