package discord

import (
	"github.com/bwmarrin/discordgo"

	"localebot/internal/domain/entities"
	"localebot/pkg/datefmt"
)

const (
	embedColor = 0x5865F2
	// Discord accepts at most 25 fields per embed.
	maxEmbedFields = 25
	maxFieldValue  = 1024
)

// BuildExtrasEmbed lists extras as embed fields, one per key. footer is shown
// below the fields; updatedLabel renders the per-field update line.
func BuildExtrasEmbed(
	title string,
	extras []entities.Extra,
	footer string,
	lf *datefmt.Locale,
	updatedLabel func(e entities.Extra, when string) string,
) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, min(len(extras), maxEmbedFields))
	for _, e := range extras {
		if len(fields) == maxEmbedFields {
			break
		}
		value := truncate(e.Value, maxFieldValue-100)
		if !e.UpdatedAt.IsZero() && updatedLabel != nil {
			value += "\n" + updatedLabel(e, lf.Strftime(e.UpdatedAt, "2 January 2006 15:04"))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  e.Locale + " · " + e.Key,
			Value: value,
		})
	}
	return &discordgo.MessageEmbed{
		Title:  title,
		Color:  embedColor,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: footer},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
