package discord

import (
	"github.com/bwmarrin/discordgo"

	"localebot/internal/ports/input"
	"localebot/pkg/plural"
)

const (
	cmdTranslate     = "t"
	cmdMessageFormat = "mf"
	cmdExtra         = "extra"
	cmdExtras        = "extras"
	cmdTime          = "time"

	optKey    = "key"
	optCount  = "count"
	optParams = "params"
	optValue  = "value"
	optZone   = "zone"
	optLocale = "locale"
	optRemove = "remove"
)

// Discord locales offered command descriptions when the bundle has their language.
var discordLocales = []discordgo.Locale{
	discordgo.Finnish,
	discordgo.EnglishUS,
	discordgo.EnglishGB,
	discordgo.Swedish,
	discordgo.German,
	discordgo.French,
}

// commandDefinitions builds the slash commands. Descriptions come from
// bot.commands.* and bot.options.* in the bundle; tr's current locale is the
// default description.
func commandDefinitions(tr input.TranslationUseCase) []*discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)

	opt := func(typ discordgo.ApplicationCommandOptionType, name string, required bool) *discordgo.ApplicationCommandOption {
		desc, loc := describe(tr, "bot.options."+name)
		return &discordgo.ApplicationCommandOption{
			Type:                     typ,
			Name:                     name,
			Description:              desc,
			DescriptionLocalizations: loc,
			Required:                 required,
		}
	}
	cmd := func(name string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommand {
		desc, loc := describe(tr, "bot.commands."+name)
		return &discordgo.ApplicationCommand{
			Name:                     name,
			Description:              desc,
			DescriptionLocalizations: &loc,
			Options:                  options,
		}
	}

	extra := cmd(cmdExtra,
		opt(discordgo.ApplicationCommandOptionString, optKey, true),
		opt(discordgo.ApplicationCommandOptionString, optValue, false),
		opt(discordgo.ApplicationCommandOptionString, optLocale, false),
		opt(discordgo.ApplicationCommandOptionBoolean, optRemove, false),
	)
	extra.DefaultMemberPermissions = &adminOnly

	return []*discordgo.ApplicationCommand{
		cmd(cmdTranslate,
			opt(discordgo.ApplicationCommandOptionString, optKey, true),
			opt(discordgo.ApplicationCommandOptionNumber, optCount, false),
			opt(discordgo.ApplicationCommandOptionString, optParams, false),
			opt(discordgo.ApplicationCommandOptionString, optLocale, false),
		),
		cmd(cmdMessageFormat,
			opt(discordgo.ApplicationCommandOptionString, optKey, true),
			opt(discordgo.ApplicationCommandOptionString, optParams, false),
			opt(discordgo.ApplicationCommandOptionString, optLocale, false),
		),
		extra,
		cmd(cmdExtras, opt(discordgo.ApplicationCommandOptionString, optLocale, false)),
		cmd(cmdTime, opt(discordgo.ApplicationCommandOptionString, optZone, false)),
	}
}

// describe returns the default description of scope and its translations for
// every Discord locale whose language the bundle carries.
func describe(tr input.TranslationUseCase, scope string) (string, map[discordgo.Locale]string) {
	loc := make(map[discordgo.Locale]string)
	for _, dl := range discordLocales {
		locale := tr.MatchLocale(string(dl))
		if plural.Base(locale) != plural.Base(string(dl)) {
			continue
		}
		loc[dl] = truncate(tr.ForLocale(locale).Translate(scope), maxDescription)
	}
	return truncate(tr.Translate(scope), maxDescription), loc
}

const maxDescription = 100

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
