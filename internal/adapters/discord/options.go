package discord

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type commandOptions map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) commandOptions {
	m := make(commandOptions, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (o commandOptions) str(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

func (o commandOptions) number(name string) *float64 {
	opt, ok := o[name]
	if !ok {
		return nil
	}
	var n float64
	switch opt.Type {
	case discordgo.ApplicationCommandOptionNumber:
		n = opt.FloatValue()
	case discordgo.ApplicationCommandOptionInteger:
		n = float64(opt.IntValue())
	default:
		return nil
	}
	return &n
}

func (o commandOptions) flag(name string) bool {
	opt, ok := o[name]
	return ok && opt.Type == discordgo.ApplicationCommandOptionBoolean && opt.BoolValue()
}

// parseParams reads "name=value, other=2" into interpolation parameters.
// Numeric values become float64 so plural selection can use them. Pieces
// without a name are skipped.
func parseParams(raw string) map[string]any {
	params := map[string]any{}
	for _, piece := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(piece, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			params[name] = n
			continue
		}
		params[name] = value
	}
	return params
}
