package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ArgsSeparator splits the args option of a slash command.
const ArgsSeparator = "|"

// StringOptions returns the string values of the given options by name.
func StringOptions(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	values := make(map[string]string, len(options))
	for _, opt := range options {
		if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		values[opt.Name] = strings.TrimSpace(opt.StringValue())
	}
	return values
}

// SplitArgs splits raw on ArgsSeparator into positional message arguments.
// Each argument is trimmed; an empty raw yields no arguments.
func SplitArgs(raw string) []any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ArgsSeparator)
	args := make([]any, len(parts))
	for i, p := range parts {
		args[i] = strings.TrimSpace(p)
	}
	return args
}
