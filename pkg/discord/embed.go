package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"smartz/internal/domain/entities"
)

const (
	embedColor = 0x5865F2

	// Discord rejects embed fields with an empty value or one longer than this.
	maxFieldValue = 1024
	emptyValue    = "\u200b"
)

// BuildMessageEmbed renders a resolved message: the key as the title and one
// field per present contract field, in declaration order.
func BuildMessageEmbed(msg *entities.ResolvedMessage) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(msg.Fields()))
	for _, f := range msg.Fields() {
		if !f.Present {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   f.Property,
			Value:  fieldValue(f.Text),
			Inline: utf8.RuneCountInString(f.Text) <= 24,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  msg.Key(),
		Color:  embedColor,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: footer(msg)},
	}
}

func footer(msg *entities.ResolvedMessage) string {
	locale := "root"
	if !msg.Locale().IsRoot() {
		locale = msg.Locale().String()
	}
	return fmt.Sprintf("%s · %s", msg.Contract().Name(), locale)
}

func fieldValue(text string) string {
	if text == "" {
		return emptyValue
	}
	if utf8.RuneCountInString(text) <= maxFieldValue {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxFieldValue-1]) + "…"
}
