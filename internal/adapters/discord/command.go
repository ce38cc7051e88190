package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"

	"smartz/internal/domain"
	"smartz/internal/domain/entities"
	pkgdiscord "smartz/pkg/discord"
)

const (
	messageCommandName = "message"

	optContract = "contract"
	optKey      = "key"
	optArgs     = "args"
	optLocale   = "locale"

	// Discord caps the choices of one option.
	maxChoices = 25

	resolveTimeout = 5 * time.Second
)

// commandLocales are the Discord locales the command descriptions are
// translated into, with the translation locale to use.
var commandLocales = map[discordgo.Locale]string{
	discordgo.French:    "fr",
	discordgo.ChineseCN: "zh",
	discordgo.ChineseTW: "zh",
}

// MessageCommand describes /message. Registered contracts become the choices
// of the contract option.
func (h *Handler) MessageCommand() *discordgo.ApplicationCommand {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, c := range h.messages.Contracts() {
		if len(choices) == maxChoices {
			h.logger.Warn("discord: too many contracts for command choices", "max", maxChoices)
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: c.Name(), Value: c.Name()})
	}

	descriptions := h.localizations("command.message.description")
	return &discordgo.ApplicationCommand{
		Name:                     messageCommandName,
		Description:              h.tr.T(h.defaultLocale, "command.message.description", nil),
		DescriptionLocalizations: &descriptions,
		Options: []*discordgo.ApplicationCommandOption{
			h.stringOption(optContract, true, choices),
			h.stringOption(optKey, true, nil),
			h.stringOption(optArgs, false, nil),
			h.stringOption(optLocale, false, nil),
		},
	}
}

func (h *Handler) stringOption(name string, required bool, choices []*discordgo.ApplicationCommandOptionChoice) *discordgo.ApplicationCommandOption {
	key := "command.message.option." + name
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionString,
		Name:                     name,
		Description:              h.tr.T(h.defaultLocale, key, nil),
		DescriptionLocalizations: h.localizations(key),
		Required:                 required,
		Choices:                  choices,
	}
}

func (h *Handler) localizations(key string) map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string, len(commandLocales))
	for discordLocale, locale := range commandLocales {
		out[discordLocale] = h.tr.T(locale, key, nil)
	}
	return out
}

// HandleMessageCommand answers /message with the resolved message as an
// embed, or an ephemeral error in the user's language.
func (h *Handler) HandleMessageCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	data := h.messageResponse(ctx, i.ApplicationCommandData().Options, string(i.Locale))
	if err := respond(s, i.Interaction, data); err != nil {
		h.logger.Error("discord: respond failed", "command", messageCommandName, "error", err)
	}
}

// messageResponse resolves the options of one /message invocation.
// interactionLocale is the Discord client locale, possibly empty.
func (h *Handler) messageResponse(ctx context.Context, options []*discordgo.ApplicationCommandInteractionDataOption, interactionLocale string) *discordgo.InteractionResponseData {
	opts := pkgdiscord.StringOptions(options)

	uiLocale := interactionLocale
	if uiLocale == "" {
		uiLocale = h.defaultLocale
	}

	locale := language.Und
	if raw := opts[optLocale]; raw != "" {
		tag, err := language.Parse(raw)
		if err != nil {
			err = fmt.Errorf("%q: %w", raw, domain.ErrInvalidLocale)
			return h.errorResponse(uiLocale, err, map[string]any{"Locale": raw})
		}
		locale = tag
	} else if tag, err := language.Parse(interactionLocale); err == nil {
		locale = tag
	}

	var key entities.MessageKey = entities.Key(opts[optKey])
	if args := pkgdiscord.SplitArgs(opts[optArgs]); len(args) > 0 {
		key = entities.Enhance(opts[optKey], args...)
	}

	msg, err := h.messages.ResolveNamed(ctx, opts[optContract], key, locale)
	if err != nil {
		return h.errorResponse(uiLocale, err, map[string]any{"Contract": opts[optContract]})
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildMessageEmbed(msg)},
	}
}

func (h *Handler) errorResponse(uiLocale string, err error, data map[string]any) *discordgo.InteractionResponseData {
	if domain.Code(err) == "" {
		h.logger.Error("discord: message command failed", "error", err)
	} else {
		h.logger.Debug("discord: message command rejected", "code", domain.Code(err), "error", err)
	}
	return &discordgo.InteractionResponseData{
		Content: strings.TrimSpace(pkgdiscord.DomainErrorMessage(h.tr, uiLocale, err, data)),
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}
