package discord

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"smartz/internal/application"
	"smartz/internal/domain/entities"
	"smartz/internal/infrastructure/i18n"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	registry := application.NewContractRegistry()
	registry.MustRegister(entities.ContractDefinition{
		Name:   "TestMessage",
		Bundle: "TestMessages",
		Fields: []entities.FieldDefinition{{Name: "getCode"}, {Name: "getDescription"}},
	})

	store := i18n.NewStore(i18n.NewFSSource(fstest.MapFS{
		"TestMessages.toml": {Data: []byte(
			"TEST_KEY1_code = \"SMRTST00000I\"\n" +
				"TEST_KEY1_description = \"This is a test!\"\n" +
				"ENHANCED_TEST_KEY1_code = \"SMRTST00001I\"\n" +
				"ENHANCED_TEST_KEY1_description = \"Over {0}!\"\n")},
		"TestMessages.zh.toml": {Data: []byte(
			"TEST_KEY1_code = \"SMRCHN00000I\"\n")},
	}))

	messages := application.NewMessageService(store, registry, nil)
	return NewHandler(messages, i18n.NewTranslator("en", nil), "en", nil)
}

func stringOpts(kv ...string) []*discordgo.ApplicationCommandInteractionDataOption {
	var out []*discordgo.ApplicationCommandInteractionDataOption
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  kv[i],
			Type:  discordgo.ApplicationCommandOptionString,
			Value: kv[i+1],
		})
	}
	return out
}

func TestMessageResponse(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	testCases := []struct {
		name              string
		options           []*discordgo.ApplicationCommandInteractionDataOption
		interactionLocale string
		code              string
		description       string
		errContent        string
	}{
		{
			name:        "base table",
			options:     stringOpts(optContract, "TestMessage", optKey, "TEST_KEY1"),
			code:        "SMRTST00000I",
			description: "This is a test!",
		},
		{
			name:              "interaction locale",
			options:           stringOpts(optContract, "TestMessage", optKey, "TEST_KEY1"),
			interactionLocale: "zh-CN",
			code:              "SMRCHN00000I",
			description:       "This is a test!",
		},
		{
			name:              "locale option wins over the interaction locale",
			options:           stringOpts(optContract, "TestMessage", optKey, "TEST_KEY1", optLocale, "en"),
			interactionLocale: "zh-CN",
			code:              "SMRTST00000I",
			description:       "This is a test!",
		},
		{
			name:        "args make an enhanced key",
			options:     stringOpts(optContract, "TestMessage", optKey, "ENHANCED_TEST_KEY1", optArgs, "9000"),
			code:        "SMRTST00001I",
			description: "Over 9000!",
		},
		{
			name:       "unknown contract",
			options:    stringOpts(optContract, "Reckless", optKey, "TEST_KEY1"),
			errContent: "Unknown message type Reckless.",
		},
		{
			name:       "missing resource",
			options:    stringOpts(optContract, "TestMessage", optKey, "NOPE"),
			errContent: "No text is available for NOPE_code in this language.",
		},
		{
			name:       "invalid locale option",
			options:    stringOpts(optContract, "TestMessage", optKey, "TEST_KEY1", optLocale, "not a locale!"),
			errContent: "not a locale! is not a valid locale.",
		},
		{
			name:              "errors use the interaction language",
			options:           stringOpts(optContract, "TestMessage", optKey, ""),
			interactionLocale: "zh-CN",
			errContent:        "需要消息键。",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := h.messageResponse(ctx, tc.options, tc.interactionLocale)

			if tc.errContent != "" {
				require.Equal(t, tc.errContent, data.Content)
				require.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
				require.Empty(t, data.Embeds)
				return
			}

			require.Empty(t, data.Content)
			require.Len(t, data.Embeds, 1)
			fields := data.Embeds[0].Fields
			require.Len(t, fields, 2)
			require.Equal(t, tc.code, fields[0].Value)
			require.Equal(t, tc.description, fields[1].Value)
		})
	}
}

func TestMessageCommand(t *testing.T) {
	cmd := newTestHandler(t).MessageCommand()

	require.Equal(t, messageCommandName, cmd.Name)
	require.Equal(t, "Show a localized message", cmd.Description)
	require.Equal(t, "显示本地化消息", (*cmd.DescriptionLocalizations)[discordgo.ChineseCN])

	require.Len(t, cmd.Options, 4)
	contract := cmd.Options[0]
	require.Equal(t, optContract, contract.Name)
	require.True(t, contract.Required)
	require.Len(t, contract.Choices, 1)
	require.Equal(t, "TestMessage", contract.Choices[0].Value)

	require.False(t, cmd.Options[2].Required)
	require.Equal(t, "Arguments, separated by |", cmd.Options[2].Description)
}
