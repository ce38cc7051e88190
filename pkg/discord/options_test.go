package discord_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"smartz/pkg/discord"
)

func TestStringOptions(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "contract", Type: discordgo.ApplicationCommandOptionString, Value: "TestMessage"},
		{Name: "key", Type: discordgo.ApplicationCommandOptionString, Value: "  TEST_KEY1 "},
		{Name: "count", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		nil,
	}

	require.Equal(t, map[string]string{"contract": "TestMessage", "key": "TEST_KEY1"}, discord.StringOptions(options))
}

func TestSplitArgs(t *testing.T) {
	require.Nil(t, discord.SplitArgs(""))
	require.Nil(t, discord.SplitArgs("   "))
	require.Equal(t, []any{"9000"}, discord.SplitArgs("9000"))
	require.Equal(t, []any{"are", "strings", "this"}, discord.SplitArgs("are | strings|this"))
	require.Equal(t, []any{"a", "", "b"}, discord.SplitArgs("a||b"))
}
