package entities_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"smartz/internal/domain/entities"
)

func testContract(t *testing.T) *entities.Contract {
	t.Helper()
	c, err := entities.NewContract(entities.ContractDefinition{
		Name:   "test",
		Bundle: "TestMessages",
		Fields: []entities.FieldDefinition{
			{Name: "getCode"},
			{Name: "getDescription", Optional: true},
		},
	})
	require.NoError(t, err)
	return c
}

func TestResolvedMessage(t *testing.T) {
	c := testContract(t)

	m, err := entities.NewResolvedMessage(c, "TEST_KEY1", language.Chinese, map[string]string{
		"getCode": "SMRTST00000I",
	})
	require.NoError(t, err)
	require.Equal(t, "TEST_KEY1", m.Key())
	require.Equal(t, language.Chinese, m.Locale())
	require.Same(t, c, m.Contract())

	code, ok := m.Get("getCode")
	require.True(t, ok)
	require.Equal(t, "SMRTST00000I", code)

	desc, ok := m.Get("getDescription")
	require.False(t, ok)
	require.Empty(t, desc)
	require.Empty(t, m.Text("getDescription"))

	require.Equal(t, map[string]string{"code": "SMRTST00000I"}, m.Map())

	fields := m.Fields()
	require.Len(t, fields, 2)
	require.True(t, fields[0].Present)
	require.Equal(t, "code", fields[0].Property)
	require.False(t, fields[1].Present)
}

func TestResolvedMessageUndeclaredFieldPanics(t *testing.T) {
	c := testContract(t)
	m, err := entities.NewResolvedMessage(c, "TEST_KEY1", language.Und, nil)
	require.NoError(t, err)

	require.Panics(t, func() { m.Get("getState") })
	require.Panics(t, func() { m.Text("code") })
}

func TestNewResolvedMessageRejectsUndeclaredField(t *testing.T) {
	c := testContract(t)
	_, err := entities.NewResolvedMessage(c, "TEST_KEY1", language.Und, map[string]string{"getState": "Texas"})
	require.Error(t, err)
}

func TestKeys(t *testing.T) {
	var k entities.MessageKey = entities.Key("TEST_KEY1")
	require.Equal(t, "TEST_KEY1", k.MessageKey())
	_, enhanced := k.(entities.EnhancedMessageKey)
	require.False(t, enhanced)

	args := []any{"are", "strings", "this"}
	ek := entities.Enhance("ENHANCED_TEST_KEY2", args...)
	args[0] = "mutated"
	require.Equal(t, "ENHANCED_TEST_KEY2", ek.MessageKey())
	require.Equal(t, []any{"are", "strings", "this"}, ek.Context())

	require.Empty(t, entities.Enhance("K").Context())
}
