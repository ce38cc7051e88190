package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"smartz/internal/domain"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEFAULT_LOCALE", "en")
	t.Setenv("BUNDLE_DIR", "testdata/bundles")
	t.Setenv("CONTRACTS_FILE", "testdata/contracts.toml")
	t.Setenv("DATABASE_URL", "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resolveLocale, resolveArgs, resolveJSON = "", nil, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	setTestEnv(t)

	out, err := execute(t, "resolve", "TestMessage", "TEST_KEY1")
	require.NoError(t, err)
	require.Equal(t, "code: SMRTST00000I\ndescription: This is a test!\n", out)

	out, err = execute(t, "resolve", "TestMessage", "TEST_KEY1", "--locale", "zh-TW")
	require.NoError(t, err)
	require.Equal(t, "code: SMRCHN00000I\ndescription: We successfully used the Chinese locale!\n", out)
}

func TestResolveCommandJSON(t *testing.T) {
	setTestEnv(t)

	out, err := execute(t, "resolve", "TestMessage", "ENHANCED_TEST_KEY1", "--arg", "9000", "--json")
	require.NoError(t, err)

	var got resolvedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, resolvedJSON{
		Contract: "TestMessage",
		Key:      "ENHANCED_TEST_KEY1",
		Locale:   "und",
		Fields: map[string]string{
			"code":        "SMRTST00001I",
			"description": "Over 9000!",
			"city":        "9000",
		},
	}, got)
}

func TestResolveCommandErrors(t *testing.T) {
	setTestEnv(t)

	_, err := execute(t, "resolve", "TestMessage", "NOPE")
	require.ErrorIs(t, err, domain.ErrMissingResource)
	require.ErrorContains(t, err, "missing_resource")

	_, err = execute(t, "resolve", "Reckless", "TEST_KEY1")
	require.ErrorIs(t, err, domain.ErrUnknownContract)

	_, err = execute(t, "resolve", "TestMessage", "TEST_KEY1", "--locale", "not a locale!")
	require.ErrorIs(t, err, domain.ErrInvalidLocale)
}

func TestContractsCommand(t *testing.T) {
	setTestEnv(t)

	out, err := execute(t, "contracts")
	require.NoError(t, err)
	require.Contains(t, out, "CONTRACT")
	require.Regexp(t, `TestMessage\s+TestMessages\s+getCode\s+_code\s+true`, out)
	require.Regexp(t, `TestMessage\s+TestMessages\s+getCity\s+_city\s+false`, out)
}

func TestDatabaseCommandsNeedDatabaseURL(t *testing.T) {
	setTestEnv(t)

	_, err := execute(t, "import", "TestMessages")
	require.ErrorContains(t, err, "DATABASE_URL")

	_, err = execute(t, "migrate")
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestParseLocale(t *testing.T) {
	for _, raw := range []string{"", "root"} {
		tag, err := parseLocale(raw)
		require.NoError(t, err)
		require.Equal(t, language.Und, tag)
	}

	tag, err := parseLocale("fr-CA")
	require.NoError(t, err)
	require.Equal(t, language.MustParse("fr-CA"), tag)

	_, err = parseLocale("??")
	require.ErrorIs(t, err, domain.ErrInvalidLocale)
}
