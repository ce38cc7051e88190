package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"smartz/internal/infrastructure/i18n"
)

func TestChain(t *testing.T) {
	mustParse := language.MustParse

	testCases := []struct {
		name     string
		locale   language.Tag
		def      language.Tag
		expected []language.Tag
	}{
		{
			name:     "language and region",
			locale:   mustParse("zh-TW"),
			def:      language.English,
			expected: []language.Tag{mustParse("zh-TW"), language.Chinese, language.English, language.Und},
		},
		{
			name:     "language only does not add an inferred region",
			locale:   language.Chinese,
			def:      mustParse("en-US"),
			expected: []language.Tag{language.Chinese, mustParse("en-US"), language.English, language.Und},
		},
		{
			name:     "script is dropped",
			locale:   mustParse("zh-Hant-TW"),
			def:      language.English,
			expected: []language.Tag{mustParse("zh-TW"), language.Chinese, language.English, language.Und},
		},
		{
			name:     "requested equals default",
			locale:   language.English,
			def:      language.English,
			expected: []language.Tag{language.English, language.Und},
		},
		{
			name:     "root locale uses the default chain",
			locale:   language.Und,
			def:      language.French,
			expected: []language.Tag{language.French, language.Und},
		},
		{
			name:     "root default",
			locale:   language.German,
			def:      language.Und,
			expected: []language.Tag{language.German, language.Und},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, i18n.Chain(tc.locale, tc.def))
		})
	}
}
