package capitalize

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultSmallWords(t *testing.T) {
	t.Parallel()

	words := DefaultSmallWords()
	require.Len(t, words, 19)
	require.Contains(t, words, "the")
	require.Contains(t, words, "yet")

	// Callers get their own copy.
	words[0] = "changed"
	require.Equal(t, "a", DefaultSmallWords()[0])
	require.Equal(t, "The a Of", WordsIgnoreSmall("the a of"))
}

func TestSmallWordsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tag      language.Tag
		contains string
	}{
		{"english", language.English, "the"},
		{"british english", language.BritishEnglish, "the"},
		{"undetermined", language.Und, "the"},
		{"german falls back", language.German, "the"},
		{"ukrainian", language.Ukrainian, "під"},
		{"ukrainian region", language.MustParse("uk-UA"), "через"},
		{"russian", language.Russian, "между"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Contains(t, SmallWordsFor(tt.tag), tt.contains)
		})
	}
}
