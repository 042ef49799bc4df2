package capitalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		r      rune
		expect bool
	}{
		{"latin lower", 'a', true},
		{"latin upper", 'Z', true},
		{"cyrillic lower", 'ж', true},
		{"cyrillic upper", 'Я', true},
		{"yo", 'ё', true},
		{"capital yo", 'Ё', true},
		{"ukrainian ghe with upturn", 'ґ', true},
		{"ukrainian ie", 'Є', true},
		{"ukrainian i", 'і', true},
		{"ukrainian yi", 'Ї', true},
		{"digit", '1', false},
		{"punctuation", '!', false},
		{"space", ' ', false},
		{"tab", '\t', false},
		{"accented latin", 'é', false},
		{"greek", 'λ', false},
		{"emoji", '😀', false},
		{"replacement char", '�', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expect, IsLetter(tt.r))
		})
	}
}

func TestAlphabetContains(t *testing.T) {
	t.Parallel()

	require.True(t, Latin.Contains('q'))
	require.False(t, Latin.Contains('й'))

	require.True(t, Cyrillic.Contains('ы'))
	require.True(t, Cyrillic.Contains('ё'))
	require.False(t, Cyrillic.Contains('ґ'))
	require.False(t, Cyrillic.Contains('і'))

	require.True(t, Ukrainian.Contains('ґ'))
	require.True(t, Ukrainian.Contains('Ї'))
	require.False(t, Ukrainian.Contains('ы'))
	require.False(t, Ukrainian.Contains('ё'))

	require.False(t, Alphabet(42).Contains('a'))
}

func TestAlphabetSizes(t *testing.T) {
	t.Parallel()

	count := func(a Alphabet) int {
		n := 0
		for r := rune(0); r < 0x0500; r++ {
			if a.Contains(r) {
				n++
			}
		}
		return n
	}
	require.Equal(t, 52, count(Latin))
	require.Equal(t, 66, count(Cyrillic))
	require.Equal(t, 66, count(Ukrainian))
}

func TestAlphabetString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "latin", Latin.String())
	require.Equal(t, "cyrillic", Cyrillic.String())
	require.Equal(t, "ukrainian", Ukrainian.String())
	require.Equal(t, "Alphabet(-1)", Alphabet(-1).String())
	require.Equal(t, []Alphabet{Latin, Cyrillic, Ukrainian}, Alphabets())
}
