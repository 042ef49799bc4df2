package capitalize

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type textCase struct {
	input  string
	expect string
}

func runTextCases(t *testing.T, fn Transform, tests []textCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expect, fn(tt.input))
		})
	}
}

func TestEachWord(t *testing.T) {
	t.Parallel()

	runTextCases(t, EachWord, []textCase{
		{"hello world", "Hello World"},
		{"привіт світ", "Привіт Світ"},
		{"привет   мир", "Привет   Мир"},
		{"hello, world!", "Hello, World!"},
		{"hello   world", "Hello   World"},
		{"how   are   you", "How   Are   You"},
		{"HELLO wORLD", "Hello World"},
		{" hello\tWORLD\n", " Hello\tWorld\n"},
		{"hello 123 world", "Hello 123 World"},
		{"123 hello world", "123 Hello World"},
		{"hello", "Hello"},
		{"   ", "   "},
		{"", ""},
	})
}

func TestSentences(t *testing.T) {
	t.Parallel()

	runTextCases(t, Sentences, []textCase{
		{"hello! how are you? goodbye.", "Hello! How are you? Goodbye."},
		{"hello world. how are you? goodbye!", "Hello world. How are you? Goodbye!"},
		{"привіт світ. як справи? до побачення!", "Привіт світ. Як справи? До побачення!"},
		{"привет мир. как дела? до свидания!", "Привет мир. Как дела? До свидания!"},
		{"hello world", "Hello world"},
		{"hello world how are you", "Hello world how are you"},
		{"wait... what?! no way", "Wait... What?! No way"},
		{"end. ", "End. "},
		{"  hello.  world", "Hello.  World"},
		{"v1.2 is out. 3 bugs fixed. yay", "V1.2 is out. 3 bugs fixed. Yay"},
		{"one.\ntwo", "One.\nTwo"},
		{"", ""},
	})
}

func TestWordsIgnoreSmall(t *testing.T) {
	t.Parallel()

	runTextCases(t, WordsIgnoreSmall, []textCase{
		{"the quick brown fox", "The Quick Brown Fox"},
		{"a tale of two cities", "A Tale of Two Cities"},
		{"hello and world", "Hello and World"},
		{"the and of", "The and Of"},
		{"THE LORD OF THE RINGS", "The Lord of the Rings"},
		{"war  and   peace", "War and Peace"},
		{" gone with the wind ", " Gone With the Wind "},
		{"of mice, and men", "Of Mice, and Men"},
		{"rock (and) roll", "Rock (and) Roll"},
		{"hello", "Hello"},
		{"", ""},
	})
}

func TestWordsIgnoreSmallWith(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		smallWords []string
		expect     string
	}{
		{"custom list", "hello and world", []string{"and"}, "Hello and World"},
		{"empty list", "hello and world", []string{}, "Hello And World"},
		{"nil list", "hello and world", nil, "Hello And World"},
		{"custom words", "test the custom words here", []string{"test", "custom", "words"}, "Test The custom words Here"},
		{"russian", "война и мир", SmallWordsFor(language.Russian), "Война и Мир"},
		{"ukrainian", "кіт на даху", SmallWordsFor(language.Ukrainian), "Кіт на Даху"},
		{"ukrainian letters are stripped from keys", "війна і мир", SmallWordsFor(language.Ukrainian), "Війна І Мир"},
		{"empty", "", []string{"a"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expect, WordsIgnoreSmallWith(tt.input, tt.smallWords))
		})
	}
}

func TestFully(t *testing.T) {
	t.Parallel()

	runTextCases(t, Fully, []textCase{
		{"hello world", "HELLO WORLD"},
		{"HELLO WORLD", "HELLO WORLD"},
		{"HeLLo WoRLd", "HELLO WORLD"},
		{"hello123!@#", "HELLO123!@#"},
		{"привіт світ", "ПРИВІТ СВІТ"},
		{"доброе утро", "ДОБРОЕ УТРО"},
		{"café", "CAFÉ"},
		{"straße", "STRASSE"},
		{"", ""},
	})
}

func TestFullyIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := append(append([]string{"straße", "ﬁne", "ǆ", "hello world!"}, englishWords...), ukrainianWords...)
	for _, s := range inputs {
		once := Fully(s)
		require.Equal(t, once, Fully(once), s)
	}
}

func TestCustom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		opts   CustomOptions
		expect string
	}{
		{"first word only", "hello world", CustomOptions{FirstWordOnly: true}, "Hello world"},
		{"first word only ukrainian", "привіт світ", CustomOptions{FirstWordOnly: true}, "Привіт світ"},
		{
			"first word only ignores other options",
			"  hello AND world ",
			CustomOptions{FirstWordOnly: true, IgnoreWords: []string{"hello"}, PreserveCase: true},
			"Hello AND world",
		},
		{"ignore words", "hello and world", CustomOptions{IgnoreWords: []string{"and"}}, "Hello and World"},
		{"multiple ignored", "hello and or world", CustomOptions{IgnoreWords: []string{"and", "or"}}, "Hello and or World"},
		{"preserve case", "Hello AND World", CustomOptions{IgnoreWords: []string{"and"}, PreserveCase: true}, "Hello AND World"},
		{"lowercase ignored", "Hello AND World", CustomOptions{IgnoreWords: []string{"and"}}, "Hello and World"},
		{"all options", "hello AND world", CustomOptions{IgnoreWords: []string{"and"}, PreserveCase: true}, "Hello AND World"},
		{"ignored word with punctuation", "salt, pepper, and, herbs", CustomOptions{IgnoreWords: []string{"and"}}, "Salt, Pepper, and, Herbs"},
		{"upper-case entries never match", "hello and world", CustomOptions{IgnoreWords: []string{"AND"}}, "Hello And World"},
		{"cyrillic ignore", "ПРИВЕТ И МИР", CustomOptions{IgnoreWords: []string{"и"}}, "Привет и Мир"},
		{"defaults", "hello world", CustomOptions{}, "Hello World"},
		{"collapses whitespace", "hello   big\tworld", CustomOptions{}, "Hello Big World"},
		{"single word", "hello", CustomOptions{}, "Hello"},
		{"empty", "", CustomOptions{FirstWordOnly: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expect, Custom(tt.input, tt.opts))
		})
	}
}
