package capitalize

import (
	"slices"
	"strings"
)

// EachWord capitalizes every whitespace separated word with [Word]. The
// whitespace between words is kept exactly as it was.
func EachWord(text string) string {
	if text == "" {
		return text
	}
	parts := splitKeep(spaceRun, text)
	for i := 0; i < len(parts); i += 2 {
		parts[i] = Word(parts[i])
	}
	return strings.Join(parts, "")
}

// Sentences capitalizes every sentence with [Sentence]. A sentence ends with
// one or more of '.', '!' or '?' followed by whitespace; the ending itself is
// copied verbatim.
func Sentences(text string) string {
	if text == "" {
		return text
	}
	parts := splitKeep(sentenceEnd, text)
	for i := 0; i < len(parts); i += 2 {
		parts[i] = Sentence(parts[i])
	}
	return strings.Join(parts, "")
}

// WordsIgnoreSmall is [WordsIgnoreSmallWith] using [DefaultSmallWords].
func WordsIgnoreSmall(text string) string {
	return WordsIgnoreSmallWith(text, englishSmallWords)
}

// WordsIgnoreSmallWith title-cases text, keeping smallWords in lower case.
// The first and the last word are always capitalized. Words are compared by
// their key: punctuation and letters outside the ASCII and Russian sets are
// dropped and the rest is lower-cased. Whitespace runs collapse into single
// spaces.
func WordsIgnoreSmallWith(text string, smallWords []string) string {
	if text == "" {
		return text
	}
	words := fields(text)
	last := len(words) - 1
	for i, w := range words {
		if i == 0 || i == last || !slices.Contains(smallWords, key(w)) {
			words[i] = Word(w)
			continue
		}
		words[i] = lower(w)
	}
	return strings.Join(words, " ")
}

// Fully upper-cases every letter of text.
func Fully(text string) string {
	if text == "" {
		return text
	}
	return upper(text)
}

// CustomOptions configures [Custom]. The zero value capitalizes every word.
type CustomOptions struct {
	// FirstWordOnly makes Custom behave like [Sentence]; the other options
	// are ignored.
	FirstWordOnly bool
	// IgnoreWords are not capitalized. Entries are compared against
	// lower-case word keys, so they should be lower-case themselves.
	IgnoreWords []string
	// PreserveCase keeps ignored words as written instead of lower-casing
	// them.
	PreserveCase bool
}

// Custom capitalizes every word of text except those listed in
// opts.IgnoreWords. Whitespace runs collapse into single spaces.
func Custom(text string, opts CustomOptions) string {
	if text == "" {
		return text
	}
	if opts.FirstWordOnly {
		return Sentence(text)
	}
	words := fields(text)
	for i, w := range words {
		switch {
		case !slices.Contains(opts.IgnoreWords, key(w)):
			words[i] = Word(w)
		case !opts.PreserveCase:
			words[i] = lower(w)
		}
	}
	return strings.Join(words, " ")
}
