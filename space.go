package capitalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// whitespace is the ECMAScript \s class: the same set of runes is matched by
// the split patterns and by isSpace.
const whitespace = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	spaceRun    = regexp.MustCompile(`[` + whitespace + `]+`)
	sentenceEnd = regexp.MustCompile(`[.!?]+[` + whitespace + `]+`)

	// Everything that is not an ASCII word character or a Russian letter.
	// Ukrainian-only letters are stripped as well.
	nonKey = regexp.MustCompile(`[^0-9A-Za-z_\x{0401}\x{0410}-\x{044F}\x{0451}]`)
)

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// splitKeep splits s around matches of re and keeps the matches, so content
// ends up at even indices and separators at odd ones.
func splitKeep(re *regexp.Regexp, s string) []string {
	var parts []string
	last := 0
	for _, loc := range re.FindAllStringIndex(s, -1) {
		parts = append(parts, s[last:loc[0]], s[loc[0]:loc[1]])
		last = loc[1]
	}
	return append(parts, s[last:])
}

// fields splits s around whitespace runs. Leading or trailing whitespace
// yields an empty first or last field.
func fields(s string) []string {
	return spaceRun.Split(s, -1)
}

// key is the form of a word compared against word lists.
func key(word string) string {
	return lower(nonKey.ReplaceAllString(word, ""))
}

// Casers keep state between calls, so a fresh one is made each time.

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
