package capitalize

import (
	"slices"

	"golang.org/x/text/language"
)

var (
	englishSmallWords = []string{
		"a", "an", "and", "as", "at", "but", "by", "for", "if", "in",
		"nor", "of", "on", "or", "so", "the", "to", "up", "yet",
	}
	ukrainianSmallWords = []string{
		"і", "в", "на", "за", "до", "з", "у", "про", "без", "над", "під", "між", "через",
	}
	russianSmallWords = []string{
		"и", "в", "на", "за", "до", "с", "у", "про", "без", "над", "под", "между", "через",
	}
)

var (
	ukrainian = language.MustParseBase("uk")
	russian   = language.MustParseBase("ru")
)

// DefaultSmallWords returns the English articles, conjunctions and short
// prepositions used by [WordsIgnoreSmall].
func DefaultSmallWords() []string {
	return slices.Clone(englishSmallWords)
}

// SmallWordsFor returns the small words for the language of tag. Ukrainian
// and Russian have their own lists; anything else gets [DefaultSmallWords].
//
// Ukrainian entries holding і, ї, є or ґ never match, since those letters do
// not survive word key cleaning.
func SmallWordsFor(tag language.Tag) []string {
	base, _ := tag.Base()
	switch base {
	case ukrainian:
		return slices.Clone(ukrainianSmallWords)
	case russian:
		return slices.Clone(russianSmallWords)
	}
	return DefaultSmallWords()
}
