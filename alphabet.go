package capitalize

import (
	"strconv"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Alphabet is a class of letters recognized by [IsLetter].
type Alphabet int

const (
	// Latin covers a-z and A-Z.
	Latin Alphabet = iota
	// Cyrillic covers а-я, А-Я, ё and Ё.
	Cyrillic
	// Ukrainian covers the 33 letters of the Ukrainian alphabet, ґ є і ї
	// included, in both cases.
	Ukrainian
)

const (
	latinLetters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	cyrillicLetters  = "абвгдежзийклмнопрстуфхцчшщъыьэюяёАБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯЁ"
	ukrainianLetters = "абвгґдеєжзиіїйклмнопрстуфхцчшщьюяАБВГҐДЕЄЖЗИІЇЙКЛМНОПРСТУФХЦЧШЩЬЮЯ"
)

var alphabets = [...]struct {
	name  string
	table *unicode.RangeTable
}{
	Latin:     {"latin", rangetable.New([]rune(latinLetters)...)},
	Cyrillic:  {"cyrillic", rangetable.New([]rune(cyrillicLetters)...)},
	Ukrainian: {"ukrainian", rangetable.New([]rune(ukrainianLetters)...)},
}

// Alphabets returns every supported alphabet in classification order.
func Alphabets() []Alphabet {
	return []Alphabet{Latin, Cyrillic, Ukrainian}
}

// Contains reports whether r is a letter of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	if a < 0 || int(a) >= len(alphabets) {
		return false
	}
	return unicode.Is(alphabets[a].table, r)
}

func (a Alphabet) String() string {
	if a < 0 || int(a) >= len(alphabets) {
		return "Alphabet(" + strconv.Itoa(int(a)) + ")"
	}
	return alphabets[a].name
}

// IsLetter reports whether r belongs to at least one supported alphabet.
// Digits, punctuation, whitespace, symbols, emoji and letters of other
// scripts (accented Latin letters included) are not letters.
func IsLetter(r rune) bool {
	for i := range alphabets {
		if unicode.Is(alphabets[i].table, r) {
			return true
		}
	}
	return false
}
