package capitalize

import "unicode/utf8"

// Word upper-cases the first letter of word and lower-cases the rest. A word
// that does not start with a letter is returned unchanged.
func Word(word string) string {
	return changeFirst(word, upper, lower)
}

// Uncapitalize lower-cases the first letter of word. Unlike [Word] the rest
// of the word keeps its case, so Uncapitalize(Word(s)) is not always s.
func Uncapitalize(word string) string {
	return changeFirst(word, lower, nil)
}

// Sentence trims surrounding whitespace and upper-cases the first letter. The
// rest of the sentence keeps its case. A blank sentence becomes "", and a
// sentence whose first non-space rune is not a letter is returned untrimmed.
func Sentence(sentence string) string {
	return changeSentence(sentence, upper)
}

// UncapitalizeSentence is [Sentence] with the first letter lower-cased.
func UncapitalizeSentence(sentence string) string {
	return changeSentence(sentence, lower)
}

func changeFirst(word string, first, rest func(string) string) string {
	r, size := utf8.DecodeRuneInString(word)
	if word == "" || !IsLetter(r) {
		return word
	}
	tail := word[size:]
	if rest != nil {
		tail = rest(tail)
	}
	return first(word[:size]) + tail
}

func changeSentence(sentence string, first func(string) string) string {
	if sentence == "" {
		return sentence
	}
	trimmed := trimSpace(sentence)
	if trimmed == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(trimmed)
	if !IsLetter(r) {
		return sentence
	}
	return first(trimmed[:size]) + trimmed[size:]
}
