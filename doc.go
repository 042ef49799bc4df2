// Package capitalize changes the case of words, sentences and whole texts
// written in Latin or Cyrillic script, including the Ukrainian alphabet.
//
// Every function is a pure string transform. Invalid input is never an
// error: an empty string comes back as-is, and [Apply] hands back any value
// that is not a non-empty string untouched.
//
// Only the first rune of a word or sentence decides whether it gets
// capitalized, and that rune must belong to one of the supported
// [Alphabet]s. A word starting with a digit, a symbol, an emoji or a letter
// from another script is left alone:
//
//	capitalize.Word("hELLO")   // "Hello"
//	capitalize.Word("123abc")  // "123abc"
//	capitalize.Word("привіт")  // "Привіт"
//
// Text level transforms split their input on whitespace or on sentence
// ending punctuation and delegate to the word and sentence transforms.
package capitalize
