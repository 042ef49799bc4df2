package capitalize

// Mode is a named transform.
type Mode struct {
	Name        string
	Description string
	Transform   Transform
}

var modes = []Mode{
	{"word", "Capitalize the first letter, lower-case the rest", Word},
	{"uncapitalize", "Lower-case the first letter, keep the rest", Uncapitalize},
	{"sentence", "Trim and capitalize the first letter of a sentence", Sentence},
	{"uncapitalize-sentence", "Trim and lower-case the first letter of a sentence", UncapitalizeSentence},
	{"each-word", "Capitalize every word, keeping the spacing", EachWord},
	{"sentences", "Capitalize the first letter of every sentence", Sentences},
	{"title", "Capitalize words except small ones, first and last always", WordsIgnoreSmall},
	{"fully", "Upper-case every letter", Fully},
	{"custom", "Capitalize every word, honoring custom options", func(s string) string {
		return Custom(s, CustomOptions{})
	}},
}

// Modes lists every transform under its name. Transforms that take options
// use their defaults.
func Modes() []Mode {
	return append([]Mode(nil), modes...)
}

// Lookup returns the transform of the mode called name.
func Lookup(name string) (Transform, bool) {
	for _, m := range modes {
		if m.Name == name {
			return m.Transform, true
		}
	}
	return nil, false
}
