package capitalize

// Transform is a capitalization applied to a whole string.
type Transform func(string) string

// IsValidString reports whether v holds a non-empty string. Only the plain
// string type qualifies: nil, numbers, pointers to strings and named string
// types are all invalid. Whitespace counts as content.
func IsValidString(v any) bool {
	s, ok := v.(string)
	return ok && len(s) > 0
}

// Apply runs t on v when v is a valid string, see [IsValidString]. Any other
// value is returned exactly as it was passed in, nil included. It is meant for
// callers that forward values they have not checked themselves.
func Apply(v any, t Transform) any {
	if !IsValidString(v) {
		return v
	}
	return t(v.(string))
}
