package wgram

import "strings"

// Render concatenates the text of every symbol of the form, without separators.
// A non-terminal, only found in truncated forms, renders as its placeholder,
// or as its identity between angle brackets when it has none.
func Render(form Form) string {
	var b strings.Builder
	for _, s := range form {
		s.render(&b)
	}
	return b.String()
}
