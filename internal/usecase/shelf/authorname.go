package shelf

import "strings"

// ParseAuthorName splits a raw author string into a first name and a
// surname. The first token is the name, every remaining token is
// concatenated into the surname with no separator between tokens, so
// "Gabriel Garcia Marquez" yields surname "GarciaMarquez". The upstream
// requirement owner has not clarified whether a space belongs there, keep
// the concatenation as is.
func ParseAuthorName(raw string) (name, surname string) {
	tokens := strings.Fields(raw)

	if len(tokens) == 0 {
		return "", ""
	}

	return tokens[0], strings.Join(tokens[1:], "")
}
