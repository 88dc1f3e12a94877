package shelf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAuthorName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		raw            string
		requireName    string
		requireSurname string
	}{
		{name: "name and surname",
			raw:         "Frank Herbert",
			requireName: "Frank", requireSurname: "Herbert"},

		{name: "multiple surname tokens concatenate without separator",
			raw:         "Gabriel Garcia Marquez",
			requireName: "Gabriel", requireSurname: "GarciaMarquez"},

		{name: "single token has empty surname",
			raw:         "Homer",
			requireName: "Homer", requireSurname: ""},

		{name: "empty input",
			raw:         "",
			requireName: "", requireSurname: ""},

		{name: "extra whitespace is ignored",
			raw:         "  Ursula  K. Le Guin ",
			requireName: "Ursula", requireSurname: "K.LeGuin"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			name, surname := ParseAuthorName(test.raw)
			require.Equal(t, test.requireName, name)
			require.Equal(t, test.requireSurname, surname)
		})
	}
}
