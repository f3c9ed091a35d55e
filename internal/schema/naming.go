package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ucwords capitalizes the first letter of every word and leaves the rest
// untouched. A Caser is stateful, so one is built per call.
func ucwords(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

func ucwName(name string) string {
	return strings.ReplaceAll(ucwords(strings.ReplaceAll(name, "_", " ")), " ", "")
}

// className drops every character that cannot appear in an identifier,
// capitalizes each remaining word and joins them. All-caps words (common
// in Firebird DDL) are lowered first; a leading digit gets a "T" prefix.
func className(tableName string) string {
	words := strings.FieldsFunc(tableName, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range words {
		if strings.ToUpper(w) == w {
			w = strings.ToLower(w)
		}
		words[i] = ucwords(w)
	}
	name := strings.Join(words, "")
	if name != "" && unicode.IsDigit([]rune(name)[0]) {
		name = "T" + name
	}
	return name
}
