package generate

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sylgen/config"
)

// caser returns function applying requested letter case to generated names.
func caser(lc config.LetterCase) func(string) string {
	switch lc {
	case config.LetterCaseLower:
		return cases.Lower(language.Und).String
	case config.LetterCaseUpper:
		return cases.Upper(language.Und).String
	case config.LetterCaseTitle:
		return cases.Title(language.Und).String
	default:
		return func(s string) string { return s }
	}
}

// Transliterate converts non-ASCII characters to their ASCII equivalents
// keeping words separated by single space and capitalization of the first
// letter of every word.
func Transliterate(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = transliterateWord(word)
	}
	return strings.Join(words, " ")
}

func transliterateWord(word string) string {
	runes := []rune(word)
	firstUpper := unicode.IsUpper(runes[0])
	allUpper := len(runes) > 1 && strings.ToUpper(word) == word && strings.ToLower(word) != word

	trans := slug.Make(word)
	if trans == "" {
		return word
	}

	switch {
	case allUpper:
		return strings.ToUpper(trans)
	case firstUpper:
		tr := []rune(trans)
		tr[0] = unicode.ToUpper(tr[0])
		return string(tr)
	}
	return trans
}
