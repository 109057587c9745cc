package sentiment

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and strips punctuation so lexicon lookups see a
// uniform token stream. Apostrophes are removed rather than replaced with a
// space ("don't" -> "dont") so contractions match the negator table; all
// other punctuation becomes a space.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case r == '\'' || r == '’':
			// drop
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text into tokens.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
