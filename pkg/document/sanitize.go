package document

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes characters (NFKD) and strips combining marks, so
// accented letters fall back to their plain-ASCII base.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))) //nolint: gochecknoglobals

// Sanitize reduces text to the ASCII repertoire supported by the document
// renderer. Accented characters are decomposed to their closest ASCII
// equivalent; anything left without one is dropped. The function is the
// identity on ASCII input and never fails: if folding itself errors the
// original text still goes through the final ASCII filter.
func Sanitize(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}

	return b.String()
}
