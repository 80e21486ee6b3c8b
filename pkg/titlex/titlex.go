// Package titlex sanitizes submission titles for the Voat API, which only
// accepts printable extended-ASCII titles of up to 200 characters.
package titlex

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the longest title the server accepts.
const MaxLength = 200

// truncated titles are cut here and suffixed with an ellipsis marker
const (
	truncateAt     = 194
	truncateSuffix = " [...]"
)

// zero-width characters are dropped entirely
var zeroWidth = map[rune]bool{
	'\u180e': true, // mongolian vowel separator
	'\u200b': true, // zero width space
	'\ufeff': true, // byte order mark
}

// unicodeSpace reports whether r is a space-like rune that should collapse
// into a single ASCII space. Covers the typographic space block in addition
// to the usual whitespace class.
func unicodeSpace(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch {
	case r >= '\u2000' && r <= '\u200a':
		return true
	case r == '\u202f', r == '\u205f':
		return true
	}
	return false
}

// printableExtendedASCII reports whether r is acceptable in a title: the
// printable ASCII range plus the printable half of latin-1.
func printableExtendedASCII(r rune) bool {
	return (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff)
}

// Clean sanitizes a title: zero-width characters are removed, runs of
// whitespace collapse into single spaces, Unicode is transliterated to its
// closest extended-ASCII approximation, remaining unprintables are dropped
// and the result is trimmed and capped at MaxLength.
//
// Clean is idempotent: cleaning an already clean title returns it unchanged.
func Clean(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	for _, r := range title {
		switch {
		case zeroWidth[r]:
			continue
		case unicodeSpace(r):
			b.WriteByte(' ')
			continue
		case r == '␣': // open box (visible space symbol)
			r = '_'
		}

		if printableExtendedASCII(r) {
			b.WriteRune(r)
			continue
		}

		// Prefer a latin-1 representation so characters like é survive
		// as extended ASCII, then fall back to a plain ASCII
		// transliteration. Transliterations may carry their own spaces,
		// so whitespace is collapsed afterwards.
		for _, nr := range norm.NFKC.String(string(r)) {
			if printableExtendedASCII(nr) {
				b.WriteRune(nr)
				continue
			}
			for _, ar := range unidecode.Unidecode(string(nr)) {
				if printableExtendedASCII(ar) {
					b.WriteRune(ar)
				}
			}
		}
	}

	cleaned := strings.Join(strings.Fields(b.String()), " ")

	if runeLen(cleaned) > MaxLength {
		cleaned = truncateRunes(cleaned, truncateAt) + truncateSuffix
	}

	return cleaned
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return strings.TrimRight(s[:pos], " ")
		}
		i++
	}
	return s
}
