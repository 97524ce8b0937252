// Package slug derives URL-safe, length-bounded tokens from free-form text.
// Tokens are used as path segments and as the stable part of imported
// document identifiers, so Slugify must stay deterministic and idempotent.
package slug

import (
	"regexp"
	"strings"
)

// MaxLength bounds the length of a token in runes.
const MaxLength = 96

// folder maps known accented and special characters to ASCII equivalents.
// This is a fixed contract table, not exhaustive Unicode folding: characters
// outside it are kept as-is when they are word characters.
var folder = strings.NewReplacer(
	"æ", "ae",
	"ø", "o",
	"å", "a",
	"é", "e",
	"è", "e",
	"ü", "u",
	"ö", "o",
	"ä", "a",
)

var (
	// strip removes everything that is not a word character, whitespace
	// or hyphen. Word characters follow the \w class: letters, digits
	// and underscore, including non-ASCII letters. Whitespace includes
	// Unicode spaces such as NBSP, which CMS exports carry.
	strip = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Zs}-]`)

	// collapse folds any run of whitespace, underscores and hyphens
	// into a single hyphen.
	collapse = regexp.MustCompile(`[\s\p{Zs}_-]+`)
)

// Slugify converts free-form text into a token usable as a path segment.
// The steps are ordered: lower-case and trim, fold accents, strip
// punctuation, collapse separator runs into hyphens, trim hyphens,
// truncate to MaxLength.
//
// Slugify is idempotent: applying it to its own output returns the same
// token. Empty input yields an empty token; callers deriving identifiers
// must treat that as an error.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = folder.Replace(s)
	s = strip.ReplaceAllString(s, "")
	s = collapse.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	runes := []rune(s)
	if len(runes) > MaxLength {
		s = string(runes[:MaxLength])
	}
	return s
}
