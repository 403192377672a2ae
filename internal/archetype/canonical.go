package archetype

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// splitCardSeparators are the notations sources use for multi-face cards.
// Only the first face identifies the card for matching purposes.
var splitCardSeparators = []string{" // ", "//", " / "}

// punctuationStripper removes the punctuation that sources disagree on.
var punctuationStripper = strings.NewReplacer(
	".", "",
	",", "",
	":", "",
	";", "",
	"!", "",
	"'", "",
)

// diacriticStripper decomposes accented characters and drops the combining
// marks, reducing names like "Lim-Dûl" to base Latin letters.
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Canonicalize maps a raw card name into the canonical key space shared by
// all matching: first face of split cards, diacritics stripped, lower-cased,
// common punctuation removed, surrounding whitespace trimmed. It never fails;
// an empty or whitespace-only name canonicalizes to "".
func Canonicalize(raw string) string {
	name := raw
	for _, sep := range splitCardSeparators {
		if idx := strings.Index(name, sep); idx >= 0 {
			name = name[:idx]
			break
		}
	}

	if stripped, _, err := transform.String(diacriticStripper, name); err == nil {
		name = stripped
	}

	name = strings.ToLower(name)
	name = punctuationStripper.Replace(name)

	return strings.TrimSpace(name)
}
