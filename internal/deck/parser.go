// Package deck parses decklist text into card entries. It understands the
// Arena export format and plain text lists, and keeps mainboard and sideboard
// separate so callers decide which zones feed classification.
package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ramonehamilton/deckscope/internal/archetype"
)

// Decklist is a parsed decklist split by zone.
type Decklist struct {
	Name      string
	Mainboard []archetype.CardEntry
	Sideboard []archetype.CardEntry
	Warnings  []string
}

// Arena format line: "4 Lightning Bolt (M21) 123" or "4 Lightning Bolt".
var arenaLine = regexp.MustCompile(`^(\d+)\s+([^(]+?)(?:\s+\(([A-Z0-9]+)\)(?:\s+(\d+))?)?$`)

// Plain text variants: "4 Card Name", "4x Card Name", "Card Name x4".
var (
	leadingQty  = regexp.MustCompile(`^(\d+)x?\s+(.+)$`)
	trailingQty = regexp.MustCompile(`^(.+?)\s+x(\d+)$`)
)

// Parse reads a decklist in Arena or plain text format. A "Deck" header is
// skipped, a blank line or a "Sideboard" header switches zones, and lines
// that fit no pattern become warnings rather than failures.
func Parse(input string) (*Decklist, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty decklist")
	}

	list := &Decklist{}
	sideboard := false
	sawCards := false

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "Deck":
			continue
		case line == "":
			// The Arena export separates zones with one blank line.
			if sawCards {
				sideboard = true
			}
			continue
		case strings.HasPrefix(strings.ToLower(line), "sideboard"):
			sideboard = true
			continue
		}

		entry, ok := parseLine(line)
		if !ok {
			list.Warnings = append(list.Warnings, fmt.Sprintf("line %d: could not parse %q", i+1, line))
			continue
		}

		sawCards = true
		if sideboard {
			list.Sideboard = append(list.Sideboard, entry)
		} else {
			list.Mainboard = append(list.Mainboard, entry)
		}
	}

	if len(list.Mainboard) == 0 && len(list.Sideboard) == 0 {
		return nil, fmt.Errorf("no cards found in decklist")
	}

	return list, nil
}

func parseLine(line string) (archetype.CardEntry, bool) {
	if m := arenaLine.FindStringSubmatch(line); m != nil {
		if qty, err := strconv.Atoi(m[1]); err == nil && qty > 0 {
			return archetype.CardEntry{Name: strings.TrimSpace(m[2]), Quantity: qty}, true
		}
	}
	if m := leadingQty.FindStringSubmatch(line); m != nil {
		if qty, err := strconv.Atoi(m[1]); err == nil && qty > 0 {
			return archetype.CardEntry{Name: strings.TrimSpace(m[2]), Quantity: qty}, true
		}
	}
	if m := trailingQty.FindStringSubmatch(line); m != nil {
		if qty, err := strconv.Atoi(m[2]); err == nil && qty > 0 {
			return archetype.CardEntry{Name: strings.TrimSpace(m[1]), Quantity: qty}, true
		}
	}
	return archetype.CardEntry{}, false
}
