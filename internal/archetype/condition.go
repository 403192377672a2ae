package archetype

import "log/slog"

// Condition is one predicate inside an archetype rule. It is a closed set:
// loaders decode loosely-typed rule rows into these variants once at catalog
// build time, so evaluation never branches on raw kind strings.
type Condition interface {
	// evaluate reports whether the deck satisfies the predicate. Card names
	// inside conditions are canonicalized by the catalog loader, so lookups
	// here are direct.
	evaluate(deck NormalizedDeck, colors ColorSet) bool
}

// AtLeast is satisfied when any listed card appears with at least Threshold
// copies.
type AtLeast struct {
	Cards     []string
	Threshold int
}

func (c AtLeast) evaluate(deck NormalizedDeck, _ ColorSet) bool {
	for _, name := range c.Cards {
		if deck[name] >= c.Threshold {
			return true
		}
	}
	return false
}

// TotalCount is satisfied when the listed cards' quantities sum to at least
// Minimum.
type TotalCount struct {
	Cards   []string
	Minimum int
}

func (c TotalCount) evaluate(deck NormalizedDeck, _ ColorSet) bool {
	sum := 0
	for _, name := range c.Cards {
		sum += deck[name]
	}
	return sum >= c.Minimum
}

// ColorIdentityEquals is satisfied when the deck's resolved color identity
// exactly equals Colors. A superset does not match.
type ColorIdentityEquals struct {
	Colors ColorSet
}

func (c ColorIdentityEquals) evaluate(_ NormalizedDeck, colors ColorSet) bool {
	return colors == c.Colors
}

// ExcludesAll is satisfied when none of the listed cards are present.
type ExcludesAll struct {
	Cards []string
}

func (c ExcludesAll) evaluate(deck NormalizedDeck, _ ColorSet) bool {
	for _, name := range c.Cards {
		if deck[name] > 0 {
			return false
		}
	}
	return true
}

// Evaluate applies one condition to a deck. A nil condition means a malformed
// rule slipped past the loader; it evaluates false rather than trusting the
// rule, and the occurrence is logged.
func Evaluate(cond Condition, deck NormalizedDeck, colors ColorSet) bool {
	if cond == nil {
		slog.Warn("nil condition reached evaluation, treating as unsatisfied")
		return false
	}
	return cond.evaluate(deck, colors)
}
