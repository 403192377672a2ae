// Package archetype classifies tournament decklists into named play-pattern
// archetypes. Classification is pure and CPU-bound: a deck is canonicalized
// once, scored against the declarative rules for its format, and falls back
// to card-overlap matching and finally color identity when no rule is
// confident enough.
package archetype

// CardEntry is a single line from a decklist zone.
type CardEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NormalizedDeck maps canonical card names to summed quantities. Only the
// mainboard feeds classification; combining zones is a caller decision.
type NormalizedDeck map[string]int

// NormalizeDeck canonicalizes a list of entries and sums quantities that
// collapse onto the same canonical name. Entries with empty names or
// non-positive quantities are dropped.
func NormalizeDeck(entries []CardEntry) NormalizedDeck {
	deck := make(NormalizedDeck, len(entries))
	for _, e := range entries {
		name := Canonicalize(e.Name)
		if name == "" || e.Quantity < 1 {
			continue
		}
		deck[name] += e.Quantity
	}
	return deck
}

// TotalCards returns the summed quantity across the deck.
func (d NormalizedDeck) TotalCards() int {
	total := 0
	for _, qty := range d {
		total += qty
	}
	return total
}

// Method identifies which tier of the classifier produced a result.
type Method string

const (
	// MethodRule means a declarative archetype rule scored above threshold.
	MethodRule Method = "rule"
	// MethodFallback means a card-overlap fallback matched.
	MethodFallback Method = "fallback"
	// MethodColorIdentity means only the mana base identified the deck.
	MethodColorIdentity Method = "color_identity"
)

// Result is the outcome of classifying one decklist.
type Result struct {
	Archetype  string  `json:"archetype"`
	Method     Method  `json:"method"`
	Confidence float64 `json:"confidence"`
}

// Rule is a declarative archetype definition. RequiredCards is a list of
// disjunctive groups: the deck must contain at least one card from every
// group before conditions are considered. A rule with no conditions scores
// 1.0 once its required cards pass.
type Rule struct {
	Name          string
	RequiredCards [][]string
	Conditions    []Condition
}

// Fallback is a looser overlap-based matcher consulted when no rule scores
// highly enough.
type Fallback struct {
	Name        string
	CommonCards []string
	Threshold   float64
}

// DefaultFallbackThreshold is the overlap ratio a fallback must reach when
// its definition does not set one.
const DefaultFallbackThreshold = 0.4
