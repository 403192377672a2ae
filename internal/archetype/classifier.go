package archetype

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when a classification request names a format
// the catalog does not know. Callers check it with errors.Is.
var ErrUnknownFormat = errors.New("unknown format")

// colorIdentityConfidence is the fixed confidence of a tier-3 result: the
// deck was only identified by its mana base, not by any archetype signal.
const colorIdentityConfidence = 0.3

// Classifier runs the three-tier classification procedure over one immutable
// catalog. It is stateless apart from the catalog reference and safe for
// concurrent use.
type Classifier struct {
	catalog *Catalog
}

// NewClassifier creates a classifier over the given catalog.
func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// Classify labels one decklist. The tiers run in fixed order and the first
// confident tier terminates:
//
//  1. Score every archetype rule for the format; the best score at or above
//     RuleAcceptThreshold wins.
//  2. Compute the overlap ratio of every fallback; the best ratio wins if it
//     reaches that fallback's own threshold.
//  3. Resolve color identity and synthesize a "<Colors> Deck" label.
//
// Tier 3 always produces a result, so the only error is an unknown format.
// An empty decklist is valid and falls through to a Colorless tier-3 result.
func (c *Classifier) Classify(entries []CardEntry, format string) (*Result, error) {
	if !c.catalog.HasFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	deck := NormalizeDeck(entries)
	colors := ResolveColors(deck)

	if name, score, ok := c.bestRule(deck, colors, format); ok {
		return &Result{Archetype: DisplayName(name), Method: MethodRule, Confidence: score}, nil
	}

	if name, ratio, ok := c.bestFallback(deck, format); ok {
		return &Result{Archetype: DisplayName(name), Method: MethodFallback, Confidence: ratio}, nil
	}

	return &Result{
		Archetype:  ColorSetName(colors) + " Deck",
		Method:     MethodColorIdentity,
		Confidence: colorIdentityConfidence,
	}, nil
}

// bestRule returns the winning archetype rule, if any score reaches the
// acceptance threshold. Ties on score break lexicographically by name so the
// winner does not depend on catalog iteration order.
func (c *Classifier) bestRule(deck NormalizedDeck, colors ColorSet, format string) (string, float64, bool) {
	var (
		bestName  string
		bestScore = -1.0
	)
	for _, rule := range c.catalog.Rules(format) {
		score, qualified := ScoreRule(rule, deck, colors)
		if !qualified {
			continue
		}
		if score > bestScore || (score == bestScore && rule.Name < bestName) {
			bestName, bestScore = rule.Name, score
		}
	}
	if bestScore < RuleAcceptThreshold {
		return "", 0, false
	}
	return bestName, bestScore, true
}

// bestFallback returns the fallback with the highest overlap ratio, accepted
// only when that best ratio also clears the fallback's own threshold. Ties
// break lexicographically by name, matching bestRule.
func (c *Classifier) bestFallback(deck NormalizedDeck, format string) (string, float64, bool) {
	var (
		bestName      string
		bestRatio     = -1.0
		bestThreshold float64
	)
	for _, fb := range c.catalog.Fallbacks(format) {
		ratio := MatchFallback(fb, deck)
		if ratio > bestRatio || (ratio == bestRatio && fb.Name < bestName) {
			bestName, bestRatio, bestThreshold = fb.Name, ratio, fb.Threshold
		}
	}
	if bestRatio <= 0 || bestRatio < bestThreshold {
		return "", 0, false
	}
	return bestName, bestRatio, true
}
