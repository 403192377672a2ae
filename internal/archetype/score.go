package archetype

// RuleAcceptThreshold is the minimum rule score the classifier accepts.
const RuleAcceptThreshold = 0.7

// ScoreRule scores one rule against a deck. The second return value is false
// when the deck is disqualified because some required-card group has no
// satisfied member. A qualifying rule with no conditions scores 1.0;
// otherwise the score is the fraction of conditions satisfied.
func ScoreRule(rule Rule, deck NormalizedDeck, colors ColorSet) (float64, bool) {
	for _, group := range rule.RequiredCards {
		satisfied := false
		for _, name := range group {
			if deck[name] > 0 {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return 0, false
		}
	}

	if len(rule.Conditions) == 0 {
		return 1.0, true
	}

	met := 0
	for _, cond := range rule.Conditions {
		if Evaluate(cond, deck, colors) {
			met++
		}
	}
	return float64(met) / float64(len(rule.Conditions)), true
}

// MatchFallback returns the fraction of the fallback's common cards present
// in the deck, or 0 when the fallback lists no cards.
func MatchFallback(fb Fallback, deck NormalizedDeck) float64 {
	if len(fb.CommonCards) == 0 {
		return 0
	}
	present := 0
	for _, name := range fb.CommonCards {
		if deck[name] > 0 {
			present++
		}
	}
	return float64(present) / float64(len(fb.CommonCards))
}
