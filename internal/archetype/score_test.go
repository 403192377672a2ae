package archetype

import "testing"

func TestScoreRule(t *testing.T) {
	burn := NormalizedDeck{
		"lightning bolt": 4,
		"lava spike":     4,
		"mountain":       20,
	}

	tests := []struct {
		name          string
		rule          Rule
		deck          NormalizedDeck
		colors        ColorSet
		wantScore     float64
		wantQualified bool
	}{
		{
			name: "required group unsatisfied disqualifies",
			rule: Rule{
				Name:          "Burn",
				RequiredCards: [][]string{{"lightning bolt"}, {"eidolon of the great revel"}},
			},
			deck:          burn,
			wantQualified: false,
		},
		{
			name: "any member satisfies a disjunctive group",
			rule: Rule{
				Name:          "Burn",
				RequiredCards: [][]string{{"eidolon of the great revel", "lava spike"}},
			},
			deck:          burn,
			wantScore:     1.0,
			wantQualified: true,
		},
		{
			name: "no conditions scores full once required cards pass",
			rule: Rule{
				Name:          "Burn",
				RequiredCards: [][]string{{"lightning bolt"}},
			},
			deck:          burn,
			wantScore:     1.0,
			wantQualified: true,
		},
		{
			name: "score is fraction of satisfied conditions",
			rule: Rule{
				Name: "Burn",
				Conditions: []Condition{
					TotalCount{Cards: []string{"lightning bolt", "lava spike"}, Minimum: 8},
					AtLeast{Cards: []string{"goblin guide"}, Threshold: 4},
				},
			},
			deck:          burn,
			wantScore:     0.5,
			wantQualified: true,
		},
		{
			name: "all conditions satisfied",
			rule: Rule{
				Name: "Burn",
				Conditions: []Condition{
					TotalCount{Cards: []string{"lightning bolt", "lava spike"}, Minimum: 8},
					ColorIdentityEquals{Colors: ColorSetOf(Red)},
				},
			},
			deck:          burn,
			colors:        ColorSetOf(Red),
			wantScore:     1.0,
			wantQualified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, qualified := ScoreRule(tt.rule, tt.deck, tt.colors)
			if qualified != tt.wantQualified {
				t.Fatalf("qualified = %v, want %v", qualified, tt.wantQualified)
			}
			if qualified && score != tt.wantScore {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
		})
	}
}

// A deck satisfying a superset of a rule's conditions must never score below
// a deck satisfying a subset of them.
func TestScoreRuleMonotonic(t *testing.T) {
	rule := Rule{
		Name: "Burn",
		Conditions: []Condition{
			TotalCount{Cards: []string{"lightning bolt", "lava spike"}, Minimum: 8},
			AtLeast{Cards: []string{"goblin guide"}, Threshold: 4},
			ExcludesAll{Cards: []string{"island"}},
		},
	}

	subset := NormalizedDeck{"lightning bolt": 4, "lava spike": 4}
	superset := NormalizedDeck{"lightning bolt": 4, "lava spike": 4, "goblin guide": 4}

	low, _ := ScoreRule(rule, subset, 0)
	high, _ := ScoreRule(rule, superset, 0)
	if high < low {
		t.Errorf("superset scored %v, below subset score %v", high, low)
	}
}

func TestMatchFallback(t *testing.T) {
	tests := []struct {
		name string
		fb   Fallback
		deck NormalizedDeck
		want float64
	}{
		{
			name: "three of five common cards",
			fb:   Fallback{Name: "Soup", CommonCards: []string{"a", "b", "c", "d", "e"}},
			deck: NormalizedDeck{"a": 1, "c": 2, "e": 4},
			want: 0.6,
		},
		{
			name: "no overlap",
			fb:   Fallback{Name: "Soup", CommonCards: []string{"a", "b"}},
			deck: NormalizedDeck{"x": 4},
			want: 0,
		},
		{
			name: "empty common cards never matches",
			fb:   Fallback{Name: "Empty"},
			deck: NormalizedDeck{"a": 4},
			want: 0,
		},
		{
			name: "full overlap",
			fb:   Fallback{Name: "Soup", CommonCards: []string{"a", "b"}},
			deck: NormalizedDeck{"a": 1, "b": 1},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchFallback(tt.fb, tt.deck); got != tt.want {
				t.Errorf("MatchFallback() = %v, want %v", got, tt.want)
			}
		})
	}
}
