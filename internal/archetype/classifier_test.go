package archetype

import (
	"errors"
	"testing"
)

func testCatalog() *Catalog {
	return NewCatalog(
		map[string][]Rule{
			"modern": {
				{
					Name: "Burn",
					Conditions: []Condition{
						TotalCount{Cards: []string{"Lightning Bolt", "Lava Spike", "Goblin Guide"}, Minimum: 8},
					},
				},
				{
					Name:          "Tron",
					RequiredCards: [][]string{{"Urza's Tower"}, {"Urza's Mine"}, {"Urza's Power Plant"}},
				},
			},
			"pauper": {},
		},
		map[string][]Fallback{
			"modern": {
				{Name: "Delver Tempo", CommonCards: []string{"Delver of Secrets", "Brainstorm", "Daze", "Counterspell", "Ponder"}},
			},
		},
	)
}

func TestClassifyRuleTier(t *testing.T) {
	c := NewClassifier(testCatalog())

	deck := []CardEntry{
		{Name: "Lightning Bolt", Quantity: 4},
		{Name: "Lava Spike", Quantity: 4},
		{Name: "Mountain", Quantity: 20},
	}

	result, err := c.Classify(deck, "modern")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Archetype != "Burn" {
		t.Errorf("archetype = %q, want %q", result.Archetype, "Burn")
	}
	if result.Method != MethodRule {
		t.Errorf("method = %q, want %q", result.Method, MethodRule)
	}
	if result.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", result.Confidence)
	}
}

func TestClassifyColorIdentityTier(t *testing.T) {
	c := NewClassifier(testCatalog())

	deck := []CardEntry{{Name: "Mountain", Quantity: 20}}

	result, err := c.Classify(deck, "modern")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Archetype != "Mono Red Deck" {
		t.Errorf("archetype = %q, want %q", result.Archetype, "Mono Red Deck")
	}
	if result.Method != MethodColorIdentity {
		t.Errorf("method = %q, want %q", result.Method, MethodColorIdentity)
	}
	if result.Confidence != 0.3 {
		t.Errorf("confidence = %v, want 0.3", result.Confidence)
	}
}

func TestClassifyFallbackTier(t *testing.T) {
	c := NewClassifier(testCatalog())

	deck := []CardEntry{
		{Name: "Delver of Secrets", Quantity: 4},
		{Name: "Brainstorm", Quantity: 4},
		{Name: "Daze", Quantity: 4},
		{Name: "Island", Quantity: 16},
	}

	result, err := c.Classify(deck, "modern")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Archetype != "Delver Tempo" {
		t.Errorf("archetype = %q, want %q", result.Archetype, "Delver Tempo")
	}
	if result.Method != MethodFallback {
		t.Errorf("method = %q, want %q", result.Method, MethodFallback)
	}
	if result.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", result.Confidence)
	}
}

func TestClassifyUnknownFormat(t *testing.T) {
	c := NewClassifier(testCatalog())

	_, err := c.Classify([]CardEntry{{Name: "Mountain", Quantity: 20}}, "legacyy")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Classify() error = %v, want ErrUnknownFormat", err)
	}
}

func TestClassifyEmptyFormatProceeds(t *testing.T) {
	// A known format with zero rules is valid and falls through to tier 3.
	c := NewClassifier(testCatalog())

	result, err := c.Classify(nil, "pauper")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Archetype != "Colorless Deck" {
		t.Errorf("archetype = %q, want %q", result.Archetype, "Colorless Deck")
	}
	if result.Method != MethodColorIdentity {
		t.Errorf("method = %q, want %q", result.Method, MethodColorIdentity)
	}
}

func TestClassifyTieBreaksLexicographically(t *testing.T) {
	catalog := NewCatalog(map[string][]Rule{
		"modern": {
			{Name: "Zoo", RequiredCards: [][]string{{"Wild Nacatl"}}},
			{Name: "Aggro Zoo", RequiredCards: [][]string{{"Wild Nacatl"}}},
		},
	}, nil)
	c := NewClassifier(catalog)

	result, err := c.Classify([]CardEntry{{Name: "Wild Nacatl", Quantity: 4}}, "modern")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Archetype != "Aggro Zoo" {
		t.Errorf("archetype = %q, want lexicographic winner %q", result.Archetype, "Aggro Zoo")
	}
}

func TestClassifyBelowThresholdFallsThrough(t *testing.T) {
	catalog := NewCatalog(map[string][]Rule{
		"modern": {
			{
				Name: "Control",
				Conditions: []Condition{
					AtLeast{Cards: []string{"Counterspell"}, Threshold: 4},
					AtLeast{Cards: []string{"Supreme Verdict"}, Threshold: 2},
					AtLeast{Cards: []string{"Teferi, Hero of Dominaria"}, Threshold: 2},
				},
			},
		},
	}, nil)
	c := NewClassifier(catalog)

	// One of three conditions met leaves the score well under acceptance.
	deck := []CardEntry{
		{Name: "Counterspell", Quantity: 4},
		{Name: "Island", Quantity: 20},
	}

	result, err := c.Classify(deck, "modern")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Method != MethodColorIdentity {
		t.Errorf("method = %q, want %q", result.Method, MethodColorIdentity)
	}
	if result.Archetype != "Mono Blue Deck" {
		t.Errorf("archetype = %q, want %q", result.Archetype, "Mono Blue Deck")
	}
}
