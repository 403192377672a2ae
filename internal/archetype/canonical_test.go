package archetype

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "lowercases and trims",
			raw:  "  Lightning Bolt  ",
			want: "lightning bolt",
		},
		{
			name: "keeps first face of split card",
			raw:  "Fire // Ice",
			want: "fire",
		},
		{
			name: "split card without spaces",
			raw:  "Wear//Tear",
			want: "wear",
		},
		{
			name: "strips diacritics",
			raw:  "Lim-Dûl's Vault",
			want: "lim-duls vault",
		},
		{
			name: "removes punctuation",
			raw:  "Borrowing 100,000 Arrows",
			want: "borrowing 100000 arrows",
		},
		{
			name: "apostrophe and comma",
			raw:  "Urza's Saga, Part Two!",
			want: "urzas saga part two",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.raw)
			if got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Lightning Bolt",
		"Fire // Ice",
		"Lim-Dûl's Vault",
		"Ætherize",
		"",
		"Borrowing 100,000 Arrows",
	}

	for _, raw := range inputs {
		once := Canonicalize(raw)
		twice := Canonicalize(once)
		if once != twice {
			t.Errorf("Canonicalize not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizeDeck(t *testing.T) {
	entries := []CardEntry{
		{Name: "Lightning Bolt", Quantity: 2},
		{Name: "LIGHTNING BOLT", Quantity: 2},
		{Name: "Mountain", Quantity: 20},
		{Name: "", Quantity: 4},
		{Name: "Shock", Quantity: 0},
	}

	deck := NormalizeDeck(entries)

	if got := deck["lightning bolt"]; got != 4 {
		t.Errorf("lightning bolt quantity = %d, want 4 (case variants summed)", got)
	}
	if got := deck["mountain"]; got != 20 {
		t.Errorf("mountain quantity = %d, want 20", got)
	}
	if _, ok := deck[""]; ok {
		t.Error("empty names should be dropped")
	}
	if _, ok := deck["shock"]; ok {
		t.Error("non-positive quantities should be dropped")
	}
	if got := deck.TotalCards(); got != 24 {
		t.Errorf("TotalCards() = %d, want 24", got)
	}
}
