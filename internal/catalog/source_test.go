package catalog

import (
	"context"
	"testing"

	"github.com/ramonehamilton/deckscope/internal/archetype"
	"github.com/ramonehamilton/deckscope/internal/storage"
	"github.com/ramonehamilton/deckscope/internal/storage/models"
	"github.com/ramonehamilton/deckscope/internal/storage/repository"
)

// openTestStore opens an in-memory catalog store with the schema applied.
// The pool is capped at one connection so every query sees the same
// in-memory database.
func openTestStore(t *testing.T) repository.RuleRepository {
	t.Helper()

	config := storage.DefaultConfig(":memory:")
	config.MaxOpenConns = 1
	config.AutoMigrate = true

	db, err := storage.Open(config)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return repository.NewRuleRepository(db.Conn())
}

func TestSQLSourceLoadsSeededCatalog(t *testing.T) {
	repo := openTestStore(t)
	ctx := context.Background()

	if err := Seed(ctx, repo); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	catalog, err := NewSQLSource(repo, nil).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !catalog.HasFormat("modern") || !catalog.HasFormat("legacy") || !catalog.HasFormat("standard") {
		t.Fatalf("seeded formats missing, got %v", catalog.Formats())
	}

	rules := catalog.Rules("modern")
	if len(rules) != 2 {
		t.Fatalf("modern rules = %d, want 2", len(rules))
	}
	if rules[0].Name != "Burn" {
		t.Errorf("first modern rule = %q, want Burn (position order)", rules[0].Name)
	}

	// Decoded conditions classify as expected end to end.
	classifier := archetype.NewClassifier(catalog)
	result, err := classifier.Classify([]archetype.CardEntry{
		{Name: "Lightning Bolt", Quantity: 4},
		{Name: "Lava Spike", Quantity: 4},
		{Name: "Mountain", Quantity: 20},
	}, "modern")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Archetype != "Burn" || result.Method != archetype.MethodRule {
		t.Errorf("result = %+v, want Burn via rule tier", result)
	}
}

func TestSQLSourceQuarantinesMalformedRows(t *testing.T) {
	repo := openTestStore(t)
	ctx := context.Background()

	good := &models.ArchetypeRule{
		Format:        "modern",
		Name:          "Burn",
		RequiredCards: `[["Lightning Bolt"]]`,
		Conditions:    `[]`,
		Position:      1,
	}
	badJSON := &models.ArchetypeRule{
		Format:        "modern",
		Name:          "Broken",
		RequiredCards: `not json`,
		Conditions:    `[]`,
		Position:      2,
	}
	badKind := &models.ArchetypeRule{
		Format:        "modern",
		Name:          "Mystery",
		RequiredCards: `[]`,
		Conditions:    `[{"type":"sounds_like","cards":["Ponder"]}]`,
		Position:      3,
	}

	for _, rule := range []*models.ArchetypeRule{good, badJSON, badKind} {
		if err := repo.UpsertRule(ctx, rule); err != nil {
			t.Fatalf("UpsertRule(%s) error = %v", rule.Name, err)
		}
	}

	catalog, err := NewSQLSource(repo, nil).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	rules := catalog.Rules("modern")
	if len(rules) != 1 || rules[0].Name != "Burn" {
		t.Errorf("rules = %+v, want only the well-formed Burn rule", rules)
	}
}

func TestDecodeCondition(t *testing.T) {
	tests := []struct {
		name    string
		raw     models.RuleCondition
		wantErr bool
	}{
		{
			name: "at least",
			raw:  models.RuleCondition{Type: "at_least", Cards: []string{"Ponder"}, Threshold: 4},
		},
		{
			name: "total count",
			raw:  models.RuleCondition{Type: "total_count", Cards: []string{"Ponder"}, Minimum: 8},
		},
		{
			name: "color identity",
			raw:  models.RuleCondition{Type: "color_identity_equals", Colors: "UR"},
		},
		{
			name: "excludes all",
			raw:  models.RuleCondition{Type: "excludes_all", Cards: []string{"Island"}},
		},
		{
			name:    "unknown type rejected",
			raw:     models.RuleCondition{Type: "regex_match", Cards: []string{"Ponder"}},
			wantErr: true,
		},
		{
			name:    "at least without cards rejected",
			raw:     models.RuleCondition{Type: "at_least", Threshold: 4},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := decodeCondition(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeCondition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cond == nil {
				t.Error("decodeCondition() returned nil condition without error")
			}
		})
	}
}
