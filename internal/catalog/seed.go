package catalog

import (
	"context"
	"fmt"

	"github.com/ramonehamilton/deckscope/internal/storage/models"
	"github.com/ramonehamilton/deckscope/internal/storage/repository"
)

// Seed installs a small starter catalog so a fresh store classifies
// something sensible out of the box. Existing rows with the same format and
// name are replaced.
func Seed(ctx context.Context, repo repository.RuleRepository) error {
	rules := []*models.ArchetypeRule{
		{
			Format:        "modern",
			Name:          "Burn",
			RequiredCards: `[["Lightning Bolt","Lava Spike"]]`,
			Conditions:    `[{"type":"total_count","cards":["Lightning Bolt","Lava Spike","Goblin Guide"],"minimum":8}]`,
			Position:      1,
		},
		{
			Format:        "modern",
			Name:          "Mono Green Tron",
			RequiredCards: `[["Urza's Tower"],["Urza's Mine"],["Urza's Power Plant"]]`,
			Conditions:    `[{"type":"at_least","cards":["Karn Liberated","Karn, the Great Creator"],"threshold":2}]`,
			Position:      2,
		},
		{
			Format:        "legacy",
			Name:          "Izzet Delver",
			RequiredCards: `[["Delver of Secrets"],["Brainstorm"]]`,
			Conditions:    `[{"type":"color_identity_equals","colors":"UR"},{"type":"at_least","cards":["Daze","Force of Will"],"threshold":4}]`,
			Position:      1,
		},
		{
			Format:        "standard",
			Name:          "Mono Red Aggro",
			RequiredCards: `[["Monastery Swiftspear","Kumano Faces Kakkazan"]]`,
			Conditions:    `[{"type":"color_identity_equals","colors":"R"},{"type":"excludes_all","cards":["Island","Plains","Swamp","Forest"]}]`,
			Position:      1,
		},
	}

	fallbacks := []*models.ArchetypeFallback{
		{
			Format:      "modern",
			Name:        "Prowess",
			CommonCards: `["Monastery Swiftspear","Soul-Scar Mage","Lava Dart","Mishra's Bauble","Lightning Bolt"]`,
			Threshold:   0.4,
			Position:    1,
		},
		{
			Format:      "legacy",
			Name:        "Blue Tempo",
			CommonCards: `["Brainstorm","Ponder","Daze","Force of Will","Wasteland"]`,
			Threshold:   0.4,
			Position:    1,
		},
	}

	for _, rule := range rules {
		if err := repo.UpsertRule(ctx, rule); err != nil {
			return fmt.Errorf("failed to seed rule %s/%s: %w", rule.Format, rule.Name, err)
		}
	}
	for _, fb := range fallbacks {
		if err := repo.UpsertFallback(ctx, fb); err != nil {
			return fmt.Errorf("failed to seed fallback %s/%s: %w", fb.Format, fb.Name, err)
		}
	}
	return nil
}
