// Package catalog loads archetype definitions from the catalog store and
// publishes them as immutable archetype.Catalog values. Refreshing builds a
// whole new catalog and swaps the reference, so concurrent classification
// never observes a half-updated rule set.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ramonehamilton/deckscope/internal/archetype"
	"github.com/ramonehamilton/deckscope/internal/storage/models"
	"github.com/ramonehamilton/deckscope/internal/storage/repository"
)

// Source loads a fully-built catalog from wherever the rules live. The
// classifier core only ever sees the materialized result.
type Source interface {
	Load(ctx context.Context) (*archetype.Catalog, error)
}

// SQLSource loads the catalog from the SQLite store. Malformed rows are
// quarantined at load time: logged and skipped, never handed to evaluation.
type SQLSource struct {
	repo   repository.RuleRepository
	logger *slog.Logger
}

// NewSQLSource creates a catalog source over a rule repository.
func NewSQLSource(repo repository.RuleRepository, logger *slog.Logger) *SQLSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLSource{repo: repo, logger: logger}
}

// Load reads every rule and fallback row and decodes them into the closed
// condition types.
func (s *SQLSource) Load(ctx context.Context) (*archetype.Catalog, error) {
	ruleRows, err := s.repo.ListAllRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load archetype rules: %w", err)
	}

	fbRows, err := s.repo.ListAllFallbacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load archetype fallbacks: %w", err)
	}

	rules := make(map[string][]archetype.Rule)
	for _, row := range ruleRows {
		rule, err := decodeRule(row)
		if err != nil {
			s.logger.Warn("quarantined malformed archetype rule",
				"format", row.Format, "name", row.Name, "error", err)
			continue
		}
		rules[row.Format] = append(rules[row.Format], rule)
	}

	fallbacks := make(map[string][]archetype.Fallback)
	for _, row := range fbRows {
		fb, err := decodeFallback(row)
		if err != nil {
			s.logger.Warn("quarantined malformed archetype fallback",
				"format", row.Format, "name", row.Name, "error", err)
			continue
		}
		fallbacks[row.Format] = append(fallbacks[row.Format], fb)
	}

	return archetype.NewCatalog(rules, fallbacks), nil
}

// decodeRule converts one loosely-typed store row into a typed rule.
func decodeRule(row *models.ArchetypeRule) (archetype.Rule, error) {
	var required [][]string
	if err := json.Unmarshal([]byte(row.RequiredCards), &required); err != nil {
		return archetype.Rule{}, fmt.Errorf("invalid required_cards: %w", err)
	}

	var raw []models.RuleCondition
	if err := json.Unmarshal([]byte(row.Conditions), &raw); err != nil {
		return archetype.Rule{}, fmt.Errorf("invalid conditions: %w", err)
	}

	conditions := make([]archetype.Condition, 0, len(raw))
	for i, rc := range raw {
		cond, err := decodeCondition(rc)
		if err != nil {
			return archetype.Rule{}, fmt.Errorf("condition %d: %w", i, err)
		}
		conditions = append(conditions, cond)
	}

	return archetype.Rule{
		Name:          row.Name,
		RequiredCards: required,
		Conditions:    conditions,
	}, nil
}

// decodeCondition maps a raw condition row onto the closed variant set. An
// unrecognized type rejects the whole rule here rather than surfacing later
// as a silently-unsatisfiable predicate.
func decodeCondition(rc models.RuleCondition) (archetype.Condition, error) {
	switch rc.Type {
	case "at_least":
		if len(rc.Cards) == 0 {
			return nil, fmt.Errorf("at_least condition lists no cards")
		}
		return archetype.AtLeast{Cards: rc.Cards, Threshold: rc.Threshold}, nil
	case "total_count":
		if len(rc.Cards) == 0 {
			return nil, fmt.Errorf("total_count condition lists no cards")
		}
		return archetype.TotalCount{Cards: rc.Cards, Minimum: rc.Minimum}, nil
	case "color_identity_equals":
		return archetype.ColorIdentityEquals{Colors: archetype.ParseColorCode(rc.Colors)}, nil
	case "excludes_all":
		return archetype.ExcludesAll{Cards: rc.Cards}, nil
	default:
		return nil, fmt.Errorf("unknown condition type %q", rc.Type)
	}
}

func decodeFallback(row *models.ArchetypeFallback) (archetype.Fallback, error) {
	var cards []string
	if err := json.Unmarshal([]byte(row.CommonCards), &cards); err != nil {
		return archetype.Fallback{}, fmt.Errorf("invalid common_cards: %w", err)
	}
	return archetype.Fallback{
		Name:        row.Name,
		CommonCards: cards,
		Threshold:   row.Threshold,
	}, nil
}
