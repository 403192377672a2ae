// Package repository contains the data-access layer for the catalog store.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ramonehamilton/deckscope/internal/storage/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// RuleRepository handles database operations for archetype rules and
// fallback definitions.
type RuleRepository interface {
	// ListFormats returns every format that has at least one rule or
	// fallback, sorted.
	ListFormats(ctx context.Context) ([]string, error)

	// ListRules returns the rules for a format ordered by position.
	ListRules(ctx context.Context, format string) ([]*models.ArchetypeRule, error)

	// ListAllRules returns every rule ordered by format then position.
	ListAllRules(ctx context.Context) ([]*models.ArchetypeRule, error)

	// ListFallbacks returns the fallbacks for a format ordered by position.
	ListFallbacks(ctx context.Context, format string) ([]*models.ArchetypeFallback, error)

	// ListAllFallbacks returns every fallback ordered by format then position.
	ListAllFallbacks(ctx context.Context) ([]*models.ArchetypeFallback, error)

	// UpsertRule inserts a rule or replaces the one with the same format
	// and name.
	UpsertRule(ctx context.Context, rule *models.ArchetypeRule) error

	// UpsertFallback inserts a fallback or replaces the one with the same
	// format and name.
	UpsertFallback(ctx context.Context, fb *models.ArchetypeFallback) error

	// DeleteRule removes a rule by format and name.
	DeleteRule(ctx context.Context, format, name string) error
}

// ruleRepository is the concrete implementation of RuleRepository.
type ruleRepository struct {
	db *sql.DB
}

// NewRuleRepository creates a new rule repository.
func NewRuleRepository(db *sql.DB) RuleRepository {
	return &ruleRepository{db: db}
}

// ListFormats returns every format that has at least one rule or fallback.
func (r *ruleRepository) ListFormats(ctx context.Context) ([]string, error) {
	query := `
		SELECT format FROM archetype_rules
		UNION
		SELECT format FROM archetype_fallbacks
		ORDER BY format
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list formats: %w", err)
	}
	defer rows.Close()

	var formats []string
	for rows.Next() {
		var format string
		if err := rows.Scan(&format); err != nil {
			return nil, fmt.Errorf("failed to scan format: %w", err)
		}
		formats = append(formats, format)
	}
	return formats, rows.Err()
}

// ListRules returns the rules for a format ordered by position.
func (r *ruleRepository) ListRules(ctx context.Context, format string) ([]*models.ArchetypeRule, error) {
	query := `
		SELECT id, format, name, required_cards, conditions, position, created_at, updated_at
		FROM archetype_rules
		WHERE format = ?
		ORDER BY position, id
	`
	return r.scanRules(ctx, query, format)
}

// ListAllRules returns every rule ordered by format then position.
func (r *ruleRepository) ListAllRules(ctx context.Context) ([]*models.ArchetypeRule, error) {
	query := `
		SELECT id, format, name, required_cards, conditions, position, created_at, updated_at
		FROM archetype_rules
		ORDER BY format, position, id
	`
	return r.scanRules(ctx, query)
}

func (r *ruleRepository) scanRules(ctx context.Context, query string, args ...any) ([]*models.ArchetypeRule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query archetype rules: %w", err)
	}
	defer rows.Close()

	var rules []*models.ArchetypeRule
	for rows.Next() {
		rule := &models.ArchetypeRule{}
		if err := rows.Scan(
			&rule.ID,
			&rule.Format,
			&rule.Name,
			&rule.RequiredCards,
			&rule.Conditions,
			&rule.Position,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan archetype rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// ListFallbacks returns the fallbacks for a format ordered by position.
func (r *ruleRepository) ListFallbacks(ctx context.Context, format string) ([]*models.ArchetypeFallback, error) {
	query := `
		SELECT id, format, name, common_cards, threshold, position, created_at, updated_at
		FROM archetype_fallbacks
		WHERE format = ?
		ORDER BY position, id
	`
	return r.scanFallbacks(ctx, query, format)
}

// ListAllFallbacks returns every fallback ordered by format then position.
func (r *ruleRepository) ListAllFallbacks(ctx context.Context) ([]*models.ArchetypeFallback, error) {
	query := `
		SELECT id, format, name, common_cards, threshold, position, created_at, updated_at
		FROM archetype_fallbacks
		ORDER BY format, position, id
	`
	return r.scanFallbacks(ctx, query)
}

func (r *ruleRepository) scanFallbacks(ctx context.Context, query string, args ...any) ([]*models.ArchetypeFallback, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query archetype fallbacks: %w", err)
	}
	defer rows.Close()

	var fbs []*models.ArchetypeFallback
	for rows.Next() {
		fb := &models.ArchetypeFallback{}
		if err := rows.Scan(
			&fb.ID,
			&fb.Format,
			&fb.Name,
			&fb.CommonCards,
			&fb.Threshold,
			&fb.Position,
			&fb.CreatedAt,
			&fb.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan archetype fallback: %w", err)
		}
		fbs = append(fbs, fb)
	}
	return fbs, rows.Err()
}

// UpsertRule inserts a rule or replaces the one with the same format and name.
func (r *ruleRepository) UpsertRule(ctx context.Context, rule *models.ArchetypeRule) error {
	query := `
		INSERT INTO archetype_rules (format, name, required_cards, conditions, position)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (format, name) DO UPDATE SET
			required_cards = excluded.required_cards,
			conditions = excluded.conditions,
			position = excluded.position,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		rule.Format,
		rule.Name,
		rule.RequiredCards,
		rule.Conditions,
		rule.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert archetype rule: %w", err)
	}
	return nil
}

// UpsertFallback inserts a fallback or replaces the one with the same format
// and name.
func (r *ruleRepository) UpsertFallback(ctx context.Context, fb *models.ArchetypeFallback) error {
	query := `
		INSERT INTO archetype_fallbacks (format, name, common_cards, threshold, position)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (format, name) DO UPDATE SET
			common_cards = excluded.common_cards,
			threshold = excluded.threshold,
			position = excluded.position,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		fb.Format,
		fb.Name,
		fb.CommonCards,
		fb.Threshold,
		fb.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert archetype fallback: %w", err)
	}
	return nil
}

// DeleteRule removes a rule by format and name.
func (r *ruleRepository) DeleteRule(ctx context.Context, format, name string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM archetype_rules WHERE format = ? AND name = ?`, format, name)
	if err != nil {
		return fmt.Errorf("failed to delete archetype rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("archetype rule %s/%s: %w", format, name, ErrNotFound)
	}
	return nil
}
