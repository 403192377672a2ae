// Package models defines the row shapes of the catalog store.
package models

import "time"

// ArchetypeRule is one row of the archetype_rules table. RequiredCards and
// Conditions are stored as JSON text and decoded into typed values by the
// catalog loader.
type ArchetypeRule struct {
	ID            int64     `json:"id"`
	Format        string    `json:"format"`
	Name          string    `json:"name"`
	RequiredCards string    `json:"required_cards"`
	Conditions    string    `json:"conditions"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ArchetypeFallback is one row of the archetype_fallbacks table.
type ArchetypeFallback struct {
	ID          int64     `json:"id"`
	Format      string    `json:"format"`
	Name        string    `json:"name"`
	CommonCards string    `json:"common_cards"`
	Threshold   float64   `json:"threshold"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RuleCondition is the loosely-typed JSON shape of one condition inside an
// ArchetypeRule row, before decoding into the classifier's closed variants.
type RuleCondition struct {
	Type      string   `json:"type"`
	Cards     []string `json:"cards,omitempty"`
	Threshold int      `json:"threshold,omitempty"`
	Minimum   int      `json:"minimum,omitempty"`
	Colors    string   `json:"colors,omitempty"`
}
