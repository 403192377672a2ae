package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ramonehamilton/deckscope/internal/archetype"
)

// Provider holds the currently published catalog and refreshes it on demand.
// Current is a single atomic load, so classification never waits on a
// refresh; a refresh that fails leaves the previous catalog in place.
type Provider struct {
	source  Source
	logger  *slog.Logger
	current atomic.Pointer[archetype.Catalog]
}

// NewProvider creates a provider and performs the initial load.
func NewProvider(ctx context.Context, source Source, logger *slog.Logger) (*Provider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	p := &Provider{source: source, logger: logger}
	if err := p.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("initial catalog load failed: %w", err)
	}
	return p, nil
}

// Current returns the published catalog. The returned value is immutable and
// remains valid even if a refresh publishes a newer one.
func (p *Provider) Current() *archetype.Catalog {
	return p.current.Load()
}

// Classifier returns a classifier over the currently published catalog.
func (p *Provider) Classifier() *archetype.Classifier {
	return archetype.NewClassifier(p.Current())
}

// Refresh loads a fresh catalog from the source and publishes it with a
// single pointer swap.
func (p *Provider) Refresh(ctx context.Context) error {
	catalog, err := p.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}

	p.current.Store(catalog)
	p.logger.Info("catalog refreshed", "formats", len(catalog.Formats()))
	return nil
}
