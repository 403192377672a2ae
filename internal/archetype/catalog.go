package archetype

import "sort"

// Catalog holds the archetype rules and fallbacks for every known format.
// It is immutable once built, so arbitrarily many classifications may read
// it concurrently without locking. Refreshing means building a new Catalog
// and swapping the reference, never mutating in place.
type Catalog struct {
	rules     map[string][]Rule
	fallbacks map[string][]Fallback
}

// NewCatalog builds a catalog from per-format rule and fallback lists. Card
// names inside rules and fallbacks are canonicalized here so every later
// lookup happens in the shared key space, and fallbacks without an explicit
// threshold get the default. A format present in either map is known to the
// catalog; a known format with zero rules is a legitimate state.
func NewCatalog(rules map[string][]Rule, fallbacks map[string][]Fallback) *Catalog {
	c := &Catalog{
		rules:     make(map[string][]Rule, len(rules)),
		fallbacks: make(map[string][]Fallback, len(fallbacks)),
	}

	for format, list := range rules {
		out := make([]Rule, len(list))
		for i, r := range list {
			out[i] = Rule{
				Name:          r.Name,
				RequiredCards: canonicalizeGroups(r.RequiredCards),
				Conditions:    canonicalizeConditions(r.Conditions),
			}
		}
		c.rules[format] = out
	}

	for format, list := range fallbacks {
		out := make([]Fallback, len(list))
		for i, fb := range list {
			threshold := fb.Threshold
			if threshold <= 0 {
				threshold = DefaultFallbackThreshold
			}
			out[i] = Fallback{
				Name:        fb.Name,
				CommonCards: canonicalizeList(fb.CommonCards),
				Threshold:   threshold,
			}
		}
		c.fallbacks[format] = out
		if _, ok := c.rules[format]; !ok {
			c.rules[format] = nil
		}
	}

	return c
}

// HasFormat reports whether the catalog knows the given format.
func (c *Catalog) HasFormat(format string) bool {
	_, ok := c.rules[format]
	return ok
}

// Rules returns the ordered archetype rules for a format.
func (c *Catalog) Rules(format string) []Rule {
	return c.rules[format]
}

// Fallbacks returns the ordered fallback definitions for a format.
func (c *Catalog) Fallbacks(format string) []Fallback {
	return c.fallbacks[format]
}

// Formats returns the known formats in sorted order.
func (c *Catalog) Formats() []string {
	formats := make([]string, 0, len(c.rules))
	for format := range c.rules {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

func canonicalizeList(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Canonicalize(n)
	}
	return out
}

func canonicalizeGroups(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = canonicalizeList(g)
	}
	return out
}

func canonicalizeConditions(conds []Condition) []Condition {
	out := make([]Condition, len(conds))
	for i, cond := range conds {
		switch c := cond.(type) {
		case AtLeast:
			out[i] = AtLeast{Cards: canonicalizeList(c.Cards), Threshold: c.Threshold}
		case TotalCount:
			out[i] = TotalCount{Cards: canonicalizeList(c.Cards), Minimum: c.Minimum}
		case ExcludesAll:
			out[i] = ExcludesAll{Cards: canonicalizeList(c.Cards)}
		default:
			out[i] = cond
		}
	}
	return out
}
