package archetype

import "strings"

// DisplayName renders an archetype name for callers. Stored names sometimes
// arrive with a doubled color-code fragment at the front (e.g. "WUBWUB
// Control" from sources that prepend the code to an already-coded name); a
// doubled three-letter code collapses to the single canonical combination
// name. All display paths go through this helper so the same name never
// renders two different ways.
func DisplayName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 6 {
		return trimmed
	}

	head := strings.ToUpper(trimmed[:6])
	if head[:3] != head[3:] || !isColorCode(head[:3]) {
		return trimmed
	}
	if len(trimmed) > 6 && trimmed[6] != ' ' {
		return trimmed
	}

	combo := ColorSetName(ParseColorCode(head[:3]))
	if combo == "" {
		return trimmed
	}
	return combo + trimmed[6:]
}

// isColorCode reports whether every character is one of the WUBRG codes.
func isColorCode(s string) bool {
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune("WUBRG", rune(s[i])) {
			return false
		}
	}
	return true
}
