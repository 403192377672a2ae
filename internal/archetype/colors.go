package archetype

import "strings"

// Color is one of the five game colors.
type Color uint8

const (
	White Color = 1 << iota
	Blue
	Black
	Red
	Green
)

// ColorSet is a subset of the five colors, stored as a bitmask. The zero
// value is the colorless set.
type ColorSet uint8

// Add returns the set with the given color included.
func (s ColorSet) Add(c Color) ColorSet {
	return s | ColorSet(c)
}

// Has reports whether the set contains the given color.
func (s ColorSet) Has(c Color) bool {
	return s&ColorSet(c) != 0
}

// Size returns the number of colors in the set.
func (s ColorSet) Size() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// String returns the set in canonical WUBRG code order, or "C" for colorless.
func (s ColorSet) String() string {
	var b strings.Builder
	for _, cc := range colorCodes {
		if s.Has(cc.color) {
			b.WriteByte(cc.code)
		}
	}
	if b.Len() == 0 {
		return "C"
	}
	return b.String()
}

var colorCodes = []struct {
	code  byte
	color Color
}{
	{'W', White},
	{'U', Blue},
	{'B', Black},
	{'R', Red},
	{'G', Green},
}

// ColorSetOf builds a set from any combination of colors.
func ColorSetOf(colors ...Color) ColorSet {
	var s ColorSet
	for _, c := range colors {
		s = s.Add(c)
	}
	return s
}

// ParseColorCode converts a WUBRG code string such as "UR" or "wub" into a
// ColorSet. Unrecognized letters are ignored.
func ParseColorCode(code string) ColorSet {
	var s ColorSet
	for _, r := range strings.ToUpper(code) {
		for _, cc := range colorCodes {
			if byte(r) == cc.code {
				s = s.Add(cc.color)
			}
		}
	}
	return s
}

// colorSetNames covers every multi-color combination with its traditional
// guild, shard, or wedge name. Keys are bitmasks, so lookup is independent of
// the order colors were discovered in.
var colorSetNames = map[ColorSet]string{
	ColorSetOf(White):        "Mono White",
	ColorSetOf(Blue):         "Mono Blue",
	ColorSetOf(Black):        "Mono Black",
	ColorSetOf(Red):          "Mono Red",
	ColorSetOf(Green):        "Mono Green",
	ColorSetOf(White, Blue):  "Azorius",
	ColorSetOf(Blue, Black):  "Dimir",
	ColorSetOf(Black, Red):   "Rakdos",
	ColorSetOf(Red, Green):   "Gruul",
	ColorSetOf(Green, White): "Selesnya",
	ColorSetOf(White, Black): "Orzhov",
	ColorSetOf(Blue, Red):    "Izzet",
	ColorSetOf(Black, Green): "Golgari",
	ColorSetOf(Red, White):   "Boros",
	ColorSetOf(Green, Blue):  "Simic",

	ColorSetOf(Green, White, Blue):  "Bant",
	ColorSetOf(White, Blue, Black):  "Esper",
	ColorSetOf(Blue, Black, Red):    "Grixis",
	ColorSetOf(Black, Red, Green):   "Jund",
	ColorSetOf(Red, Green, White):   "Naya",
	ColorSetOf(White, Black, Green): "Abzan",
	ColorSetOf(Blue, Red, White):    "Jeskai",
	ColorSetOf(Black, Green, Blue):  "Sultai",
	ColorSetOf(Red, White, Black):   "Mardu",
	ColorSetOf(Green, Blue, Red):    "Temur",
}

// ColorSetName returns the display name for any of the 32 color subsets:
// "Colorless", mono names, the ten guilds, the ten shards and wedges, and
// fixed "4c"/"5c" labels for four- and five-color sets.
func ColorSetName(s ColorSet) string {
	switch s.Size() {
	case 0:
		return "Colorless"
	case 4:
		return "4c"
	case 5:
		return "5c"
	}
	return colorSetNames[s]
}

// basicLandColors maps the canonical basic land names to the color they
// produce. Snow-covered basics canonicalize to distinct names and are listed
// separately.
var basicLandColors = map[string]Color{
	"plains":   White,
	"island":   Blue,
	"swamp":    Black,
	"mountain": Red,
	"forest":   Green,

	"snow-covered plains":   White,
	"snow-covered island":   Blue,
	"snow-covered swamp":    Black,
	"snow-covered mountain": Red,
	"snow-covered forest":   Green,
}

// dualLandColors is a fixed table of known two-color lands, keyed by
// canonical name. It covers the original duals and the shocklands; cards
// outside this table contribute nothing to color identity.
var dualLandColors = map[string]ColorSet{
	// Original dual lands.
	"tundra":           ColorSetOf(White, Blue),
	"underground sea":  ColorSetOf(Blue, Black),
	"badlands":         ColorSetOf(Black, Red),
	"taiga":            ColorSetOf(Red, Green),
	"savannah":         ColorSetOf(Green, White),
	"scrubland":        ColorSetOf(White, Black),
	"volcanic island":  ColorSetOf(Blue, Red),
	"bayou":            ColorSetOf(Black, Green),
	"plateau":          ColorSetOf(Red, White),
	"tropical island":  ColorSetOf(Green, Blue),

	// Shocklands.
	"hallowed fountain": ColorSetOf(White, Blue),
	"watery grave":      ColorSetOf(Blue, Black),
	"blood crypt":       ColorSetOf(Black, Red),
	"stomping ground":   ColorSetOf(Red, Green),
	"temple garden":     ColorSetOf(Green, White),
	"godless shrine":    ColorSetOf(White, Black),
	"steam vents":       ColorSetOf(Blue, Red),
	"overgrown tomb":    ColorSetOf(Black, Green),
	"sacred foundry":    ColorSetOf(Red, White),
	"breeding pool":     ColorSetOf(Green, Blue),
}

// ResolveColors derives a deck's color identity from its mana sources. Basic
// lands contribute their single color and known dual lands contribute both of
// theirs; every other card is ignored. Identity therefore reflects the mana
// base only, not spell color indicators.
func ResolveColors(deck NormalizedDeck) ColorSet {
	var s ColorSet
	for name, qty := range deck {
		if qty <= 0 {
			continue
		}
		if c, ok := basicLandColors[name]; ok {
			s = s.Add(c)
		}
		if dual, ok := dualLandColors[name]; ok {
			s |= dual
		}
	}
	return s
}
