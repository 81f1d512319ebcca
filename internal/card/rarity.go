package card

import "strings"

// Rarities lists the recognized rarity values, in ascending order.
var Rarities = []string{"common", "uncommon", "rare", "mythic"}

// KnownRarity reports whether s is one of the recognized rarity values.
// Comparison is case-insensitive.
func KnownRarity(s string) bool {
	for _, r := range Rarities {
		if strings.EqualFold(s, r) {
			return true
		}
	}
	return false
}

// RarityName returns the display form of a rarity value ("rare" -> "Rare").
// Unrecognized values are passed through with the same capitalization rule
// so the badge still renders something sensible.
func RarityName(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
