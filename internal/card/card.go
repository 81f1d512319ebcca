package card

// Card represents a single trading card as supplied by the caller.
// All fields beyond Name are optional; the viewer renders nothing for
// fields that are absent. Components never mutate a Card.
type Card struct {
	ID        string // Collection-local identifier (e.g., lightning-bolt)
	Name      string // Card name
	ManaCost  string // Brace notation (e.g., {2}{U}{U})
	Type      string // Type line (e.g., Creature — Elf Druid)
	Rarity    string // common, uncommon, rare or mythic
	SetCode   string // Set code (e.g., LEA)
	SetName   string // Full set name
	Text      string // Rules text
	Power     string // Creature power, kept as string ("*" is legal)
	Toughness string // Creature toughness
	Loyalty   string // Planeswalker loyalty
	Images    ImageURIs
	ImageURL  string // Generic fallback when Images is empty
}

// ImageURIs holds artwork URLs at the resolutions a card source may offer.
type ImageURIs struct {
	Small  string
	Normal string
	Large  string
}

// ArtworkSources returns the artwork candidates in preference order:
// large, normal, small, then the generic fallback field. Empty entries
// are included; callers pick the first non-empty one.
func (c *Card) ArtworkSources() []string {
	return []string{c.Images.Large, c.Images.Normal, c.Images.Small, c.ImageURL}
}

// HasStats reports whether the card carries a power/toughness pair.
func (c *Card) HasStats() bool {
	return c.Power != "" && c.Toughness != ""
}
