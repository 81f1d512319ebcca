package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtworkSourcesPreferenceOrder(t *testing.T) {
	c := &Card{
		Images: ImageURIs{
			Small:  "small.png",
			Normal: "normal.png",
			Large:  "large.png",
		},
		ImageURL: "fallback.png",
	}
	assert.Equal(t, []string{"large.png", "normal.png", "small.png", "fallback.png"}, c.ArtworkSources())
}

func TestArtworkSourcesAllEmpty(t *testing.T) {
	c := &Card{}
	for _, source := range c.ArtworkSources() {
		assert.Empty(t, source)
	}
}

func TestHasStats(t *testing.T) {
	assert.True(t, (&Card{Power: "2", Toughness: "2"}).HasStats())
	assert.False(t, (&Card{Power: "2"}).HasStats())
	assert.False(t, (&Card{Toughness: "2"}).HasStats())
	assert.False(t, (&Card{}).HasStats())
}

func TestKnownRarity(t *testing.T) {
	for _, r := range []string{"common", "uncommon", "rare", "mythic", "Mythic", "RARE"} {
		assert.True(t, KnownRarity(r), "rarity %q", r)
	}
	for _, r := range []string{"", "timeshifted", "special"} {
		assert.False(t, KnownRarity(r), "rarity %q", r)
	}
}

func TestRarityName(t *testing.T) {
	assert.Equal(t, "Rare", RarityName("rare"))
	assert.Equal(t, "Mythic", RarityName("MYTHIC"))
	assert.Equal(t, "Timeshifted", RarityName("timeshifted"))
	assert.Equal(t, "", RarityName(""))
}
