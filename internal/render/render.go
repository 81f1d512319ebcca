package render

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/manaview/internal/card"
	"github.com/arcanaland/manaview/internal/mana"
)

// Stable element identifiers for the rendered fragments. External test
// automation keys off these; their presence or absence per state is part
// of the observable contract.
const (
	ElemCardName         = "card-name"
	ElemManaCostRow      = "mana-cost-row"
	ElemTypeLine         = "type-line"
	ElemRarityBadge      = "rarity-badge"
	ElemSetLine          = "set-line"
	ElemRulesText        = "rules-text"
	ElemStats            = "stats"
	ElemImageRoot        = "image-viewer-root"
	ElemImagePlaceholder = "image-placeholder"
	ElemImageFallback    = "image-fallback"
)

// Fragment is one rendered card field, tagged with its element ID.
type Fragment struct {
	ID   string
	Text string
}

// rarityColors maps rarity values to badge styles. Unrecognized values
// fall back to the common style.
var rarityColors = map[string]*colorize.Color{
	"common":   colorize.New(colorize.FgWhite),
	"uncommon": colorize.New(colorize.FgHiCyan),
	"rare":     colorize.New(colorize.FgHiYellow),
	"mythic":   colorize.New(colorize.FgHiRed),
}

// CardFields maps a card's fields to display fragments. Absent optional
// fields produce no fragment. Rules text is wrapped to textWidth. The
// mapping is pure; the same card always yields the same fragments.
func CardFields(c *card.Card, textWidth int) []Fragment {
	var frags []Fragment

	frags = append(frags, Fragment{ElemCardName, colorize.New(colorize.Bold, colorize.FgHiWhite).Sprint(c.Name)})

	if row := mana.Render(c.ManaCost); row != "" {
		frags = append(frags, Fragment{ElemManaCostRow, row})
	}
	if c.Type != "" {
		frags = append(frags, Fragment{ElemTypeLine, c.Type})
	}
	if c.Rarity != "" {
		style, ok := rarityColors[strings.ToLower(c.Rarity)]
		if !ok {
			style = rarityColors["common"]
		}
		frags = append(frags, Fragment{ElemRarityBadge, style.Sprint(card.RarityName(c.Rarity))})
	}
	if c.SetCode != "" || c.SetName != "" {
		frags = append(frags, Fragment{ElemSetLine, setLine(c)})
	}
	if c.Text != "" {
		frags = append(frags, Fragment{ElemRulesText, strings.Join(wrapText(c.Text, textWidth), "\n")})
	}
	if c.HasStats() {
		frags = append(frags, Fragment{ElemStats, fmt.Sprintf("%s/%s", c.Power, c.Toughness)})
	} else if c.Loyalty != "" {
		frags = append(frags, Fragment{ElemStats, fmt.Sprintf("Loyalty: %s", c.Loyalty)})
	}

	return frags
}

func setLine(c *card.Card) string {
	switch {
	case c.SetName != "" && c.SetCode != "":
		return fmt.Sprintf("%s (%s)", c.SetName, strings.ToUpper(c.SetCode))
	case c.SetName != "":
		return c.SetName
	default:
		return strings.ToUpper(c.SetCode)
	}
}

// FragmentByID returns the fragment tagged with id, if present.
func FragmentByID(frags []Fragment, id string) (Fragment, bool) {
	for _, f := range frags {
		if f.ID == id {
			return f, true
		}
	}
	return Fragment{}, false
}

// wrapText wraps text to a specified width.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// VisibleWidth returns the printed width of a line, excluding escapes.
func VisibleWidth(s string) int {
	return len([]rune(stripANSI(s)))
}
