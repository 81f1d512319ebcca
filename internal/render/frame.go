package render

import (
	"strings"

	"github.com/arcanaland/manaview/internal/artwork"
)

// The artwork area always occupies the same footprint regardless of load
// state, so the metadata column never shifts when art arrives.

// ArtworkFrame returns the artwork area for the given load state, tagged
// with the element ID that identifies which state is on screen. The art
// string is only consulted in the Loaded state.
func ArtworkFrame(state artwork.State, art, cardName string, rows int) Fragment {
	switch state {
	case artwork.Loaded:
		return Fragment{ElemImageRoot, art}
	case artwork.Failed:
		return Fragment{ElemImageFallback, Fallback(cardName, rows)}
	default:
		return Fragment{ElemImagePlaceholder, Placeholder(rows)}
	}
}

// Placeholder renders the reserved artwork footprint while a load is in
// flight.
func Placeholder(rows int) string {
	return frame(rows, []string{"Loading artwork…"})
}

// Fallback renders the deterministic failure frame: an icon, the card
// name, and an unavailable notice.
func Fallback(cardName string, rows int) string {
	lines := []string{"🂠"}
	cols, _ := artwork.CellSize(rows)
	lines = append(lines, wrapText(cardName, cols-4)...)
	lines = append(lines, "artwork unavailable")
	return frame(rows, lines)
}

// frame draws a bordered box at the artwork footprint with the content
// lines vertically and horizontally centered. Content that overflows the
// box is truncated.
func frame(rows int, content []string) string {
	// A frame needs its two border rows.
	if rows < 3 {
		rows = 3
	}
	cols, _ := artwork.CellSize(rows)
	if cols < 4 {
		cols = 4
	}
	inner := cols - 2

	if len(content) > rows-2 {
		content = content[:rows-2]
	}
	top := (rows - 2 - len(content)) / 2

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", inner) + "┐\n")
	for i := 0; i < rows-2; i++ {
		line := ""
		if i >= top && i-top < len(content) {
			line = content[i-top]
		}
		if VisibleWidth(line) > inner {
			line = string([]rune(line)[:inner])
		}
		pad := inner - VisibleWidth(line)
		left := pad / 2
		b.WriteString("│" + strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left) + "│\n")
	}
	b.WriteString("└" + strings.Repeat("─", inner) + "┘\n")
	return b.String()
}

// Panel lays the artwork area out beside the card fragments, the way the
// metadata column sits to the right of the art in the terminal.
func Panel(art string, frags []Fragment) string {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if w := VisibleWidth(line); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	var infoLines []string
	for _, f := range frags {
		infoLines = append(infoLines, strings.Split(f.Text, "\n")...)
	}

	spacing := 4
	infoStart := maxArtWidth + spacing

	var b strings.Builder
	b.WriteString("\n")
	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		b.WriteString("  ")
		if i < len(artLines) {
			b.WriteString(artLines[i])
			b.WriteString(strings.Repeat(" ", infoStart-VisibleWidth(artLines[i])))
		} else {
			b.WriteString(strings.Repeat(" ", infoStart))
		}
		if i < len(infoLines) {
			b.WriteString(infoLines[i])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
