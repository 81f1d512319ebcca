package artwork

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Cards are printed at the standard 5:7 poker-card proportions.
const (
	aspectWidth  = 5
	aspectHeight = 7
)

// CellSize returns the terminal cell dimensions for artwork rendered at
// the given height in rows. Each cell shows two pixel rows via half-block
// characters, so the pixel height is 2*rows and the width follows from
// the card aspect ratio.
func CellSize(rows int) (cols, pixels int) {
	pixels = rows * 2
	cols = pixels * aspectWidth / aspectHeight
	return cols, pixels
}

// ToANSI converts a decoded image into half-block ANSI art sized for the
// given number of terminal rows. With trueColor false the art degrades to
// plain block characters without color codes.
func ToANSI(img image.Image, rows int, trueColor bool) string {
	cols, pixelRows := CellSize(rows)
	resized := resize.Resize(uint(cols), uint(pixelRows), img, resize.Lanczos3)

	var b strings.Builder
	for y := 0; y < pixelRows; y += 2 {
		for x := 0; x < cols; x++ {
			top, _ := colorful.MakeColor(pixelAt(resized, x, y))
			bottom, _ := colorful.MakeColor(pixelAt(resized, x, y+1))
			b.WriteString(cell('▀', top, bottom, trueColor))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pixelAt returns the color at (x, y), or black when out of bounds.
func pixelAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// cell formats one half-block character with the top pixel as foreground
// and the bottom pixel as background.
func cell(char rune, fg, bg colorful.Color, trueColor bool) string {
	if !trueColor {
		return string(char)
	}
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}
