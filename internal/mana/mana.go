package mana

import (
	"strings"

	colorize "github.com/fatih/color"
)

// Kind classifies a mana symbol token for presentation.
type Kind int

const (
	Unknown Kind = iota
	Numeric
	White
	Blue
	Black
	Red
	Green
	Colorless
)

// Tokenize decodes a mana cost string into its symbol tokens.
// Each maximal {...} pair whose contents contain no brace yields one token
// equal to the enclosed text, in left-to-right order. Characters outside a
// brace pair are dropped, as is any unbalanced trailing portion. The empty
// string yields no tokens. Tokenize never fails.
func Tokenize(cost string) []string {
	var tokens []string
	for i := 0; i < len(cost); i++ {
		if cost[i] != '{' {
			continue
		}
		end := -1
		for j := i + 1; j < len(cost); j++ {
			if cost[j] == '{' {
				// New opener before a closer; restart the scan there.
				i = j - 1
				break
			}
			if cost[j] == '}' {
				end = j
				break
			}
		}
		if end < 0 {
			continue
		}
		tokens = append(tokens, cost[i+1:end])
		i = end
	}
	return tokens
}

// Classify maps a symbol token to its presentation kind. A run of decimal
// digits is Numeric; the five color letters map to their colors; C is
// Colorless. Anything else (X, hybrid, phyrexian) is Unknown, which still
// has a defined default style.
func Classify(token string) Kind {
	if token == "" {
		return Unknown
	}
	numeric := true
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			numeric = false
			break
		}
	}
	if numeric {
		return Numeric
	}
	switch token {
	case "W":
		return White
	case "U":
		return Blue
	case "B":
		return Black
	case "R":
		return Red
	case "G":
		return Green
	case "C":
		return Colorless
	}
	return Unknown
}

// symbolColors maps each kind to its terminal style. Unknown shares the
// Numeric style so unrecognized symbols still render as a plain badge.
var symbolColors = map[Kind]*colorize.Color{
	Numeric:   colorize.New(colorize.FgHiWhite),
	White:     colorize.New(colorize.FgHiYellow),
	Blue:      colorize.New(colorize.FgHiBlue),
	Black:     colorize.New(colorize.FgHiMagenta),
	Red:       colorize.New(colorize.FgHiRed),
	Green:     colorize.New(colorize.FgHiGreen),
	Colorless: colorize.New(colorize.FgWhite),
	Unknown:   colorize.New(colorize.FgHiWhite),
}

// Render formats a mana cost as a styled symbol row for the terminal.
// An empty or symbol-free cost renders as an empty string.
func Render(cost string) string {
	tokens := Tokenize(cost)
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, token := range tokens {
		c, ok := symbolColors[Classify(token)]
		if !ok {
			c = symbolColors[Unknown]
		}
		b.WriteString(c.Sprintf("{%s}", token))
	}
	return b.String()
}

// Balanced reports whether every opening brace in cost is closed before
// the next one opens. Tokenize silently skips unbalanced portions; this is
// the strict check collection validation uses to warn about them.
func Balanced(cost string) bool {
	open := false
	for i := 0; i < len(cost); i++ {
		switch cost[i] {
		case '{':
			if open {
				return false
			}
			open = true
		case '}':
			if !open {
				return false
			}
			open = false
		}
	}
	return !open
}
