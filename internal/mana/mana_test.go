package mana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""), "empty cost should yield no tokens")
	assert.Empty(t, Tokenize("no braces here"), "brace-free text should yield no tokens")
}

func TestTokenizeOrderPreserved(t *testing.T) {
	assert.Equal(t, []string{"2", "U", "U"}, Tokenize("{2}{U}{U}"))
	assert.Equal(t, []string{"G", "G", "1"}, Tokenize("{G}{G}{1}"))
}

func TestTokenizeDropsTextOutsideBraces(t *testing.T) {
	assert.Equal(t, []string{"R"}, Tokenize("X{R}Y"))
	assert.Equal(t, []string{"W", "B"}, Tokenize("cost: {W} and {B}."))
}

func TestTokenizeUnbalancedInput(t *testing.T) {
	assert.Empty(t, Tokenize("{2"), "unclosed brace yields nothing")
	assert.Empty(t, Tokenize("2}"), "stray closer yields nothing")
	assert.Equal(t, []string{"U"}, Tokenize("{2{U}"), "opener before a closer restarts the scan")
	assert.Equal(t, []string{"R"}, Tokenize("{R}{"), "trailing opener is ignored")
}

func TestTokenizeEmptyPair(t *testing.T) {
	assert.Equal(t, []string{""}, Tokenize("{}"))
}

func TestTokenizeIdempotent(t *testing.T) {
	cost := "{3}{W}{W}{U/P}"
	first := Tokenize(cost)
	second := Tokenize(cost)
	assert.Equal(t, first, second, "tokenizing twice must yield identical results")
}

func TestClassifyNumeric(t *testing.T) {
	for _, token := range []string{"0", "1", "2", "10", "16"} {
		assert.Equal(t, Numeric, Classify(token), "token %q", token)
	}
}

func TestClassifyColors(t *testing.T) {
	cases := map[string]Kind{
		"W": White,
		"U": Blue,
		"B": Black,
		"R": Red,
		"G": Green,
		"C": Colorless,
	}
	for token, want := range cases {
		assert.Equal(t, want, Classify(token), "token %q", token)
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, token := range []string{"X", "P", "W/U", "G/P", "S", "", "w", "2U"} {
		assert.Equal(t, Unknown, Classify(token), "token %q", token)
	}
}

func TestRenderUnknownSymbolHasDefaultStyle(t *testing.T) {
	// Must not panic and must still include the symbol text.
	out := Render("{X}{W/U}")
	require.NotEmpty(t, out)
	assert.Contains(t, out, "X")
	assert.Contains(t, out, "W/U")
}

func TestRenderEmptyCost(t *testing.T) {
	assert.Equal(t, "", Render(""))
	assert.Equal(t, "", Render("plain text"))
}

func TestBalanced(t *testing.T) {
	assert.True(t, Balanced(""))
	assert.True(t, Balanced("{2}{U}{U}"))
	assert.True(t, Balanced("X{R}Y"))
	assert.False(t, Balanced("{2"))
	assert.False(t, Balanced("2}"))
	assert.False(t, Balanced("{2{U}"))
}
