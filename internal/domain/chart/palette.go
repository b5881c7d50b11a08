package chart

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette names a colour scale.
type Palette string

// Colour scales, light to dark for the sequential ones.
const (
	Blues       Palette = "blues"
	Greens      Palette = "greens"
	Oranges     Palette = "oranges"
	YlOrRd      Palette = "ylorrd"
	Purples     Palette = "purples"
	Reds        Palette = "reds"
	Categorical Palette = "categorical"
)

var palettes = map[Palette][]string{
	Blues:       {"c6dbef", "9ecae1", "6baed6", "4292c6", "2171b5", "08519c", "08306b"},
	Greens:      {"c7e9c0", "a1d99b", "74c476", "41ab5d", "238b45", "006d2c", "00441b"},
	Oranges:     {"fdd0a2", "fdae6b", "fd8d3c", "f16913", "d94801", "a63603", "7f2704"},
	YlOrRd:      {"ffeda0", "fed976", "feb24c", "fd8d3c", "fc4e2a", "e31a1c", "b10026"},
	Purples:     {"dadaeb", "bcbddc", "9e9ac8", "807dba", "6a51a3", "54278f", "3f007d"},
	Reds:        {"fcbba1", "fc9272", "fb6a4a", "ef3b2c", "cb181d", "a50f15", "67000d"},
	Categorical: {"636efa", "ef553b", "00cc96", "ab63fa", "ffa15a", "19d3f3", "ff6692", "b6e880", "ff97ff", "fecb52"},
}

// Sequential reports whether colours follow the value rather than the index.
func (p Palette) Sequential() bool {
	_, ok := palettes[p]
	return ok && p != Categorical
}

func (p Palette) hexes() []string {
	if h, ok := palettes[p]; ok {
		return h
	}
	return palettes[Categorical]
}

// Color picks the colour of the i-th point with value v in [lo, hi].
// Sequential scales shade by value, the categorical scale cycles by index.
func (p Palette) Color(i int, v, lo, hi float64) drawing.Color {
	h := p.hexes()
	if !p.Sequential() {
		return drawing.ColorFromHex(h[i%len(h)])
	}
	if hi <= lo {
		return drawing.ColorFromHex(h[len(h)-1])
	}
	idx := int(math.Round((v - lo) / (hi - lo) * float64(len(h)-1)))
	idx = max(0, min(idx, len(h)-1))
	return drawing.ColorFromHex(h[idx])
}

// Hex returns the colour of the i-th point as "#rrggbb", for HTML legends.
func (p Palette) Hex(i int, v, lo, hi float64) string {
	c := p.Color(i, v, lo, hi)
	return "#" + hex2(c.R) + hex2(c.G) + hex2(c.B)
}

func hex2(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0f]})
}
