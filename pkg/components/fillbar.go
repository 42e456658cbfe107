package components

import (
	"fmt"
	"strings"
)

// FillBar is a fixed-width row of pre-colored glyph slots, e.g.
//
//	[####    ]
//
// Slot colors are computed once at construction; rendering only decides how
// many slots are filled.
type FillBar struct {
	colors []RGB
}

// SingleFillBar returns a bar of n slots all painted c.
func SingleFillBar(n int, c RGB) FillBar {
	if n < 0 {
		n = 0
	}
	colors := make([]RGB, n)
	for i := range colors {
		colors[i] = c
	}
	return FillBar{colors: colors}
}

// GradientFillBar returns a bar of n slots fading linearly from start at
// slot 0 to end at slot n-1. A one-slot bar is painted start.
func GradientFillBar(n int, start, end RGB) FillBar {
	if n < 0 {
		n = 0
	}
	colors := make([]RGB, n)
	for i := range colors {
		if n == 1 {
			colors[i] = start
			continue
		}
		colors[i] = Lerp(start, end, i, n-1)
	}
	return FillBar{colors: colors}
}

// MustSingle is SingleFillBar taking a hex color. It panics if the color
// does not parse.
func MustSingle(n int, hex string) FillBar {
	return SingleFillBar(n, MustParseColor(hex))
}

// MustGradient is GradientFillBar taking hex colors. It panics if either
// color does not parse.
func MustGradient(n int, start, end string) FillBar {
	return GradientFillBar(n, MustParseColor(start), MustParseColor(end))
}

// Len returns the bar width in glyphs.
func (f FillBar) Len() int {
	return len(f.colors)
}

// Colors returns a copy of the slot colors.
func (f FillBar) Colors() []RGB {
	out := make([]RGB, len(f.colors))
	copy(out, f.colors)
	return out
}

// Fill returns how many slots Render paints for amount out of total:
// n*amount/total + 1, capped at n and floored at 0. At least one slot is lit
// for a zero amount so the bar never looks absent.
//
// total must be non-zero; Fill panics otherwise.
func (f FillBar) Fill(amount, total int) int {
	if total == 0 {
		panic(fmt.Sprintf("components: FillBar total must be non-zero (amount=%d)", amount))
	}
	n := len(f.colors)
	filled := min(n*amount/total+1, n)
	if filled < 0 {
		filled = 0
	}
	return filled
}

// Render draws the bar for amount out of total: one single-glyph segment
// per filled slot in that slot's color, then exactly one segment holding the
// remaining width as spaces in ColorBlank.
func (f FillBar) Render(glyph rune, amount, total int) []Segment {
	filled := f.Fill(amount, total)
	blank := len(f.colors) - filled

	segs := make([]Segment, 0, filled+1)
	text := string(glyph)
	for _, c := range f.colors[:filled] {
		segs = append(segs, Segment{Text: text, Color: c.Hex()})
	}
	segs = append(segs, Segment{Text: strings.Repeat(" ", blank), Color: ColorBlank})
	return segs
}
