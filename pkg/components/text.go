package components

import (
	"github.com/charmbracelet/x/ansi"
)

// TextWidth returns the visible width of the concatenated segment texts in
// terminal cells. Wide characters count as width 2.
func TextWidth(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += ansi.StringWidth(s.Text)
	}
	return n
}

// TruncateSegments cuts segs so their combined text is at most maxWidth
// cells, appending tail (e.g. "…") in the color of the segment that was cut.
// The tail counts toward maxWidth. Segments that already fit are returned
// unchanged.
func TruncateSegments(segs []Segment, maxWidth int, tail string) []Segment {
	if maxWidth <= 0 {
		return nil
	}
	if TextWidth(segs) <= maxWidth {
		return segs
	}
	budget := maxWidth - ansi.StringWidth(tail)
	if budget < 0 {
		return nil
	}

	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		w := ansi.StringWidth(s.Text)
		if w <= budget {
			out = append(out, s)
			budget -= w
			continue
		}
		out = append(out, Segment{Text: ansi.Truncate(s.Text, budget, "") + tail, Color: s.Color})
		break
	}
	return out
}
