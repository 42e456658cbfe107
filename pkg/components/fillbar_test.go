package components

import (
	"strings"
	"testing"
)

// fbTestCount returns the number of glyph segments and the blank width of a
// rendered bar.
func fbTestCount(t *testing.T, segs []Segment, glyph rune) (filled, blank int) {
	t.Helper()
	if len(segs) == 0 {
		t.Fatal("Render returned no segments")
	}
	last := segs[len(segs)-1]
	if last.Color != ColorBlank {
		t.Errorf("blank segment color = %q, want %q", last.Color, ColorBlank)
	}
	if strings.Trim(last.Text, " ") != "" {
		t.Errorf("blank segment text = %q, want only spaces", last.Text)
	}
	for _, s := range segs[:len(segs)-1] {
		if s.Text != string(glyph) {
			t.Errorf("filled segment text = %q, want %q", s.Text, string(glyph))
		}
	}
	return len(segs) - 1, len(last.Text)
}

func TestSingleFillBar(t *testing.T) {
	c := RGB{32, 186, 0}
	fb := SingleFillBar(12, c)
	if fb.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", fb.Len())
	}
	for i, got := range fb.Colors() {
		if got != c {
			t.Errorf("slot %d = %+v, want %+v", i, got, c)
		}
	}
}

func TestGradientFillBarEndpoints(t *testing.T) {
	a := MustParseColor("#a81e00")
	b := MustParseColor("#f42c00")
	for _, n := range []int{2, 3, 8, 12, 100} {
		colors := GradientFillBar(n, a, b).Colors()
		if colors[0] != a {
			t.Errorf("n=%d slot 0 = %v, want %v", n, colors[0], a)
		}
		if colors[n-1] != b {
			t.Errorf("n=%d slot %d = %v, want %v", n, n-1, colors[n-1], b)
		}
	}
}

func TestGradientFillBarSingleSlot(t *testing.T) {
	a := RGB{1, 2, 3}
	colors := GradientFillBar(1, a, RGB{200, 200, 200}).Colors()
	if len(colors) != 1 || colors[0] != a {
		t.Errorf("GradientFillBar(1) = %v, want [%v]", colors, a)
	}
}

func TestGradientFillBarInterior(t *testing.T) {
	colors := MustGradient(8, "#000000", "#0000ff").Colors()
	// 255*i/7 truncated.
	want := []int{0, 36, 72, 109, 145, 182, 218, 255}
	for i, c := range colors {
		if c.B != want[i] {
			t.Errorf("slot %d blue = %d, want %d", i, c.B, want[i])
		}
	}
}

func TestColorsIsCopy(t *testing.T) {
	fb := MustSingle(3, "#ffffff")
	c := fb.Colors()
	c[0] = RGB{}
	if fb.Colors()[0] != (RGB{255, 255, 255}) {
		t.Error("mutating Colors() result changed the bar")
	}
}

func TestRenderGlyphCountInvariant(t *testing.T) {
	for _, n := range []int{0, 1, 2, 8, 12} {
		fb := MustSingle(n, "#20ba00")
		for _, total := range []int{1, 3, 100, 15625} {
			for amount := 0; amount <= total+5; amount += max(1, total/17) {
				filled, blank := fbTestCount(t, fb.Render('#', amount, total), '#')
				if filled+blank != n {
					t.Errorf("n=%d %d/%d: filled+blank = %d, want %d", n, amount, total, filled+blank, n)
				}
				wantFilled := min(n*amount/total+1, n)
				if filled != wantFilled {
					t.Errorf("n=%d %d/%d: filled = %d, want %d", n, amount, total, filled, wantFilled)
				}
			}
		}
	}
}

func TestRenderZeroAmountShowsOneGlyph(t *testing.T) {
	fb := MustGradient(8, "#2d8200", "#51e800")
	filled, blank := fbTestCount(t, fb.Render('#', 0, 100), '#')
	if filled != 1 {
		t.Errorf("filled = %d, want 1", filled)
	}
	if blank != 7 {
		t.Errorf("blank = %d, want 7", blank)
	}
}

func TestRenderFullAndOverflow(t *testing.T) {
	fb := MustSingle(8, "#ffffff")
	for _, amount := range []int{100, 150} {
		filled, blank := fbTestCount(t, fb.Render('>', amount, 100), '>')
		if filled != 8 || blank != 0 {
			t.Errorf("amount %d: filled=%d blank=%d, want 8/0", amount, filled, blank)
		}
	}
}

func TestRenderNegativeAmountClampsToEmpty(t *testing.T) {
	fb := MustSingle(8, "#ffffff")
	filled, blank := fbTestCount(t, fb.Render('#', -500, 100), '#')
	if filled != 0 || blank != 8 {
		t.Errorf("filled=%d blank=%d, want 0/8", filled, blank)
	}
}

func TestRenderUsesSlotColors(t *testing.T) {
	fb := MustGradient(8, "#004290", "#00b2f4")
	colors := fb.Colors()
	segs := fb.Render('#', 42, 100)
	for i, s := range segs[:len(segs)-1] {
		if s.Color != colors[i].Hex() {
			t.Errorf("segment %d color = %q, want %q", i, s.Color, colors[i].Hex())
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	fb := MustGradient(8, "#948500", "#f4db00")
	a := fb.Render('#', 30, 100)
	b := fb.Render('#', 30, 100)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("segment %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRenderZeroTotalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Render with total 0 should panic")
		}
	}()
	MustSingle(4, "#ffffff").Render('#', 1, 0)
}
