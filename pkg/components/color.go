package components

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidColor is returned by ParseColor for anything that is not a
// "#RRGGBB" string.
var ErrInvalidColor = errors.New("invalid color")

// RGB is a 24-bit color. Each channel is in the range 0-255.
type RGB struct {
	R, G, B int
}

// ParseColor parses a hex color of the exact form "#RRGGBB". Upper and lower
// case digits are both accepted.
func ParseColor(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseColor is like ParseColor but panics on malformed input. It is
// meant for compiled-in palette constants.
func MustParseColor(s string) RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the lowercase "#rrggbb" form of c.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Lerp interpolates between a and b at the fraction p/q, channel by channel.
// Division truncates toward zero, so no channel is ever rounded up.
func Lerp(a, b RGB, p, q int) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*p/q,
		G: a.G + (b.G-a.G)*p/q,
		B: a.B + (b.B-a.B)*p/q,
	}
}
