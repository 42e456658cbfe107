package components

// Fixed colors shared by every widget.
const (
	ColorPlain = "#ffffff"
	ColorBlank = "#000000"
	ColorMuted = "#3d3d53"
	ColorError = "#ff0000"
)

// Segment is one colored run of status bar text. Widgets render to a slice
// of segments and the streamer turns each into one i3bar block.
type Segment struct {
	Text  string
	Color string // "#rrggbb"
}

// NewSegment returns a segment painted in color.
func NewSegment(text, color string) Segment {
	return Segment{Text: text, Color: color}
}

// Plain returns a segment painted white.
func Plain(text string) Segment {
	return Segment{Text: text, Color: ColorPlain}
}
