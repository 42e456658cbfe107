// Package i3bar writes status bar content in the i3bar/swaybar JSON
// protocol: a version header, then an endless JSON array whose elements are
// one array of blocks per update.
package i3bar

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/components"
)

// Header is the protocol header. It is followed by a newline and the
// opening bracket of the infinite array.
type Header struct {
	Version int `json:"version"`
}

// Block is one element of an update array.
type Block struct {
	FullText            string `json:"full_text"`
	Color               string `json:"color"`
	Separator           bool   `json:"separator"`
	SeparatorBlockWidth int    `json:"separator_block_width"`
}

// BlockFromSegment converts a segment into a block with separators off.
func BlockFromSegment(s components.Segment) Block {
	return Block{
		FullText:            s.Text,
		Color:               s.Color,
		Separator:           false,
		SeparatorBlockWidth: 0,
	}
}

// ErrorSegments is what the bar shows for a tick whose render failed.
func ErrorSegments(err error) []components.Segment {
	return []components.Segment{
		components.NewSegment(fmt.Sprintf("error: %v   ", err), components.ColorError),
	}
}

// encode marshals v without HTML escaping (so '>' stays '>') and without
// the trailing newline json.Encoder appends.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteHeader writes `{"version":1}` + "\n[" and flushes.
func WriteHeader(w *bufio.Writer) error {
	hdr, err := encode(Header{Version: 1})
	if err != nil {
		return fmt.Errorf("i3bar: encode header: %w", err)
	}
	if _, err := w.Write(hdr); err != nil {
		return err
	}
	if _, err := w.WriteString("\n["); err != nil {
		return err
	}
	return w.Flush()
}

// WriteTick writes segs as one JSON array followed by a comma and flushes.
func WriteTick(w *bufio.Writer, segs []components.Segment) error {
	blocks := make([]Block, len(segs))
	for i, s := range segs {
		blocks[i] = BlockFromSegment(s)
	}
	data, err := encode(blocks)
	if err != nil {
		return fmt.Errorf("i3bar: encode blocks: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if err := w.WriteByte(','); err != nil {
		return err
	}
	return w.Flush()
}
