package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Sink is a destination for trace events.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events as JSON Lines.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink returns a JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes event as one JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in a human-readable layout.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink returns a pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{w: bufio.NewWriter(w)}
}

// Write formats event on one header line followed by indented fields.
func (s *PrettySink) Write(event Event) error {
	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)

	switch d := event.Data.(type) {
	case RenderStartData:
		fmt.Fprintf(s.w, "  text: %q (length: %d)\n", d.Text, d.TextLength)
		fmt.Fprintf(s.w, "  canvas: %dx%d, cell: %dx%d, grid: %d cols x %d rows\n",
			d.Width, d.Height, d.CellWidth, d.CellHeight, d.Cols, d.Rows)
	case RenderEndData:
		fmt.Fprintf(s.w, "  placed: %d, skipped: %d\n", d.Placed, d.Skipped)
		if d.Truncated {
			fmt.Fprintf(s.w, "  truncated at: %d\n", d.Offset)
		}
		fmt.Fprintf(s.w, "  elapsed_ms: %d\n", d.ElapsedMs)
	case PlaceData:
		fmt.Fprintf(s.w, "  index: %d, rune: %s, kind: %s\n", d.Index, runeStr(d.Rune), d.Kind)
		fmt.Fprintf(s.w, "  anchor: (%d, %d), arms: right=%d left=%d\n", d.X, d.Y, d.Right, d.Left)
	case SkipData:
		fmt.Fprintf(s.w, "  index: %d, rune: %s, reason: %s\n", d.Index, runeStr(d.Rune), d.Reason)
	case OverflowData:
		fmt.Fprintf(s.w, "  index: %d, last anchor: (%d, %d)\n", d.Index, d.LastX, d.LastY)
	case map[string]interface{}:
		for _, k := range sortedKeys(d) {
			fmt.Fprintf(s.w, "  %s: %v\n", k, d[k])
		}
	case map[string]int64:
		for _, k := range sortedKeys(d) {
			fmt.Fprintf(s.w, "  %s: %d\n", k, d[k])
		}
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}
	return nil
}

// Flush writes buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// runeStr formats a rune as 'X' (0x58), or just its code when unprintable.
func runeStr(r rune) string {
	if r >= 32 && r < 127 {
		return fmt.Sprintf("'%c' (0x%02X)", r, r)
	}
	return fmt.Sprintf("0x%02X", r)
}
