package debug

// Event is the envelope written for every trace event.
type Event struct {
	Timestamp string      `json:"ts"`
	SessionID string      `json:"session_id"`
	Phase     string      `json:"phase"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
}

// RenderStartData describes the canvas and grid of a render pass.
type RenderStartData struct {
	Text       string `json:"text"`
	TextLength int    `json:"text_length"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	CellWidth  int    `json:"cell_width"`
	CellHeight int    `json:"cell_height"`
	Cols       int    `json:"cols"`
	Rows       int    `json:"rows"`
}

// RenderEndData summarises a finished render pass.
type RenderEndData struct {
	Placed    int   `json:"placed"`
	Skipped   int   `json:"skipped"`
	Truncated bool  `json:"truncated"`
	Offset    int   `json:"offset"`
	ElapsedMs int64 `json:"elapsed_ms"`
}

// PlaceData describes one figure placed on the canvas.
type PlaceData struct {
	Index int    `json:"index"`
	Rune  rune   `json:"rune"`
	Kind  string `json:"kind"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Right uint8  `json:"right"`
	Left  uint8  `json:"left"`
}

// SkipData describes a character that produced no figure.
type SkipData struct {
	Index  int    `json:"index"`
	Rune   rune   `json:"rune"`
	Reason string `json:"reason"`
}

// OverflowData describes where a render pass ran out of rows.
type OverflowData struct {
	Index int `json:"index"`
	LastX int `json:"last_x"`
	LastY int `json:"last_y"`
}
