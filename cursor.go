package vtcore

// CursorStyle determines how the cursor is rendered.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Cursor tracks position, rendering style, and the sticky overflow bit
// (0-based coordinates). Overflow is set when a write lands in the last
// column with wraparound enabled; it is what makes the *next* write wrap,
// distinguishing "cursor is at the last column" from "cursor ran past it".
type Cursor struct {
	Row      int
	Col      int
	Style    CursorStyle
	Visible  bool
	Overflow bool
}

// NewCursor creates a cursor at (0, 0), visible, blinking-block style.
func NewCursor() Cursor {
	return Cursor{Style: CursorStyleBlinkingBlock, Visible: true}
}

// SavedCursor stores cursor position, cell attributes, origin mode, and
// charset state for DECSC/DECRC and alternate-screen save/restore. Values
// are copied in, never aliased.
type SavedCursor struct {
	Row           int
	Col           int
	Attrs         TextAttributes
	OriginMode    bool
	ActiveCharset CharsetIndex
	Charsets      [4]Charset
}
