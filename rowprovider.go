package vtcore

import "fmt"

// SnapshotDetail controls how much information RowProvider.Snapshot embeds
// per line.
type SnapshotDetail string

const (
	// DetailText returns plain text only.
	DetailText SnapshotDetail = "text"
	// DetailStyled returns text split into runs of uniform style.
	DetailStyled SnapshotDetail = "styled"
	// DetailFull returns every cell with its full attributes.
	DetailFull SnapshotDetail = "full"
)

// Snapshot is a renderer-facing capture of one screen's visible state. It
// holds resolved colors and no internal terminal types, so a renderer never
// needs to reach back into the Terminal to draw a frame.
type Snapshot struct {
	Size   SnapshotSize
	Cursor SnapshotCursor
	Lines  []SnapshotLine
}

// SnapshotSize holds the captured screen's dimensions.
type SnapshotSize struct {
	Rows int
	Cols int
}

// SnapshotCursor holds cursor state at capture time.
type SnapshotCursor struct {
	Row     int
	Col     int
	Visible bool
	Style   string
}

// SnapshotLine is one row of a Snapshot. Text and Wrapped are always
// populated; Segments only for DetailStyled and Cells only for DetailFull.
type SnapshotLine struct {
	Text     string
	Segments []SnapshotSegment
	Cells    []SnapshotCell
	Wrapped  bool
}

// SnapshotSegment is a run of cells sharing identical style and hyperlink.
type SnapshotSegment struct {
	Text      string
	Fg        string
	Bg        string
	Attrs     SnapshotAttrs
	Hyperlink *SnapshotLink
}

// SnapshotCell is one grid cell with fully resolved attributes.
type SnapshotCell struct {
	Char       string
	Fg         string
	Bg         string
	Attrs      SnapshotAttrs
	Hyperlink  *SnapshotLink
	Wide       bool
	WideSpacer bool
}

// SnapshotAttrs is the boolean style flags of a cell, expanded out of
// CellFlags for consumers that don't want the bitmask.
type SnapshotAttrs struct {
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

// SnapshotLink mirrors Hyperlink for inclusion in a Snapshot.
type SnapshotLink struct {
	ID  string
	URI string
}

// RowProvider is the read-only contract a renderer drives: given a
// Terminal, it produces an immutable Snapshot of the currently active
// screen. Unlike the Terminal itself, a Snapshot carries no references back
// into terminal state, so it can be handed to a renderer running on another
// goroutine without synchronization.
type RowProvider interface {
	Snapshot(detail SnapshotDetail) *Snapshot
}

// Snapshot captures the active screen's current state. The caller is
// responsible for not calling Snapshot concurrently with Write: vtcore's
// core is single-threaded and owned by whichever goroutine drives it (see
// Terminal's package doc), so synchronization, if any is needed, belongs to
// the caller, not the library.
func (t *Terminal) Snapshot(detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Size: SnapshotSize{Rows: t.rows, Cols: t.cols},
		Cursor: SnapshotCursor{
			Row:     t.active.Cursor.Row,
			Col:     t.active.Cursor.Col,
			Visible: t.CursorVisible(),
			Style:   cursorStyleToString(t.active.Cursor.Style),
		},
		Lines: make([]SnapshotLine, t.rows),
	}

	for row := 0; row < t.rows; row++ {
		snap.Lines[row] = t.snapshotLine(row, detail)
	}

	return snap
}

func (t *Terminal) snapshotLine(row int, detail SnapshotDetail) SnapshotLine {
	line := SnapshotLine{
		Text:    t.active.LineText(row),
		Wrapped: t.IsWrapped(row),
	}

	switch detail {
	case DetailText:
		// text already set
	case DetailStyled:
		line.Segments = t.lineToSegments(row)
	case DetailFull:
		line.Cells = t.lineToCells(row)
	}

	return line
}

// lineToSegments coalesces a row's cells into runs of identical style.
func (t *Terminal) lineToSegments(row int) []SnapshotSegment {
	if !t.active.InBounds(row, 0) {
		return nil
	}

	var segments []SnapshotSegment
	var current *SnapshotSegment
	var text []byte

	for col := 0; col < t.cols; col++ {
		cell := t.active.Cell(row, col)
		if cell.WCTrailing {
			continue
		}

		attrs := t.style.Lookup(cell.Style)
		fg := t.colorHex(attrs.Fg, true)
		bg := t.colorHex(attrs.Bg, false)
		flags := flagsToSnapshot(attrs.Flags)
		link := hyperlinkToSnapshot(cell.Hyperlink)

		if current == nil || !segmentMatches(current, fg, bg, flags, link) {
			if current != nil {
				current.Text = string(text)
				segments = append(segments, *current)
			}
			current = &SnapshotSegment{Fg: fg, Bg: bg, Attrs: flags, Hyperlink: link}
			text = text[:0]
		}

		content := cell.Content
		if content == "" {
			content = " "
		}
		text = append(text, content...)
	}

	if current != nil {
		current.Text = string(text)
		segments = append(segments, *current)
	}

	return segments
}

// lineToCells produces full per-cell data for a row.
func (t *Terminal) lineToCells(row int) []SnapshotCell {
	cells := make([]SnapshotCell, t.cols)
	for col := 0; col < t.cols; col++ {
		cell := t.active.Cell(row, col)
		attrs := t.style.Lookup(cell.Style)

		content := cell.Content
		if content == "" {
			content = " "
		}

		cells[col] = SnapshotCell{
			Char:       content,
			Fg:         t.colorHex(attrs.Fg, true),
			Bg:         t.colorHex(attrs.Bg, false),
			Attrs:      flagsToSnapshot(attrs.Flags),
			Hyperlink:  hyperlinkToSnapshot(cell.Hyperlink),
			Wide:       cell.Wide,
			WideSpacer: cell.WCTrailing,
		}
	}
	return cells
}

// colorHex resolves a Color against the terminal's live palette and formats
// it as "#rrggbb".
func (t *Terminal) colorHex(c Color, fg bool) string {
	rgb := t.palette.Resolve(c, fg)
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

func flagsToSnapshot(flags CellFlags) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          flags&CellFlagBold != 0,
		Dim:           flags&CellFlagDim != 0,
		Italic:        flags&CellFlagItalic != 0,
		Underline:     flags&(CellFlagUnderline|CellFlagDoubleUnderline|CellFlagCurlyUnderline) != 0,
		Blink:         flags&(CellFlagBlinkSlow|CellFlagBlinkFast) != 0,
		Reverse:       flags&CellFlagInverse != 0,
		Hidden:        flags&CellFlagHidden != 0,
		Strikethrough: flags&CellFlagStrike != 0,
	}
}

func hyperlinkToSnapshot(h *Hyperlink) *SnapshotLink {
	if h == nil {
		return nil
	}
	return &SnapshotLink{ID: h.ID, URI: h.URI}
}

func segmentMatches(seg *SnapshotSegment, fg, bg string, attrs SnapshotAttrs, link *SnapshotLink) bool {
	if seg.Fg != fg || seg.Bg != bg || seg.Attrs != attrs {
		return false
	}
	if seg.Hyperlink == nil || link == nil {
		return seg.Hyperlink == link
	}
	return seg.Hyperlink.ID == link.ID && seg.Hyperlink.URI == link.URI
}

func cursorStyleToString(style CursorStyle) string {
	switch style {
	case CursorStyleBlinkingBlock, CursorStyleSteadyBlock:
		return "block"
	case CursorStyleBlinkingUnderline, CursorStyleSteadyUnderline:
		return "underline"
	case CursorStyleBlinkingBar, CursorStyleSteadyBar:
		return "bar"
	default:
		return "block"
	}
}
