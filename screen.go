package vtcore

// Screen is a single grid of rows plus the cursor and SGR state that goes
// with it. Terminal holds two of these (primary and alternate) and swaps
// which one is active; Screen itself has no notion of scrollback, tab
// stops, or scroll region — those are shared Terminal-level state that
// outlives a screen swap.
type Screen struct {
	Rows   []Row
	Cursor Cursor
	Saved  SavedCursor
	Attrs  TextAttributes
	Height int
	Width  int

	style *StyleInterner
}

// NewScreen creates a screen of the given size, blank, with the cursor at
// the origin. style is shared with the owning Terminal so cell styles
// intern into the same table across screen swaps.
func NewScreen(height, width int, style *StyleInterner) *Screen {
	s := &Screen{
		Cursor: NewCursor(),
		Height: height,
		Width:  width,
		style:  style,
	}
	s.Rows = make([]Row, height)
	for i := range s.Rows {
		s.Rows[i] = newRow(width, 0)
	}
	return s
}

func (s *Screen) currentStyle() StyleID {
	return s.style.Intern(s.Attrs)
}

// InBounds reports whether (row, col) is a valid cell position.
func (s *Screen) InBounds(row, col int) bool {
	return row >= 0 && row < s.Height && col >= 0 && col < s.Width
}

// Cell returns the cell at (row, col), or the zero Cell if out of bounds.
func (s *Screen) Cell(row, col int) Cell {
	if !s.InBounds(row, col) {
		return Cell{}
	}
	return s.Rows[row].Cells[col]
}

// SetCell replaces the cell at (row, col). Does nothing out of bounds.
func (s *Screen) SetCell(row, col int, c Cell) {
	if !s.InBounds(row, col) {
		return
	}
	s.Rows[row].Cells[col] = c
}

// ClearRow resets every cell in row to blank with the current style.
func (s *Screen) ClearRow(row int) {
	if row < 0 || row >= s.Height {
		return
	}
	style := s.currentStyle()
	for col := range s.Rows[row].Cells {
		s.Rows[row].Cells[col] = blankCell(style)
	}
	s.Rows[row].LineOverflow = false
}

// ClearRowRange resets cells [startCol, endCol) in row to blank.
func (s *Screen) ClearRowRange(row, startCol, endCol int) {
	if row < 0 || row >= s.Height {
		return
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > s.Width {
		endCol = s.Width
	}
	style := s.currentStyle()
	for col := startCol; col < endCol; col++ {
		s.Rows[row].Cells[col] = blankCell(style)
	}
}

// ClearAll resets every row to blank.
func (s *Screen) ClearAll() {
	for row := range s.Rows {
		s.ClearRow(row)
	}
}

// FillWithE fills every cell with 'E' at default style, for the DECALN
// alignment test pattern.
func (s *Screen) FillWithE() {
	for row := range s.Rows {
		for col := range s.Rows[row].Cells {
			s.Rows[row].Cells[col] = Cell{Content: "E"}
		}
		s.Rows[row].LineOverflow = false
	}
}

// ScrollUp shifts rows [top, bottom) up by n, discarding them from the
// screen. It returns the rows that left the screen, in oldest-first order,
// so the caller can push them to scrollback — but only when [top, bottom)
// spans the full screen. A scroll region narrower than the full screen
// (top > 0 or bottom < Height) discards the rows shifted off its top
// instead of scrollbacking them.
func (s *Screen) ScrollUp(top, bottom, n int) []Row {
	if n <= 0 || top >= bottom {
		return nil
	}
	if top < 0 {
		top = 0
	}
	if bottom > s.Height {
		bottom = s.Height
	}
	if n > bottom-top {
		n = bottom - top
	}

	var evicted []Row
	if top == 0 && bottom == s.Height {
		evicted = make([]Row, n)
		copy(evicted, s.Rows[:n])
	}

	copy(s.Rows[top:], s.Rows[top+n:bottom])
	style := s.currentStyle()
	for row := bottom - n; row < bottom; row++ {
		s.Rows[row] = newRow(s.Width, style)
	}
	return evicted
}

// ScrollDown shifts rows [top, bottom) down by n, filling the vacated top
// rows with blanks.
func (s *Screen) ScrollDown(top, bottom, n int) {
	if n <= 0 || top >= bottom {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom > s.Height {
		bottom = s.Height
	}
	if n > bottom-top {
		n = bottom - top
	}

	copy(s.Rows[top+n:bottom], s.Rows[top:bottom-n])
	style := s.currentStyle()
	for row := top; row < top+n; row++ {
		s.Rows[row] = newRow(s.Width, style)
	}
}

// InsertLines inserts n blank lines at row, shifting rows below down within
// [row, bottom).
func (s *Screen) InsertLines(row, n, bottom int) {
	if row < 0 || row >= bottom || n <= 0 {
		return
	}
	s.ScrollDown(row, bottom, n)
}

// DeleteLines removes n lines at row, shifting rows below up within
// [row, bottom). Returns any evicted rows per ScrollUp's contract.
func (s *Screen) DeleteLines(row, n, bottom int) []Row {
	if row < 0 || row >= bottom || n <= 0 {
		return nil
	}
	return s.ScrollUp(row, bottom, n)
}

// InsertBlanks inserts n blank cells at (row, col), shifting cells right
// and dropping any that fall off the right edge.
func (s *Screen) InsertBlanks(row, col, n int) {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width || n <= 0 {
		return
	}
	cells := s.Rows[row].Cells
	style := s.currentStyle()
	for c := s.Width - 1; c >= col+n; c-- {
		cells[c] = cells[c-n]
	}
	for c := col; c < col+n && c < s.Width; c++ {
		cells[c] = blankCell(style)
	}
}

// DeleteChars removes n cells at (row, col), shifting cells left and
// filling the vacated end of the row with blanks.
func (s *Screen) DeleteChars(row, col, n int) {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width || n <= 0 {
		return
	}
	cells := s.Rows[row].Cells
	style := s.currentStyle()
	for c := col; c < s.Width-n; c++ {
		cells[c] = cells[c+n]
	}
	for c := s.Width - n; c < s.Width; c++ {
		if c >= 0 {
			cells[c] = blankCell(style)
		}
	}
}

// Resize changes the screen's dimensions in place, preserving existing
// content at the top-left corner. Shrinking drops bottom/right content;
// growing adds blank rows/cells.
func (s *Screen) Resize(height, width int) {
	if height <= 0 || width <= 0 {
		return
	}
	style := s.currentStyle()
	newRows := make([]Row, height)
	for i := range newRows {
		if i < len(s.Rows) {
			old := s.Rows[i]
			row := newRow(width, style)
			n := width
			if len(old.Cells) < n {
				n = len(old.Cells)
			}
			copy(row.Cells, old.Cells[:n])
			row.LineOverflow = old.LineOverflow
			newRows[i] = row
		} else {
			newRows[i] = newRow(width, style)
		}
	}
	s.Rows = newRows
	s.Height = height
	s.Width = width
	if s.Cursor.Row >= height {
		s.Cursor.Row = height - 1
	}
	if s.Cursor.Col >= width {
		s.Cursor.Col = width - 1
	}
}

// LineText returns the visible text of row, per Row.text.
func (s *Screen) LineText(row int) string {
	if row < 0 || row >= s.Height {
		return ""
	}
	return s.Rows[row].text()
}
