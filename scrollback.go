package vtcore

// Scrollback is a ring buffer of retired primary-screen rows. It implements
// ScrollbackProvider directly; callers that want different storage (disk,
// a database, a size-capped LRU elsewhere) can supply their own provider to
// Terminal instead.
type Scrollback struct {
	rows    []Row
	start   int // index of the oldest row within rows
	count   int
	maxLines int
}

// NewScrollback creates a scrollback ring capped at maxLines rows.
func NewScrollback(maxLines int) *Scrollback {
	if maxLines < 0 {
		maxLines = 0
	}
	return &Scrollback{
		rows:     make([]Row, maxLines),
		maxLines: maxLines,
	}
}

// Push appends row, evicting the oldest row once the cap is reached.
func (s *Scrollback) Push(row Row) {
	if s.maxLines <= 0 {
		return
	}
	if s.count < s.maxLines {
		idx := (s.start + s.count) % s.maxLines
		s.rows[idx] = row
		s.count++
		return
	}
	s.rows[s.start] = row
	s.start = (s.start + 1) % s.maxLines
}

// Len returns the number of stored rows.
func (s *Scrollback) Len() int { return s.count }

// Line returns the row at index, where 0 is the oldest stored row.
func (s *Scrollback) Line(index int) (Row, bool) {
	if index < 0 || index >= s.count {
		return Row{}, false
	}
	idx := (s.start + index) % s.maxLines
	return s.rows[idx], true
}

// Clear discards all stored rows without changing the capacity.
func (s *Scrollback) Clear() {
	s.rows = make([]Row, s.maxLines)
	s.start = 0
	s.count = 0
}

// SetMaxLines resizes the ring, keeping the most recently pushed rows when
// shrinking.
func (s *Scrollback) SetMaxLines(max int) {
	if max < 0 {
		max = 0
	}
	if max == s.maxLines {
		return
	}
	keep := s.count
	if keep > max {
		keep = max
	}
	newRows := make([]Row, max)
	for i := 0; i < keep; i++ {
		// keep the newest `keep` rows when shrinking
		srcIndex := s.count - keep + i
		row, _ := s.Line(srcIndex)
		newRows[i] = row
	}
	s.rows = newRows
	s.start = 0
	s.count = keep
	s.maxLines = max
}

// MaxLines returns the current retention cap.
func (s *Scrollback) MaxLines() int { return s.maxLines }

var _ ScrollbackProvider = (*Scrollback)(nil)
