package vtcore

import "testing"

func newTestScreen(h, w int) *Screen {
	return NewScreen(h, w, NewStyleInterner())
}

func TestNewScreenBlank(t *testing.T) {
	s := newTestScreen(3, 4)
	if s.Height != 3 || s.Width != 4 {
		t.Fatalf("expected 3x4, got %dx%d", s.Height, s.Width)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if !s.Cell(row, col).IsEmpty() {
				t.Errorf("expected (%d,%d) blank", row, col)
			}
		}
	}
}

func TestScreenSetCellOutOfBounds(t *testing.T) {
	s := newTestScreen(2, 2)
	s.SetCell(-1, 0, Cell{Content: "x"})
	s.SetCell(5, 0, Cell{Content: "x"})
	// Should not panic; nothing else to assert.
}

func TestScreenClearRow(t *testing.T) {
	s := newTestScreen(2, 3)
	s.SetCell(0, 0, Cell{Content: "a"})
	s.SetCell(0, 1, Cell{Content: "b"})
	s.Rows[0].LineOverflow = true

	s.ClearRow(0)

	if !s.Cell(0, 0).IsEmpty() || !s.Cell(0, 1).IsEmpty() {
		t.Error("expected row 0 cleared")
	}
	if s.Rows[0].LineOverflow {
		t.Error("expected LineOverflow reset by ClearRow")
	}
}

func TestScreenClearRowRange(t *testing.T) {
	s := newTestScreen(1, 5)
	for c := 0; c < 5; c++ {
		s.SetCell(0, c, Cell{Content: "x"})
	}
	s.ClearRowRange(0, 1, 3)
	if s.Cell(0, 0).Content != "x" || s.Cell(0, 3).Content != "x" {
		t.Error("expected cells outside range untouched")
	}
	if !s.Cell(0, 1).IsEmpty() || !s.Cell(0, 2).IsEmpty() {
		t.Error("expected cells inside range cleared")
	}
}

func TestScreenScrollUpEvictsFromTop(t *testing.T) {
	s := newTestScreen(3, 2)
	s.SetCell(0, 0, Cell{Content: "1"})
	s.SetCell(1, 0, Cell{Content: "2"})
	s.SetCell(2, 0, Cell{Content: "3"})

	evicted := s.ScrollUp(0, 3, 1)

	if len(evicted) != 1 || evicted[0].Cells[0].Content != "1" {
		t.Fatalf("expected row '1' evicted, got %+v", evicted)
	}
	if s.Cell(0, 0).Content != "2" {
		t.Errorf("expected row 0 to now hold '2', got %q", s.Cell(0, 0).Content)
	}
	if !s.Cell(2, 0).IsEmpty() {
		t.Error("expected new blank row at bottom")
	}
}

func TestScreenScrollUpMidRegionNoEviction(t *testing.T) {
	s := newTestScreen(4, 2)
	evicted := s.ScrollUp(1, 4, 1)
	if evicted != nil {
		t.Errorf("expected no eviction for a scroll region not starting at 0, got %+v", evicted)
	}
}

func TestScreenScrollUpPartialRegionAtTopNoEviction(t *testing.T) {
	s := newTestScreen(5, 2)
	evicted := s.ScrollUp(0, 4, 1)
	if evicted != nil {
		t.Errorf("expected no eviction for a region not spanning the full screen, got %+v", evicted)
	}
}

func TestScreenScrollDown(t *testing.T) {
	s := newTestScreen(3, 1)
	s.SetCell(0, 0, Cell{Content: "a"})
	s.SetCell(1, 0, Cell{Content: "b"})

	s.ScrollDown(0, 3, 1)

	if !s.Cell(0, 0).IsEmpty() {
		t.Error("expected top row blanked")
	}
	if s.Cell(1, 0).Content != "a" {
		t.Errorf("expected row 1 to hold 'a', got %q", s.Cell(1, 0).Content)
	}
}

func TestScreenInsertDeleteLines(t *testing.T) {
	s := newTestScreen(3, 1)
	s.SetCell(0, 0, Cell{Content: "a"})
	s.SetCell(1, 0, Cell{Content: "b"})
	s.SetCell(2, 0, Cell{Content: "c"})

	s.InsertLines(1, 1, 3)
	if s.Cell(1, 0).Content != "" && !s.Cell(1, 0).IsEmpty() {
		t.Errorf("expected inserted blank at row 1, got %q", s.Cell(1, 0).Content)
	}
	if s.Cell(2, 0).Content != "b" {
		t.Errorf("expected 'b' shifted to row 2, got %q", s.Cell(2, 0).Content)
	}

	s.DeleteLines(1, 1, 3)
	if s.Cell(1, 0).Content != "b" {
		t.Errorf("expected 'b' restored at row 1, got %q", s.Cell(1, 0).Content)
	}
}

func TestScreenInsertDeleteBlanks(t *testing.T) {
	s := newTestScreen(1, 4)
	s.SetCell(0, 0, Cell{Content: "a"})
	s.SetCell(0, 1, Cell{Content: "b"})
	s.SetCell(0, 2, Cell{Content: "c"})

	s.InsertBlanks(0, 1, 1)
	if s.Cell(0, 1).Content != "" && !s.Cell(0, 1).IsEmpty() {
		t.Errorf("expected blank inserted at col 1, got %q", s.Cell(0, 1).Content)
	}
	if s.Cell(0, 2).Content != "b" {
		t.Errorf("expected 'b' shifted to col 2, got %q", s.Cell(0, 2).Content)
	}

	s.DeleteChars(0, 1, 1)
	if s.Cell(0, 1).Content != "b" {
		t.Errorf("expected 'b' restored at col 1, got %q", s.Cell(0, 1).Content)
	}
}

func TestScreenResizeGrow(t *testing.T) {
	s := newTestScreen(2, 2)
	s.SetCell(0, 0, Cell{Content: "x"})

	s.Resize(3, 3)

	if s.Height != 3 || s.Width != 3 {
		t.Fatalf("expected 3x3, got %dx%d", s.Height, s.Width)
	}
	if s.Cell(0, 0).Content != "x" {
		t.Error("expected preserved content at (0,0)")
	}
	if !s.Cell(2, 2).IsEmpty() {
		t.Error("expected new cells blank")
	}
}

func TestScreenResizeShrinkClampsCursor(t *testing.T) {
	s := newTestScreen(5, 5)
	s.Cursor.Row, s.Cursor.Col = 4, 4

	s.Resize(2, 2)

	if s.Cursor.Row != 1 || s.Cursor.Col != 1 {
		t.Errorf("expected cursor clamped to (1,1), got (%d,%d)", s.Cursor.Row, s.Cursor.Col)
	}
}

func TestScreenFillWithE(t *testing.T) {
	s := newTestScreen(2, 2)
	s.FillWithE()
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if s.Cell(row, col).Content != "E" {
				t.Errorf("expected 'E' at (%d,%d), got %q", row, col, s.Cell(row, col).Content)
			}
		}
	}
}

func TestScreenLineText(t *testing.T) {
	s := newTestScreen(1, 5)
	s.SetCell(0, 0, Cell{Content: "h"})
	s.SetCell(0, 1, Cell{Content: "i"})
	if got := s.LineText(0); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}
}
