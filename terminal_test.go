package vtcore

import "testing"

func TestNewTerminal(t *testing.T) {
	term := New()

	if term.Rows() != DefaultRows {
		t.Errorf("expected %d rows, got %d", DefaultRows, term.Rows())
	}
	if term.Cols() != DefaultCols {
		t.Errorf("expected %d cols, got %d", DefaultCols, term.Cols())
	}
}

func TestTerminalWithSize(t *testing.T) {
	term := New(WithSize(40, 120))

	if term.Rows() != 40 {
		t.Errorf("expected 40 rows, got %d", term.Rows())
	}
	if term.Cols() != 120 {
		t.Errorf("expected 120 cols, got %d", term.Cols())
	}
}

func TestTerminalWriteAndCursor(t *testing.T) {
	term := New(WithSize(24, 80))

	term.WriteString("Hello")

	if got := term.LineContent(0); got != "Hello" {
		t.Errorf("expected 'Hello', got %q", got)
	}
	row, col := term.CursorPos()
	if row != 0 || col != 5 {
		t.Errorf("expected cursor at (0, 5), got (%d, %d)", row, col)
	}
}

func TestTerminalCarriageReturnLineFeed(t *testing.T) {
	term := New(WithSize(24, 80))

	term.WriteString("Line1\r\nLine2")

	if term.LineContent(0) != "Line1" {
		t.Errorf("expected 'Line1', got %q", term.LineContent(0))
	}
	if term.LineContent(1) != "Line2" {
		t.Errorf("expected 'Line2', got %q", term.LineContent(1))
	}
}

// TestAutowrapSetsLineOverflow exercises wraparound: writing exactly `cols`
// characters should not itself wrap, but the next character does, and the
// wrapped-from row is marked with LineOverflow so joined copy/paste can
// suppress the newline.
func TestAutowrapSetsLineOverflow(t *testing.T) {
	term := New(WithSize(24, 5))

	term.WriteString("ABCDE")
	if row, col := term.CursorPos(); row != 0 || col != 4 {
		t.Errorf("expected cursor to stick at (0, 4) before wrapping, got (%d, %d)", row, col)
	}

	term.WriteString("F")
	if row, col := term.CursorPos(); row != 1 || col != 1 {
		t.Errorf("expected cursor at (1, 1) after wrap, got (%d, %d)", row, col)
	}
	if !term.IsWrapped(0) {
		t.Error("expected row 0 to be marked as wrapped")
	}
	if term.LineContent(0) != "ABCDE" || term.LineContent(1) != "F" {
		t.Errorf("unexpected content: %q / %q", term.LineContent(0), term.LineContent(1))
	}
}

func TestSGRSetsAndResetsAttributes(t *testing.T) {
	term := New(WithSize(24, 80))

	term.WriteString("\x1b[1;31mX\x1b[0mY")

	bold := term.CellStyle(term.Cell(0, 0))
	if bold.Flags&CellFlagBold == 0 {
		t.Error("expected first cell to be bold")
	}
	if bold.Fg.Mode != ColorIndexed || bold.Fg.Index != 1 {
		t.Errorf("expected indexed red foreground, got %+v", bold.Fg)
	}

	reset := term.CellStyle(term.Cell(0, 1))
	if reset.Flags != 0 || reset.Fg.Mode != ColorDefault {
		t.Errorf("expected default style after reset, got %+v", reset)
	}
}

func TestCursorPositionAndEraseBelow(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("aaaaaaaaaa\r\nbbbbbbbbbb\r\ncccccccccc")
	term.WriteString("\x1b[2;1H\x1b[J")

	if term.LineContent(0) != "aaaaaaaaaa" {
		t.Errorf("expected row 0 untouched, got %q", term.LineContent(0))
	}
	if term.LineContent(1) != "" {
		t.Errorf("expected row 1 erased, got %q", term.LineContent(1))
	}
	if term.LineContent(2) != "" {
		t.Errorf("expected row 2 erased, got %q", term.LineContent(2))
	}
}

func TestAlternateScreenRoundTrip(t *testing.T) {
	term := New(WithSize(24, 80))

	term.WriteString("primary content")
	term.WriteString("\x1b[?1049h")
	if !term.IsAlternateScreen() {
		t.Fatal("expected alternate screen active")
	}

	term.WriteString("\x1b[2J\x1b[Halt content")
	if term.LineContent(0) != "alt content" {
		t.Errorf("expected alt content, got %q", term.LineContent(0))
	}

	term.WriteString("\x1b[?1049l")
	if term.IsAlternateScreen() {
		t.Fatal("expected primary screen restored")
	}
	if term.LineContent(0) != "primary content" {
		t.Errorf("expected primary content restored, got %q", term.LineContent(0))
	}
}

func TestAlternateScreenRetainsNoScrollback(t *testing.T) {
	term := New(WithSize(3, 10), WithScrollback(NewScrollback(100)))

	term.WriteString("\x1b[?1049h")
	for i := 0; i < 10; i++ {
		term.WriteString("line\r\n")
	}
	if term.ScrollbackLen() != 0 {
		t.Errorf("expected no scrollback retained on alternate screen, got %d lines", term.ScrollbackLen())
	}
}

func TestPrimaryDeviceAttributesResponse(t *testing.T) {
	var resp respBuf
	term := New(WithResponse(&resp))

	term.WriteString("\x1b[c")

	if resp.String() != "\x1b[?1;2c" {
		t.Errorf("unexpected DA1 response: %q", resp.String())
	}
}

func TestDeviceStatusCursorPositionReport(t *testing.T) {
	var resp respBuf
	term := New(WithResponse(&resp))

	term.WriteString("abc\x1b[6n")

	if resp.String() != "\x1b[1;4R" {
		t.Errorf("unexpected CPR response: %q", resp.String())
	}
}

func TestResizeGrowPreservesContent(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("hello")
	term.Resize(10, 20)
	if term.Rows() != 10 || term.Cols() != 20 {
		t.Fatalf("expected 10x20 after resize, got %dx%d", term.Rows(), term.Cols())
	}
	if term.LineContent(0) != "hello" {
		t.Errorf("expected content preserved across resize, got %q", term.LineContent(0))
	}
}

func TestSelectionRoundTrip(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("Hello World")

	term.SetSelection(Position{Row: 0, Col: 0}, Position{Row: 0, Col: 4})
	if !term.HasSelection() {
		t.Fatal("expected selection active")
	}
	if got := term.GetSelectedText(); got != "Hello" {
		t.Errorf("expected 'Hello', got %q", got)
	}

	term.ClearSelection()
	if term.HasSelection() {
		t.Error("expected selection cleared")
	}
}

func TestResetStateRestoresDefaults(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[1m\x1b[?1049h\x1b[31mX")

	term.WriteString("\x1bc") // RIS

	if term.IsAlternateScreen() {
		t.Error("expected primary screen after RIS")
	}
	if term.Title() != "" {
		t.Errorf("expected title cleared after RIS, got %q", term.Title())
	}
}

// respBuf is a minimal io.Writer collecting response bytes, used in place
// of a real PTY for response-reporting tests.
type respBuf struct {
	b []byte
}

func (r *respBuf) Write(p []byte) (int, error) {
	r.b = append(r.b, p...)
	return len(p), nil
}

func (r *respBuf) String() string { return string(r.b) }
