package vtcore

import "testing"

// TestParserResumableAcrossChunkBoundaries checks that splitting a single
// escape sequence across arbitrary Feed/Write boundaries produces the same
// result as feeding it whole.
func TestParserResumableAcrossChunkBoundaries(t *testing.T) {
	whole := New(WithSize(24, 80))
	whole.WriteString("\x1b[31mX")

	split := New(WithSize(24, 80))
	seq := "\x1b[31mX"
	for i := 0; i < len(seq); i++ {
		split.WriteString(seq[i : i+1])
	}

	if whole.LineContent(0) != split.LineContent(0) {
		t.Fatalf("content mismatch: %q vs %q", whole.LineContent(0), split.LineContent(0))
	}
	wantAttrs := whole.CellStyle(whole.Cell(0, 0))
	gotAttrs := split.CellStyle(split.Cell(0, 0))
	if wantAttrs != gotAttrs {
		t.Errorf("style mismatch: %+v vs %+v", wantAttrs, gotAttrs)
	}
}

func TestParserResumableAcrossMultibyteRune(t *testing.T) {
	term := New(WithSize(24, 80))
	// "é" is 2 UTF-8 bytes; feed them in separate Write calls.
	b := []byte("é")
	term.Write(b[:1])
	term.Write(b[1:])

	if term.LineContent(0) != "é" {
		t.Errorf("expected 'é', got %q", term.LineContent(0))
	}
}

func TestParserUnknownEscapeDoesNotCorruptState(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1bZbefore")
	term.WriteString("after")

	if term.LineContent(0) != "beforeafter" {
		t.Errorf("expected printable text to survive unknown escape, got %q", term.LineContent(0))
	}
}

func TestParserOSCTerminatedByBEL(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b]0;hello\x07world")

	if term.Title() != "hello" {
		t.Errorf("expected title 'hello', got %q", term.Title())
	}
	if term.LineContent(0) != "world" {
		t.Errorf("expected 'world' printed after OSC, got %q", term.LineContent(0))
	}
}

func TestParserOSCTerminatedBySTRing(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b]0;hello\x1b\\world")

	if term.Title() != "hello" {
		t.Errorf("expected title 'hello', got %q", term.Title())
	}
	if term.LineContent(0) != "world" {
		t.Errorf("expected 'world' printed after OSC, got %q", term.LineContent(0))
	}
}

func TestParserCSIParamDefaults(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\r\n\r\n\r\n")
	term.WriteString("\x1b[H") // CUP with no params defaults to row 1, col 1
	row, col := term.CursorPos()
	if row != 0 || col != 0 {
		t.Errorf("expected cursor at (0,0), got (%d,%d)", row, col)
	}
}

func TestParserAbortsRunawayCSI(t *testing.T) {
	term := New(WithSize(24, 80))
	long := "\x1b["
	for i := 0; i < 40; i++ {
		long += "1;"
	}
	long += "m"
	term.WriteString(long)
	term.WriteString("X")

	if term.LineContent(0) != "X" {
		t.Errorf("expected parser to recover and print 'X', got %q", term.LineContent(0))
	}
}

func TestParserSOSDispatchesToProvider(t *testing.T) {
	var got []byte
	term := New(WithSOS(sosFunc(func(data []byte) { got = append([]byte(nil), data...) })))
	term.WriteString("\x1bXhello\x1b\\")

	if string(got) != "hello" {
		t.Errorf("expected SOS payload 'hello', got %q", got)
	}
}

type sosFunc func(data []byte)

func (f sosFunc) Receive(data []byte) { f(data) }
