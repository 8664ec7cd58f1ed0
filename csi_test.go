package vtcore

import "testing"

func TestCursorMotionClampsAtEdges(t *testing.T) {
	term := New(WithSize(5, 5))

	term.WriteString("\x1b[100B") // CUD past the bottom
	if row, _ := term.CursorPos(); row != 4 {
		t.Errorf("expected row clamped to 4, got %d", row)
	}

	term.WriteString("\x1b[100A") // CUU past the top
	if row, _ := term.CursorPos(); row != 0 {
		t.Errorf("expected row clamped to 0, got %d", row)
	}
}

func TestInsertAndDeleteLines(t *testing.T) {
	term := New(WithSize(4, 5))
	term.WriteString("AAAAA\r\nBBBBB\r\nCCCCC\r\nDDDDD")

	term.WriteString("\x1b[2;1H\x1b[L") // IL at row 2
	if term.LineContent(1) != "" {
		t.Errorf("expected blank inserted line, got %q", term.LineContent(1))
	}
	if term.LineContent(2) != "BBBBB" {
		t.Errorf("expected BBBBB pushed down, got %q", term.LineContent(2))
	}

	term.WriteString("\x1b[M") // DL removes the blank we just inserted
	if term.LineContent(1) != "BBBBB" {
		t.Errorf("expected BBBBB restored to row 1, got %q", term.LineContent(1))
	}
}

func TestScrollRegionConstrainsScrolling(t *testing.T) {
	term := New(WithSize(5, 5))
	term.WriteString("\x1b[2;4r") // scroll region rows 2-4

	for i := 0; i < 3; i++ {
		term.WriteString("x\r\n")
	}
	row, _ := term.CursorPos()
	if row != 3 {
		t.Errorf("expected cursor to stop at bottom of scroll region (row 3), got %d", row)
	}
}

func TestScrollRegionAtTopDoesNotScrollback(t *testing.T) {
	term := New(WithSize(5, 5))
	term.WriteString("\x1b[1;4r") // scroll region spans rows 1-4, a top-anchored partial region

	for i := 0; i < 6; i++ {
		term.WriteString("x\r\n")
	}
	if term.ScrollbackLen() != 0 {
		t.Errorf("expected no scrollback from a partial top-anchored scroll region, got %d lines", term.ScrollbackLen())
	}
}

func TestSGRExtendedTrueColor(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[38;2;10;20;30mX")

	attrs := term.CellStyle(term.Cell(0, 0))
	if attrs.Fg.Mode != ColorRGB || attrs.Fg.R != 10 || attrs.Fg.G != 20 || attrs.Fg.B != 30 {
		t.Errorf("expected rgb(10,20,30) foreground, got %+v", attrs.Fg)
	}
}

func TestSGRExtendedIndexed(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[48;5;200mX")

	attrs := term.CellStyle(term.Cell(0, 0))
	if attrs.Bg.Mode != ColorIndexed || attrs.Bg.Index != 200 {
		t.Errorf("expected indexed bg 200, got %+v", attrs.Bg)
	}
}

func TestOriginModeOffsetsCursorReports(t *testing.T) {
	var resp respBuf
	term := New(WithResponse(&resp))
	term.WriteString("\x1b[5;10r")  // scroll region rows 5-10
	term.WriteString("\x1b[?6h")    // DECOM origin mode
	term.WriteString("\x1b[2;3H")   // move within region
	term.WriteString("\x1b[6n")     // DSR cursor position

	if resp.String() != "\x1b[2;3R" {
		t.Errorf("expected origin-relative CPR '\\x1b[2;3R', got %q", resp.String())
	}
}

func TestDECSTBMRejectsInvalidRegion(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[10;5r") // top >= bottom, invalid

	top, bottom := term.ScrollRegion()
	if top != 0 || bottom != 24 {
		t.Errorf("expected region reset to full screen, got (%d,%d)", top, bottom)
	}
}

func TestSoftResetDoesNotClearScreen(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("hello\x1b[1m")
	term.WriteString("\x1b[!p") // DECSTR

	if term.LineContent(0) != "hello" {
		t.Errorf("expected soft reset to leave screen content intact, got %q", term.LineContent(0))
	}
	attrs := term.CellStyle(term.Cell(0, 5))
	if attrs.Flags&CellFlagBold != 0 {
		t.Error("expected attrs cleared by soft reset")
	}
}

func TestTitleStackPushPop(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b]0;first\x07")
	term.WriteString("\x1b[22t") // push
	term.WriteString("\x1b]0;second\x07")
	term.WriteString("\x1b[23t") // pop

	if term.Title() != "first" {
		t.Errorf("expected title restored to 'first', got %q", term.Title())
	}
}

func TestKittyKeyboardModeSetPushPop(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[=5u") // set mode 5
	if term.CurrentKeyboardMode() != 5 {
		t.Fatalf("expected keyboard mode 5, got %d", term.CurrentKeyboardMode())
	}

	term.WriteString("\x1b[>1u") // push mode 1
	if term.CurrentKeyboardMode() != 1 {
		t.Fatalf("expected pushed keyboard mode 1, got %d", term.CurrentKeyboardMode())
	}

	term.WriteString("\x1b[<1u") // pop
	if term.CurrentKeyboardMode() != 5 {
		t.Errorf("expected keyboard mode restored to 5, got %d", term.CurrentKeyboardMode())
	}
}
