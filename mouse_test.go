package vtcore

import "testing"

func TestMouseEncoderNoTrackingModeYieldsNothing(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewMouseEncoder(term)

	got := enc.Encode(MouseEvent{Button: MouseButtonLeft, Action: MousePress, Row: 0, Col: 0})
	if got != nil {
		t.Errorf("expected nil with no mouse tracking mode enabled, got %q", got)
	}
}

func TestMouseEncoderLegacyX10Encoding(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[?1000h") // click tracking
	enc := NewMouseEncoder(term)

	got := enc.Encode(MouseEvent{Button: MouseButtonLeft, Action: MousePress, Row: 0, Col: 0})
	want := []byte{0x1b, '[', 'M', 32, 33, 33}
	if string(got) != string(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMouseEncoderSGREncoding(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[?1000h\x1b[?1006h") // click tracking + SGR
	enc := NewMouseEncoder(term)

	press := enc.Encode(MouseEvent{Button: MouseButtonLeft, Action: MousePress, Row: 4, Col: 9})
	if string(press) != "\x1b[<0;10;5M" {
		t.Errorf("expected SGR press sequence, got %q", press)
	}

	release := enc.Encode(MouseEvent{Button: MouseButtonLeft, Action: MouseRelease, Row: 4, Col: 9})
	if string(release) != "\x1b[<0;10;5m" {
		t.Errorf("expected SGR release sequence, got %q", release)
	}
}

func TestMouseEncoderMotionRequiresAllMotionMode(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[?1000h") // click tracking only
	enc := NewMouseEncoder(term)

	got := enc.Encode(MouseEvent{Button: MouseButtonNone, Action: MouseMotion, Row: 1, Col: 1})
	if got != nil {
		t.Errorf("expected motion suppressed under click-only tracking, got %q", got)
	}

	term.WriteString("\x1b[?1003h") // all-motion tracking
	got = enc.Encode(MouseEvent{Button: MouseButtonNone, Action: MouseMotion, Row: 1, Col: 1})
	if got == nil {
		t.Error("expected motion reported under all-motion tracking")
	}
}

func TestMouseEncoderWheelEvents(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[?1000h\x1b[?1006h")
	enc := NewMouseEncoder(term)

	got := enc.Encode(MouseEvent{Button: MouseButtonWheelUp, Action: MousePress, Row: 0, Col: 0})
	if string(got) != "\x1b[<64;1;1M" {
		t.Errorf("expected wheel-up SGR sequence, got %q", got)
	}
}
