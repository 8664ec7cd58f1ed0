package vtcore

import "testing"

func TestKeyEncoderRune(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)

	got := enc.Encode(KeyEvent{Code: KeyRune, Rune: 'a'})
	if string(got) != "a" {
		t.Errorf("expected 'a', got %q", got)
	}
}

func TestKeyEncoderCtrlLetter(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)

	got := enc.Encode(KeyEvent{Code: KeyRune, Rune: 'c', Mods: ModCtrl})
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("expected Ctrl-C to encode to 0x03, got %v", got)
	}
}

func TestKeyEncoderAltRune(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)

	got := enc.Encode(KeyEvent{Code: KeyRune, Rune: 'x', Mods: ModAlt})
	if string(got) != "\x1bx" {
		t.Errorf("expected ESC-prefixed 'x', got %q", got)
	}
}

func TestKeyEncoderCursorKeysNormalVsApplication(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)

	got := enc.Encode(KeyEvent{Code: KeyUp})
	if string(got) != "\x1b[A" {
		t.Errorf("expected normal-mode up arrow '\\x1b[A', got %q", got)
	}

	term.WriteString("\x1b[?1h") // DECCKM application cursor keys
	got = enc.Encode(KeyEvent{Code: KeyUp})
	if string(got) != "\x1bOA" {
		t.Errorf("expected application-mode up arrow '\\x1bOA', got %q", got)
	}
}

func TestKeyEncoderCursorKeyWithModifier(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)

	got := enc.Encode(KeyEvent{Code: KeyRight, Mods: ModShift})
	if string(got) != "\x1b[1;2C" {
		t.Errorf("expected shift-right '\\x1b[1;2C', got %q", got)
	}
}

func TestKeyEncoderTildeKey(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)

	got := enc.Encode(KeyEvent{Code: KeyDelete})
	if string(got) != "\x1b[3~" {
		t.Errorf("expected delete '\\x1b[3~', got %q", got)
	}
}

func TestKeyEncoderFunctionKeySS3(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)

	got := enc.Encode(KeyEvent{Code: KeyF1})
	if string(got) != "\x1bOP" {
		t.Errorf("expected F1 '\\x1bOP', got %q", got)
	}
}

func TestKeyEncoderKittyModeReplacesLegacyEncoding(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)
	term.WriteString("\x1b[=1u")

	got := enc.Encode(KeyEvent{Code: KeyRune, Rune: 'a'})
	if string(got) != "\x1b[97u" {
		t.Errorf("expected Kitty-encoded 'a' as '\\x1b[97u', got %q", got)
	}
}

func TestKeyEncoderReleaseSuppressedWithoutEventReporting(t *testing.T) {
	term := New(WithSize(24, 80))
	enc := NewKeyEncoder(term)

	got := enc.Encode(KeyEvent{Code: KeyRune, Rune: 'a', Release: true})
	if got != nil {
		t.Errorf("expected nil without KeyboardModeReportEvents, got %q", got)
	}
}
