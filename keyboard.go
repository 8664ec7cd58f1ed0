package vtcore

import "fmt"

// KeyCode identifies a key independent of the modifiers held with it.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyTab
	KeyEnter
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyRune // a printable character; see KeyEvent.Rune
)

// KeyMods is a bitmask of modifier keys held alongside a key press, using
// the xterm CSI-u modifier encoding (value = 1 + bits).
type KeyMods uint8

const (
	ModShift KeyMods = 1 << iota
	ModAlt
	ModCtrl
	ModSuper
)

// KeyEvent is one key action to encode into bytes for the host program.
type KeyEvent struct {
	Code    KeyCode
	Rune    rune // valid when Code == KeyRune
	Mods    KeyMods
	Release bool // true for a key-up event (only reported under KeyboardModeReportEvents)
}

// KeyEncoder translates KeyEvents into the byte sequences xterm-compatible
// programs expect, honoring application cursor-key mode and the Kitty
// keyboard protocol's progressive enhancements. Keypad application mode is
// not consulted.
type KeyEncoder struct {
	term *Terminal
}

// NewKeyEncoder creates an encoder that consults term's current modes when
// encoding each key.
func NewKeyEncoder(term *Terminal) *KeyEncoder {
	return &KeyEncoder{term: term}
}

var legacyCursorKeys = map[KeyCode][2]byte{
	KeyUp:    {'A', 'A'},
	KeyDown:  {'B', 'B'},
	KeyRight: {'C', 'C'},
	KeyLeft:  {'D', 'D'},
	KeyHome:  {'H', 'H'},
	KeyEnd:   {'F', 'F'},
}

var tildeKeys = map[KeyCode]int{
	KeyHome:     1,
	KeyInsert:   2,
	KeyDelete:   3,
	KeyEnd:      4,
	KeyPageUp:   5,
	KeyPageDown: 6,
	KeyF5:       15,
	KeyF6:       17,
	KeyF7:       18,
	KeyF8:       19,
	KeyF9:       20,
	KeyF10:      21,
	KeyF11:      23,
	KeyF12:      24,
}

var functionKeySS3 = map[KeyCode]byte{
	KeyF1: 'P',
	KeyF2: 'Q',
	KeyF3: 'R',
	KeyF4: 'S',
}

// Encode returns the byte sequence for ev given the encoder's terminal's
// current mode state. A release event that isn't requested by the active
// Kitty keyboard mode encodes to nil.
func (k *KeyEncoder) Encode(ev KeyEvent) []byte {
	if ev.Release {
		if k.term.CurrentKeyboardMode()&KeyboardModeReportEvents == 0 {
			return nil
		}
		return k.encodeKitty(ev)
	}

	if k.term.CurrentKeyboardMode() != 0 {
		if seq := k.encodeKitty(ev); seq != nil {
			return seq
		}
	}

	if ev.Code == KeyRune {
		return k.encodeRune(ev)
	}

	if seq, ok := legacyCursorKeys[ev.Code]; ok {
		if ev.Mods != 0 {
			return []byte(fmt.Sprintf("\x1b[1;%d%c", modifierParam(ev.Mods), seq[0]))
		}
		lead := byte('[')
		if k.term.HasMode(ModeCursorKeys) {
			lead = 'O'
		}
		return []byte{0x1b, lead, seq[1]}
	}

	if n, ok := tildeKeys[ev.Code]; ok {
		if ev.Mods != 0 {
			return []byte(fmt.Sprintf("\x1b[%d;%d~", n, modifierParam(ev.Mods)))
		}
		return []byte(fmt.Sprintf("\x1b[%d~", n))
	}

	if b, ok := functionKeySS3[ev.Code]; ok {
		if ev.Mods != 0 {
			return []byte(fmt.Sprintf("\x1b[1;%d%c", modifierParam(ev.Mods), b))
		}
		return []byte{0x1b, 'O', b}
	}

	switch ev.Code {
	case KeyEnter:
		return []byte{'\r'}
	case KeyTab:
		if ev.Mods&ModShift != 0 {
			return []byte("\x1b[Z")
		}
		return []byte{'\t'}
	case KeyBackspace:
		return []byte{0x7f}
	case KeyEscape:
		return []byte{0x1b}
	}

	return nil
}

func (k *KeyEncoder) encodeRune(ev KeyEvent) []byte {
	r := ev.Rune
	if ev.Mods&ModCtrl != 0 && r >= 'a' && r <= 'z' {
		return []byte{byte(r - 'a' + 1)}
	}
	if ev.Mods&ModCtrl != 0 && r >= 'A' && r <= 'Z' {
		return []byte{byte(r - 'A' + 1)}
	}
	b := []byte(string(r))
	if ev.Mods&ModAlt != 0 {
		return append([]byte{0x1b}, b...)
	}
	return b
}

// encodeKitty implements the CSI u progressive-enhancement encoding: CSI
// codepoint ; modifiers [: event-type] u. Only press and release event
// types are produced; repeat events and alternate-key reporting are not.
// Keys without a Kitty codepoint return nil.
func (k *KeyEncoder) encodeKitty(ev KeyEvent) []byte {
	codepoint := int(ev.Rune)
	if ev.Code != KeyRune {
		codepoint = kittyFunctionalCodepoint(ev.Code)
		if codepoint == 0 {
			return nil
		}
	}

	mod := modifierParam(ev.Mods)
	eventType := 1
	if ev.Release {
		eventType = 3
	}

	if eventType == 1 && mod == 1 {
		return []byte(fmt.Sprintf("\x1b[%du", codepoint))
	}
	if eventType == 1 {
		return []byte(fmt.Sprintf("\x1b[%d;%du", codepoint, mod))
	}
	return []byte(fmt.Sprintf("\x1b[%d;%d:%du", codepoint, mod, eventType))
}

func kittyFunctionalCodepoint(code KeyCode) int {
	switch code {
	case KeyUp:
		return 57352 // follows the Kitty protocol's private-use range convention
	case KeyDown:
		return 57353
	case KeyEnter:
		return 13
	case KeyTab:
		return 9
	case KeyBackspace:
		return 127
	case KeyEscape:
		return 27
	default:
		return 0
	}
}

// modifierParam encodes KeyMods into xterm's 1-based modifier parameter.
func modifierParam(mods KeyMods) int {
	return 1 + int(mods)
}
