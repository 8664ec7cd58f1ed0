package vtcore

import "fmt"

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone // motion-only event, no button held
	MouseButtonWheelUp
	MouseButtonWheelDown
)

// MouseAction is the kind of mouse event being reported.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// MouseEvent is one mouse action to encode, in 0-based cell coordinates.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	Row    int
	Col    int
	Mods   KeyMods
}

// MouseEncoder translates MouseEvents into the byte sequences xterm mouse
// tracking protocols expect, selecting X10/legacy or SGR encoding and
// respecting which tracking mode (click-only, cell-motion, all-motion) the
// terminal currently has enabled.
type MouseEncoder struct {
	term *Terminal
}

// NewMouseEncoder creates an encoder that consults term's current mouse
// reporting modes when encoding each event.
func NewMouseEncoder(term *Terminal) *MouseEncoder {
	return &MouseEncoder{term: term}
}

// Encode returns the byte sequence for ev, or nil if no mouse tracking
// mode is enabled or this event isn't one the active mode reports (e.g.
// plain motion when only click tracking is on).
func (e *MouseEncoder) Encode(ev MouseEvent) []byte {
	if !e.reportable(ev) {
		return nil
	}

	code := e.buttonCode(ev)

	if e.term.HasMode(ModeSGRMouse) {
		final := byte('M')
		if ev.Action == MouseRelease {
			final = 'm'
		}
		return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", code, ev.Col+1, ev.Row+1, final))
	}

	// Legacy X10/normal encoding: byte values are biased by 32, and
	// coordinates beyond 223 cannot be represented (they clamp to 255).
	if ev.Action == MouseRelease {
		code = 3
	}
	col := clamp(ev.Col+1+32, 32, 255)
	row := clamp(ev.Row+1+32, 32, 255)
	return []byte{0x1b, '[', 'M', byte(code + 32), byte(col), byte(row)}
}

func (e *MouseEncoder) reportable(ev MouseEvent) bool {
	switch ev.Action {
	case MousePress, MouseRelease:
		return e.term.HasMode(ModeReportMouseClicks) ||
			e.term.HasMode(ModeReportCellMouseMotion) ||
			e.term.HasMode(ModeReportAllMouseMotion)
	case MouseMotion:
		if ev.Button != MouseButtonNone {
			return e.term.HasMode(ModeReportCellMouseMotion) || e.term.HasMode(ModeReportAllMouseMotion)
		}
		return e.term.HasMode(ModeReportAllMouseMotion)
	default:
		return false
	}
}

func (e *MouseEncoder) buttonCode(ev MouseEvent) int {
	var code int
	switch ev.Button {
	case MouseButtonLeft:
		code = 0
	case MouseButtonMiddle:
		code = 1
	case MouseButtonRight:
		code = 2
	case MouseButtonNone:
		code = 3
	case MouseButtonWheelUp:
		code = 64
	case MouseButtonWheelDown:
		code = 65
	}
	if ev.Action == MouseMotion {
		code |= 32
	}
	if ev.Mods&ModShift != 0 {
		code |= 4
	}
	if ev.Mods&ModAlt != 0 {
		code |= 8
	}
	if ev.Mods&ModCtrl != 0 {
		code |= 16
	}
	return code
}
