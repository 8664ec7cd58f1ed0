package vtcore

import "fmt"

// csiParam returns params[i] if present and non-negative (a value was
// supplied), otherwise def.
func csiParam(params []int, i, def int) int {
	if i < 0 || i >= len(params) || params[i] < 0 {
		return def
	}
	return params[i]
}

// csiDispatch handles one complete CSI sequence. private is '?', '>', '='
// '<' or 0; intermed is a single intermediate byte (' ', '!') or 0.
func (t *Terminal) csiDispatch(final, private, intermed byte, params []int) {
	switch {
	case private == 0 && intermed == 0:
		t.csiPlain(final, params)
	case private == '?' && intermed == 0:
		t.csiPrivate(final, params)
	case private == '>' && intermed == 0:
		t.csiGT(final, params)
	case private == '<' && intermed == 0:
		t.csiLT(final, params)
	case private == '=' && intermed == 0:
		t.csiEq(final, params)
	case intermed == ' ':
		t.csiSpace(final, params)
	case intermed == '!':
		t.csiBang(final, params)
	default:
		t.tracer().Warnf("vtcore: unhandled CSI private=%q intermed=%q final=%q", private, intermed, final)
	}
}

func (t *Terminal) csiPlain(final byte, params []int) {
	switch final {
	case 'A':
		t.moveCursorRelative('A', csiParam(params, 0, 1))
	case 'B':
		t.moveCursorRelative('B', csiParam(params, 0, 1))
	case 'C':
		t.moveCursorRelative('C', csiParam(params, 0, 1))
	case 'D':
		t.moveCursorRelative('D', csiParam(params, 0, 1))
	case 'E':
		t.moveCursorRelative('B', csiParam(params, 0, 1))
		t.carriageReturn()
	case 'F':
		t.moveCursorRelative('A', csiParam(params, 0, 1))
		t.carriageReturn()
	case 'G':
		t.moveCursorTo(t.active.Cursor.Row, csiParam(params, 0, 1)-1)
	case 'H', 'f':
		t.moveCursorTo(csiParam(params, 0, 1)-1, csiParam(params, 1, 1)-1)
	case 'J':
		t.eraseInDisplay(ClearMode(csiParam(params, 0, 0)))
	case 'K':
		t.eraseInLine(LineClearMode(csiParam(params, 0, 0)))
	case 'L':
		t.insertLines(csiParam(params, 0, 1))
	case 'M':
		t.deleteLines(csiParam(params, 0, 1))
	case 'P':
		t.deleteChars(csiParam(params, 0, 1))
	case 'S':
		t.scrollUpCmd(csiParam(params, 0, 1))
	case 'T':
		t.scrollDownCmd(csiParam(params, 0, 1))
	case 'X':
		t.eraseChars(csiParam(params, 0, 1))
	case 'Z':
		n := csiParam(params, 0, 1)
		for i := 0; i < n; i++ {
			t.active.Cursor.Col = t.prevTabStop(t.active.Cursor.Col)
		}
	case '@':
		t.insertBlank(csiParam(params, 0, 1))
	case 'd':
		t.moveCursorTo(csiParam(params, 0, 1)-1, t.active.Cursor.Col)
	case 'g':
		t.clearTabs(TabulationClearMode(csiParam(params, 0, 0)))
	case 'h':
		t.setAnsiMode(csiParam(params, 0, 0), true)
	case 'l':
		t.setAnsiMode(csiParam(params, 0, 0), false)
	case 'm':
		t.handleSGR(params)
	case 'n':
		t.deviceStatus(csiParam(params, 0, 0))
	case 'r':
		t.setScrollingRegion(csiParam(params, 0, 1), csiParam(params, 1, t.rows))
	case 's':
		t.saveCursor()
	case 'u':
		t.restoreCursor()
	case 'c':
		t.identifyTerminal()
	case 't':
		t.windowOp(csiParam(params, 0, 0))
	default:
		t.tracer().Warnf("vtcore: unhandled CSI final %q", final)
	}
}

func (t *Terminal) csiPrivate(final byte, params []int) {
	switch final {
	case 'h':
		for _, n := range params {
			t.setDecPrivateMode(n, true)
		}
	case 'l':
		for _, n := range params {
			t.setDecPrivateMode(n, false)
		}
	case 's', 'r':
		// Save/restore DEC private mode values: not modeled individually,
		// treated as a no-op beyond the modes table already covering them.
	default:
		t.tracer().Warnf("vtcore: unhandled CSI ? final %q", final)
	}
}

func (t *Terminal) csiGT(final byte, params []int) {
	switch final {
	case 'c':
		t.writeResponseString("\x1b[>0;256;0c")
	case 'u':
		t.pushKeyboardMode(KeyboardMode(csiParam(params, 0, 0)))
	case 'm':
		t.setModifyOtherKeys(ModifyOtherKeys(csiParam(params, 1, 0)))
	default:
		t.tracer().Warnf("vtcore: unhandled CSI > final %q", final)
	}
}

func (t *Terminal) csiLT(final byte, params []int) {
	if final == 'u' {
		t.popKeyboardMode(csiParam(params, 0, 1))
	}
}

func (t *Terminal) csiEq(final byte, params []int) {
	if final == 'u' {
		mode := KeyboardMode(csiParam(params, 0, 0))
		behavior := KeyboardModeBehavior(csiParam(params, 1, 0))
		t.setKeyboardMode(mode, behavior)
	}
}

func (t *Terminal) csiSpace(final byte, params []int) {
	if final == 'q' {
		t.setCursorStyle(CursorStyle(csiParam(params, 0, 0)))
	}
}

func (t *Terminal) csiBang(final byte, params []int) {
	if final == 'p' {
		t.softReset()
	}
}

// --- cursor motion ---

func (t *Terminal) moveCursorRelative(dir byte, n int) {
	move := func(dir byte, n int) {
		switch dir {
		case 'A':
			t.active.Cursor.Row = clamp(t.active.Cursor.Row-n, 0, t.rows-1)
		case 'B':
			t.active.Cursor.Row = clamp(t.active.Cursor.Row+n, 0, t.rows-1)
		case 'C':
			t.active.Cursor.Col = clamp(t.active.Cursor.Col+n, 0, t.cols-1)
		case 'D':
			t.active.Cursor.Col = clamp(t.active.Cursor.Col-n, 0, t.cols-1)
		}
		t.active.Cursor.Overflow = false
	}
	if mw := t.middleware; mw != nil && mw.MoveCursorRelative != nil {
		mw.MoveCursorRelative(dir, n, move)
		return
	}
	move(dir, n)
}

func (t *Terminal) moveCursorTo(row, col int) {
	move := func(row, col int) {
		if t.HasMode(ModeOrigin) {
			row += t.scrollTop
			row = clamp(row, t.scrollTop, t.scrollBottom-1)
		} else {
			row = clamp(row, 0, t.rows-1)
		}
		t.active.Cursor.Row = row
		t.active.Cursor.Col = clamp(col, 0, t.cols-1)
		t.active.Cursor.Overflow = false
	}
	if mw := t.middleware; mw != nil && mw.MoveCursor != nil {
		mw.MoveCursor(row, col, move)
		return
	}
	move(row, col)
}

// --- erase ---

func (t *Terminal) eraseInDisplay(mode ClearMode) {
	apply := func(mode ClearMode) {
		row, col := t.active.Cursor.Row, t.active.Cursor.Col
		switch mode {
		case ClearBelow:
			t.active.ClearRowRange(row, col, t.cols)
			for r := row + 1; r < t.rows; r++ {
				t.active.ClearRow(r)
			}
		case ClearAbove:
			t.active.ClearRowRange(row, 0, col+1)
			for r := 0; r < row; r++ {
				t.active.ClearRow(r)
			}
		case ClearAll:
			t.active.ClearAll()
		case ClearSaved:
			t.scrollback.Clear()
		}
	}
	if mw := t.middleware; mw != nil && mw.ClearScreen != nil {
		mw.ClearScreen(mode, apply)
		return
	}
	apply(mode)
}

func (t *Terminal) eraseInLine(mode LineClearMode) {
	apply := func(mode LineClearMode) {
		row, col := t.active.Cursor.Row, t.active.Cursor.Col
		switch mode {
		case LineClearRight:
			t.active.ClearRowRange(row, col, t.cols)
		case LineClearLeft:
			t.active.ClearRowRange(row, 0, col+1)
		case LineClearAll:
			t.active.ClearRow(row)
		}
	}
	if mw := t.middleware; mw != nil && mw.ClearLine != nil {
		mw.ClearLine(mode, apply)
		return
	}
	apply(mode)
}

func (t *Terminal) eraseChars(n int) {
	apply := func(n int) {
		row, col := t.active.Cursor.Row, t.active.Cursor.Col
		end := col + n
		if end > t.cols {
			end = t.cols
		}
		t.active.ClearRowRange(row, col, end)
	}
	if mw := t.middleware; mw != nil && mw.EraseChars != nil {
		mw.EraseChars(n, apply)
		return
	}
	apply(n)
}

func (t *Terminal) clearTabs(mode TabulationClearMode) {
	apply := func(mode TabulationClearMode) {
		switch mode {
		case TabulationClearCurrent:
			col := t.active.Cursor.Col
			if col >= 0 && col < len(t.tabStops) {
				t.tabStops[col] = false
			}
		case TabulationClearAll:
			for i := range t.tabStops {
				t.tabStops[i] = false
			}
		}
	}
	if mw := t.middleware; mw != nil && mw.ClearTabs != nil {
		mw.ClearTabs(mode, apply)
		return
	}
	apply(mode)
}

// --- lines/chars ---

func (t *Terminal) insertLines(n int) {
	apply := func(n int) {
		row := t.active.Cursor.Row
		if row >= t.scrollTop && row < t.scrollBottom {
			t.active.InsertLines(row, n, t.scrollBottom)
		}
	}
	if mw := t.middleware; mw != nil && mw.InsertLines != nil {
		mw.InsertLines(n, apply)
		return
	}
	apply(n)
}

func (t *Terminal) deleteLines(n int) {
	apply := func(n int) {
		row := t.active.Cursor.Row
		if row >= t.scrollTop && row < t.scrollBottom {
			t.active.DeleteLines(row, n, t.scrollBottom)
		}
	}
	if mw := t.middleware; mw != nil && mw.DeleteLines != nil {
		mw.DeleteLines(n, apply)
		return
	}
	apply(n)
}

func (t *Terminal) insertBlank(n int) {
	apply := func(n int) {
		t.active.InsertBlanks(t.active.Cursor.Row, t.active.Cursor.Col, n)
	}
	if mw := t.middleware; mw != nil && mw.InsertBlank != nil {
		mw.InsertBlank(n, apply)
		return
	}
	apply(n)
}

func (t *Terminal) deleteChars(n int) {
	apply := func(n int) {
		t.active.DeleteChars(t.active.Cursor.Row, t.active.Cursor.Col, n)
	}
	if mw := t.middleware; mw != nil && mw.DeleteChars != nil {
		mw.DeleteChars(n, apply)
		return
	}
	apply(n)
}

func (t *Terminal) scrollUpCmd(n int) {
	apply := func(n int) {
		evicted := t.active.ScrollUp(t.scrollTop, t.scrollBottom, n)
		t.pushEvicted(evicted)
	}
	if mw := t.middleware; mw != nil && mw.ScrollUp != nil {
		mw.ScrollUp(n, apply)
		return
	}
	apply(n)
}

func (t *Terminal) scrollDownCmd(n int) {
	apply := func(n int) { t.active.ScrollDown(t.scrollTop, t.scrollBottom, n) }
	if mw := t.middleware; mw != nil && mw.ScrollDown != nil {
		mw.ScrollDown(n, apply)
		return
	}
	apply(n)
}

func (t *Terminal) setScrollingRegion(top, bottom int) {
	apply := func(top, bottom int) {
		if bottom > t.rows {
			bottom = t.rows
		}
		if top < 1 || top >= bottom {
			top, bottom = 1, t.rows
		}
		t.scrollTop = top - 1
		t.scrollBottom = bottom
		if t.HasMode(ModeOrigin) {
			t.active.Cursor.Row = t.scrollTop
		} else {
			t.active.Cursor.Row = 0
		}
		t.active.Cursor.Col = 0
		t.active.Cursor.Overflow = false
	}
	if mw := t.middleware; mw != nil && mw.SetScrollingRegion != nil {
		mw.SetScrollingRegion(top, bottom, apply)
		return
	}
	apply(top, bottom)
}

// --- modes ---

func (t *Terminal) setAnsiMode(n int, enable bool) {
	var mode TerminalMode
	switch n {
	case 4:
		mode = ModeInsert
	case 20:
		mode = ModeLineFeedNewLine
	default:
		t.tracer().Warnf("vtcore: unknown ANSI mode %d", n)
		return
	}
	t.applyMode(mode, enable)
}

func (t *Terminal) setDecPrivateMode(n int, enable bool) {
	switch n {
	case DECPrivateModeColumn:
		// 132-column mode: resize rather than flip a bit.
		if enable {
			t.Resize(t.rows, 132)
		} else {
			t.Resize(t.rows, 80)
		}
		return
	case DECPrivateModeAltScreenSave:
		t.swapToAlt(enable, false)
		return
	case DECPrivateModeSaveCursor:
		if enable {
			t.saveCursor()
		} else {
			t.restoreCursor()
		}
		return
	case DECPrivateModeAltScreenSaveRC:
		t.swapToAlt(enable, true)
		return
	}
	mode, ok := decPrivateModeFor(n)
	if !ok {
		t.tracer().Warnf("vtcore: unknown DEC private mode %d", n)
		return
	}
	t.applyMode(mode, enable)
}

func (t *Terminal) applyMode(mode TerminalMode, enable bool) {
	apply := func(mode TerminalMode) {
		if enable {
			t.modes |= mode
		} else {
			t.modes &^= mode
		}
	}
	if enable {
		if mw := t.middleware; mw != nil && mw.SetMode != nil {
			mw.SetMode(mode, apply)
			return
		}
	} else {
		if mw := t.middleware; mw != nil && mw.UnsetMode != nil {
			mw.UnsetMode(mode, apply)
			return
		}
	}
	apply(mode)
}

// swapToAlt switches between primary and alternate screens (DEC private
// modes 1047/1049). withCursor also saves/restores the cursor as part of
// the swap (mode 1049).
func (t *Terminal) swapToAlt(toAlt, withCursor bool) {
	if toAlt {
		if t.active == t.alt {
			return
		}
		if withCursor {
			t.saveCursor()
		}
		t.alt.ClearAll()
		t.alt.Cursor = NewCursor()
		t.active = t.alt
	} else {
		if t.active == t.primary {
			return
		}
		t.active = t.primary
		if withCursor {
			t.restoreCursor()
		}
	}
}

// --- SGR ---

func clampByte(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func parseExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return Color{}, 0
	}
	switch rest[0] {
	case 2:
		if len(rest) >= 4 {
			return Color{Mode: ColorRGB, R: clampByte(rest[1]), G: clampByte(rest[2]), B: clampByte(rest[3])}, 4
		}
	case 5:
		if len(rest) >= 2 {
			return Color{Mode: ColorIndexed, Index: clampByte(rest[1])}, 2
		}
	}
	return Color{}, len(rest)
}

func (t *Terminal) handleSGR(params []int) {
	attrs := t.active.Attrs
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		n := params[i]
		if n < 0 {
			n = 0
		}
		switch {
		case n == 0:
			attrs = TextAttributes{}
		case n == 1:
			attrs.Flags |= CellFlagBold
		case n == 2:
			attrs.Flags |= CellFlagDim
		case n == 3:
			attrs.Flags |= CellFlagItalic
		case n == 4:
			attrs.Flags |= CellFlagUnderline
		case n == 5:
			attrs.Flags |= CellFlagBlinkSlow
		case n == 6:
			attrs.Flags |= CellFlagBlinkFast
		case n == 7:
			attrs.Flags |= CellFlagInverse
		case n == 8:
			attrs.Flags |= CellFlagHidden
		case n == 9:
			attrs.Flags |= CellFlagStrike
		case n == 21:
			attrs.Flags |= CellFlagDoubleUnderline
		case n == 22:
			attrs.Flags &^= CellFlagBold | CellFlagDim
		case n == 23:
			attrs.Flags &^= CellFlagItalic
		case n == 24:
			attrs.Flags &^= CellFlagUnderline | CellFlagDoubleUnderline | CellFlagCurlyUnderline
		case n == 25:
			attrs.Flags &^= CellFlagBlinkSlow | CellFlagBlinkFast
		case n == 27:
			attrs.Flags &^= CellFlagInverse
		case n == 28:
			attrs.Flags &^= CellFlagHidden
		case n == 29:
			attrs.Flags &^= CellFlagStrike
		case n >= 30 && n <= 37:
			attrs.Fg = Color{Mode: ColorIndexed, Index: uint8(n - 30)}
		case n == 38:
			c, consumed := parseExtendedColor(params[i+1:])
			attrs.Fg = c
			i += consumed
		case n == 39:
			attrs.Fg = Color{}
		case n >= 40 && n <= 47:
			attrs.Bg = Color{Mode: ColorIndexed, Index: uint8(n - 40)}
		case n == 48:
			c, consumed := parseExtendedColor(params[i+1:])
			attrs.Bg = c
			i += consumed
		case n == 49:
			attrs.Bg = Color{}
		case n == 58:
			c, consumed := parseExtendedColor(params[i+1:])
			attrs.Underline = c
			i += consumed
		case n == 59:
			attrs.Underline = Color{}
		case n >= 90 && n <= 97:
			attrs.Fg = Color{Mode: ColorIndexed, Index: uint8(n - 90 + 8)}
		case n >= 100 && n <= 107:
			attrs.Bg = Color{Mode: ColorIndexed, Index: uint8(n - 100 + 8)}
		}
	}
	apply := func(a TextAttributes) { t.active.Attrs = a }
	if mw := t.middleware; mw != nil && mw.SetTextAttributes != nil {
		mw.SetTextAttributes(attrs, apply)
		return
	}
	apply(attrs)
}

// --- device status / identification ---

func (t *Terminal) deviceStatus(n int) {
	report := func(n int) {
		switch n {
		case 5:
			t.writeResponseString("\x1b[0n")
		case 6:
			row, col := t.active.Cursor.Row, t.active.Cursor.Col
			if t.HasMode(ModeOrigin) {
				row -= t.scrollTop
			}
			t.writeResponseString(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1))
		}
	}
	if mw := t.middleware; mw != nil && mw.DeviceStatus != nil {
		mw.DeviceStatus(n, report)
		return
	}
	report(n)
}

func (t *Terminal) identifyTerminal() {
	respond := func() { t.writeResponseString("\x1b[?1;2c") }
	if mw := t.middleware; mw != nil && mw.IdentifyTerminal != nil {
		mw.IdentifyTerminal(respond)
		return
	}
	respond()
}

func (t *Terminal) setCursorStyle(style CursorStyle) {
	apply := func(style CursorStyle) { t.active.Cursor.Style = style }
	if mw := t.middleware; mw != nil && mw.SetCursorStyle != nil {
		mw.SetCursorStyle(style, apply)
		return
	}
	apply(style)
}

func (t *Terminal) softReset() {
	t.modes = ModeLineWrap | ModeShowCursor
	t.scrollTop = 0
	t.scrollBottom = t.rows
	t.active.Attrs = TextAttributes{}
	t.active.Cursor.Style = CursorStyleBlinkingBlock
	t.active.Cursor.Overflow = false
	t.palette.ResetAll()
}

func (t *Terminal) windowOp(n int) {
	switch n {
	case 22:
		t.pushTitle()
	case 23:
		t.popTitle()
	}
}

func (t *Terminal) pushTitle() {
	push := func() { t.titleStack = append(t.titleStack, t.title) }
	if mw := t.middleware; mw != nil && mw.PushTitle != nil {
		mw.PushTitle(push)
		return
	}
	push()
	t.titleProvider.PushTitle()
}

func (t *Terminal) popTitle() {
	pop := func() {
		if len(t.titleStack) == 0 {
			return
		}
		t.title = t.titleStack[len(t.titleStack)-1]
		t.titleStack = t.titleStack[:len(t.titleStack)-1]
	}
	if mw := t.middleware; mw != nil && mw.PopTitle != nil {
		mw.PopTitle(pop)
		return
	}
	pop()
	t.titleProvider.PopTitle()
}

// --- Kitty keyboard protocol ---

func (t *Terminal) setKeyboardMode(mode KeyboardMode, behavior KeyboardModeBehavior) {
	apply := func(mode KeyboardMode, behavior KeyboardModeBehavior) {
		if len(t.keyboardModes) == 0 {
			t.keyboardModes = append(t.keyboardModes, 0)
		}
		top := len(t.keyboardModes) - 1
		switch behavior {
		case KeyboardModeBehaviorUnion:
			t.keyboardModes[top] |= mode
		case KeyboardModeBehaviorDifference:
			t.keyboardModes[top] &^= mode
		default:
			t.keyboardModes[top] = mode
		}
	}
	if mw := t.middleware; mw != nil && mw.SetKeyboardMode != nil {
		mw.SetKeyboardMode(mode, behavior, apply)
		return
	}
	apply(mode, behavior)
}

func (t *Terminal) pushKeyboardMode(mode KeyboardMode) {
	push := func(mode KeyboardMode) { t.keyboardModes = append(t.keyboardModes, mode) }
	if mw := t.middleware; mw != nil && mw.PushKeyboardMode != nil {
		mw.PushKeyboardMode(mode, push)
		return
	}
	push(mode)
}

func (t *Terminal) popKeyboardMode(n int) {
	pop := func(n int) {
		if n > len(t.keyboardModes) {
			n = len(t.keyboardModes)
		}
		t.keyboardModes = t.keyboardModes[:len(t.keyboardModes)-n]
	}
	if mw := t.middleware; mw != nil && mw.PopKeyboardMode != nil {
		mw.PopKeyboardMode(n, pop)
		return
	}
	pop(n)
}

// CurrentKeyboardMode returns the active (top-of-stack) Kitty keyboard
// protocol mode, or 0 if the stack is empty.
func (t *Terminal) CurrentKeyboardMode() KeyboardMode {
	if len(t.keyboardModes) == 0 {
		return 0
	}
	return t.keyboardModes[len(t.keyboardModes)-1]
}

func (t *Terminal) setModifyOtherKeys(v ModifyOtherKeys) {
	t.modifyOtherKeys = v
}

// ModifyOtherKeysResource returns xterm's modifyOtherKeys resource value.
func (t *Terminal) ModifyOtherKeysResource() ModifyOtherKeys { return t.modifyOtherKeys }
