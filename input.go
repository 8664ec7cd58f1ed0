package vtcore

import "unicode/utf8"

// printCluster places one grapheme cluster at the cursor, handling
// wide-character spacing and autowrap. It is the terminal's side of
// Parser.flushPrint.
func (t *Terminal) printCluster(cluster string) {
	if mw := t.middleware; mw != nil && mw.PrintCluster != nil {
		mw.PrintCluster(cluster, t.printClusterInternal)
		return
	}
	t.printClusterInternal(cluster)
}

func (t *Terminal) printClusterInternal(cluster string) {
	w := clusterWidth(cluster)
	if w <= 0 {
		w = 1
	}

	content := cluster
	if r, size := utf8.DecodeRuneInString(cluster); size == len(cluster) {
		content = string(t.charsets[t.activeCharset].Translate(r))
	}

	if t.active.Cursor.Overflow && t.HasMode(ModeLineWrap) {
		t.wrapLine()
	} else if t.active.Cursor.Col >= t.cols {
		t.active.Cursor.Col = t.cols - 1
	}

	row, col := t.active.Cursor.Row, t.active.Cursor.Col
	if t.HasMode(ModeInsert) {
		t.active.InsertBlanks(row, col, w)
	}

	styleID := t.style.Intern(t.active.Attrs)
	cell := Cell{Content: content, Style: styleID, Hyperlink: t.currentHyperlink}
	if w == 2 {
		cell.Wide = true
	}
	t.active.SetCell(row, col, cell)
	if w == 2 && col+1 < t.cols {
		t.active.SetCell(row, col+1, Cell{WCTrailing: true, Style: styleID})
	}

	newCol := col + w
	if newCol >= t.cols {
		t.active.Cursor.Col = t.cols - 1
		t.active.Cursor.Overflow = true
	} else {
		t.active.Cursor.Col = newCol
		t.active.Cursor.Overflow = false
	}
}

// wrapLine marks the current row as wrapped, advances to the next line and
// moves the cursor to column 0.
func (t *Terminal) wrapLine() {
	t.active.Rows[t.active.Cursor.Row].LineOverflow = true
	t.index()
	t.active.Cursor.Col = 0
	t.active.Cursor.Overflow = false
}

// index moves the cursor down one line (IND / IndexDown), scrolling the
// active scroll region when already at its bottom, and growing the screen
// instead when auto-resize is enabled.
func (t *Terminal) index() {
	if t.active.Cursor.Row == t.scrollBottom-1 {
		if t.autoResize && t.active == t.primary && t.scrollBottom == t.rows {
			t.Resize(t.rows+1, t.cols)
			t.active.Cursor.Row++
			return
		}
		evicted := t.active.ScrollUp(t.scrollTop, t.scrollBottom, 1)
		t.pushEvicted(evicted)
	} else if t.active.Cursor.Row < t.rows-1 {
		t.active.Cursor.Row++
	}
}

// reverseIndex moves the cursor up one line (RI), scrolling down when
// already at the top of the scroll region.
func (t *Terminal) reverseIndex() {
	if t.active.Cursor.Row == t.scrollTop {
		t.active.ScrollDown(t.scrollTop, t.scrollBottom, 1)
	} else if t.active.Cursor.Row > 0 {
		t.active.Cursor.Row--
	}
}

func (t *Terminal) carriageReturn() {
	t.active.Cursor.Col = 0
	t.active.Cursor.Overflow = false
}

func (t *Terminal) lineFeed() {
	t.index()
	if t.HasMode(ModeLineFeedNewLine) {
		t.active.Cursor.Col = 0
	}
	t.active.Cursor.Overflow = false
}

// nextTabStop returns the column of the next set tab stop after col, or
// the last column if none remain.
func (t *Terminal) nextTabStop(col int) int {
	for c := col + 1; c < len(t.tabStops); c++ {
		if t.tabStops[c] {
			return c
		}
	}
	return t.cols - 1
}

// prevTabStop returns the column of the previous set tab stop before col,
// or 0 if none remain.
func (t *Terminal) prevTabStop(col int) int {
	for c := col - 1; c >= 0; c-- {
		if t.tabStops[c] {
			return c
		}
	}
	return 0
}

// controlChar handles a single C0 control byte (0x00-0x1f, 0x7f).
func (t *Terminal) controlChar(b byte) {
	if mw := t.middleware; mw != nil && mw.ControlChar != nil {
		mw.ControlChar(b, t.controlCharInternal)
		return
	}
	t.controlCharInternal(b)
}

func (t *Terminal) controlCharInternal(b byte) {
	switch b {
	case 0x07: // BEL
		t.ringBell()
	case 0x08: // BS
		if t.active.Cursor.Col > 0 {
			t.active.Cursor.Col--
		}
		t.active.Cursor.Overflow = false
	case 0x09: // HT
		t.active.Cursor.Col = t.nextTabStop(t.active.Cursor.Col)
	case 0x0a, 0x0b, 0x0c: // LF, VT, FF
		t.lineFeed()
	case 0x0d: // CR
		t.carriageReturn()
	case 0x0e, 0x0f: // SO (shift out to G1), SI (shift in to G0)
		index := CharsetIndexG1
		if b == 0x0f {
			index = CharsetIndexG0
		}
		apply := func(index CharsetIndex) { t.activeCharset = index }
		if mw := t.middleware; mw != nil && mw.SetActiveCharset != nil {
			mw.SetActiveCharset(index, apply)
		} else {
			apply(index)
		}
	default:
		t.tracer().Warnf("vtcore: ignoring control byte %#x", b)
	}
}

func (t *Terminal) ringBell() {
	if mw := t.middleware; mw != nil && mw.Bell != nil {
		mw.Bell(t.bellProvider.Ring)
		return
	}
	t.bellProvider.Ring()
}

// escDispatch handles a single-byte ESC sequence that the parser resolves
// directly to stateGround (i.e. anything besides CSI/OSC/DCS/PM/APC/SOS/
// charset-designate/ESC#).
func (t *Terminal) escDispatch(b byte) {
	switch b {
	case 'D': // IND
		t.index()
	case 'M': // RI
		if mw := t.middleware; mw != nil && mw.ReverseIndex != nil {
			mw.ReverseIndex(t.reverseIndex)
			return
		}
		t.reverseIndex()
	case 'E': // NEL
		t.index()
		t.carriageReturn()
	case 'H': // HTS
		t.horizontalTabSet()
	case '7': // DECSC
		t.saveCursor()
	case '8': // DECRC
		t.restoreCursor()
	case 'c': // RIS
		t.resetState()
	case '=': // DECKPAM
		t.setKeypadApplicationMode(true)
	case '>': // DECKPNM
		t.setKeypadApplicationMode(false)
	default:
		t.tracer().Warnf("vtcore: unhandled escape sequence ESC %q", b)
	}
}

func (t *Terminal) horizontalTabSet() {
	if mw := t.middleware; mw != nil && mw.HorizontalTabSet != nil {
		mw.HorizontalTabSet(t.horizontalTabSetInternal)
		return
	}
	t.horizontalTabSetInternal()
}

func (t *Terminal) horizontalTabSetInternal() {
	col := t.active.Cursor.Col
	if col >= 0 && col < len(t.tabStops) {
		t.tabStops[col] = true
	}
}

func (t *Terminal) setKeypadApplicationMode(application bool) {
	apply := func(application bool) {
		if application {
			t.modes |= ModeKeypadApplication
		} else {
			t.modes &^= ModeKeypadApplication
		}
	}
	if mw := t.middleware; mw != nil && mw.SetKeypadApplicationMode != nil {
		mw.SetKeypadApplicationMode(application, apply)
		return
	}
	apply(application)
}

func (t *Terminal) saveCursor() {
	save := func() {
		t.active.Saved = SavedCursor{
			Row:           t.active.Cursor.Row,
			Col:           t.active.Cursor.Col,
			Attrs:         t.active.Attrs,
			OriginMode:    t.HasMode(ModeOrigin),
			ActiveCharset: t.activeCharset,
			Charsets:      t.charsets,
		}
	}
	if mw := t.middleware; mw != nil && mw.SaveCursorPosition != nil {
		mw.SaveCursorPosition(save)
		return
	}
	save()
}

func (t *Terminal) restoreCursor() {
	restore := func() {
		s := t.active.Saved
		t.active.Cursor.Row = clamp(s.Row, 0, t.rows-1)
		t.active.Cursor.Col = clamp(s.Col, 0, t.cols-1)
		t.active.Cursor.Overflow = false
		t.active.Attrs = s.Attrs
		if s.OriginMode {
			t.modes |= ModeOrigin
		} else {
			t.modes &^= ModeOrigin
		}
		t.activeCharset = s.ActiveCharset
		t.charsets = s.Charsets
	}
	if mw := t.middleware; mw != nil && mw.RestoreCursorPosition != nil {
		mw.RestoreCursorPosition(restore)
		return
	}
	restore()
}

// resetState implements RIS: a full reset of modes, charsets, palette,
// tab stops, and both screens.
func (t *Terminal) resetState() {
	reset := func() {
		t.modes = ModeLineWrap | ModeShowCursor
		t.charsets = [4]Charset{CharsetASCII, CharsetASCII, CharsetASCII, CharsetASCII}
		t.activeCharset = CharsetIndexG0
		t.active = t.primary

		t.primary.ClearAll()
		t.primary.Cursor = NewCursor()
		t.primary.Attrs = TextAttributes{}
		t.alt.ClearAll()
		t.alt.Cursor = NewCursor()
		t.alt.Attrs = TextAttributes{}

		t.scrollTop = 0
		t.scrollBottom = t.rows

		t.tabStops = make([]bool, t.cols)
		for i := 0; i < t.cols; i += 8 {
			t.tabStops[i] = true
		}

		t.palette.ResetAll()
		t.title = ""
		t.titleStack = nil
		t.currentHyperlink = nil
		t.keyboardModes = nil
		t.modifyOtherKeys = ModifyOtherKeysOff
		t.selection.Active = false
	}
	if mw := t.middleware; mw != nil && mw.ResetState != nil {
		mw.ResetState(reset)
		return
	}
	reset()
}

// decaln implements DECALN (ESC # 8): fills the active screen with 'E' for
// the screen-alignment test pattern.
func (t *Terminal) decaln() {
	if mw := t.middleware; mw != nil && mw.Decaln != nil {
		mw.Decaln(t.active.FillWithE)
		return
	}
	t.active.FillWithE()
}

// configureCharset assigns charset to one of the G0-G3 slots (ESC ( ) * +).
func (t *Terminal) configureCharset(index CharsetIndex, cs Charset) {
	apply := func(index CharsetIndex, cs Charset) { t.charsets[index] = cs }
	if mw := t.middleware; mw != nil && mw.ConfigureCharset != nil {
		mw.ConfigureCharset(index, cs, apply)
		return
	}
	apply(index, cs)
}
