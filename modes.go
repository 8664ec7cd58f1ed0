package vtcore

// TerminalMode is a bitmask of terminal behavior flags, set and cleared by
// CSI ... h / CSI ... l (and their DEC-private '?' forms). Multiple modes
// can be active simultaneously.
type TerminalMode uint32

const (
	// ModeCursorKeys enables application cursor key mode (DECCKM).
	ModeCursorKeys TerminalMode = 1 << iota
	// ModeColumnMode enables 132-column mode (DECCOLM).
	ModeColumnMode
	// ModeInsert enables insert mode: characters shift right instead of
	// overwriting (IRM).
	ModeInsert
	// ModeOrigin enables origin mode: cursor positioning is relative to the
	// scroll region (DECOM).
	ModeOrigin
	// ModeLineWrap enables automatic wraparound at the right margin (DECAWM).
	ModeLineWrap
	// ModeBlinkingCursor makes the cursor blink.
	ModeBlinkingCursor
	// ModeLineFeedNewLine makes line feed also return to column 0 (LNM).
	ModeLineFeedNewLine
	// ModeShowCursor makes the cursor visible (DECTCEM).
	ModeShowCursor
	// ModeReportMouseClicks enables X10/normal mouse click reporting.
	ModeReportMouseClicks
	// ModeReportCellMouseMotion enables button-event mouse motion reporting.
	ModeReportCellMouseMotion
	// ModeReportAllMouseMotion enables any-event mouse motion reporting.
	ModeReportAllMouseMotion
	// ModeReportFocusInOut enables focus in/out event reporting.
	ModeReportFocusInOut
	// ModeUTF8Mouse enables UTF-8 mouse coordinate encoding.
	ModeUTF8Mouse
	// ModeSGRMouse enables SGR mouse coordinate encoding.
	ModeSGRMouse
	// ModeAlternateScroll makes the alternate screen translate scroll-wheel
	// events into cursor-key sequences.
	ModeAlternateScroll
	// ModeUrgencyHints enables urgency hints on bell.
	ModeUrgencyHints
	// ModeSwapScreenAndSetRestoreCursor is DEC private mode 1049: switch to
	// the alternate screen and save the cursor; clearing it restores the
	// primary screen and cursor.
	ModeSwapScreenAndSetRestoreCursor
	// ModeBracketedPaste wraps pasted text in CSI 200~ / CSI 201~.
	ModeBracketedPaste
	// ModeKeypadApplication enables application keypad mode (DECKPAM).
	ModeKeypadApplication
)

// DEC private mode numbers recognized via CSI ? Pm h / CSI ? Pm l.
const (
	DECPrivateModeCursorKeys      = 1
	DECPrivateModeColumn          = 3
	DECPrivateModeOrigin          = 6
	DECPrivateModeAutoWrap        = 7
	DECPrivateModeMouseX10        = 9
	DECPrivateModeBlinkingCursor  = 12
	DECPrivateModeShowCursor      = 25
	DECPrivateModeReverseVideo    = 5
	DECPrivateModeAlternateScroll = 1007
	DECPrivateModeMouseClicks     = 1000
	DECPrivateModeMouseMotion     = 1002
	DECPrivateModeMouseAllMotion  = 1003
	DECPrivateModeFocusInOut      = 1004
	DECPrivateModeUTF8Mouse       = 1005
	DECPrivateModeSGRMouse        = 1006
	DECPrivateModeAltScreenSave   = 1047
	DECPrivateModeSaveCursor      = 1048
	DECPrivateModeAltScreenSaveRC = 1049
	DECPrivateModeBracketedPaste  = 2004
)

// decPrivateModeFor maps a DEC private mode number to its TerminalMode bit,
// for the flags modeled directly as bits. Modes with bespoke side effects
// (column mode, alternate screen swap) are handled by the CSI dispatcher
// instead of through this table.
func decPrivateModeFor(n int) (TerminalMode, bool) {
	switch n {
	case DECPrivateModeCursorKeys:
		return ModeCursorKeys, true
	case DECPrivateModeOrigin:
		return ModeOrigin, true
	case DECPrivateModeAutoWrap:
		return ModeLineWrap, true
	case DECPrivateModeMouseX10:
		return ModeReportMouseClicks, true
	case DECPrivateModeBlinkingCursor:
		return ModeBlinkingCursor, true
	case DECPrivateModeShowCursor:
		return ModeShowCursor, true
	case DECPrivateModeMouseClicks:
		return ModeReportMouseClicks, true
	case DECPrivateModeMouseMotion:
		return ModeReportCellMouseMotion, true
	case DECPrivateModeMouseAllMotion:
		return ModeReportAllMouseMotion, true
	case DECPrivateModeFocusInOut:
		return ModeReportFocusInOut, true
	case DECPrivateModeUTF8Mouse:
		return ModeUTF8Mouse, true
	case DECPrivateModeSGRMouse:
		return ModeSGRMouse, true
	case DECPrivateModeAlternateScroll:
		return ModeAlternateScroll, true
	case DECPrivateModeBracketedPaste:
		return ModeBracketedPaste, true
	default:
		return 0, false
	}
}

// LineClearMode selects which part of a line EL (CSI K) erases.
type LineClearMode int

const (
	LineClearRight LineClearMode = iota
	LineClearLeft
	LineClearAll
)

// ClearMode selects which part of the screen ED (CSI J) erases.
type ClearMode int

const (
	ClearBelow ClearMode = iota
	ClearAbove
	ClearAll
	ClearSaved
)

// TabulationClearMode selects which tab stops TBC (CSI g) clears.
type TabulationClearMode int

const (
	TabulationClearCurrent TabulationClearMode = iota
	TabulationClearAll
)

// KeyboardMode is a bitmask of Kitty keyboard protocol progressive
// enhancements (CSI > u / CSI = u / CSI ? u), pushed and popped as a stack.
type KeyboardMode uint8

const (
	KeyboardModeDisambiguate KeyboardMode = 1 << iota
	KeyboardModeReportEvents
	KeyboardModeReportAlternate
	KeyboardModeReportAllKeys
	KeyboardModeReportText
)

// KeyboardModeBehavior selects how SetKeyboardMode combines a new mode with
// the current top-of-stack entry.
type KeyboardModeBehavior int

const (
	KeyboardModeBehaviorReplace KeyboardModeBehavior = iota
	KeyboardModeBehaviorUnion
	KeyboardModeBehaviorDifference
)

// ModifyOtherKeys is xterm's modifyOtherKeys resource value (CSI > 4;n m),
// controlling whether ordinarily-unmodified keys get CSI u encoding when
// combined with modifiers.
type ModifyOtherKeys int

const (
	ModifyOtherKeysOff ModifyOtherKeys = iota
	ModifyOtherKeysPartial
	ModifyOtherKeysFull
)
