package vtcore

// Middleware intercepts terminal dispatch calls, letting a caller observe
// or override behavior before the default implementation runs. Each field
// wraps one handler: it receives the original arguments plus a next func
// that invokes the built-in behavior. A nil field means "no interception".
type Middleware struct {
	// PrintCluster wraps printing of one grapheme cluster.
	PrintCluster func(cluster string, next func(string))

	// Bell wraps the bell handler.
	Bell func(next func())

	// ControlChar wraps handling of a C0 control byte (backspace, tab, CR,
	// LF and friends).
	ControlChar func(b byte, next func(byte))

	// ClearLine wraps EL (CSI K).
	ClearLine func(mode LineClearMode, next func(LineClearMode))

	// ClearScreen wraps ED (CSI J).
	ClearScreen func(mode ClearMode, next func(ClearMode))

	// ClearTabs wraps TBC (CSI g).
	ClearTabs func(mode TabulationClearMode, next func(TabulationClearMode))

	// MoveCursor wraps absolute cursor positioning (CUP/HVP).
	MoveCursor func(row, col int, next func(int, int))

	// MoveCursorRelative wraps relative cursor motion (CUU/CUD/CUF/CUB and
	// the carriage-return variants CNL/CPL).
	MoveCursorRelative func(dir byte, n int, next func(byte, int))

	// InsertBlank wraps ICH (CSI @).
	InsertBlank func(n int, next func(int))

	// InsertLines wraps IL (CSI L).
	InsertLines func(n int, next func(int))

	// DeleteChars wraps DCH (CSI P).
	DeleteChars func(n int, next func(int))

	// DeleteLines wraps DL (CSI M).
	DeleteLines func(n int, next func(int))

	// EraseChars wraps ECH (CSI X).
	EraseChars func(n int, next func(int))

	// ScrollUp wraps SU (CSI S).
	ScrollUp func(n int, next func(int))

	// ScrollDown wraps SD (CSI T).
	ScrollDown func(n int, next func(int))

	// SetScrollingRegion wraps DECSTBM (CSI r).
	SetScrollingRegion func(top, bottom int, next func(int, int))

	// SetMode wraps mode-set dispatch (CSI h / CSI ? h).
	SetMode func(mode TerminalMode, next func(TerminalMode))

	// UnsetMode wraps mode-reset dispatch (CSI l / CSI ? l).
	UnsetMode func(mode TerminalMode, next func(TerminalMode))

	// SetTextAttributes wraps SGR (CSI m).
	SetTextAttributes func(attrs TextAttributes, next func(TextAttributes))

	// SetTitle wraps OSC 0/1/2.
	SetTitle func(title string, next func(string))

	// SetCursorStyle wraps DECSCUSR (CSI q) and OSC 50.
	SetCursorStyle func(style CursorStyle, next func(CursorStyle))

	// SaveCursorPosition wraps DECSC (ESC 7 / CSI s).
	SaveCursorPosition func(next func())

	// RestoreCursorPosition wraps DECRC (ESC 8 / CSI u).
	RestoreCursorPosition func(next func())

	// ReverseIndex wraps RI (ESC M).
	ReverseIndex func(next func())

	// ResetState wraps RIS (ESC c).
	ResetState func(next func())

	// Decaln wraps DECALN (ESC # 8).
	Decaln func(next func())

	// DeviceStatus wraps DSR (CSI n).
	DeviceStatus func(n int, next func(int))

	// IdentifyTerminal wraps DA (CSI c).
	IdentifyTerminal func(next func())

	// ConfigureCharset wraps ESC ( ) * + charset designation.
	ConfigureCharset func(index CharsetIndex, cs Charset, next func(CharsetIndex, Charset))

	// SetActiveCharset wraps SI/SO (locking shift).
	SetActiveCharset func(index CharsetIndex, next func(CharsetIndex))

	// SetKeypadApplicationMode wraps DECKPAM/DECKPNM.
	SetKeypadApplicationMode func(application bool, next func(bool))

	// SetColor wraps OSC 4 palette entry assignment.
	SetColor func(index int, c RGB, next func(int, RGB))

	// ResetColor wraps OSC 104 palette reset.
	ResetColor func(index int, next func(int))

	// SetDynamicColor wraps OSC 10/11/12 (foreground/background/cursor).
	SetDynamicColor func(slot byte, c RGB, next func(byte, RGB))

	// ClipboardLoad wraps OSC 52 read.
	ClipboardLoad func(clipboard byte, next func(byte))

	// ClipboardStore wraps OSC 52 write.
	ClipboardStore func(clipboard byte, data []byte, next func(byte, []byte))

	// SetHyperlink wraps OSC 8.
	SetHyperlink func(link *Hyperlink, next func(*Hyperlink))

	// PushTitle wraps CSI 22 t.
	PushTitle func(next func())

	// PopTitle wraps CSI 23 t.
	PopTitle func(next func())

	// HorizontalTabSet wraps HTS (ESC H).
	HorizontalTabSet func(next func())

	// SetKeyboardMode wraps the Kitty keyboard protocol CSI = u.
	SetKeyboardMode func(mode KeyboardMode, behavior KeyboardModeBehavior, next func(KeyboardMode, KeyboardModeBehavior))

	// PushKeyboardMode wraps CSI > u.
	PushKeyboardMode func(mode KeyboardMode, next func(KeyboardMode))

	// PopKeyboardMode wraps CSI < u.
	PopKeyboardMode func(n int, next func(int))

	// ApplicationCommandReceived wraps APC strings.
	ApplicationCommandReceived func(data []byte, next func([]byte))

	// PrivacyMessageReceived wraps PM strings.
	PrivacyMessageReceived func(data []byte, next func([]byte))

	// PromptMarkReceived wraps OSC 133 shell integration marks.
	PromptMarkReceived func(kind PromptMarkKind, exitCode int, next func(PromptMarkKind, int))

	// SetWorkingDirectory wraps OSC 7.
	SetWorkingDirectory func(uri string, next func(string))
}

// Merge copies every non-nil field from other into m, overwriting existing
// values. Passing nil is a no-op.
func (m *Middleware) Merge(other *Middleware) {
	if other == nil {
		return
	}
	if other.PrintCluster != nil {
		m.PrintCluster = other.PrintCluster
	}
	if other.Bell != nil {
		m.Bell = other.Bell
	}
	if other.ControlChar != nil {
		m.ControlChar = other.ControlChar
	}
	if other.ClearLine != nil {
		m.ClearLine = other.ClearLine
	}
	if other.ClearScreen != nil {
		m.ClearScreen = other.ClearScreen
	}
	if other.ClearTabs != nil {
		m.ClearTabs = other.ClearTabs
	}
	if other.MoveCursor != nil {
		m.MoveCursor = other.MoveCursor
	}
	if other.MoveCursorRelative != nil {
		m.MoveCursorRelative = other.MoveCursorRelative
	}
	if other.InsertBlank != nil {
		m.InsertBlank = other.InsertBlank
	}
	if other.InsertLines != nil {
		m.InsertLines = other.InsertLines
	}
	if other.DeleteChars != nil {
		m.DeleteChars = other.DeleteChars
	}
	if other.DeleteLines != nil {
		m.DeleteLines = other.DeleteLines
	}
	if other.EraseChars != nil {
		m.EraseChars = other.EraseChars
	}
	if other.ScrollUp != nil {
		m.ScrollUp = other.ScrollUp
	}
	if other.ScrollDown != nil {
		m.ScrollDown = other.ScrollDown
	}
	if other.SetScrollingRegion != nil {
		m.SetScrollingRegion = other.SetScrollingRegion
	}
	if other.SetMode != nil {
		m.SetMode = other.SetMode
	}
	if other.UnsetMode != nil {
		m.UnsetMode = other.UnsetMode
	}
	if other.SetTextAttributes != nil {
		m.SetTextAttributes = other.SetTextAttributes
	}
	if other.SetTitle != nil {
		m.SetTitle = other.SetTitle
	}
	if other.SetCursorStyle != nil {
		m.SetCursorStyle = other.SetCursorStyle
	}
	if other.SaveCursorPosition != nil {
		m.SaveCursorPosition = other.SaveCursorPosition
	}
	if other.RestoreCursorPosition != nil {
		m.RestoreCursorPosition = other.RestoreCursorPosition
	}
	if other.ReverseIndex != nil {
		m.ReverseIndex = other.ReverseIndex
	}
	if other.ResetState != nil {
		m.ResetState = other.ResetState
	}
	if other.Decaln != nil {
		m.Decaln = other.Decaln
	}
	if other.DeviceStatus != nil {
		m.DeviceStatus = other.DeviceStatus
	}
	if other.IdentifyTerminal != nil {
		m.IdentifyTerminal = other.IdentifyTerminal
	}
	if other.ConfigureCharset != nil {
		m.ConfigureCharset = other.ConfigureCharset
	}
	if other.SetActiveCharset != nil {
		m.SetActiveCharset = other.SetActiveCharset
	}
	if other.SetKeypadApplicationMode != nil {
		m.SetKeypadApplicationMode = other.SetKeypadApplicationMode
	}
	if other.SetColor != nil {
		m.SetColor = other.SetColor
	}
	if other.ResetColor != nil {
		m.ResetColor = other.ResetColor
	}
	if other.SetDynamicColor != nil {
		m.SetDynamicColor = other.SetDynamicColor
	}
	if other.ClipboardLoad != nil {
		m.ClipboardLoad = other.ClipboardLoad
	}
	if other.ClipboardStore != nil {
		m.ClipboardStore = other.ClipboardStore
	}
	if other.SetHyperlink != nil {
		m.SetHyperlink = other.SetHyperlink
	}
	if other.PushTitle != nil {
		m.PushTitle = other.PushTitle
	}
	if other.PopTitle != nil {
		m.PopTitle = other.PopTitle
	}
	if other.HorizontalTabSet != nil {
		m.HorizontalTabSet = other.HorizontalTabSet
	}
	if other.SetKeyboardMode != nil {
		m.SetKeyboardMode = other.SetKeyboardMode
	}
	if other.PushKeyboardMode != nil {
		m.PushKeyboardMode = other.PushKeyboardMode
	}
	if other.PopKeyboardMode != nil {
		m.PopKeyboardMode = other.PopKeyboardMode
	}
	if other.ApplicationCommandReceived != nil {
		m.ApplicationCommandReceived = other.ApplicationCommandReceived
	}
	if other.PrivacyMessageReceived != nil {
		m.PrivacyMessageReceived = other.PrivacyMessageReceived
	}
	if other.PromptMarkReceived != nil {
		m.PromptMarkReceived = other.PromptMarkReceived
	}
	if other.SetWorkingDirectory != nil {
		m.SetWorkingDirectory = other.SetWorkingDirectory
	}
}
