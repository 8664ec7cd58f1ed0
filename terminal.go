package vtcore

const (
	// DefaultRows is the default terminal height in character rows.
	DefaultRows = 24
	// DefaultCols is the default terminal width in character columns.
	DefaultCols = 80
)

// Selection defines a text region in the terminal running in reading order
// from Start to End, both inclusive; rows between them are selected whole.
// Start and End are normalized so Start is always before or equal to End.
type Selection struct {
	Start  Position
	End    Position
	Active bool
}

// Terminal emulates a VT100/xterm-compatible terminal core: a VT parser
// feeding a dual-screen model (primary with scrollback, alternate without),
// with no internal locking. A Terminal is owned exclusively by whatever
// goroutine drives Write/Feed; callers that need concurrent access must
// add their own synchronization.
type Terminal struct {
	rows int
	cols int

	primary *Screen
	alt     *Screen
	active  *Screen

	style   *StyleInterner
	palette *ColorPalette

	charsets      [4]Charset
	activeCharset CharsetIndex

	scrollTop    int
	scrollBottom int

	modes TerminalMode

	tabStops []bool

	title      string
	titleStack []string

	currentHyperlink *Hyperlink

	keyboardModes   []KeyboardMode
	modifyOtherKeys ModifyOtherKeys

	parser *Parser

	selection Selection

	scrollback ScrollbackProvider

	middleware *Middleware

	responseProvider  ResponseProvider
	bellProvider      BellProvider
	titleProvider     TitleProvider
	apcProvider       APCProvider
	pmProvider        PMProvider
	sosProvider       SOSProvider
	clipboardProvider ClipboardProvider
	recordingProvider    RecordingProvider
	notificationProvider NotificationProvider
	tracerProvider       Tracer

	promptMarks              []PromptMark
	shellIntegrationProvider ShellIntegrationProvider
	workingDir               string

	autoResize bool
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the terminal dimensions. Values <= 0 fall back to the
// defaults (24x80).
func WithSize(rows, cols int) Option {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	return func(t *Terminal) {
		t.rows = rows
		t.cols = cols
	}
}

// WithResponse sets the writer for terminal responses (cursor position
// reports, device attributes, DSR replies). Discarded if nil.
func WithResponse(p ResponseProvider) Option {
	return func(t *Terminal) { t.responseProvider = p }
}

// WithBell sets the handler for BEL events. Defaults to a no-op.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) { t.bellProvider = p }
}

// WithTitle sets the handler for window title changes (OSC 0/1/2).
// Defaults to a no-op.
func WithTitle(p TitleProvider) Option {
	return func(t *Terminal) { t.titleProvider = p }
}

// WithAPC sets the handler for Application Program Command strings.
func WithAPC(p APCProvider) Option {
	return func(t *Terminal) { t.apcProvider = p }
}

// WithPM sets the handler for Privacy Message strings.
func WithPM(p PMProvider) Option {
	return func(t *Terminal) { t.pmProvider = p }
}

// WithSOS sets the handler for Start-of-String sequences.
func WithSOS(p SOSProvider) Option {
	return func(t *Terminal) { t.sosProvider = p }
}

// WithClipboard sets the handler for OSC 52 clipboard read/write.
func WithClipboard(p ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboardProvider = p }
}

// WithScrollback sets the storage used for rows retired from the primary
// screen. Defaults to an unbounded-free no-op (nothing retained).
func WithScrollback(storage ScrollbackProvider) Option {
	return func(t *Terminal) { t.scrollback = storage }
}

// WithMiddleware installs hooks wrapping the terminal's dispatch methods.
func WithMiddleware(mw *Middleware) Option {
	return func(t *Terminal) {
		if t.middleware == nil {
			t.middleware = &Middleware{}
		}
		t.middleware.Merge(mw)
	}
}

// WithAutoResize makes the primary screen grow by a row instead of
// scrolling when output reaches the bottom of a scroll region that ends at
// the last row, useful for capturing complete output without truncation.
// Long lines still wrap at the current width.
func WithAutoResize() Option {
	return func(t *Terminal) { t.autoResize = true }
}

// WithRecording sets the handler for capturing raw input bytes before
// parsing.
func WithRecording(p RecordingProvider) Option {
	return func(t *Terminal) { t.recordingProvider = p }
}

// WithNotification sets the handler for desktop notification requests
// (OSC 9 / OSC 777). Defaults to a no-op.
func WithNotification(p NotificationProvider) Option {
	return func(t *Terminal) { t.notificationProvider = p }
}

// WithTracer sets the diagnostic sink for parse aborts and unknown
// sequences. Defaults to a no-op.
func WithTracer(tr Tracer) Option {
	return func(t *Terminal) { t.tracerProvider = tr }
}

// WithShellIntegration sets the handler notified of OSC 133 prompt marks.
func WithShellIntegration(p ShellIntegrationProvider) Option {
	return func(t *Terminal) { t.shellIntegrationProvider = p }
}

// New creates a terminal with the given options, defaulting to 24x80 with
// line wrap and a visible cursor.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		rows:              DefaultRows,
		cols:              DefaultCols,
		bellProvider:      NoopBell{},
		titleProvider:     NoopTitle{},
		apcProvider:       NoopAPC{},
		pmProvider:        NoopPM{},
		sosProvider:       NoopSOS{},
		clipboardProvider: NoopClipboard{},
		recordingProvider:    NoopRecording{},
		notificationProvider: NoopNotification{},
		tracerProvider:       NoopTracer{},
		responseProvider:     NoopResponse{},
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.scrollback == nil {
		t.scrollback = NoopScrollback{}
	}

	t.style = NewStyleInterner()
	t.palette = NewColorPalette()

	t.primary = NewScreen(t.rows, t.cols, t.style)
	t.alt = NewScreen(t.rows, t.cols, t.style)
	t.active = t.primary

	t.scrollTop = 0
	t.scrollBottom = t.rows

	t.modes = ModeLineWrap | ModeShowCursor

	t.tabStops = make([]bool, t.cols)
	for i := 0; i < t.cols; i += 8 {
		t.tabStops[i] = true
	}

	t.charsets = [4]Charset{CharsetASCII, CharsetASCII, CharsetASCII, CharsetASCII}

	t.parser = NewParser(t)

	return t
}

func (t *Terminal) tracer() Tracer {
	if t.tracerProvider == nil {
		return NoopTracer{}
	}
	return t.tracerProvider
}

// Rows returns the terminal height in character rows.
func (t *Terminal) Rows() int { return t.rows }

// Cols returns the terminal width in character columns.
func (t *Terminal) Cols() int { return t.cols }

// Cell returns the cell at (row, col) in the active screen.
func (t *Terminal) Cell(row, col int) Cell { return t.active.Cell(row, col) }

// CellStyle resolves the TextAttributes a cell's interned style refers to.
func (t *Terminal) CellStyle(c Cell) TextAttributes { return t.style.Lookup(c.Style) }

// Palette returns the terminal's mutable color palette.
func (t *Terminal) Palette() *ColorPalette { return t.palette }

// CursorPos returns the current cursor position (0-based).
func (t *Terminal) CursorPos() (row, col int) {
	return t.active.Cursor.Row, t.active.Cursor.Col
}

// CursorVisible reports whether the cursor is currently visible.
func (t *Terminal) CursorVisible() bool {
	return t.active.Cursor.Visible && t.HasMode(ModeShowCursor)
}

// CursorStyle returns the current cursor rendering style.
func (t *Terminal) CursorStyle() CursorStyle { return t.active.Cursor.Style }

// Title returns the current window title string.
func (t *Terminal) Title() string { return t.title }

// HasMode reports whether the given mode flag is set.
func (t *Terminal) HasMode(mode TerminalMode) bool { return t.modes&mode != 0 }

// IsAlternateScreen reports whether the alternate screen is active.
func (t *Terminal) IsAlternateScreen() bool { return t.active == t.alt }

// ScrollRegion returns the current scroll region bounds (0-based, exclusive
// bottom).
func (t *Terminal) ScrollRegion() (top, bottom int) { return t.scrollTop, t.scrollBottom }

// AutoResize reports whether growth mode is enabled.
func (t *Terminal) AutoResize() bool { return t.autoResize }

// WorkingDirectory returns the last working directory reported via OSC 7.
func (t *Terminal) WorkingDirectory() string { return t.workingDir }

// Write parses raw bytes, updating terminal state. Implements io.Writer.
func (t *Terminal) Write(data []byte) (int, error) {
	t.recordingProvider.Record(data)
	t.parser.Feed(data)
	return len(data), nil
}

// WriteString is a convenience wrapper around Write.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Resize changes the terminal dimensions. When shrinking rows on the
// primary screen, lines above the cursor are pushed to scrollback first so
// content near the cursor survives. Invalid dimensions (<= 0) are ignored.
func (t *Terminal) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	oldRows := t.rows
	if rows < oldRows && t.active == t.primary && t.primary.Cursor.Row >= rows {
		n := t.primary.Cursor.Row - rows + 1
		t.pushEvicted(t.primary.ScrollUp(0, oldRows, n))
		t.primary.Cursor.Row -= n
		if t.primary.Cursor.Row < 0 {
			t.primary.Cursor.Row = 0
		}
	}

	t.rows = rows
	t.cols = cols
	t.primary.Resize(rows, cols)
	t.alt.Resize(rows, cols)

	newTabs := make([]bool, cols)
	copy(newTabs, t.tabStops)
	for i := len(t.tabStops); i < cols; i += 8 {
		newTabs[i] = true
	}
	t.tabStops = newTabs

	t.scrollTop = 0
	t.scrollBottom = rows
}

func (t *Terminal) pushEvicted(rows []Row) {
	if t.active != t.primary {
		return
	}
	for _, r := range rows {
		t.scrollback.Push(r)
	}
}

// --- Scrollback ---

// ScrollbackLen returns the number of rows stored in scrollback.
func (t *Terminal) ScrollbackLen() int { return t.scrollback.Len() }

// ScrollbackLine returns the scrollback row at index (0 is oldest).
func (t *Terminal) ScrollbackLine(index int) (Row, bool) { return t.scrollback.Line(index) }

// ClearScrollback discards all stored scrollback rows.
func (t *Terminal) ClearScrollback() { t.scrollback.Clear() }

// SetMaxScrollback sets the scrollback retention cap.
func (t *Terminal) SetMaxScrollback(max int) { t.scrollback.SetMaxLines(max) }

// MaxScrollback returns the scrollback retention cap.
func (t *Terminal) MaxScrollback() int { return t.scrollback.MaxLines() }

// SetScrollbackProvider replaces the scrollback storage at runtime.
func (t *Terminal) SetScrollbackProvider(storage ScrollbackProvider) {
	if storage == nil {
		storage = NoopScrollback{}
	}
	t.scrollback = storage
}

// --- Selection ---

// SetSelection sets the active text selection, normalizing so Start comes
// before End.
func (t *Terminal) SetSelection(start, end Position) {
	if end.Before(start) {
		start, end = end, start
	}
	t.selection = Selection{Start: start, End: end, Active: true}
}

// ClearSelection deactivates the current selection.
func (t *Terminal) ClearSelection() { t.selection.Active = false }

// GetSelection returns the current selection state.
func (t *Terminal) GetSelection() Selection { return t.selection }

// HasSelection reports whether a selection is currently active.
func (t *Terminal) HasSelection() bool { return t.selection.Active }

// IsSelected reports whether (row, col) falls within the active selection.
func (t *Terminal) IsSelected(row, col int) bool {
	if !t.selection.Active {
		return false
	}
	pos := Position{Row: row, Col: col}
	if pos.Before(t.selection.Start) || t.selection.End.Before(pos) {
		return false
	}
	return true
}

// GetSelectedText extracts the text within the active selection. Newlines
// separate rows.
func (t *Terminal) GetSelectedText() string {
	if !t.selection.Active {
		return ""
	}
	start, end := t.selection.Start, t.selection.End

	var b []byte
	for row := start.Row; row <= end.Row && row < t.rows; row++ {
		startCol, endCol := 0, t.cols
		if row == start.Row {
			startCol = start.Col
		}
		if row == end.Row {
			endCol = end.Col + 1
		}
		if endCol > t.cols {
			endCol = t.cols
		}
		for col := startCol; col < endCol; col++ {
			c := t.active.Cell(row, col)
			if c.WCTrailing {
				continue
			}
			if c.Content == "" {
				b = append(b, ' ')
			} else {
				b = append(b, c.Content...)
			}
		}
		if row < end.Row {
			b = append(b, '\n')
		}
	}
	return string(b)
}

// --- Line/screen text ---

// LineContent returns the visible text of row in the active screen.
func (t *Terminal) LineContent(row int) string { return t.active.LineText(row) }

// String returns the visible screen content, trailing blank lines
// trimmed. Implements fmt.Stringer.
func (t *Terminal) String() string {
	var lines []string
	lastNonEmpty := -1
	for row := 0; row < t.rows; row++ {
		line := t.active.LineText(row)
		lines = append(lines, line)
		if line != "" {
			lastNonEmpty = row
		}
	}
	if lastNonEmpty < 0 {
		return ""
	}
	result := lines[0]
	for _, l := range lines[1 : lastNonEmpty+1] {
		result += "\n" + l
	}
	return result
}

// IsWrapped reports whether row ended via wraparound rather than an
// explicit newline.
func (t *Terminal) IsWrapped(row int) bool {
	if row < 0 || row >= t.rows {
		return false
	}
	return t.active.Rows[row].LineOverflow
}

// --- Response helpers ---

func (t *Terminal) writeResponse(data []byte) {
	if t.responseProvider != nil {
		t.responseProvider.Write(data)
	}
}

func (t *Terminal) writeResponseString(s string) {
	t.writeResponse([]byte(s))
}

// --- Bell/title/clipboard provider accessors ---

func (t *Terminal) SetResponseProvider(p ResponseProvider)   { t.responseProvider = p }
func (t *Terminal) SetBellProvider(p BellProvider)           { t.bellProvider = p }
func (t *Terminal) SetTitleProvider(p TitleProvider)         { t.titleProvider = p }
func (t *Terminal) SetAPCProvider(p APCProvider)             { t.apcProvider = p }
func (t *Terminal) SetPMProvider(p PMProvider)               { t.pmProvider = p }
func (t *Terminal) SetSOSProvider(p SOSProvider)             { t.sosProvider = p }
func (t *Terminal) SetClipboardProvider(p ClipboardProvider) { t.clipboardProvider = p }
func (t *Terminal) SetRecordingProvider(p RecordingProvider) { t.recordingProvider = p }
func (t *Terminal) SetTracer(tr Tracer)                      { t.tracerProvider = tr }
func (t *Terminal) SetMiddleware(mw *Middleware)             { t.middleware = mw }
func (t *Terminal) Middleware() *Middleware                  { return t.middleware }

// RecordedData returns raw input bytes captured since the last
// ClearRecording call.
func (t *Terminal) RecordedData() []byte { return t.recordingProvider.Data() }

// ClearRecording discards all captured input data.
func (t *Terminal) ClearRecording() { t.recordingProvider.Clear() }
