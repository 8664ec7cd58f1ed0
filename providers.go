package vtcore

import "io"

// ResponseProvider writes terminal responses (e.g. cursor position reports,
// device attributes) back to the host. Typically an io.Writer connected to
// a PTY's input side.
type ResponseProvider = io.Writer

// NoopResponse discards all response data.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// --- Bell Provider ---

// BellProvider handles bell/beep events triggered by BEL (0x07).
type BellProvider interface {
	Ring()
}

// NoopBell ignores all bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// --- Title Provider ---

// TitleProvider handles window title changes (OSC 0, 1, 2) and the title
// stack (CSI 22/23 t).
type TitleProvider interface {
	SetTitle(title string)
	PushTitle()
	PopTitle()
}

// NoopTitle ignores all title operations.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string) {}
func (NoopTitle) PushTitle()            {}
func (NoopTitle) PopTitle()             {}

// --- APC / PM / SOS Providers ---

// APCProvider handles Application Program Command strings.
type APCProvider interface {
	Receive(data []byte)
}

// NoopAPC ignores all APC sequences.
type NoopAPC struct{}

func (NoopAPC) Receive(data []byte) {}

// PMProvider handles Privacy Message strings.
type PMProvider interface {
	Receive(data []byte)
}

// NoopPM ignores all PM sequences.
type NoopPM struct{}

func (NoopPM) Receive(data []byte) {}

// SOSProvider handles Start-of-String sequences.
type SOSProvider interface {
	Receive(data []byte)
}

// NoopSOS ignores all SOS sequences.
type NoopSOS struct{}

func (NoopSOS) Receive(data []byte) {}

// --- Clipboard Provider ---

// ClipboardProvider handles clipboard read/write via OSC 52.
type ClipboardProvider interface {
	// Read returns content for the given clipboard selector ('c' clipboard,
	// 'p' primary selection).
	Read(clipboard byte) string
	// Write stores data to the given clipboard selector.
	Write(clipboard byte, data []byte)
}

// NoopClipboard ignores all clipboard operations.
type NoopClipboard struct{}

func (NoopClipboard) Read(clipboard byte) string        { return "" }
func (NoopClipboard) Write(clipboard byte, data []byte) {}

// --- Scrollback Provider ---

// ScrollbackProvider stores rows retired from the top of the primary
// screen. Implementations can back this with memory, disk, or a database.
type ScrollbackProvider interface {
	// Push appends a row, evicting the oldest row if MaxLines is exceeded.
	Push(row Row)
	// Len returns the number of stored rows.
	Len() int
	// Line returns the row at index, where 0 is the oldest. Returns the
	// zero Row and false if index is out of range.
	Line(index int) (Row, bool)
	// Clear discards all stored rows.
	Clear()
	// SetMaxLines sets the retention cap, trimming the oldest rows if the
	// current count exceeds it.
	SetMaxLines(max int)
	// MaxLines returns the current retention cap.
	MaxLines() int
}

// NoopScrollback discards everything pushed to it; it is the Terminal's
// scrollback storage when none is configured.
type NoopScrollback struct{}

func (NoopScrollback) Push(Row)             {}
func (NoopScrollback) Len() int             { return 0 }
func (NoopScrollback) Line(int) (Row, bool) { return Row{}, false }
func (NoopScrollback) Clear()               {}
func (NoopScrollback) SetMaxLines(int)      {}
func (NoopScrollback) MaxLines() int        { return 0 }

// --- Recording Provider ---

// RecordingProvider captures raw bytes before parsing, for replay or
// debugging.
type RecordingProvider interface {
	Record(data []byte)
	Data() []byte
	Clear()
}

// NoopRecording discards all recorded input.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}
func (NoopRecording) Data() []byte  { return nil }
func (NoopRecording) Clear()        {}

// --- Notification Provider ---

// Notification is a desktop notification requested via OSC 9 (iTerm2
// style, body only) or OSC 777 (urxvt style, title plus body).
type Notification struct {
	Title string
	Body  string
}

// NotificationProvider surfaces desktop notification requests to the host.
type NotificationProvider interface {
	Notify(n Notification)
}

// NoopNotification ignores all notification requests.
type NoopNotification struct{}

func (NoopNotification) Notify(Notification) {}

// --- Tracer ---

// Tracer receives diagnostic notifications (parse aborts, unknown
// sequences). The default is silent; a host wires a real implementation
// to surface these for debugging.
type Tracer interface {
	Warnf(format string, args ...any)
}

// NoopTracer discards all trace output.
type NoopTracer struct{}

func (NoopTracer) Warnf(format string, args ...any) {}

var (
	_ ResponseProvider     = NoopResponse{}
	_ BellProvider         = NoopBell{}
	_ TitleProvider        = NoopTitle{}
	_ APCProvider          = NoopAPC{}
	_ PMProvider           = NoopPM{}
	_ SOSProvider          = NoopSOS{}
	_ ClipboardProvider    = NoopClipboard{}
	_ ScrollbackProvider   = NoopScrollback{}
	_ RecordingProvider    = NoopRecording{}
	_ NotificationProvider = NoopNotification{}
	_ Tracer               = NoopTracer{}
)
