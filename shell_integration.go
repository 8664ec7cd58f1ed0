package vtcore

// PromptMarkKind identifies which shell-integration boundary a PromptMark
// records (OSC 133; see the FinalTerm/VSCode shell integration convention).
type PromptMarkKind int

const (
	// PromptStart marks the beginning of a shell prompt (OSC 133;A).
	PromptStart PromptMarkKind = iota
	// CommandStart marks where the user's typed command begins (OSC 133;B).
	CommandStart
	// CommandExecuted marks where command output begins (OSC 133;C).
	CommandExecuted
	// CommandFinished marks where command output ends (OSC 133;D).
	CommandFinished
)

// PromptMark stores one shell integration mark, anchored to an absolute
// row that includes any scrollback offset so marks stay meaningful after
// content scrolls off-screen.
type PromptMark struct {
	Kind     PromptMarkKind
	Row      int // absolute row: scrollback rows precede on-screen rows
	ExitCode int // valid only for CommandFinished; -1 otherwise
}

// ShellIntegrationProvider is notified as shell integration marks arrive.
type ShellIntegrationProvider interface {
	OnMark(mark PromptMark)
}

// NoopShellIntegration ignores all shell integration events.
type NoopShellIntegration struct{}

func (NoopShellIntegration) OnMark(PromptMark) {}

var _ ShellIntegrationProvider = NoopShellIntegration{}

// SetShellIntegrationProvider installs the shell integration event sink.
func (t *Terminal) SetShellIntegrationProvider(p ShellIntegrationProvider) {
	t.shellIntegrationProvider = p
}

// recordPromptMark stores a new mark and notifies the provider. Called by
// oscDispatch for OSC 133.
func (t *Terminal) recordPromptMark(kind PromptMarkKind, exitCode int) {
	absRow := t.active.Cursor.Row + t.scrollback.Len()
	mark := PromptMark{Kind: kind, Row: absRow, ExitCode: exitCode}
	t.promptMarks = append(t.promptMarks, mark)
	if t.shellIntegrationProvider != nil {
		t.shellIntegrationProvider.OnMark(mark)
	}
}

// PromptMarks returns a copy of all recorded prompt marks.
func (t *Terminal) PromptMarks() []PromptMark {
	marks := make([]PromptMark, len(t.promptMarks))
	copy(marks, t.promptMarks)
	return marks
}

// PromptMarkCount returns the number of recorded prompt marks.
func (t *Terminal) PromptMarkCount() int { return len(t.promptMarks) }

// ClearPromptMarks discards all recorded prompt marks.
func (t *Terminal) ClearPromptMarks() { t.promptMarks = nil }

// GetPromptMarkAt returns the mark at absolute row absRow, or nil.
func (t *Terminal) GetPromptMarkAt(absRow int) *PromptMark {
	for i := range t.promptMarks {
		if t.promptMarks[i].Row == absRow {
			m := t.promptMarks[i]
			return &m
		}
	}
	return nil
}

// NextPromptRow returns the absolute row of the next mark after
// currentAbsRow, filtered to kind unless filter is false. Returns -1 if
// none exists.
func (t *Terminal) NextPromptRow(currentAbsRow int, kind PromptMarkKind, filter bool) int {
	for _, m := range t.promptMarks {
		if m.Row > currentAbsRow && (!filter || m.Kind == kind) {
			return m.Row
		}
	}
	return -1
}

// PrevPromptRow returns the absolute row of the nearest mark before
// currentAbsRow, filtered to kind unless filter is false. Returns -1 if
// none exists.
func (t *Terminal) PrevPromptRow(currentAbsRow int, kind PromptMarkKind, filter bool) int {
	for i := len(t.promptMarks) - 1; i >= 0; i-- {
		m := t.promptMarks[i]
		if m.Row < currentAbsRow && (!filter || m.Kind == kind) {
			return m.Row
		}
	}
	return -1
}

// absoluteRowText renders the text of an absolute row, looking it up in
// scrollback when it precedes the visible screen.
func (t *Terminal) absoluteRowText(absRow int) string {
	scrollbackLen := t.scrollback.Len()
	if absRow < scrollbackLen {
		if row, ok := t.scrollback.Line(absRow); ok {
			return row.text()
		}
		return ""
	}
	screenRow := absRow - scrollbackLen
	if screenRow < 0 || screenRow >= t.rows {
		return ""
	}
	return t.active.LineText(screenRow)
}

// GetLastCommandOutput returns the text between the most recent matched
// CommandExecuted/CommandFinished mark pair, or "" if none is complete.
func (t *Terminal) GetLastCommandOutput() string {
	var executed, finished *PromptMark
	for i := len(t.promptMarks) - 1; i >= 0; i-- {
		m := &t.promptMarks[i]
		if finished == nil && m.Kind == CommandFinished {
			finished = m
		}
		if executed == nil && m.Kind == CommandExecuted {
			executed = m
		}
		if executed != nil && finished != nil {
			if executed.Row < finished.Row {
				break
			}
			executed, finished = nil, nil
		}
	}
	if executed == nil || finished == nil {
		return ""
	}

	var lines []string
	lastNonEmpty := -1
	for row := executed.Row; row < finished.Row; row++ {
		line := t.absoluteRowText(row)
		lines = append(lines, line)
		if line != "" {
			lastNonEmpty = len(lines) - 1
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
