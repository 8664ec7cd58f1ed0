package vtcore

import "testing"

func TestShellIntegrationMarkPromptStart(t *testing.T) {
	term := New(WithSize(24, 80))

	term.WriteString("\x1b]133;A\x07")

	marks := term.PromptMarks()
	if len(marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(marks))
	}
	if marks[0].Kind != PromptStart {
		t.Errorf("expected PromptStart, got %d", marks[0].Kind)
	}
	if marks[0].ExitCode != -1 {
		t.Errorf("expected exit code -1, got %d", marks[0].ExitCode)
	}
}

func TestShellIntegrationMarkCommandFinishedExitCode(t *testing.T) {
	term := New(WithSize(24, 80))

	term.WriteString("\x1b]133;D;42\x07")

	marks := term.PromptMarks()
	if len(marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(marks))
	}
	if marks[0].Kind != CommandFinished {
		t.Errorf("expected CommandFinished, got %d", marks[0].Kind)
	}
	if marks[0].ExitCode != 42 {
		t.Errorf("expected exit code 42, got %d", marks[0].ExitCode)
	}
}

func TestShellIntegrationMarksOrdered(t *testing.T) {
	term := New(WithSize(24, 80))

	term.WriteString("\x1b]133;A\x07prompt$ \x1b]133;B\x07cmd\r\n")
	term.WriteString("\x1b]133;C\x07output\r\n\x1b]133;D;0\x07")

	marks := term.PromptMarks()
	if len(marks) != 4 {
		t.Fatalf("expected 4 marks, got %d", len(marks))
	}
	want := []PromptMarkKind{PromptStart, CommandStart, CommandExecuted, CommandFinished}
	for i, k := range want {
		if marks[i].Kind != k {
			t.Errorf("mark %d: expected kind %d, got %d", i, k, marks[i].Kind)
		}
	}
}

func TestClearPromptMarks(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b]133;A\x07\x1b]133;B\x07")

	if term.PromptMarkCount() != 2 {
		t.Fatalf("expected 2 marks, got %d", term.PromptMarkCount())
	}
	term.ClearPromptMarks()
	if term.PromptMarkCount() != 0 {
		t.Errorf("expected 0 marks after clear, got %d", term.PromptMarkCount())
	}
}

func TestNextPrevPromptRow(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b]133;A\x07")
	term.WriteString("\r\n\x1b]133;A\x07")
	term.WriteString("\r\n\x1b]133;A\x07")

	marks := term.PromptMarks()
	if len(marks) != 3 {
		t.Fatalf("expected 3 marks, got %d", len(marks))
	}

	next := term.NextPromptRow(marks[0].Row, PromptStart, true)
	if next != marks[1].Row {
		t.Errorf("expected next prompt row %d, got %d", marks[1].Row, next)
	}

	prev := term.PrevPromptRow(marks[2].Row, PromptStart, true)
	if prev != marks[1].Row {
		t.Errorf("expected prev prompt row %d, got %d", marks[1].Row, prev)
	}

	if term.NextPromptRow(marks[2].Row, PromptStart, true) != -1 {
		t.Errorf("expected no next prompt row after the last mark")
	}
}

func TestGetLastCommandOutput(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b]133;A\x07$ echo hi\x1b]133;B\x07\r\n")
	term.WriteString("\x1b]133;C\x07hi\r\n\x1b]133;D;0\x07")

	got := term.GetLastCommandOutput()
	if got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}
}
