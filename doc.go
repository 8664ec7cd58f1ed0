// Package vtcore implements a headless VT100/xterm-compatible terminal
// emulator: no rendering, no PTY of its own, just the state machine that
// turns a byte stream into cells, a cursor, and everything else a real
// terminal would be painting to a screen.
//
// This makes it useful for testing terminal applications without a
// display, building multiplexers and session recorders, or driving a
// terminal UI headlessly in CI.
//
// # Quick Start
//
//	term := vtcore.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: the emulator; implements [io.Writer] and processes the
//     byte stream through a resumable parser
//   - [Screen]: a rows×cols grid of cells, one for the primary buffer and
//     one for the alternate buffer
//   - [Cell]: one grid position: a grapheme cluster, an interned style, and
//     wide-character bookkeeping
//   - [Cursor]: position, visibility, and rendering style
//
// # Terminal
//
// Terminal is the main entry point. Feed it raw bytes containing escape
// sequences and read back the resulting screen state:
//
//	term := vtcore.New(
//	    vtcore.WithSize(24, 80),
//	    vtcore.WithScrollback(vtcore.NewScrollback(10000)),
//	    vtcore.WithResponse(ptyWriter),
//	)
//
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
//	for row := 0; row < term.Rows(); row++ {
//	    fmt.Println(term.LineContent(row))
//	}
//
// # Dual Buffers
//
// Terminal maintains two [Screen]s:
//
//   - Primary: normal mode, optionally backed by a [ScrollbackProvider]
//   - Alternate: used by full-screen applications (vim, less, htop); never
//     retains scrollback
//
// Applications switch buffers with CSI ?1047/1049h/l. Check which is active
// with [Terminal.IsAlternateScreen].
//
// # Cells and Styles
//
// Styles are interned rather than stored per-cell: [Terminal.Cell] returns
// a [Cell] carrying a small [StyleID], and [Terminal.CellStyle] resolves it
// back to the full [TextAttributes]:
//
//	cell := term.Cell(row, col)
//	attrs := term.CellStyle(cell)
//	if attrs.Flags&vtcore.CellFlagBold != 0 {
//	    // ...
//	}
//
// # Colors
//
// A [Color] is either the terminal default, an indexed palette entry, or a
// 24-bit RGB triple. [Terminal.Palette] returns the live [ColorPalette],
// which resolves any Color to a concrete [RGB] and tracks the dynamic
// foreground/background/cursor colors set via OSC 10/11/12.
//
// # Scrollback
//
// Rows evicted from the top of the primary screen are handed to a
// [ScrollbackProvider]. [Scrollback] is a ready-to-use ring-buffer
// implementation:
//
//	term := vtcore.New(vtcore.WithScrollback(vtcore.NewScrollback(10000)))
//
//	for i := 0; i < term.ScrollbackLen(); i++ {
//	    row, _ := term.ScrollbackLine(i)
//	}
//
// # Providers
//
// Providers handle terminal-generated events and queries. All are optional
// with no-op defaults:
//
//   - [BellProvider]: bell/beep events (BEL)
//   - [TitleProvider]: window title changes (OSC 0/1/2) and the title stack
//   - [ClipboardProvider]: clipboard read/write (OSC 52)
//   - [ScrollbackProvider]: lines scrolled off the primary screen
//   - [RecordingProvider]: captures raw input for replay or debugging
//   - [NotificationProvider]: desktop notifications (OSC 9/777)
//   - [ShellIntegrationProvider]: shell prompt marks (OSC 133)
//   - [ResponseProvider]: where terminal responses (DSR, DA, clipboard
//     reads) get written back
//   - [Tracer]: diagnostic output for malformed or unhandled sequences
//
// # Middleware
//
// [Middleware] intercepts dispatch calls for custom behavior, wrapping the
// default handler with a function that can observe, alter, or suppress it:
//
//	mw := &vtcore.Middleware{
//	    Bell: func(next func()) {
//	        log.Println("bell")
//	        // omit next() to suppress it
//	    },
//	}
//	term := vtcore.New(vtcore.WithMiddleware(mw))
//
// # Terminal Modes
//
// Behavior flags are queried with [Terminal.HasMode]:
//
//	term.HasMode(vtcore.ModeLineWrap)       // auto-wrap enabled?
//	term.HasMode(vtcore.ModeShowCursor)     // cursor visible?
//	term.HasMode(vtcore.ModeBracketedPaste) // bracketed paste enabled?
//
// See [TerminalMode] for the full set.
//
// # Selection
//
//	term.SetSelection(vtcore.Position{Row: 0, Col: 0}, vtcore.Position{Row: 2, Col: 10})
//	text := term.GetSelectedText()
//	term.ClearSelection()
//
// # Snapshots
//
// [Terminal.Snapshot] captures the active screen into a renderer-facing
// [Snapshot] with every color already resolved against the live palette, at
// one of three detail levels:
//
//	snap := term.Snapshot(vtcore.DetailText)   // plain text, smallest
//	snap := term.Snapshot(vtcore.DetailStyled) // runs of uniform style
//	snap := term.Snapshot(vtcore.DetailFull)   // every cell, fully attributed
//
// A Snapshot holds no reference back into Terminal state, so it's safe to
// hand to a renderer on another goroutine once captured.
//
// # Shell Integration
//
// Shell prompt marks (OSC 133) are tracked as absolute rows, spanning
// scrollback and the visible screen:
//
//	term := vtcore.New(vtcore.WithShellIntegration(&myHandler{}))
//	marks := term.PromptMarks()
//	output := term.GetLastCommandOutput()
//
// # Auto-Resize Mode
//
// With [WithAutoResize], the primary screen grows a row instead of
// scrolling one off, as long as no custom scroll region is in effect:
//
//	term := vtcore.New(vtcore.WithAutoResize())
//	cmd.Stdout = term
//	cmd.Run()
//	fmt.Printf("total rows: %d\n", term.Rows())
//
// # Keyboard and Mouse Encoding
//
// [KeyEncoder] and [MouseEncoder] handle the other direction: translating
// host-side input events into the byte sequences the running program
// expects, honoring application cursor-key mode, the Kitty keyboard
// protocol's progressive enhancements, and whichever xterm mouse tracking
// mode is active.
//
// # Concurrency
//
// Terminal is not safe for concurrent use. It is meant to be owned by the
// single goroutine that drives its input (reading from a PTY, say); callers
// needing to read state from elsewhere should synchronize externally.
//
// # Supported Sequences
//
// Cursor movement and save/restore, erase and insert/delete, scrolling and
// scroll regions, SGR with full color support, DEC private modes including
// the alternate screen and origin mode, device status and attribute
// reports, bracketed paste, legacy and SGR mouse reporting, window
// title/OSC handling, clipboard, hyperlinks, and shell integration are all
// implemented. Sixel and Kitty graphics, double-width/height line modes,
// and printer emulation are not.
package vtcore
