package vtcore

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// oscDispatch handles one complete OSC string (the bytes between ESC ] and
// its terminator, not including either).
func (t *Terminal) oscDispatch(buf []byte) {
	s := string(buf)
	head, rest, _ := strings.Cut(s, ";")
	num, err := strconv.Atoi(head)
	if err != nil {
		t.tracer().Warnf("vtcore: malformed OSC %q", s)
		return
	}
	switch num {
	case 0, 1, 2:
		t.setTitle(rest)
	case 4:
		t.oscSetColor(rest)
	case 104:
		t.oscResetColor(rest)
	case 10:
		t.oscDynamicColor('f', rest)
	case 11:
		t.oscDynamicColor('b', rest)
	case 12:
		t.oscDynamicColor('c', rest)
	case 50:
		t.oscCursorShape(rest)
	case 52:
		t.oscClipboard(rest)
	case 7:
		t.oscWorkingDirectory(rest)
	case 8:
		t.oscHyperlink(rest)
	case 133:
		t.oscPromptMark(rest)
	case 9:
		t.oscNotifyITerm(rest)
	case 777:
		t.oscNotifyURxvt(rest)
	default:
		t.tracer().Warnf("vtcore: unhandled OSC %d", num)
	}
}

func (t *Terminal) setTitle(title string) {
	apply := func(title string) {
		t.title = title
		t.titleProvider.SetTitle(title)
	}
	if mw := t.middleware; mw != nil && mw.SetTitle != nil {
		mw.SetTitle(title, apply)
		return
	}
	apply(title)
}

// parseColorSpec parses an xterm color spec: "rgb:rr/gg/bb",
// "rgb:rrrr/gggg/bbbb" or "#rrggbb".
func parseColorSpec(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "rgb:")
	if strings.HasPrefix(s, "#") {
		s = s[1:]
		if len(s) != 6 {
			return RGB{}, false
		}
		r, err1 := strconv.ParseUint(s[0:2], 16, 8)
		g, err2 := strconv.ParseUint(s[2:4], 16, 8)
		b, err3 := strconv.ParseUint(s[4:6], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return RGB{}, false
		}
		return RGB{uint8(r), uint8(g), uint8(b)}, true
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return RGB{}, false
	}
	channel := func(hex string) (uint8, bool) {
		if len(hex) == 0 {
			return 0, false
		}
		v, err := strconv.ParseUint(hex[:min(len(hex), 2)], 16, 16)
		if err != nil {
			return 0, false
		}
		return uint8(v), true
	}
	r, ok1 := channel(parts[0])
	g, ok2 := channel(parts[1])
	b, ok3 := channel(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return RGB{}, false
	}
	return RGB{r, g, b}, true
}

func (t *Terminal) oscSetColor(rest string) {
	tokens := strings.Split(rest, ";")
	for i := 0; i+1 < len(tokens); i += 2 {
		idx, err := strconv.Atoi(tokens[i])
		if err != nil {
			continue
		}
		rgb, ok := parseColorSpec(tokens[i+1])
		if !ok {
			continue
		}
		apply := func(idx int, c RGB) { t.palette.SetIndexed(idx, c) }
		if mw := t.middleware; mw != nil && mw.SetColor != nil {
			mw.SetColor(idx, rgb, apply)
			continue
		}
		apply(idx, rgb)
	}
}

func (t *Terminal) oscResetColor(rest string) {
	if rest == "" {
		t.palette.ResetAll()
		return
	}
	for _, tok := range strings.Split(rest, ";") {
		idx, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		apply := func(idx int) { t.palette.ResetIndexed(idx) }
		if mw := t.middleware; mw != nil && mw.ResetColor != nil {
			mw.ResetColor(idx, apply)
			continue
		}
		apply(idx)
	}
}

func (t *Terminal) oscDynamicColor(slot byte, rest string) {
	rgb, ok := parseColorSpec(rest)
	if !ok {
		return
	}
	apply := func(slot byte, c RGB) {
		switch slot {
		case 'f':
			t.palette.SetForeground(c)
		case 'b':
			t.palette.SetBackground(c)
		case 'c':
			t.palette.SetCursor(c)
		}
	}
	if mw := t.middleware; mw != nil && mw.SetDynamicColor != nil {
		mw.SetDynamicColor(slot, rgb, apply)
		return
	}
	apply(slot, rgb)
}

func (t *Terminal) oscCursorShape(rest string) {
	rest = strings.TrimPrefix(rest, "CursorShape=")
	n, err := strconv.Atoi(rest)
	if err != nil {
		return
	}
	t.setCursorStyle(CursorStyle(n))
}

func (t *Terminal) oscClipboard(rest string) {
	selector, data, ok := strings.Cut(rest, ";")
	if !ok {
		return
	}
	clipboard := byte('c')
	if len(selector) > 0 {
		clipboard = selector[0]
	}

	if data == "?" {
		respond := func(clipboard byte) {
			val := t.clipboardProvider.Read(clipboard)
			encoded := base64.StdEncoding.EncodeToString([]byte(val))
			t.writeResponseString(fmt.Sprintf("\x1b]52;%c;%s\x07", clipboard, encoded))
		}
		if mw := t.middleware; mw != nil && mw.ClipboardLoad != nil {
			mw.ClipboardLoad(clipboard, respond)
			return
		}
		respond(clipboard)
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		t.tracer().Warnf("vtcore: malformed OSC 52 payload")
		return
	}
	apply := func(clipboard byte, data []byte) { t.clipboardProvider.Write(clipboard, data) }
	if mw := t.middleware; mw != nil && mw.ClipboardStore != nil {
		mw.ClipboardStore(clipboard, decoded, apply)
		return
	}
	apply(clipboard, decoded)
}

func (t *Terminal) oscWorkingDirectory(uri string) {
	apply := func(uri string) { t.workingDir = uri }
	if mw := t.middleware; mw != nil && mw.SetWorkingDirectory != nil {
		mw.SetWorkingDirectory(uri, apply)
		return
	}
	apply(uri)
}

// oscHyperlink handles OSC 8 payloads of the form "params;uri". An empty
// uri closes the current hyperlink.
func (t *Terminal) oscHyperlink(rest string) {
	paramStr, uri, _ := strings.Cut(rest, ";")

	var link *Hyperlink
	if uri != "" {
		id := ""
		for _, kv := range strings.Split(paramStr, ":") {
			if after, ok := strings.CutPrefix(kv, "id="); ok {
				id = after
			}
		}
		link = &Hyperlink{ID: id, URI: uri}
	}

	apply := func(l *Hyperlink) { t.currentHyperlink = l }
	if mw := t.middleware; mw != nil && mw.SetHyperlink != nil {
		mw.SetHyperlink(link, apply)
		return
	}
	apply(link)
}

func (t *Terminal) oscPromptMark(rest string) {
	tokens := strings.Split(rest, ";")
	if len(tokens) == 0 || tokens[0] == "" {
		return
	}
	var kind PromptMarkKind
	switch tokens[0] {
	case "A":
		kind = PromptStart
	case "B":
		kind = CommandStart
	case "C":
		kind = CommandExecuted
	case "D":
		kind = CommandFinished
	default:
		t.tracer().Warnf("vtcore: unknown OSC 133 mark %q", tokens[0])
		return
	}

	exitCode := -1
	if kind == CommandFinished && len(tokens) > 1 {
		if n, err := strconv.Atoi(tokens[1]); err == nil {
			exitCode = n
		}
	}

	apply := func(kind PromptMarkKind, exitCode int) { t.recordPromptMark(kind, exitCode) }
	if mw := t.middleware; mw != nil && mw.PromptMarkReceived != nil {
		mw.PromptMarkReceived(kind, exitCode, apply)
		return
	}
	apply(kind, exitCode)
}

func (t *Terminal) oscNotifyITerm(body string) {
	t.notificationProvider.Notify(Notification{Body: body})
}

func (t *Terminal) oscNotifyURxvt(rest string) {
	_, payload, _ := strings.Cut(rest, ";") // drop the leading "notify" literal
	title, body, _ := strings.Cut(payload, ";")
	t.notificationProvider.Notify(Notification{Title: title, Body: body})
}

// dcsDispatch handles a complete DCS string. No DCS sequence is currently
// interpreted; device control strings (e.g. DECRQSS, Sixel/ReGIS payloads)
// are acknowledged at the parser level and otherwise ignored.
func (t *Terminal) dcsDispatch(buf []byte) {
	t.tracer().Warnf("vtcore: ignoring DCS string (%d bytes)", len(buf))
}

func (t *Terminal) pmDispatch(buf []byte) {
	receive := func(data []byte) { t.pmProvider.Receive(data) }
	if mw := t.middleware; mw != nil && mw.PrivacyMessageReceived != nil {
		mw.PrivacyMessageReceived(buf, receive)
		return
	}
	receive(buf)
}

func (t *Terminal) apcDispatch(buf []byte) {
	receive := func(data []byte) { t.apcProvider.Receive(data) }
	if mw := t.middleware; mw != nil && mw.ApplicationCommandReceived != nil {
		mw.ApplicationCommandReceived(buf, receive)
		return
	}
	receive(buf)
}

func (t *Terminal) sosDispatch(buf []byte) {
	t.sosProvider.Receive(buf)
}
