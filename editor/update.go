package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/reedit/buffer"
)

type inputKind int

const (
	inputNone inputKind = iota
	inputText
	inputEscape
	inputEnter
	inputBackspace
	inputDelete
	inputTab
	inputLeft
	inputRight
	inputUp
	inputDown
	inputHome
	inputEnd
	inputInsertMode
	inputVisualMode
	inputCopy
	inputPaste
)

// input is one classified key event. text carries the typed characters for
// inputText and for the character bindings, which fall back to text in
// modes that do not bind them.
type input struct {
	kind  inputKind
	text  string
	paste bool
}

func (km KeyMap) classify(msg tea.KeyMsg) input {
	// Bracketed paste is always literal text.
	if msg.Type == tea.KeyRunes && msg.Paste {
		return input{kind: inputText, text: string(msg.Runes), paste: true}
	}

	bindings := []struct {
		b    key.Binding
		kind inputKind
	}{
		{km.Escape, inputEscape},
		{km.Enter, inputEnter},
		{km.Backspace, inputBackspace},
		{km.Delete, inputDelete},
		{km.Tab, inputTab},
		{km.Left, inputLeft},
		{km.Right, inputRight},
		{km.Up, inputUp},
		{km.Down, inputDown},
		{km.Home, inputHome},
		{km.End, inputEnd},
		{km.InsertMode, inputInsertMode},
		{km.VisualMode, inputVisualMode},
		{km.Copy, inputCopy},
		{km.Paste, inputPaste},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return input{kind: kb.kind, text: string(msg.Runes)}
		}
	}

	switch {
	case msg.Type == tea.KeySpace:
		return input{kind: inputText, text: " "}
	case msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0:
		return input{kind: inputText, text: string(msg.Runes)}
	}
	return input{}
}

var pasteNewlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

type handler func(m *Model, in input) tea.Cmd

// dispatch routes every (mode, input kind) pair. Pairs missing from the
// table are ignored.
var dispatch = map[Mode]map[inputKind]handler{
	ModeCommand: {
		inputText:       (*Model).appendCommand,
		inputCopy:       (*Model).appendCommand,
		inputInsertMode: (*Model).commandInsertKey,
		inputVisualMode: (*Model).commandVisualKey,
		inputBackspace:  (*Model).popCommand,
		inputEnter:      (*Model).submitCommand,
		inputEscape:     (*Model).escape,
		inputUp:         selectEntry(-1),
		inputDown:       selectEntry(1),
		inputRight:      (*Model).enterEntry,
		inputLeft:       (*Model).leaveDir,
	},
	ModeInsert: editHandlers(nil),
	ModeVisual: editHandlers(map[inputKind]handler{
		inputCopy: func(m *Model, _ input) tea.Cmd {
			m.copySelection()
			return nil
		},
	}),
}

func editHandlers(overrides map[inputKind]handler) map[inputKind]handler {
	h := map[inputKind]handler{
		inputText:       (*Model).typeText,
		inputInsertMode: (*Model).typeText,
		inputVisualMode: (*Model).typeText,
		inputCopy:       (*Model).typeText,
		inputEscape:     (*Model).escape,
		inputEnter:      (*Model).splitLine,
		inputBackspace:  bufferOp((*buffer.Buffer).DeleteBackward),
		inputDelete:     bufferOp((*buffer.Buffer).DeleteForward),
		inputTab:        bufferOp((*buffer.Buffer).InsertTab),
		inputLeft:       moveCursor(buffer.DirLeft),
		inputRight:      moveCursor(buffer.DirRight),
		inputUp:         moveCursor(buffer.DirUp),
		inputDown:       moveCursor(buffer.DirDown),
		inputHome:       moveCursor(buffer.DirHome),
		inputEnd:        moveCursor(buffer.DirEnd),
		inputPaste: func(m *Model, _ input) tea.Cmd {
			m.paste()
			return nil
		},
	}
	for k, v := range overrides {
		h[k] = v
	}
	return h
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	in := m.cfg.KeyMap.classify(msg)
	if in.kind == inputNone {
		return nil
	}
	h, ok := dispatch[m.mode][in.kind]
	if !ok {
		return nil
	}
	return h(m, in)
}

func (m *Model) escape(input) tea.Cmd {
	m.cmdline = ""
	m.clearSelection()
	m.mode = ModeCommand
	return nil
}

// Command mode.

func (m *Model) appendCommand(in input) tea.Cmd {
	m.cmdline += in.text
	return nil
}

func (m *Model) popCommand(input) tea.Cmd {
	if m.cmdline == "" {
		return nil
	}
	r := []rune(m.cmdline)
	m.cmdline = string(r[:len(r)-1])
	return nil
}

func (m *Model) submitCommand(input) tea.Cmd {
	line := m.cmdline
	m.cmdline = ""
	return m.runCommand(line)
}

func (m *Model) commandInsertKey(in input) tea.Cmd {
	if m.cmdline != "" {
		return m.appendCommand(in)
	}
	m.mode = ModeInsert
	return nil
}

func (m *Model) commandVisualKey(in input) tea.Cmd {
	if m.cmdline != "" {
		return m.appendCommand(in)
	}
	m.startSelection()
	return nil
}

func selectEntry(delta int) handler {
	return func(m *Model, _ input) tea.Cmd {
		m.browser.MoveSelection(delta)
		return nil
	}
}

func (m *Model) enterEntry(input) tea.Cmd {
	m.openSelected()
	return nil
}

func (m *Model) leaveDir(input) tea.Cmd {
	moved, err := m.browser.GoUp()
	if err != nil {
		m.fail(err)
		return nil
	}
	if moved {
		m.log.WithField("dir", m.browser.Dir()).Debug("browser: parent directory")
	}
	return nil
}

// Insert and Visual mode.

func (m *Model) typeText(in input) tea.Cmd {
	if in.text == "" {
		return nil
	}
	if in.paste {
		m.buf.InsertText(pasteNewlines.Replace(in.text))
		return nil
	}
	if r := []rune(in.text); len(r) == 1 {
		if !m.buf.InsertPair(r[0]) {
			m.buf.InsertRune(r[0])
		}
		return nil
	}
	m.buf.InsertText(in.text)
	return nil
}

func (m *Model) splitLine(input) tea.Cmd {
	mode := buffer.IndentNone
	if m.cfg.AutoIndent {
		mode = buffer.IndentAuto
	}
	m.buf.SplitLine(mode)
	return nil
}

func bufferOp(op func(*buffer.Buffer)) handler {
	return func(m *Model, _ input) tea.Cmd {
		op(m.buf)
		return nil
	}
}

func moveCursor(dir buffer.MoveDir) handler {
	return func(m *Model, _ input) tea.Cmd {
		m.buf.Move(dir)
		return nil
	}
}
