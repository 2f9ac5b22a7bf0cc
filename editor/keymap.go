package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// InsertMode, VisualMode and Copy are plain characters; they only act as
// bindings in the modes that give them a meaning and are typed as text
// everywhere else.
type KeyMap struct {
	Escape key.Binding

	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Tab               key.Binding

	InsertMode key.Binding
	VisualMode key.Binding
	Copy       key.Binding
	Paste      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "command mode")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline / run command")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		InsertMode: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert mode")),
		VisualMode: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "visual mode")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy lines")),
		Paste:      key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste lines")),
	}
}
