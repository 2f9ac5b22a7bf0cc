package editor

// Mode is the interpretation context for key input.
type Mode int

const (
	// ModeCommand routes characters to the command line and arrows to the
	// file browser.
	ModeCommand Mode = iota
	// ModeInsert routes characters and editing keys to the buffer.
	ModeInsert
	// ModeVisual behaves like ModeInsert while a line selection is anchored.
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	default:
		return "UNKNOWN"
	}
}

// Label is the status-line form of the mode, e.g. "-- INSERT --".
func (m Mode) Label() string {
	return "-- " + m.String() + " --"
}
