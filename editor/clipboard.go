package editor

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard is the single-slot store used by copy and paste.
//
// ReadText reports ok=false while the slot is empty. Errors must not crash
// the UI; the editor surfaces them as status messages.
type Clipboard interface {
	ReadText() (text string, ok bool, err error)
	WriteText(s string) error
}

// Register is an in-memory Clipboard.
type Register struct {
	mu   sync.Mutex
	text string
	set  bool
}

func NewRegister() *Register { return &Register{} }

func (r *Register) ReadText() (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text, r.set, nil
}

func (r *Register) WriteText(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = s
	r.set = true
	return nil
}

// SystemClipboard mirrors a Register to the OS clipboard.
//
// Writes always land in the register. Reads prefer the OS clipboard and fall
// back to the register when it is unavailable or empty.
type SystemClipboard struct {
	reg *Register

	unsupported bool
	read        func() (string, error)
	write       func(string) error
}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		reg:         NewRegister(),
		unsupported: clipboard.Unsupported,
		read:        clipboard.ReadAll,
		write:       clipboard.WriteAll,
	}
}

func (c *SystemClipboard) ReadText() (string, bool, error) {
	if !c.unsupported {
		if s, err := c.read(); err == nil && s != "" {
			return s, true, nil
		}
	}
	return c.reg.ReadText()
}

func (c *SystemClipboard) WriteText(s string) error {
	_ = c.reg.WriteText(s)
	if c.unsupported {
		return nil
	}
	return c.write(s)
}
