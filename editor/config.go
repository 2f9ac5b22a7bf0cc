package editor

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/reedit/browser"
	"github.com/iw2rmb/reedit/storage"
)

const defaultSidebarWidth = 24

// Config configures the editor Model.
type Config struct {
	// Path is the document opened at startup. Empty starts an untitled
	// document in Command mode.
	Path string
	// Dir is the directory the browser starts in. Relative command paths
	// resolve against the browser's current directory.
	Dir string

	// Storage backs file reads, writes and directory listings. Defaults to
	// the OS file system.
	Storage storage.Storage
	// Clipboard holds copied lines. Defaults to an in-memory Register.
	Clipboard Clipboard

	KeyMap KeyMap
	Style  Style

	// AutoIndent makes Enter carry indentation and open bracket pairs.
	AutoIndent  bool
	LineNumbers bool

	Browser      browser.Options
	SidebarWidth int

	Logger logrus.FieldLogger
}

func (c Config) withDefaults() Config {
	if c.Storage == nil {
		c.Storage = storage.NewOS()
	}
	if c.Clipboard == nil {
		c.Clipboard = NewRegister()
	}
	if len(c.KeyMap.Escape.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.SidebarWidth <= 0 {
		c.SidebarWidth = defaultSidebarWidth
	}
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = l
	}
	return c
}
