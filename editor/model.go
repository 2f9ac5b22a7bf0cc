package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/reedit/browser"
	"github.com/iw2rmb/reedit/buffer"
)

// Model is the editing session: one document, one browser, one mode.
//
// Model is a value; Update returns the next session. The buffer and the
// browser are owned exclusively by the session and are replaced, never
// shared, when a new file is opened.
type Model struct {
	cfg Config
	log logrus.FieldLogger

	buf     *buffer.Buffer
	browser *browser.Browser

	mode Mode

	anchor    int
	hasAnchor bool

	cmdline string
	status  string

	path      string
	savedText uint64

	width, height int

	docScroll  scroller
	colScroll  scroller
	sideScroll scroller
	viewport   viewport.Model

	quitting bool
}

// New builds a session. When cfg.Path is set the file is opened and the
// session starts in Insert mode; otherwise it starts in Command mode with an
// untitled document.
//
// New fails only when the browser cannot list cfg.Dir or an ignore pattern
// is malformed.
func New(cfg Config) (Model, error) {
	cfg = cfg.withDefaults()

	b, err := browser.New(cfg.Storage, cfg.Dir, cfg.Browser)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		log:      cfg.Logger,
		buf:      buffer.New(""),
		browser:  b,
		mode:     ModeCommand,
		viewport: viewport.New(0, 0),
	}
	if cfg.Path != "" {
		m.open(cfg.Path)
	}
	m.followViewport()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Buffer() *buffer.Buffer { return m.buf }
func (m Model) Browser() *browser.Browser { return m.browser }
func (m Model) Mode() Mode { return m.mode }

// CommandLine is the text typed in Command mode, not yet committed.
func (m Model) CommandLine() string { return m.cmdline }

// Status is the last message shown in the status line.
func (m Model) Status() string { return m.status }

// Path is the file the document is bound to, or "" for an untitled document.
func (m Model) Path() string { return m.path }

// Modified reports whether the text changed since it was loaded or saved.
func (m Model) Modified() bool { return m.buf.TextVersion() != m.savedText }

// Quitting reports whether a quit command was accepted.
func (m Model) Quitting() bool { return m.quitting }

// Selection returns the inclusive row range selected in Visual mode.
func (m Model) Selection() (start, end int, ok bool) {
	if !m.hasAnchor {
		return 0, 0, false
	}
	start, end = m.anchor, m.buf.Cursor().Row
	if start > end {
		start, end = end, start
	}
	if last := m.buf.LineCount() - 1; end > last {
		end = last
	}
	if start > end {
		start = end
	}
	return start, end, true
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.followViewport()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		buf, text := m.buf, m.buf.TextVersion()
		cmd := m.handleKey(msg)
		if m.buf == buf && m.buf.TextVersion() != text {
			m.logChange()
		}
		m.followViewport()
		return m, cmd
	default:
		return m, nil
	}
}

func (m *Model) logChange() {
	ch, ok := m.buf.LastChange()
	if !ok {
		return
	}
	m.log.WithFields(logrus.Fields{
		"row":      ch.Edit.RangeBefore.Start.Row,
		"col":      ch.Edit.RangeBefore.Start.Col,
		"inserted": len(ch.Edit.InsertText),
		"deleted":  len(ch.Edit.DeletedText),
	}).Debug("edit")
}

func (m *Model) setStatus(s string) {
	m.status = s
}

// fail surfaces err in the status line. The session continues.
func (m *Model) fail(err error) {
	m.status = err.Error()
	m.log.WithError(err).WithField("mode", m.mode.String()).Warn("operation failed")
}

func (m *Model) clearSelection() {
	m.anchor = 0
	m.hasAnchor = false
}
