package editor

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/reedit/browser"
	"github.com/iw2rmb/reedit/buffer"
	"github.com/iw2rmb/reedit/storage"
)

// resolve makes p absolute against the browser's current directory.
func (m *Model) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(m.browser.Dir(), p)
}

// open replaces the document with the file at p and enters Insert mode. A
// missing file opens as an empty document bound to p. A directory is shown
// in the browser and the document is kept. Any other read failure leaves
// the session untouched.
func (m *Model) open(p string) {
	p = m.resolve(p)
	if e, err := m.cfg.Storage.Stat(p); err == nil && e.IsDir {
		m.chdir(p)
		return
	}
	fields := logrus.Fields{"path": p}

	lines, err := m.cfg.Storage.Read(p)
	switch {
	case err == nil:
		m.setStatus(fmt.Sprintf("%q %d lines", p, len(lines)))
	case storage.IsNotFound(err):
		lines = []string{""}
		m.setStatus(fmt.Sprintf("%q [New File]", p))
		fields["new"] = true
	default:
		m.fail(err)
		return
	}

	m.buf = buffer.FromLines(lines)
	m.savedText = m.buf.TextVersion()
	m.path = p
	m.clearSelection()
	m.cmdline = ""
	m.mode = ModeInsert

	fields["lines"] = len(lines)
	m.log.WithFields(fields).Info("opened file")
}

// write saves the document to p and binds the document to it.
func (m *Model) write(p string) bool {
	if err := m.cfg.Storage.Write(p, m.buf.Text()); err != nil {
		m.fail(err)
		return false
	}
	n := m.buf.LineCount()
	m.path = p
	m.savedText = m.buf.TextVersion()
	m.setStatus(fmt.Sprintf("Saved %d lines to %s", n, p))
	m.log.WithFields(logrus.Fields{"path": p, "lines": n}).Info("saved file")

	if err := m.browser.Refresh(); err != nil {
		m.log.WithError(err).Warn("browser refresh after save")
	}
	return true
}

// chdir points the browser at dir.
func (m *Model) chdir(dir string) {
	if err := m.browser.Chdir(dir); err != nil {
		m.fail(err)
		return
	}
	m.setStatus(fmt.Sprintf("%q is a directory", dir))
	m.log.WithField("dir", dir).Debug("browser: changed directory")
}

// openSelected acts on the browser selection: a file is opened, a directory
// is entered.
func (m *Model) openSelected() {
	act, err := m.browser.EnterSelected()
	if err != nil {
		m.fail(err)
		return
	}
	switch act.Kind {
	case browser.ActionOpen:
		m.open(act.Path)
	case browser.ActionChdir:
		m.log.WithField("dir", act.Path).Debug("browser: entered directory")
	}
}
