package editor

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnknownCommand is wrapped by CommandError for input that matches no
// command.
var ErrUnknownCommand = errors.New("unknown command")

// CommandError reports a command line that could not be run.
type CommandError struct {
	Input string
	Err   error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Input)
}

func (e *CommandError) Unwrap() error { return e.Err }

type commandKind int

const (
	cmdWrite commandKind = iota + 1
	cmdQuit
	cmdWriteQuit
	cmdEdit
)

type command struct {
	kind commandKind
	arg  string
}

// parseCommand parses one committed command line:
//
//	:w [path]   write, optionally to a new path
//	:q          quit without saving
//	:wq [path]  write then quit
//	:e path     open path
func parseCommand(line string) (command, error) {
	s := strings.TrimSpace(line)
	verb, arg, _ := strings.Cut(s, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case ":w":
		return command{kind: cmdWrite, arg: arg}, nil
	case ":wq":
		return command{kind: cmdWriteQuit, arg: arg}, nil
	case ":e":
		return command{kind: cmdEdit, arg: arg}, nil
	case ":q":
		if arg == "" {
			return command{kind: cmdQuit}, nil
		}
	}
	return command{}, &CommandError{Input: s, Err: ErrUnknownCommand}
}

// runCommand executes a committed command line. An empty line does nothing.
func (m *Model) runCommand(line string) tea.Cmd {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	c, err := parseCommand(line)
	if err != nil {
		m.fail(err)
		return nil
	}

	switch c.kind {
	case cmdWrite:
		if p, ok := m.writeTarget(c.arg, ":w <path>"); ok {
			m.write(p)
		}
	case cmdWriteQuit:
		if p, ok := m.writeTarget(c.arg, ":wq <path>"); ok && m.write(p) {
			return m.quit()
		}
	case cmdQuit:
		return m.quit()
	case cmdEdit:
		if c.arg == "" {
			m.setStatus("usage: :e <path>")
			return nil
		}
		m.open(c.arg)
	}
	return nil
}

// writeTarget resolves where a write goes: the argument when given, else the
// bound path. An untitled document without an argument only reports usage.
func (m *Model) writeTarget(arg, usage string) (string, bool) {
	if arg != "" {
		return m.resolve(arg), true
	}
	if m.path == "" {
		m.setStatus("usage: " + usage + " (no file name)")
		m.log.Debug("write skipped: untitled document")
		return "", false
	}
	return m.path, true
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.log.WithField("modified", m.Modified()).Info("quit")
	return tea.Quit
}
