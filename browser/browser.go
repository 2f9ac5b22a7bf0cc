// Package browser implements the directory sidebar: the current directory,
// its sorted entries and a selection index. Selecting a file produces an
// open request; selecting a directory descends into it.
package browser

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/iw2rmb/reedit/storage"
)

// Options filter the entries shown by a Browser.
type Options struct {
	// HideDotfiles drops names starting with '.'.
	HideDotfiles bool
	// Ignore hides names matching any of these glob patterns.
	Ignore []string
}

// DefaultOptions shows every entry.
func DefaultOptions() Options {
	return Options{}
}

// ActionKind says what EnterSelected did.
type ActionKind int

const (
	// ActionNone means nothing was selected.
	ActionNone ActionKind = iota
	// ActionOpen asks the caller to load Path as the new document.
	ActionOpen
	// ActionChdir reports that the browser descended into Path.
	ActionChdir
)

// Action is the outcome of EnterSelected.
type Action struct {
	Kind ActionKind
	Path string
}

// Browser lists one directory at a time.
type Browser struct {
	store storage.Storage

	dir     string
	entries []storage.Entry
	index   int

	hideDotfiles bool
	ignore       []glob.Glob
}

// New opens dir. It fails if an ignore pattern is malformed or dir cannot
// be listed.
func New(store storage.Storage, dir string, opt Options) (*Browser, error) {
	b := &Browser{
		store:        store,
		hideDotfiles: opt.HideDotfiles,
	}
	for _, pat := range opt.Ignore {
		g, err := glob.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", pat, err)
		}
		b.ignore = append(b.ignore, g)
	}
	if err := b.load(filepath.Clean(dir)); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Browser) Dir() string { return b.dir }

// Entries returns a copy of the visible entries in name order.
func (b *Browser) Entries() []storage.Entry {
	return append([]storage.Entry(nil), b.entries...)
}

func (b *Browser) Len() int { return len(b.entries) }

// Index is the selection index. It is meaningless when Len is 0.
func (b *Browser) Index() int { return b.index }

// Selected returns the entry under the selection index.
func (b *Browser) Selected() (storage.Entry, bool) {
	if len(b.entries) == 0 {
		return storage.Entry{}, false
	}
	return b.entries[b.index], true
}

// Path joins name onto the current directory.
func (b *Browser) Path(name string) string {
	return filepath.Join(b.dir, name)
}

// MoveSelection shifts the selection by delta, clamped to the list.
// It reports whether the index changed.
func (b *Browser) MoveSelection(delta int) bool {
	if len(b.entries) == 0 {
		return false
	}
	next := b.index + delta
	if next < 0 {
		next = 0
	}
	if next > len(b.entries)-1 {
		next = len(b.entries) - 1
	}
	if next == b.index {
		return false
	}
	b.index = next
	return true
}

// EnterSelected opens the selected entry. Files become an ActionOpen for
// the caller to load; directories are entered with the selection reset.
// On a listing error the browser is left unchanged.
func (b *Browser) EnterSelected() (Action, error) {
	e, ok := b.Selected()
	if !ok {
		return Action{}, nil
	}
	p := b.Path(e.Name)
	if !e.IsDir {
		return Action{Kind: ActionOpen, Path: p}, nil
	}
	if err := b.load(p); err != nil {
		return Action{}, err
	}
	return Action{Kind: ActionChdir, Path: p}, nil
}

// GoUp moves to the parent directory. At a root it does nothing and
// reports false.
func (b *Browser) GoUp() (bool, error) {
	parent := filepath.Dir(b.dir)
	if parent == b.dir {
		return false, nil
	}
	if err := b.load(parent); err != nil {
		return false, err
	}
	return true, nil
}

// Chdir switches to dir and resets the selection.
func (b *Browser) Chdir(dir string) error {
	return b.load(filepath.Clean(dir))
}

// Refresh re-lists the current directory, keeping the selection index
// within bounds.
func (b *Browser) Refresh() error {
	entries, err := b.list(b.dir)
	if err != nil {
		return err
	}
	b.entries = entries
	if b.index > len(entries)-1 {
		b.index = len(entries) - 1
	}
	if b.index < 0 {
		b.index = 0
	}
	return nil
}

func (b *Browser) load(dir string) error {
	entries, err := b.list(dir)
	if err != nil {
		return err
	}
	b.dir = dir
	b.entries = entries
	b.index = 0
	return nil
}

func (b *Browser) list(dir string) ([]storage.Entry, error) {
	all, err := b.store.List(dir)
	if err != nil {
		return nil, err
	}
	out := make([]storage.Entry, 0, len(all))
	for _, e := range all {
		if b.hidden(e.Name) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (b *Browser) hidden(name string) bool {
	if b.hideDotfiles && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range b.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
