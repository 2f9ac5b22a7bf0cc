package storage

import (
	"errors"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
)

var (
	errIsDir  = syscall.EISDIR
	errNotDir = syscall.ENOTDIR
)

// Memory implements Storage with an in-memory tree rooted at "/".
// Paths are slash-separated; relative paths are taken from the root.
//
// Memory is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	files map[string]string
	dirs  map[string]bool
}

// NewMemory creates an empty in-memory storage holding only "/".
func NewMemory() *Memory {
	return &Memory{
		files: make(map[string]string),
		dirs:  map[string]bool{"/": true},
	}
}

var _ Storage = (*Memory)(nil)

// AddFile stores content at p, creating parent directories.
func (m *Memory) AddFile(p, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = cleanPath(p)
	m.mkdirAll(path.Dir(p))
	m.files[p] = content
}

// MkdirAll creates dir and its parents.
func (m *Memory) MkdirAll(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirAll(cleanPath(dir))
}

// Content returns the raw content stored at p.
func (m *Memory) Content(p string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.files[cleanPath(p)]
	return c, ok
}

func (m *Memory) Read(p string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = cleanPath(p)
	if m.dirs[p] {
		return nil, ioError("read", p, errIsDir)
	}
	c, ok := m.files[p]
	if !ok {
		return nil, notFound("read", p, nil)
	}
	return SplitContent(c), nil
}

func (m *Memory) Write(p, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = cleanPath(p)
	if m.dirs[p] {
		return ioError("write", p, errIsDir)
	}
	if !m.dirs[path.Dir(p)] {
		return ioError("write", p, errors.New("parent directory does not exist"))
	}
	m.files[p] = content
	return nil
}

func (m *Memory) List(dir string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir = cleanPath(dir)
	if !m.dirs[dir] {
		if _, ok := m.files[dir]; ok {
			return nil, ioError("list", dir, errNotDir)
		}
		return nil, notFound("list", dir, nil)
	}

	entries := make([]Entry, 0)
	for d := range m.dirs {
		if d != "/" && path.Dir(d) == dir {
			entries = append(entries, Entry{Name: path.Base(d), IsDir: true})
		}
	}
	for f := range m.files {
		if path.Dir(f) == dir {
			entries = append(entries, Entry{Name: path.Base(f)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (m *Memory) Stat(p string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = cleanPath(p)
	if m.dirs[p] {
		return Entry{Name: path.Base(p), IsDir: true}, nil
	}
	if _, ok := m.files[p]; ok {
		return Entry{Name: path.Base(p)}, nil
	}
	return Entry{}, notFound("stat", p, nil)
}

func (m *Memory) mkdirAll(dir string) {
	for dir != "/" && dir != "." {
		m.dirs[dir] = true
		dir = path.Dir(dir)
	}
}

func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
