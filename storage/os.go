package storage

import (
	"errors"
	"io/fs"
	"os"
	"sort"
)

// OS implements Storage on the operating system's file system.
type OS struct {
	// Perm is used when Write creates a file. Zero means 0o644.
	Perm fs.FileMode
}

// NewOS creates an OS storage.
func NewOS() *OS {
	return &OS{}
}

var _ Storage = (*OS)(nil)

func (s *OS) Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound("read", path, err)
		}
		return nil, ioError("read", path, err)
	}
	return SplitContent(string(data)), nil
}

func (s *OS) Write(path, content string) error {
	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return ioError("write", path, err)
	}
	return nil
}

func (s *OS) List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound("list", dir, err)
		}
		return nil, ioError("list", dir, err)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		isDir := de.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			// Follow links so linked directories can be entered.
			if info, err := os.Stat(dir + string(os.PathSeparator) + de.Name()); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{Name: de.Name(), IsDir: isDir})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (s *OS) Stat(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entry{}, notFound("stat", path, err)
		}
		return Entry{}, ioError("stat", path, err)
	}
	return Entry{Name: info.Name(), IsDir: info.IsDir()}, nil
}
