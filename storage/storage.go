// Package storage is the persistence collaborator of the editor: it reads
// documents as lines, writes them back as plain text and lists directories.
//
// OS is backed by the operating system; Memory is an in-memory tree used by
// tests and embedders.
package storage

// Entry is one name inside a directory.
type Entry struct {
	Name  string
	IsDir bool
}

// Storage reads, writes and lists paths.
type Storage interface {
	// Read returns the lines of the file at path. A missing file yields an
	// error for which IsNotFound reports true.
	Read(path string) ([]string, error)

	// Write replaces the file at path with content, creating it if needed.
	Write(path, content string) error

	// List returns the entries of dir sorted by name.
	List(dir string) ([]Entry, error)

	// Stat describes the entry at path.
	Stat(path string) (Entry, error)
}
