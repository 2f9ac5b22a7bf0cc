package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitContent(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{""}},
		{in: "\n", want: []string{""}},
		{in: "abc", want: []string{"abc"}},
		{in: "a\nb\n", want: []string{"a", "b"}},
		{in: "a\n\n", want: []string{"a", ""}},
		{in: "a\r\nb\r\n", want: []string{"a", "b"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SplitContent(tc.in), "SplitContent(%q)", tc.in)
	}
}

func TestOS_ReadWriteList(t *testing.T) {
	dir := t.TempDir()
	s := NewOS()

	p := filepath.Join(dir, "b.txt")
	require.NoError(t, s.Write(p, "one\ntwo"))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", string(data))

	lines, err := s.Read(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, s.Write(filepath.Join(dir, "C.txt"), ""))

	entries, err := s.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "C.txt"},
		{Name: "a", IsDir: true},
		{Name: "b.txt"},
	}, entries)

	e, err := s.Stat(filepath.Join(dir, "a"))
	require.NoError(t, err)
	assert.True(t, e.IsDir)
}

func TestOS_ReadMissingIsNotFound(t *testing.T) {
	s := NewOS()
	_, err := s.Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOS_ReadDirectoryIsIOError(t *testing.T) {
	s := NewOS()
	_, err := s.Read(t.TempDir())
	require.Error(t, err)
	assert.False(t, IsNotFound(err))

	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindIO, se.Kind)
	assert.Equal(t, "read", se.Op)
}

func TestOS_WriteIntoMissingDirFails(t *testing.T) {
	s := NewOS()
	err := s.Write(filepath.Join(t.TempDir(), "nope", "x.txt"), "x")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestMemory_ReadWriteList(t *testing.T) {
	m := NewMemory()
	m.AddFile("/work/sub/deep.txt", "x")
	m.AddFile("/work/a.txt", "a\nb\n")

	lines, err := m.Read("/work/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	entries, err := m.List("/work")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "a.txt"}, {Name: "sub", IsDir: true}}, entries)

	require.NoError(t, m.Write("/work/new.txt", "n"))
	c, ok := m.Content("/work/new.txt")
	require.True(t, ok)
	assert.Equal(t, "n", c)

	root, err := m.List("/")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "work", IsDir: true}}, root)
}

func TestMemory_Errors(t *testing.T) {
	m := NewMemory()
	m.MkdirAll("/d")

	_, err := m.Read("/missing")
	assert.True(t, IsNotFound(err))

	_, err = m.Read("/d")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))

	err = m.Write("/nodir/x.txt", "x")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))

	_, err = m.List("/missing")
	assert.True(t, IsNotFound(err))

	_, err = m.Stat("/missing")
	assert.True(t, IsNotFound(err))
}
