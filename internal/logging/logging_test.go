package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reedit.log")

	l, closer, err := New(Options{File: path, Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	l.WithField("path", "/a.txt").Warn("save failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "save failed")
	assert.Contains(t, string(data), "path=/a.txt")
}

func TestNew_DebugOverridesLevel(t *testing.T) {
	l, closer, err := New(Options{Level: "error", Debug: true})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestNew_NoFileDiscards(t *testing.T) {
	l, closer, err := New(Options{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}
