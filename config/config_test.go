package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = log.New(io.Discard, "", 0)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "default", cfg.Theme)
	assert.False(t, cfg.StatusBar)
	assert.Equal(t, 12, cfg.FontSize)
	assert.Equal(t, 100, cfg.UndoLimit)
	assert.False(t, cfg.NewAbortsOnCancel)
	assert.Contains(t, cfg.FontFamilies, cfg.FontFamily)
}

func TestInitWritesDefaultFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "goditor")
	cfg := NewConfig(discard, dir)
	require.NoError(t, cfg.Init())

	_, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg.EditorConfig)
}

func TestInitKeepsUserFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"theme": "dark", "statusBar": true}`), 0644))

	cfg := NewConfig(discard, dir)
	require.NoError(t, cfg.Init())
	assert.Equal(t, "dark", cfg.EditorConfig.Theme)
	assert.True(t, cfg.EditorConfig.StatusBar)
	assert.Equal(t, 4, cfg.EditorConfig.TabWidth)
}

func TestParseNormalizes(t *testing.T) {
	cfg, err := Parse([]byte(`{"lineNumbers": "sideways", "tabWidth": -2, "fontFamilies": [], "dateTimeLayout": ""}`))
	require.NoError(t, err)
	assert.Equal(t, LineNumbersOff, cfg.LineNumbers)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.NotEmpty(t, cfg.FontFamilies)
	assert.NotEmpty(t, cfg.DateTimeLayout)

	_, err = Parse([]byte(`{"theme": `))
	assert.Error(t, err)
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/goditor", DefaultDir())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, "/home/someone/.goditor", DefaultDir())
}

func TestWatchReportsChanges(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig(discard, dir)
	require.NoError(t, cfg.Init())

	changes := make(chan *EditorConfig, 8)
	require.NoError(t, cfg.Watch(func(c *EditorConfig) { changes <- c }))
	defer cfg.Cleanup()

	require.NoError(t, os.WriteFile(cfg.File(), []byte(`{"theme": "light"}`), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.Theme == "light" {
				return
			}
		case <-deadline:
			t.Fatal("no config change reported")
		}
	}
}
