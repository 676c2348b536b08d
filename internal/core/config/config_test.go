package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), dataDir)
	require.NoError(t, err)

	want := DefaultConfig()
	want.DataDir = dataDir
	assert.Equal(t, &want, cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, SourceSQLite, cfg.Source.Kind)
	assert.Equal(t, 20, cfg.Pagination.PageSize)
	assert.InDelta(t, 2.5, cfg.Pagination.PrefetchScreens, 0.0001)
	assert.Equal(t, 4, cfg.Images.Workers)
	assert.Equal(t, 15*time.Second, cfg.Images.Timeout)
	assert.Equal(t, 3, cfg.Layout.MaxLines)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
source:
  kind: file
  path: reviews.json
  latency: 250ms
pagination:
  page_size: 10
images:
  workers: 2
  coalesce: true
layout:
  max_lines: 0
  show_more_label: "More"
tui:
  theme: gruvbox
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, SourceFile, cfg.Source.Kind)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "reviews.json"), cfg.Source.Path, "relative path resolves against the config file")
	assert.Equal(t, 250*time.Millisecond, cfg.Source.Latency)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.InDelta(t, 2.5, cfg.Pagination.PrefetchScreens, 0.0001, "unset values keep defaults")
	assert.Equal(t, 2, cfg.Images.Workers)
	assert.True(t, cfg.Images.Coalesce)
	assert.Equal(t, 0, cfg.Layout.MaxLines, "zero max_lines means unlimited")
	assert.Equal(t, "More", cfg.Metrics().ShowMoreLabel)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "source: [unterminated")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "source:\n  kind: ftp\n")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestConfig_DatabasePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/tmp/reviewdeck"
	assert.Equal(t, "/tmp/reviewdeck/reviews.db", cfg.DatabasePath())

	opts := cfg.Database.OpenOptions()
	assert.Equal(t, 4, opts.MaxOpenConns)
	assert.Equal(t, 5000, opts.BusyTimeout)
}
