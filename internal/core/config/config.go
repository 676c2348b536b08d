// Package config handles configuration loading and validation for reviewdeck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/reviewdeck/internal/core/content"
	"github.com/hay-kot/reviewdeck/internal/core/feed"
	"github.com/hay-kot/reviewdeck/internal/core/imageload"
	"github.com/hay-kot/reviewdeck/internal/core/layout"
	"github.com/hay-kot/reviewdeck/internal/core/styles"
	"github.com/hay-kot/reviewdeck/internal/data/db"
)

// SourceKind selects where reviews are read from.
type SourceKind string

// Supported review sources.
const (
	SourceFile   SourceKind = "file"
	SourceHTTP   SourceKind = "http"
	SourceSQLite SourceKind = "sqlite"
)

// IsValid reports whether k names a supported source.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceFile, SourceHTTP, SourceSQLite:
		return true
	default:
		return false
	}
}

// Config holds the application configuration.
type Config struct {
	Source     SourceConfig     `yaml:"source"`
	Pagination PaginationConfig `yaml:"pagination"`
	Images     ImagesConfig     `yaml:"images"`
	Layout     LayoutConfig     `yaml:"layout"`
	Database   DatabaseConfig   `yaml:"database"`
	TUI        TUIConfig        `yaml:"tui"`
	DataDir    string           `yaml:"-"` // set by caller, not from config file
}

// SourceConfig describes the review provider.
type SourceConfig struct {
	Kind    SourceKind    `yaml:"kind"`
	Path    string        `yaml:"path"`    // payload file for kind=file
	URL     string        `yaml:"url"`     // endpoint for kind=http
	Timeout time.Duration `yaml:"timeout"` // per-request timeout for kind=http
	Latency time.Duration `yaml:"latency"` // artificial delay for kind=file
}

// PaginationConfig tunes page requests.
type PaginationConfig struct {
	PageSize        int     `yaml:"page_size"`
	PrefetchScreens float64 `yaml:"prefetch_screens"`
}

// ImagesConfig tunes the image loader.
type ImagesConfig struct {
	Workers  int           `yaml:"workers"`
	Timeout  time.Duration `yaml:"timeout"`
	MaxBytes int64         `yaml:"max_bytes"`
	Coalesce bool          `yaml:"coalesce"`
}

// LayoutConfig holds the user visible layout knobs.
type LayoutConfig struct {
	MaxLines      int    `yaml:"max_lines"`
	ShowMoreLabel string `yaml:"show_more_label"`
}

// OpenOptions converts the pool settings for db.Open.
func (d DatabaseConfig) OpenOptions() db.OpenOptions {
	return db.OpenOptions{
		MaxOpenConns: d.MaxOpenConns,
		MaxIdleConns: d.MaxIdleConns,
		BusyTimeout:  d.BusyTimeout,
	}
}

// DatabaseConfig holds SQLite pool settings.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Kind:    SourceSQLite,
			Timeout: 10 * time.Second,
		},
		Pagination: PaginationConfig{
			PageSize:        feed.DefaultPageSize,
			PrefetchScreens: feed.DefaultPrefetchScreens,
		},
		Images: ImagesConfig{
			Workers:  imageload.DefaultWorkers,
			Timeout:  imageload.DefaultTimeout,
			MaxBytes: imageload.DefaultMaxBytes,
		},
		Layout: LayoutConfig{
			MaxLines:      content.DefaultMaxLines,
			ShowMoreLabel: layout.DefaultShowMoreLabel,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir

			// relative payload paths resolve against the config file
			if cfg.Source.Path != "" && !filepath.IsAbs(cfg.Source.Path) {
				cfg.Source.Path = filepath.Join(filepath.Dir(configPath), cfg.Source.Path)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// max_lines is left alone: zero means unlimited.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Source.Kind == "" {
		c.Source.Kind = defaults.Source.Kind
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = defaults.Source.Timeout
	}
	if c.Pagination.PageSize == 0 {
		c.Pagination.PageSize = defaults.Pagination.PageSize
	}
	if c.Pagination.PrefetchScreens == 0 {
		c.Pagination.PrefetchScreens = defaults.Pagination.PrefetchScreens
	}
	if c.Images.Workers == 0 {
		c.Images.Workers = defaults.Images.Workers
	}
	if c.Images.Timeout == 0 {
		c.Images.Timeout = defaults.Images.Timeout
	}
	if c.Images.MaxBytes == 0 {
		c.Images.MaxBytes = defaults.Images.MaxBytes
	}
	if c.Layout.ShowMoreLabel == "" {
		c.Layout.ShowMoreLabel = defaults.Layout.ShowMoreLabel
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Metrics returns the default layout metrics with the configured label.
func (c *Config) Metrics() layout.Metrics {
	m := layout.DefaultMetrics()
	m.ShowMoreLabel = c.Layout.ShowMoreLabel
	return m
}

// DatabasePath returns the path of the SQLite review database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, db.FileName)
}
