package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/reviewdeck/internal/core/styles"
	"github.com/hay-kot/reviewdeck/internal/core/validate"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	return criterio.ValidateStruct(
		c.validateSource(),
		validate.PositiveField("pagination.page_size", c.Pagination.PageSize),
		criterio.Run("pagination.prefetch_screens", c.Pagination.PrefetchScreens, validate.NonNegative[float64]),
		validate.PositiveField("images.workers", c.Images.Workers),
		criterio.Run("images.max_bytes", c.Images.MaxBytes, validate.NonNegative[int64]),
		criterio.Run("layout.max_lines", c.Layout.MaxLines, validate.NonNegative[int]),
		validate.PositiveField("database.max_open_conns", c.Database.MaxOpenConns),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
	)
}

func (c *Config) validateSource() error {
	var errs criterio.FieldErrorsBuilder

	if !c.Source.Kind.IsValid() {
		errs = errs.Append("source.kind", fmt.Errorf("unknown source %q", c.Source.Kind))
	}

	switch c.Source.Kind {
	case SourceFile:
		if c.Source.Path == "" {
			errs = errs.Append("source.path", fmt.Errorf("path is required for file source"))
		}
	case SourceHTTP:
		if err := validate.HTTPURL(c.Source.URL); err != nil {
			errs = errs.Append("source.url", err)
		}
	}

	if c.Source.Latency < 0 {
		errs = errs.Append("source.latency", fmt.Errorf("must not be negative"))
	}

	return errs.ToError()
}

// ValidateDeep performs Validate plus checks that touch the filesystem. The
// configPath argument is the file being validated; empty skips that check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		c.validateSourceFile(),
	)
}

func (c *Config) validateSourceFile() error {
	if c.Source.Kind != SourceFile {
		return nil
	}
	info, err := os.Stat(c.Source.Path)
	if err != nil {
		return criterio.NewFieldErrors("source.path", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("source.path", fmt.Errorf("%s is a directory, not a file", c.Source.Path))
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that path is a directory or doesn't exist yet.
func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %v", name, styles.ThemeNames())
	}
	return nil
}
