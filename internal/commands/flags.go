package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/reviewdeck/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// ProfilerPort enables the pprof endpoint for the feed when non-zero
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "reviewdeck", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "reviewdeck")
}

// DefaultLogFile returns the log path used by the interactive feed, which
// owns the terminal and cannot log to stderr.
// On macOS: ~/Library/Logs/reviewdeck/reviewdeck.log
// On Linux: $XDG_STATE_HOME/reviewdeck/reviewdeck.log
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "reviewdeck", "reviewdeck.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "reviewdeck", "reviewdeck.log")
	}

	return filepath.Join(home, ".local", "state", "reviewdeck", "reviewdeck.log")
}
