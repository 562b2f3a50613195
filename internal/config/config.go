package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds the colors the list palette is built from.
type Theme struct {
	HighlightFG string `toml:"highlight_fg"`
	HighlightBG string `toml:"highlight_bg"`
	DimFG       string `toml:"dim_fg"`
}

// Config is the only persisted config file schema.
type Config struct {
	// MaxEntries caps the list; 0 means unbounded.
	MaxEntries uint   `toml:"max_entries"`
	Selectable bool   `toml:"selectable"`
	Follow     bool   `toml:"follow"`
	Wrap       bool   `toml:"wrap"`
	LogPath    string `toml:"log_path"`
	LogLevel   string `toml:"log_level"`
	Theme      Theme  `toml:"theme"`
	Source     string `toml:"-"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{
		MaxEntries: 10000,
		Selectable: true,
		Follow:     true,
		LogLevel:   "info",
		Theme: Theme{
			HighlightFG: "#FFFFFF",
			HighlightBG: "#7D56F4",
			DimFG:       "#6B7280",
		},
	}
}

// DefaultPath returns ~/.scrolllog/config.toml, or "" when $HOME is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scrolllog", "config.toml")
}

// Load reads path (DefaultPath when empty) over Default and then applies
// SCROLLLOG_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv("SCROLLLOG_MAX_ENTRIES")); env != "" {
		if n, err := strconv.ParseUint(env, 10, 0); err == nil {
			cfg.MaxEntries = uint(n)
		}
	}
	if env := strings.TrimSpace(os.Getenv("SCROLLLOG_LOG_LEVEL")); env != "" {
		cfg.LogLevel = env
	}
	return cfg
}
