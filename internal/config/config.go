// Package config loads the marquee configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings marquee reads at startup.
type Config struct {
	LibraryURL  string
	PollSeconds int
	Player      string // preferred player binary; empty means auto-detect
	LogPath     string
	LogLevel    string
}

const (
	defaultConfigPath  = "~/.config/marquee/config.toml"
	defaultLibraryURL  = "127.0.0.1:8000"
	defaultPollSeconds = 30
	defaultLogPath     = "~/.local/share/marquee/marquee.log"
	defaultLogLevel    = "info"
)

// Load locates and parses the config file, falling back to defaults when it
// is missing. A present but unparseable file is an error; silently ignoring
// it would hide typos from the user.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LibraryURL  string `toml:"library_url"`
		PollSeconds int    `toml:"poll_seconds"`
		Player      string `toml:"player"`
		LogPath     string `toml:"log_path"`
		LogLevel    string `toml:"log_level"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.LibraryURL); v != "" {
		cfg.LibraryURL = v
	}
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	if v := strings.TrimSpace(raw.Player); v != "" {
		cfg.Player = v
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogPath = mustExpand(cfg.LogPath)

	return cfg, nil
}

func defaults() Config {
	return Config{
		LibraryURL:  defaultLibraryURL,
		PollSeconds: defaultPollSeconds,
		LogPath:     mustExpand(defaultLogPath),
		LogLevel:    defaultLogLevel,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
