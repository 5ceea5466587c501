// Package config loads the storefront client configuration.
// Configuration lives in ~/.config/storefront/config.toml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything the client needs to reach the storefront.
type Config struct {
	APIBase          string
	WSURL            string // empty derives ws(s)://{host}/ws/updates/ from APIBase
	DebounceMS       int
	ReconnectSeconds int
	LogFile          string
}

const (
	defaultConfigPath       = "~/.config/storefront/config.toml"
	defaultAPIBase          = "127.0.0.1:8000"
	defaultDebounceMS       = 200
	defaultReconnectSeconds = 2
	defaultLogFile          = "~/.local/share/storefront/storefront.log"
)

// Load locates and parses the config, falling back to defaults when the
// file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase          string `toml:"api_base"`
		WSURL            string `toml:"ws_url"`
		DebounceMS       int    `toml:"debounce_ms"`
		ReconnectSeconds int    `toml:"reconnect_seconds"`
		LogFile          string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	cfg.WSURL = strings.TrimSpace(raw.WSURL)
	if raw.DebounceMS > 0 {
		cfg.DebounceMS = raw.DebounceMS
	}
	if raw.ReconnectSeconds > 0 {
		cfg.ReconnectSeconds = raw.ReconnectSeconds
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = logFile
	}
	cfg.LogFile = mustExpand(cfg.LogFile)

	return cfg, nil
}

// Debounce returns the search quiet interval.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return defaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Reconnect returns the push channel retry delay.
func (c Config) Reconnect() time.Duration {
	if c.ReconnectSeconds <= 0 {
		return defaultReconnectSeconds * time.Second
	}
	return time.Duration(c.ReconnectSeconds) * time.Second
}

func defaults() Config {
	return Config{
		APIBase:          defaultAPIBase,
		DebounceMS:       defaultDebounceMS,
		ReconnectSeconds: defaultReconnectSeconds,
		LogFile:          mustExpand(defaultLogFile),
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
