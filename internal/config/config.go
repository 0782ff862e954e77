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

	"github.com/five82/tripdesk/internal/roster"
	"github.com/five82/tripdesk/internal/users"
)

// Config captures tripdesk's runtime settings.
type Config struct {
	Endpoint  string
	PageSize  int
	Timeout   time.Duration
	LogFile   string
	LogLevel  string
	LogFormat string
}

const (
	defaultConfigPath = "~/.config/tripdesk/config.toml"
	defaultLogFile    = "~/.local/state/tripdesk/tripdesk.log"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	defaultTimeout    = 10 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:  users.DefaultEndpoint,
		PageSize:  roster.DefaultPageSize,
		Timeout:   defaultTimeout,
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

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
		Endpoint       string `toml:"endpoint"`
		PageSize       *int   `toml:"page_size"`
		TimeoutSeconds *int   `toml:"timeout_seconds"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		LogFormat      string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		u, err := users.ParseEndpoint(endpoint)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
		cfg.Endpoint = u.String()
	}

	if raw.PageSize != nil {
		if *raw.PageSize <= 0 {
			return Config{}, fmt.Errorf("invalid config: page_size must be positive, got %d", *raw.PageSize)
		}
		cfg.PageSize = *raw.PageSize
	}

	if raw.TimeoutSeconds != nil {
		if *raw.TimeoutSeconds <= 0 {
			return Config{}, fmt.Errorf("invalid config: timeout_seconds must be positive, got %d", *raw.TimeoutSeconds)
		}
		cfg.Timeout = time.Duration(*raw.TimeoutSeconds) * time.Second
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}

	switch format := strings.ToLower(strings.TrimSpace(raw.LogFormat)); format {
	case "":
	case "text", "json":
		cfg.LogFormat = format
	default:
		return Config{}, fmt.Errorf("invalid config: log_format must be text or json, got %q", raw.LogFormat)
	}

	return cfg, nil
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
