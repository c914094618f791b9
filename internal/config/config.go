package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-faster/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/five82/gallery/internal/rest"
)

// Config holds everything the gallery reads from its config file.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	LogFile     string
	LogLevel    zerolog.Level
	AutoRefresh time.Duration
}

const (
	defaultConfigPath  = "~/.config/gallery/config.toml"
	defaultBaseURL     = "https://jsonplaceholder.typicode.com/"
	defaultTimeout     = rest.DefaultTimeout
	defaultLogFile     = "~/.local/state/gallery/gallery.log"
	defaultLogLevel    = zerolog.InfoLevel
	defaultAutoRefresh = time.Duration(0)
)

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:     defaultBaseURL,
		Timeout:     defaultTimeout,
		LogFile:     mustExpand(defaultLogFile),
		LogLevel:    defaultLogLevel,
		AutoRefresh: defaultAutoRefresh,
	}
}

// Load parses the config at path, falling back to defaults when the file is
// missing. Blank values keep their defaults.
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
		return Config{}, errors.Wrap(err, "open config")
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var raw struct {
		BaseURL     string `toml:"base_url"`
		Timeout     string `toml:"timeout"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
		AutoRefresh string `toml:"auto_refresh"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if err := ValidateBaseURL(cfg.BaseURL); err != nil {
		return Config{}, errors.Wrap(err, "parse config: base_url")
	}

	if cfg.Timeout, err = parseDuration(raw.Timeout, defaultTimeout, false); err != nil {
		return Config{}, errors.Wrap(err, "parse config: timeout")
	}
	if cfg.AutoRefresh, err = parseDuration(raw.AutoRefresh, defaultAutoRefresh, true); err != nil {
		return Config{}, errors.Wrap(err, "parse config: auto_refresh")
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return Config{}, errors.Wrap(err, "parse config: log_level")
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// ValidateBaseURL reports whether raw can serve as the API base URL.
func ValidateBaseURL(raw string) error {
	_, err := rest.Endpoint{BaseURL: raw}.URL()
	return err
}

func parseDuration(raw string, fallback time.Duration, allowZero bool) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	if d < 0 || (d == 0 && !allowZero) {
		return 0, errors.Errorf("duration %q must be positive", trimmed)
	}
	return d, nil
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
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home dir")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
