// Package configuration reads the application configuration from a
// dotenv-style configuration file.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
)

const (
	KeyDryRun    = "UNENUM_DRY_RUN"
	KeyFilesOnly = "UNENUM_FILES_ONLY"
	KeyChecksums = "UNENUM_CHECKSUMS"
	KeyLogLevel  = "UNENUM_LOG_LEVEL"

	// DefaultPath is the configuration file read when no other is given.
	DefaultPath = "/etc/unenum/unenum.conf"
)

type genericConfigProvider interface {
	Read(path string) (envMap map[string]string, err error)
}

// Configuration is the principal structure holding the application
// configuration.
type Configuration struct {
	DryRun    bool
	FilesOnly bool
	Checksums bool
	LogLevel  slog.Level
}

// Handler is the principal implementation for reading a [Configuration].
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// Load reads the [Configuration] from the file at path. Keys not present in
// the file keep their defaults. A missing file is only an error if required
// is set, otherwise the defaults are returned.
func (c *Handler) Load(path string, required bool) (*Configuration, error) {
	config := &Configuration{
		LogLevel: slog.LevelInfo,
	}

	envMap, err := c.genericHandler.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}

		return nil, fmt.Errorf("(config) failed to read %s: %w", path, err)
	}

	if config.DryRun, err = c.MapKeyToBool(envMap, KeyDryRun, config.DryRun); err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	if config.FilesOnly, err = c.MapKeyToBool(envMap, KeyFilesOnly, config.FilesOnly); err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	if config.Checksums, err = c.MapKeyToBool(envMap, KeyChecksums, config.Checksums); err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	if config.LogLevel, err = c.MapKeyToLevel(envMap, KeyLogLevel, config.LogLevel); err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	return config, nil
}

func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToBool understands "yes" and "no" besides the values understood by
// [strconv.ParseBool]. An empty or missing value returns the fallback.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string, fallback bool) (bool, error) {
	value := c.MapKeyToString(envMap, key)

	switch strings.ToLower(value) {
	case "":
		return fallback, nil
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}

	return boolValue, nil
}

// MapKeyToLevel parses a [slog.Level] such as "debug" or "WARN". An empty or
// missing value returns the fallback.
func (c *Handler) MapKeyToLevel(envMap map[string]string, key string, fallback slog.Level) (slog.Level, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return fallback, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return fallback, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}

	return level, nil
}
