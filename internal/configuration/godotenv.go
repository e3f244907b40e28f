package configuration

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
)

// keyPrefix is shared by all keys of the configuration file.
const keyPrefix = "UNENUM_"

// GodotenvProvider reads dotenv-style configuration files with godotenv.
type GodotenvProvider struct{}

// Read parses the configuration file at path into a map (map[key]value).
// Keys without the UNENUM_ prefix belong to no known setting and are dropped.
func (*GodotenvProvider) Read(path string) (map[string]string, error) {
	data, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) failed to parse %s: %w", path, err)
	}

	for key := range data {
		if !strings.HasPrefix(key, keyPrefix) {
			slog.Warn("Ignored unknown configuration key:", "key", key, "path", path)
			delete(data, key)
		}
	}

	return data, nil
}
