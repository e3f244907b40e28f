package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConfigProvider is a fake implementation of genericConfigProvider.
type fakeConfigProvider struct {
	envMap map[string]string
	err    error
}

func (p *fakeConfigProvider) Read(string) (map[string]string, error) {
	return p.envMap, p.err
}

func TestLoad_Success_Defaults(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&fakeConfigProvider{envMap: map[string]string{}})

	config, err := handler.Load("/etc/unenum/unenum.conf", true)
	require.NoError(t, err)
	assert.Equal(t, &Configuration{LogLevel: slog.LevelInfo}, config)
}

func TestLoad_Success_AllKeys(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&fakeConfigProvider{envMap: map[string]string{
		KeyDryRun:    "yes",
		KeyFilesOnly: "true",
		KeyChecksums: "1",
		KeyLogLevel:  "debug",
	}})

	config, err := handler.Load("unenum.conf", true)
	require.NoError(t, err)
	assert.Equal(t, &Configuration{
		DryRun:    true,
		FilesOnly: true,
		Checksums: true,
		LogLevel:  slog.LevelDebug,
	}, config)
}

func TestLoad_Success_MissingOptionalFile(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&fakeConfigProvider{err: fmt.Errorf("(config-godotenv) %w", fs.ErrNotExist)})

	config, err := handler.Load(DefaultPath, false)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
}

func TestLoad_Fail_MissingRequiredFile(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&fakeConfigProvider{err: fmt.Errorf("(config-godotenv) %w", fs.ErrNotExist)})

	_, err := handler.Load("/nonexistent.conf", true)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_Fail_UnreadableOptionalFile(t *testing.T) {
	t.Parallel()

	readErr := errors.New("permission denied")
	handler := NewHandler(&fakeConfigProvider{err: readErr})

	_, err := handler.Load(DefaultPath, false)
	require.ErrorIs(t, err, readErr)
}

func TestLoad_Fail_InvalidValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		key  string
	}{
		{"Fail_DryRun", KeyDryRun},
		{"Fail_FilesOnly", KeyFilesOnly},
		{"Fail_Checksums", KeyChecksums},
		{"Fail_LogLevel", KeyLogLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := NewHandler(&fakeConfigProvider{envMap: map[string]string{tc.key: "maybe"}})

			_, err := handler.Load("unenum.conf", true)
			require.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestMapKeyToBool_Table(t *testing.T) {
	t.Parallel()

	handler := NewHandler(nil)

	testCases := []struct {
		name     string
		value    string
		fallback bool
		expected bool
	}{
		{"Success_Yes", "yes", false, true},
		{"Success_YesUpper", "YES", false, true},
		{"Success_No", "no", true, false},
		{"Success_True", "true", false, true},
		{"Success_False", "false", true, false},
		{"Success_One", "1", false, true},
		{"Success_Empty", "", true, true},
		{"Success_Whitespace", "  yes  ", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := handler.MapKeyToBool(map[string]string{"KEY": tc.value}, "KEY", tc.fallback)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestGodotenvProvider_Read(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "unenum.conf")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nUNENUM_DRY_RUN=\"yes\"\nUNENUM_LOG_LEVEL=warn\n"), 0o600))

	config, err := NewHandler(&GodotenvProvider{}).Load(path, true)
	require.NoError(t, err)
	assert.True(t, config.DryRun)
	assert.Equal(t, slog.LevelWarn, config.LogLevel)
}

func TestGodotenvProvider_Read_Missing(t *testing.T) {
	t.Parallel()

	_, err := (&GodotenvProvider{}).Read(filepath.Join(t.TempDir(), "missing.conf"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestGodotenvProvider_Read_UnknownKeysDropped(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "unenum.conf")
	require.NoError(t, os.WriteFile(path, []byte("UNENUM_CHECKSUMS=true\nOTHER_SETTING=yes\nPATH=/bin\n"), 0o600))

	data, err := (&GodotenvProvider{}).Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"UNENUM_CHECKSUMS": "true"}, data)
}
