package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv(EnvConfigPath, "")
	t.Cleanup(reset)
	return tmp
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	tmp := setupTest(t)

	Load()

	assert.Equal(t, DefaultEndpoint, Get("endpoint", ""))
	assert.Equal(t, 10, GetInt("request_timeout", 0))
	assert.Equal(t, "US", Get("default_country", ""))
	assert.Equal(t, strconv.Itoa(time.Now().Year()), Get("default_year", ""))
	assert.Equal(t, "text", Get("output_format", ""))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, filepath.Join(tmp, "state", "holiday-explorer"), Get("state_dir", ""))
}

func TestLoadDoesNotWriteSampleConfig(t *testing.T) {
	tmp := setupTest(t)

	Load()

	_, err := os.Stat(filepath.Join(tmp, "config", "holiday-explorer", "config.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadFromDefaultConfigFile(t *testing.T) {
	tmp := setupTest(t)
	writeConfig(t, filepath.Join(tmp, "config", "holiday-explorer"), `
endpoint = "https://holidays.example.com/api/holidays/"
request_timeout = 3
default_country = "de"
stagger_ms = 80
`)

	Load()

	assert.Equal(t, "https://holidays.example.com/api/holidays/", Get("endpoint", ""))
	assert.Equal(t, 3*time.Second, GetSeconds("request_timeout", time.Second))
	assert.Equal(t, "DE", Get("default_country", ""))
	assert.Equal(t, 80*time.Millisecond, GetMillis("stagger_ms", 0))
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	tmp := setupTest(t)
	path := writeConfig(t, filepath.Join(tmp, "elsewhere"), `
request_timeout = 3
output_format = "html"
`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv("HOLIDAY_EXPLORER_REQUEST_TIMEOUT", "7")

	Load()

	assert.Equal(t, 7, GetInt("request_timeout", 0), "environment should override config file")
	assert.Equal(t, "html", Get("output_format", ""), "config file value should be used when not overridden")
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	setupTest(t)
	t.Setenv("HOLIDAY_EXPLORER_REQUEST_TIMEOUT", "-4")
	t.Setenv("HOLIDAY_EXPLORER_OUTPUT_FORMAT", "pdf")
	t.Setenv("HOLIDAY_EXPLORER_ENDPOINT", "ftp://example.com")
	t.Setenv("HOLIDAY_EXPLORER_DEBUG", "maybe")

	Load()

	assert.Equal(t, "10", Get("request_timeout", ""))
	assert.Equal(t, "text", Get("output_format", ""))
	assert.Equal(t, DefaultEndpoint, Get("endpoint", ""))
	assert.Equal(t, "false", Get("debug", ""))
}

func TestMalformedConfigFileIsIgnored(t *testing.T) {
	tmp := setupTest(t)
	path := writeConfig(t, tmp, `endpoint = [unterminated`)
	t.Setenv(EnvConfigPath, path)

	Load()

	assert.Equal(t, DefaultEndpoint, Get("endpoint", ""))
}

func TestGetBoolNormalizesValues(t *testing.T) {
	setupTest(t)
	t.Setenv("HOLIDAY_EXPLORER_LOGGING_ENABLED", "yes")
	t.Setenv("HOLIDAY_EXPLORER_QUIET", "0")

	Load()

	assert.True(t, GetBool("logging_enabled", false))
	assert.False(t, GetBool("quiet", true))
	assert.True(t, GetBool("missing_key", true))
}

func TestCoerceConfigValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
		ok    bool
	}{
		{"string", "US", "US", true},
		{"int", 5, "5", true},
		{"int64", int64(12), "12", true},
		{"float", 1.5, "1.5", true},
		{"bool", true, "true", true},
		{"slice", []string{"a"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerceConfigValue(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterValidator("endpoint", EndpointValidator())
	})
}
