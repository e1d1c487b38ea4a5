package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	for _, k := range []string{"VAGAS_API_URL", "VAGAS_TIMEOUT", "VAGAS_LOG_LEVEL", "VAGAS_LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return filepath.Join(base, "vagas", "config.json")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c)
	assert.Equal(t, 10*time.Second, c.Timeout.Std())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := isolate(t)

	want := Config{APIURL: "https://api.example.com", Timeout: Duration(3 * time.Second), LogLevel: "debug", LogFormat: "json"}
	require.NoError(t, Save(want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"timeout": "3s"`)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(Config{APIURL: "http://file:1", Timeout: Duration(time.Second), LogLevel: "info", LogFormat: "console"}))

	t.Setenv("VAGAS_API_URL", "http://env:2")
	t.Setenv("VAGAS_TIMEOUT", "250ms")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", c.APIURL)
	assert.Equal(t, 250*time.Millisecond, c.Timeout.Std())
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load()
	require.Error(t, err)
}

func TestReadSkipsValidation(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(`{"api_url":"localhost:3000"}`), 0o600))

	_, err := Load()
	require.Error(t, err)

	c, err := Read()
	require.NoError(t, err)
	assert.Equal(t, "localhost:3000", c.APIURL)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, c Config)
	}{
		{name: "api url trims slash", key: "api-url", value: "https://x.dev/", check: func(t *testing.T, c Config) {
			assert.Equal(t, "https://x.dev", c.APIURL)
		}},
		{name: "api url without scheme", key: "api-url", value: "x.dev", wantErr: true},
		{name: "timeout", key: "timeout", value: "5s", check: func(t *testing.T, c Config) {
			assert.Equal(t, 5*time.Second, c.Timeout.Std())
		}},
		{name: "bad timeout", key: "timeout", value: "soon", wantErr: true},
		{name: "zero timeout", key: "timeout", value: "0s", wantErr: true},
		{name: "log format json", key: "log-format", value: "json", check: func(t *testing.T, c Config) {
			assert.Equal(t, "json", c.LogFormat)
		}},
		{name: "bad log format", key: "log-format", value: "xml", wantErr: true},
		{name: "unknown key", key: "color", value: "red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			err := c.Set(tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}
