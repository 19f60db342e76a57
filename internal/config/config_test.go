package config

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
    cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
    require.NoError(t, err)
    require.Equal(t, "8000", cfg.Server.Port)
    require.Equal(t, 15, cfg.Server.RequestTimeoutSec)
    require.Equal(t, "info", cfg.Server.LogLevel)
    require.Empty(t, cfg.Providers.FinnhubURL)
}

func TestLoad_JSONFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    body := `{
  "server": {"port": "9090", "request_timeout_sec": 5},
  "providers": {"finnhub_url": "http://localhost:1234/quote"},
  "database": {"url": "mongodb://localhost:27017", "name": "quotes"}
}`
    require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

    cfg, err := Load(path)
    require.NoError(t, err)
    require.Equal(t, "9090", cfg.Server.Port)
    require.Equal(t, 5, cfg.Server.RequestTimeoutSec)
    require.Equal(t, "http://localhost:1234/quote", cfg.Providers.FinnhubURL)
    require.Equal(t, "quotes", cfg.Database.Name)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    require.NoError(t, os.WriteFile(path, []byte(`{"server": {"port": "9090"}}`), 0o600))

    t.Setenv("PORT", "7777")
    t.Setenv("FINNHUB_URL", "http://localhost:5678/quote")

    cfg, err := Load(path)
    require.NoError(t, err)
    require.Equal(t, "7777", cfg.Server.Port)
    require.Equal(t, "http://localhost:5678/quote", cfg.Providers.FinnhubURL)
}

func TestLoad_EnvOnly(t *testing.T) {
    t.Setenv("PORT", "8123")
    t.Setenv("DATABASE_URL", "mongodb://db:27017")

    cfg, err := Load("")
    require.NoError(t, err)
    require.Equal(t, "8123", cfg.Server.Port)
    require.Equal(t, "mongodb://db:27017", cfg.Database.URL)
}

func TestLoad_BadJSON(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))

    _, err := Load(path)
    require.Error(t, err)
}
