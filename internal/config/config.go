package config

import (
    "errors"
    "fmt"
    "os"

    "github.com/ilyakaznacheev/cleanenv"
)

type Server struct {
    Port              string `json:"port" env:"PORT" env-default:"8000"`
    RequestTimeoutSec int    `json:"request_timeout_sec" env:"REQUEST_TIMEOUT_SEC" env-default:"15"`
    LogLevel          string `json:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

// Providers holds base URL overrides. API keys are deliberately not here:
// they are read from the environment at request time, so a key added after
// startup works without a restart.
type Providers struct {
    AlphaVantageURL string `json:"alpha_vantage_url" env:"ALPHA_VANTAGE_URL"`
    FinnhubURL      string `json:"finnhub_url" env:"FINNHUB_URL"`
    TwelveDataURL   string `json:"twelve_data_url" env:"TWELVE_DATA_URL"`
    PolygonURL      string `json:"polygon_url" env:"POLYGON_URL"`
    FMPURL          string `json:"fmp_url" env:"FMP_URL"`
}

type Database struct {
    URL  string `json:"url" env:"DATABASE_URL"`
    Name string `json:"name" env:"DATABASE_NAME"`
}

type Config struct {
    Server    Server    `json:"server"`
    Providers Providers `json:"providers"`
    Database  Database  `json:"database"`
}

// Load reads JSON config from path, then applies environment overrides.
// If path is empty it falls back to config.json when present, else env only.
func Load(path string) (Config, error) {
    var cfg Config
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        err := cleanenv.ReadConfig(path, &cfg)
        if err == nil {
            return cfg, nil
        }
        if !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
    }
    if err := cleanenv.ReadEnv(&cfg); err != nil {
        return cfg, fmt.Errorf("read env: %w", err)
    }
    return cfg, nil
}
