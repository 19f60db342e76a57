package main

import (
    "context"
    "encoding/json"
    "flag"
    "os"
    "time"

    "github.com/joho/godotenv"
    log "github.com/sirupsen/logrus"

    "quotegateway/internal/config"
    "quotegateway/internal/httpx"
    "quotegateway/internal/provider/alphavantage"
    "quotegateway/internal/provider/finnhub"
    "quotegateway/internal/provider/fmp"
    "quotegateway/internal/provider/polygon"
    "quotegateway/internal/provider/twelvedata"
    "quotegateway/internal/quotes"
)

// fetch prints normalized quotes for a comma-separated symbol list,
// one provider per run. Useful for checking keys and provider health
// without starting the server.
func main() {
    var symbolsCSV string
    var providerID string
    var timeout int
    var configPath string

    flag.StringVar(&symbolsCSV, "symbols", getenv("SYMBOLS", "AAPL"), "comma-separated ticker symbols")
    flag.StringVar(&providerID, "provider", getenv("PROVIDER", "finnhub"), "alpha_vantage | finnhub | twelve | polygon | fmp")
    flag.IntVar(&timeout, "timeout", 15, "request timeout seconds")
    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
    flag.Parse()

    _ = godotenv.Load()

    cfg, err := config.Load(configPath)
    if err != nil {
        log.Fatalf("config: %v", err)
    }
    if timeout > 0 {
        cfg.Server.RequestTimeoutSec = timeout
    }

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    svc := quotes.New(
        alphavantage.New(alphavantage.Config{BaseURL: cfg.Providers.AlphaVantageURL}, httpClient),
        finnhub.New(finnhub.Config{BaseURL: cfg.Providers.FinnhubURL}, httpClient),
        twelvedata.New(twelvedata.Config{BaseURL: cfg.Providers.TwelveDataURL}, httpClient),
        polygon.New(polygon.Config{BaseURL: cfg.Providers.PolygonURL}, httpClient),
        fmp.New(fmp.Config{BaseURL: cfg.Providers.FMPURL}, httpClient),
    )

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec+5)*time.Second)
    defer cancel()

    results := svc.FetchMany(ctx, quotes.SplitSymbols(symbolsCSV), providerID)

    enc := json.NewEncoder(os.Stdout)
    enc.SetIndent("", "  ")
    if err := enc.Encode(results); err != nil {
        log.Fatalf("encode: %v", err)
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
