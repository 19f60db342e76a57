package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    log "github.com/sirupsen/logrus"

    "quotegateway/internal/api"
    "quotegateway/internal/config"
    "quotegateway/internal/dbprobe"
    "quotegateway/internal/httpx"
    "quotegateway/internal/metrics"
    "quotegateway/internal/provider/alphavantage"
    "quotegateway/internal/provider/finnhub"
    "quotegateway/internal/provider/fmp"
    "quotegateway/internal/provider/polygon"
    "quotegateway/internal/provider/twelvedata"
    "quotegateway/internal/quotes"
)

var apiKeyEnvs = []string{
    "ALPHA_VANTAGE_API_KEY",
    "FINNHUB_API_KEY",
    "TWELVE_DATA_API_KEY",
    "POLYGON_API_KEY",
    "FMP_API_KEY",
}

func main() {
    _ = godotenv.Load()

    cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
    if err != nil {
        log.Fatalf("config: %v", err)
    }

    if level, err := log.ParseLevel(cfg.Server.LogLevel); err != nil {
        log.SetLevel(log.InfoLevel)
    } else {
        log.SetLevel(level)
    }

    // Keys are read per request, so a missing one is not fatal; warn early.
    for _, v := range apiKeyEnvs {
        if os.Getenv(v) == "" {
            log.Warnf("%s not set; requests to that provider will fail", v)
        }
    }

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    svc := quotes.New(
        alphavantage.New(alphavantage.Config{BaseURL: cfg.Providers.AlphaVantageURL}, httpClient),
        finnhub.New(finnhub.Config{BaseURL: cfg.Providers.FinnhubURL}, httpClient),
        twelvedata.New(twelvedata.Config{BaseURL: cfg.Providers.TwelveDataURL}, httpClient),
        polygon.New(polygon.Config{BaseURL: cfg.Providers.PolygonURL}, httpClient),
        fmp.New(fmp.Config{BaseURL: cfg.Providers.FMPURL}, httpClient),
    )

    m := metrics.New()
    svc.WithMetrics(m)

    connectCtx, cancelConnect := context.WithTimeout(context.Background(), 5*time.Second)
    probe := dbprobe.New(connectCtx, cfg.Database.URL, cfg.Database.Name)
    cancelConnect()

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           api.New(svc, probe, m).Handler(),
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        log.Infof("listening on :%s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("server: %v", err)
        }
    }()

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx)
    log.Info("server stopped")
}
