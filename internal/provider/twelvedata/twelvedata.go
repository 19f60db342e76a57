package twelvedata

import (
    "context"
    "net/url"
    "os"

    "quotegateway/internal/httpx"
    "quotegateway/internal/provider"
    "quotegateway/internal/quote"
)

const (
    defaultBaseURL = "https://api.twelvedata.com/quote"
    apiKeyEnv      = "TWELVE_DATA_API_KEY"
)

type Config struct {
    BaseURL string
}

// Source fetches quotes from the Twelve Data quote endpoint.
type Source struct {
    cfg    Config
    client httpx.Doer
}

func New(cfg Config, hc httpx.Doer) *Source {
    if cfg.BaseURL == "" {
        cfg.BaseURL = defaultBaseURL
    }
    return &Source{cfg: cfg, client: hc}
}

func (s *Source) ID() provider.ID { return provider.Twelve }

func (s *Source) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
    key := os.Getenv(apiKeyEnv)
    if key == "" {
        return quote.Quote{}, &provider.MissingCredentialError{Var: apiKeyEnv}
    }

    u, err := url.Parse(s.cfg.BaseURL)
    if err != nil {
        return quote.Quote{}, &provider.UpstreamError{Err: err}
    }
    q := u.Query()
    q.Set("symbol", symbol)
    q.Set("apikey", key)
    u.RawQuery = q.Encode()

    raw, err := provider.GetJSON(ctx, s.client, u.String())
    if err != nil {
        return quote.Quote{}, err
    }
    return normalize(symbol, raw), nil
}

// normalize maps Twelve Data's descriptive keys into the canonical shape.
// Twelve Data reports numbers as strings; the coercion handles both.
func normalize(symbol string, raw any) quote.Quote {
    out := quote.Quote{Symbol: symbol, Provider: string(provider.Twelve)}
    m, ok := raw.(map[string]any)
    if !ok {
        return out
    }
    out.Price = quote.Float(m["price"])
    out.ChangePercent = quote.Float(m["percent_change"])
    out.Open = quote.Float(m["open"])
    out.High = quote.Float(m["high"])
    out.Low = quote.Float(m["low"])
    out.PreviousClose = quote.Float(m["previous_close"])
    out.Timestamp = m["timestamp"]
    return out
}
