package finnhub

import (
    "context"
    "net/url"
    "os"

    "quotegateway/internal/httpx"
    "quotegateway/internal/provider"
    "quotegateway/internal/quote"
)

const (
    defaultBaseURL = "https://finnhub.io/api/v1/quote"
    apiKeyEnv      = "FINNHUB_API_KEY"
)

type Config struct {
    BaseURL string
}

// Source fetches quotes from the Finnhub quote endpoint.
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

func (s *Source) ID() provider.ID { return provider.Finnhub }

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
    q.Set("token", key)
    u.RawQuery = q.Encode()

    raw, err := provider.GetJSON(ctx, s.client, u.String())
    if err != nil {
        return quote.Quote{}, err
    }
    return normalize(symbol, raw), nil
}

// normalize maps Finnhub's flat single-letter keys into the canonical shape.
func normalize(symbol string, raw any) quote.Quote {
    out := quote.Quote{Symbol: symbol, Provider: string(provider.Finnhub)}
    m, ok := raw.(map[string]any)
    if !ok {
        return out
    }
    out.Price = quote.Float(m["c"])
    out.ChangePercent = quote.Float(m["dp"])
    out.Open = quote.Float(m["o"])
    out.High = quote.Float(m["h"])
    out.Low = quote.Float(m["l"])
    out.PreviousClose = quote.Float(m["pc"])
    out.Timestamp = m["t"]
    return out
}
