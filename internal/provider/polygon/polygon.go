package polygon

import (
    "context"
    "fmt"
    "net/url"
    "os"

    "quotegateway/internal/httpx"
    "quotegateway/internal/provider"
    "quotegateway/internal/quote"
)

const (
    defaultBaseURL = "https://api.polygon.io"
    apiKeyEnv      = "POLYGON_API_KEY"
)

type Config struct {
    BaseURL string
}

// Source fetches quotes from the Polygon previous-day aggregate endpoint.
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

func (s *Source) ID() provider.ID { return provider.Polygon }

func (s *Source) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
    key := os.Getenv(apiKeyEnv)
    if key == "" {
        return quote.Quote{}, &provider.MissingCredentialError{Var: apiKeyEnv}
    }

    u, err := url.Parse(fmt.Sprintf("%s/v2/aggs/ticker/%s/prev", s.cfg.BaseURL, url.PathEscape(symbol)))
    if err != nil {
        return quote.Quote{}, &provider.UpstreamError{Err: err}
    }
    q := u.Query()
    q.Set("adjusted", "true")
    q.Set("apiKey", key)
    u.RawQuery = q.Encode()

    raw, err := provider.GetJSON(ctx, s.client, u.String())
    if err != nil {
        return quote.Quote{}, err
    }
    return normalize(symbol, raw), nil
}

// normalize maps the first entry of the previous-day aggregate results.
// The aggregate carries no true previous close, so the day's close stands
// in for it and change percent is derived only from a nonzero denominator,
// which in this shape pins it to 0.
func normalize(symbol string, raw any) quote.Quote {
    out := quote.Quote{Symbol: symbol, Provider: string(provider.Polygon)}
    m, ok := raw.(map[string]any)
    if !ok {
        return out
    }
    results, _ := m["results"].([]any)
    var r0 map[string]any
    if len(results) > 0 {
        r0, _ = results[0].(map[string]any)
    }

    close := quote.Float(r0["c"])
    prev := close
    out.Price = close
    if prev != 0 {
        out.ChangePercent = (close - prev) / prev * 100
    }
    out.Open = quote.Float(r0["o"])
    out.High = quote.Float(r0["h"])
    out.Low = quote.Float(r0["l"])
    out.PreviousClose = prev
    if r0 != nil {
        out.Timestamp = r0["t"]
    }
    return out
}
