package alphavantage

import (
    "context"
    "net/url"
    "os"
    "strings"

    "quotegateway/internal/httpx"
    "quotegateway/internal/provider"
    "quotegateway/internal/quote"
)

const (
    defaultBaseURL = "https://www.alphavantage.co/query"
    apiKeyEnv      = "ALPHA_VANTAGE_API_KEY"
)

type Config struct {
    BaseURL string
}

// Source fetches quotes from the Alpha Vantage GLOBAL_QUOTE endpoint.
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

func (s *Source) ID() provider.ID { return provider.AlphaVantage }

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
    q.Set("function", "GLOBAL_QUOTE")
    q.Set("symbol", symbol)
    q.Set("apikey", key)
    u.RawQuery = q.Encode()

    raw, err := provider.GetJSON(ctx, s.client, u.String())
    if err != nil {
        return quote.Quote{}, err
    }
    return normalize(symbol, raw), nil
}

// normalize maps the nested "Global Quote" object into the canonical shape.
// The percent-change field arrives as a string suffixed with '%'.
func normalize(symbol string, raw any) quote.Quote {
    out := quote.Quote{Symbol: symbol, Provider: string(provider.AlphaVantage)}
    m, ok := raw.(map[string]any)
    if !ok {
        return out
    }
    gq, ok := m["Global Quote"].(map[string]any)
    if !ok {
        return out
    }
    out.Price = quote.Float(gq["05. price"])
    out.ChangePercent = quote.Float(trimPercent(gq["10. change percent"]))
    out.Open = quote.Float(gq["02. open"])
    out.High = quote.Float(gq["03. high"])
    out.Low = quote.Float(gq["04. low"])
    out.PreviousClose = quote.Float(gq["08. previous close"])
    out.Timestamp = gq["07. latest trading day"]
    return out
}

func trimPercent(v any) any {
    if s, ok := v.(string); ok {
        return strings.Trim(s, "%")
    }
    return v
}
