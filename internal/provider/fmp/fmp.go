package fmp

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
    defaultBaseURL = "https://financialmodelingprep.com"
    apiKeyEnv      = "FMP_API_KEY"
)

type Config struct {
    BaseURL string
}

// Source fetches quotes from the Financial Modeling Prep short-quote endpoint.
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

func (s *Source) ID() provider.ID { return provider.FMP }

func (s *Source) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
    key := os.Getenv(apiKeyEnv)
    if key == "" {
        return quote.Quote{}, &provider.MissingCredentialError{Var: apiKeyEnv}
    }

    u, err := url.Parse(fmt.Sprintf("%s/api/v3/quote-short/%s", s.cfg.BaseURL, url.PathEscape(symbol)))
    if err != nil {
        return quote.Quote{}, &provider.UpstreamError{Err: err}
    }
    q := u.Query()
    q.Set("apikey", key)
    u.RawQuery = q.Encode()

    raw, err := provider.GetJSON(ctx, s.client, u.String())
    if err != nil {
        return quote.Quote{}, err
    }
    return normalize(symbol, raw), nil
}

// normalize maps the first entry of the response list. The short-quote
// endpoint does not expose the fields a percent change could be derived
// from, so change percent is always reported as 0.
func normalize(symbol string, raw any) quote.Quote {
    out := quote.Quote{Symbol: symbol, Provider: string(provider.FMP)}
    list, _ := raw.([]any)
    var r0 map[string]any
    if len(list) > 0 {
        r0, _ = list[0].(map[string]any)
    }
    out.Price = quote.Float(r0["price"])
    out.ChangePercent = 0
    out.Open = quote.Float(r0["open"])
    out.High = quote.Float(r0["dayHigh"])
    out.Low = quote.Float(r0["dayLow"])
    out.PreviousClose = quote.Float(r0["previousClose"])
    if r0 != nil {
        out.Timestamp = r0["timestamp"]
    }
    return out
}
