package quotes

import (
    "context"
    "strings"

    "quotegateway/internal/metrics"
    "quotegateway/internal/provider"
    "quotegateway/internal/quote"
)

// Service routes quote requests to the registered provider sources.
// It owns symbol normalization and the sequential batch loop; it holds no
// state across requests.
type Service struct {
    sources map[provider.ID]provider.Source
    metrics *metrics.Gateway
}

func New(sources ...provider.Source) *Service {
    m := make(map[provider.ID]provider.Source, len(sources))
    for _, s := range sources {
        m[s.ID()] = s
    }
    return &Service{sources: m}
}

// WithMetrics attaches upstream-call metrics. Nil is allowed.
func (s *Service) WithMetrics(m *metrics.Gateway) *Service {
    s.metrics = m
    return s
}

// Fetch resolves the provider (defaulting when empty), upper-cases the
// symbol and returns the normalized quote.
func (s *Service) Fetch(ctx context.Context, symbol, providerID string) (quote.Quote, error) {
    id := provider.ParseID(providerID)
    src, ok := s.sources[id]
    if !ok {
        return quote.Quote{}, provider.ErrUnsupported
    }
    sym := strings.ToUpper(strings.TrimSpace(symbol))
    q, err := src.Quote(ctx, sym)
    if s.metrics != nil {
        s.metrics.RecordUpstream(string(id), err)
    }
    return q, err
}

// FetchMany fetches each symbol independently and sequentially, in input
// order. Symbols are trimmed and upper-cased but not deduplicated; empties
// are dropped. A failed symbol becomes an error entry and never aborts the
// rest of the batch.
func (s *Service) FetchMany(ctx context.Context, symbols []string, providerID string) []quote.Result {
    id := provider.ParseID(providerID)
    out := make([]quote.Result, 0, len(symbols))
    for _, raw := range symbols {
        sym := strings.ToUpper(strings.TrimSpace(raw))
        if sym == "" {
            continue
        }
        q, err := s.Fetch(ctx, sym, providerID)
        if err != nil {
            out = append(out, quote.Result{Symbol: sym, Provider: string(id), Err: err.Error()})
            continue
        }
        out = append(out, quote.Result{Quote: &q})
    }
    return out
}

// SplitSymbols breaks a comma-separated symbols parameter into its parts,
// dropping empties. Trimming and casing happen in FetchMany.
func SplitSymbols(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if strings.TrimSpace(p) != "" {
            out = append(out, p)
        }
    }
    return out
}
