package provider

import (
    "context"
    "strings"

    "quotegateway/internal/quote"
)

// ID names a supported market-data provider.
type ID string

const (
    AlphaVantage ID = "alpha_vantage"
    Finnhub      ID = "finnhub"
    Twelve       ID = "twelve"
    Polygon      ID = "polygon"
    FMP          ID = "fmp"
)

// Default is used when a request does not name a provider.
const Default = Finnhub

// ParseID lower-cases and trims a requested provider identifier.
// An empty identifier resolves to Default. Unknown identifiers are
// returned as-is; lookups against the source registry reject them.
func ParseID(s string) ID {
    s = strings.ToLower(strings.TrimSpace(s))
    if s == "" {
        return Default
    }
    return ID(s)
}

// Source fetches and normalizes the quote for a single symbol.
// The symbol is expected to be trimmed and upper-cased by the caller.
type Source interface {
    ID() ID
    Quote(ctx context.Context, symbol string) (quote.Quote, error)
}
