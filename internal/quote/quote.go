package quote

import (
    "encoding/json"
    "strconv"
    "strings"
)

// Quote is the normalized shape returned by all providers.
// Numeric fields are always present; values a provider did not supply are 0.
// Timestamp is passed through as the provider sent it (string, epoch or absent).
type Quote struct {
    Symbol        string  `json:"symbol"`
    Provider      string  `json:"provider"`
    Price         float64 `json:"price"`
    ChangePercent float64 `json:"changePercent"`
    Open          float64 `json:"open"`
    High          float64 `json:"high"`
    Low           float64 `json:"low"`
    PreviousClose float64 `json:"previousClose"`
    Timestamp     any     `json:"timestamp,omitempty"`
}

// Result is one entry of a batch response: either a quote or a per-symbol
// error. A failed symbol never carries price fields.
type Result struct {
    Quote    *Quote
    Symbol   string
    Provider string
    Err      string
}

func (r Result) MarshalJSON() ([]byte, error) {
    if r.Err != "" {
        return json.Marshal(struct {
            Symbol   string `json:"symbol"`
            Provider string `json:"provider"`
            Error    string `json:"error"`
        }{r.Symbol, r.Provider, r.Err})
    }
    return json.Marshal(r.Quote)
}

// Float coerces a decoded JSON value to float64.
// Absent, null, empty and unparsable values coerce to 0 rather than failing.
func Float(v any) float64 {
    switch x := v.(type) {
    case nil:
        return 0
    case float64:
        return x
    case json.Number:
        f, err := x.Float64()
        if err != nil {
            return 0
        }
        return f
    case string:
        s := strings.TrimSpace(x)
        if s == "" {
            return 0
        }
        f, err := strconv.ParseFloat(s, 64)
        if err != nil {
            return 0
        }
        return f
    case int:
        return float64(x)
    case int64:
        return float64(x)
    case bool:
        if x {
            return 1
        }
        return 0
    default:
        return 0
    }
}
