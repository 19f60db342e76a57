package provider

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"

    "quotegateway/internal/httpx"
)

// GetJSON issues a GET against a provider endpoint and decodes the body.
// Numbers are decoded as json.Number so timestamps survive round-tripping.
// Failures are reported as *UpstreamError; there are no retries.
func GetJSON(ctx context.Context, c httpx.Doer, url string) (any, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
    if err != nil {
        return nil, &UpstreamError{Err: fmt.Errorf("creating request: %w", err)}
    }
    req.Header.Set("Accept", "application/json")

    resp, err := c.Do(ctx, req)
    if err != nil {
        return nil, &UpstreamError{Err: fmt.Errorf("performing request: %w", err)}
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        // drain a little of the body for the error message
        b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
        return nil, &UpstreamError{
            Status: resp.StatusCode,
            Err:    fmt.Errorf("%s", string(b)),
        }
    }

    dec := json.NewDecoder(resp.Body)
    dec.UseNumber()
    var raw any
    if err := dec.Decode(&raw); err != nil {
        return nil, &UpstreamError{Err: fmt.Errorf("decoding response: %w", err)}
    }
    return raw, nil
}
