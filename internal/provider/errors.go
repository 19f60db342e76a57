package provider

import (
    "errors"
    "fmt"
    "net/http"
)

// ErrUnsupported is returned for a provider identifier outside the known set.
var ErrUnsupported = errors.New("unsupported provider")

// MissingCredentialError reports that the environment variable holding a
// provider's API key is not set. It is a client error, not a process error:
// the other providers keep working.
type MissingCredentialError struct {
    Var string
}

func (e *MissingCredentialError) Error() string {
    return e.Var + " not set"
}

// UpstreamError reports a failed call to a provider: a non-2xx response
// (Status carries the upstream code) or a transport/decode failure (Status 0).
type UpstreamError struct {
    Status int
    Err    error
}

func (e *UpstreamError) Error() string {
    if e.Status != 0 {
        return fmt.Sprintf("upstream status %d: %v", e.Status, e.Err)
    }
    return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// StatusCode is the HTTP status to surface to the façade caller:
// the upstream status when known, 502 otherwise.
func (e *UpstreamError) StatusCode() int {
    if e.Status != 0 {
        return e.Status
    }
    return http.StatusBadGateway
}
