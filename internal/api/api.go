package api

import (
    "encoding/json"
    "errors"
    "net/http"
    "strings"

    "github.com/gorilla/mux"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    log "github.com/sirupsen/logrus"

    "quotegateway/internal/dbprobe"
    "quotegateway/internal/metrics"
    "quotegateway/internal/provider"
    "quotegateway/internal/quote"
    "quotegateway/internal/quotes"
)

// API exposes the quote façade over HTTP.
type API struct {
    svc     *quotes.Service
    probe   *dbprobe.Probe
    metrics *metrics.Gateway
}

func New(svc *quotes.Service, probe *dbprobe.Probe, m *metrics.Gateway) *API {
    return &API{svc: svc, probe: probe, metrics: m}
}

// Handler builds the router wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
    r := mux.NewRouter()
    r.HandleFunc("/", a.handleRoot).Methods(http.MethodGet)
    r.HandleFunc("/api/hello", a.handleHello).Methods(http.MethodGet)
    r.HandleFunc("/api/quote", a.handleQuote).Methods(http.MethodGet)
    r.HandleFunc("/api/tickers", a.handleTickers).Methods(http.MethodGet)
    r.HandleFunc("/test", a.handleDBProbe).Methods(http.MethodGet)
    r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)
    r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

    return withCORS(withGzip(recoverPanic(logRequests(instrument(a.metrics, r)))))
}

type messageBody struct {
    Message string `json:"message"`
}

type errorBody struct {
    Detail string `json:"detail"`
}

func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, messageBody{Message: "quote gateway is running"})
}

func (a *API) handleHello(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, messageBody{Message: "hello from the backend API"})
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write([]byte(`"ok"`))
}

func (a *API) handleQuote(w http.ResponseWriter, r *http.Request) {
    symbol := r.URL.Query().Get("symbol")
    if strings.TrimSpace(symbol) == "" {
        writeJSON(w, http.StatusBadRequest, errorBody{Detail: "missing symbol query param"})
        return
    }
    providerID := r.URL.Query().Get("provider")

    q, err := a.svc.Fetch(r.Context(), symbol, providerID)
    if err != nil {
        writeJSON(w, statusFor(err), errorBody{Detail: err.Error()})
        return
    }
    writeJSON(w, http.StatusOK, q)
}

type tickersResponse struct {
    Data []quote.Result `json:"data"`
}

// handleTickers aggregates per-symbol results; failures stay embedded in the
// list and the response is always 200.
func (a *API) handleTickers(w http.ResponseWriter, r *http.Request) {
    raw := r.URL.Query().Get("symbols")
    if !r.URL.Query().Has("symbols") {
        writeJSON(w, http.StatusBadRequest, errorBody{Detail: "missing symbols query param"})
        return
    }
    providerID := r.URL.Query().Get("provider")

    results := a.svc.FetchMany(r.Context(), quotes.SplitSymbols(raw), providerID)
    writeJSON(w, http.StatusOK, tickersResponse{Data: results})
}

func (a *API) handleDBProbe(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, a.probe.Check(r.Context()))
}

// statusFor maps the error taxonomy to HTTP statuses: client mistakes are
// 400, upstream failures keep their status (502 when unknown), the rest 500.
func statusFor(err error) int {
    var missing *provider.MissingCredentialError
    var upstream *provider.UpstreamError
    switch {
    case errors.Is(err, provider.ErrUnsupported):
        return http.StatusBadRequest
    case errors.As(err, &missing):
        return http.StatusBadRequest
    case errors.As(err, &upstream):
        return upstream.StatusCode()
    default:
        return http.StatusInternalServerError
    }
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json; charset=utf-8")
    w.WriteHeader(status)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    if err := enc.Encode(v); err != nil {
        log.Errorf("encode response: %v", err)
    }
}
