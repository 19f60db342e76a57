package twelvedata

import (
    "bytes"
    "context"
    "encoding/json"
    "io"
    "net/http"
    "testing"

    "github.com/stretchr/testify/require"
    "go.uber.org/mock/gomock"

    "quotegateway/internal/httpx/mocks"
    "quotegateway/internal/provider"
)

// Twelve Data reports numeric fields as strings.
const fixture = `{
  "symbol": "AAPL",
  "price": "185.92",
  "percent_change": "-0.43",
  "open": "186.06",
  "high": "186.74",
  "low": "185.19",
  "previous_close": "186.72",
  "timestamp": 1705093200
}`

func decodeJSON(t *testing.T, s string) any {
    t.Helper()
    dec := json.NewDecoder(bytes.NewReader([]byte(s)))
    dec.UseNumber()
    var raw any
    require.NoError(t, dec.Decode(&raw))
    return raw
}

func TestNormalize_Fixture(t *testing.T) {
    q := normalize("AAPL", decodeJSON(t, fixture))
    require.Equal(t, "AAPL", q.Symbol)
    require.Equal(t, "twelve", q.Provider)
    require.Equal(t, 185.92, q.Price)
    require.Equal(t, -0.43, q.ChangePercent)
    require.Equal(t, 186.06, q.Open)
    require.Equal(t, 186.74, q.High)
    require.Equal(t, 185.19, q.Low)
    require.Equal(t, 186.72, q.PreviousClose)
    require.Equal(t, json.Number("1705093200"), q.Timestamp)
}

func TestNormalize_EmptyPayloadDegradesToZero(t *testing.T) {
    q := normalize("AAPL", decodeJSON(t, `{}`))
    require.Equal(t, "AAPL", q.Symbol)
    require.Zero(t, q.Price)
    require.Zero(t, q.ChangePercent)
}

func TestNormalize_GarbageValuesCoerceToZero(t *testing.T) {
    q := normalize("AAPL", decodeJSON(t, `{"price": "n/a", "percent_change": null, "open": ""}`))
    require.Zero(t, q.Price)
    require.Zero(t, q.ChangePercent)
    require.Zero(t, q.Open)
}

func TestQuote_RequestShape(t *testing.T) {
    t.Setenv("TWELVE_DATA_API_KEY", "test-key")

    ctrl := gomock.NewController(t)
    doer := mocks.NewMockDoer(ctrl)
    doer.EXPECT().
        Do(gomock.Any(), gomock.Any()).
        DoAndReturn(func(ctx context.Context, req *http.Request) (*http.Response, error) {
            require.Equal(t, "AAPL", req.URL.Query().Get("symbol"))
            require.Equal(t, "test-key", req.URL.Query().Get("apikey"))
            return &http.Response{
                StatusCode: http.StatusOK,
                Body:       io.NopCloser(bytes.NewReader([]byte(fixture))),
            }, nil
        }).
        Times(1)

    src := New(Config{}, doer)
    q, err := src.Quote(context.Background(), "AAPL")
    require.NoError(t, err)
    require.Equal(t, 185.92, q.Price)
}

func TestQuote_MissingCredentialSkipsNetwork(t *testing.T) {
    t.Setenv("TWELVE_DATA_API_KEY", "")

    ctrl := gomock.NewController(t)
    doer := mocks.NewMockDoer(ctrl)
    doer.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

    src := New(Config{}, doer)
    _, err := src.Quote(context.Background(), "AAPL")

    var missing *provider.MissingCredentialError
    require.ErrorAs(t, err, &missing)
    require.Equal(t, "TWELVE_DATA_API_KEY", missing.Var)
}
