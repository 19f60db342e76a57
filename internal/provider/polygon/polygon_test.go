package polygon

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

const fixture = `{
  "ticker": "AAPL",
  "status": "OK",
  "resultsCount": 1,
  "results": [
    {"T": "AAPL", "c": 185.92, "h": 186.4, "l": 183.92, "o": 184.35, "t": 1705348800000, "v": 65076641}
  ]
}`

func decodeJSON(t *testing.T, s string) any {
    t.Helper()
    dec := json.NewDecoder(bytes.NewReader([]byte(s)))
    dec.UseNumber()
    var raw any
    require.NoError(t, dec.Decode(&raw))
    return raw
}

// The previous-day aggregate has no genuine previous close: the day's close
// substitutes for it, which pins change percent at 0.
func TestNormalize_Fixture(t *testing.T) {
    q := normalize("AAPL", decodeJSON(t, fixture))
    require.Equal(t, "AAPL", q.Symbol)
    require.Equal(t, "polygon", q.Provider)
    require.Equal(t, 185.92, q.Price)
    require.Equal(t, 185.92, q.PreviousClose)
    require.Zero(t, q.ChangePercent)
    require.Equal(t, 184.35, q.Open)
    require.Equal(t, 186.4, q.High)
    require.Equal(t, 183.92, q.Low)
    require.Equal(t, json.Number("1705348800000"), q.Timestamp)
}

func TestNormalize_ZeroCloseDoesNotDivide(t *testing.T) {
    q := normalize("AAPL", decodeJSON(t, `{"results": [{"c": 0, "o": 1.5}]}`))
    require.Zero(t, q.ChangePercent)
    require.Zero(t, q.PreviousClose)
    require.Equal(t, 1.5, q.Open)
}

func TestNormalize_EmptyPayloadDegradesToZero(t *testing.T) {
    for _, body := range []string{`{}`, `{"results": []}`, `{"results": "nope"}`} {
        q := normalize("AAPL", decodeJSON(t, body))
        require.Equal(t, "AAPL", q.Symbol)
        require.Zero(t, q.Price)
        require.Zero(t, q.ChangePercent)
        require.Nil(t, q.Timestamp)
    }
}

func TestQuote_RequestShape(t *testing.T) {
    t.Setenv("POLYGON_API_KEY", "test-key")

    ctrl := gomock.NewController(t)
    doer := mocks.NewMockDoer(ctrl)
    doer.EXPECT().
        Do(gomock.Any(), gomock.Any()).
        DoAndReturn(func(ctx context.Context, req *http.Request) (*http.Response, error) {
            require.Equal(t, "/v2/aggs/ticker/AAPL/prev", req.URL.Path)
            require.Equal(t, "true", req.URL.Query().Get("adjusted"))
            require.Equal(t, "test-key", req.URL.Query().Get("apiKey"))
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
    t.Setenv("POLYGON_API_KEY", "")

    ctrl := gomock.NewController(t)
    doer := mocks.NewMockDoer(ctrl)
    doer.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

    src := New(Config{}, doer)
    _, err := src.Quote(context.Background(), "AAPL")

    var missing *provider.MissingCredentialError
    require.ErrorAs(t, err, &missing)
    require.Equal(t, "POLYGON_API_KEY", missing.Var)
}
