package coops

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testStation       = "8726520"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { SetClock(nil) })
}

func testClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_Fetch_Success(t *testing.T) {
	freezeClock(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC))

	payload := domain.TidePayload{
		Metadata: domain.TideMetadata{
			ID:   testStation,
			Name: "St. Petersburg",
			Lat:  "27.7606",
			Lon:  "-82.6269",
		},
		Predictions: []domain.TidePrediction{
			{Time: "2024-06-15 06:30", Height: "1.2", Type: "H"},
			{Time: "2024-06-15 13:05", Height: "0.3", Type: "L"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20240615", q.Get("begin_date"))
		assert.Equal(t, "20240617", q.Get("end_date"))
		assert.Equal(t, testStation, q.Get("station"))
		assert.Equal(t, "predictions", q.Get("product"))
		assert.Equal(t, "MLLW", q.Get("datum"))
		assert.Equal(t, "lst_ldt", q.Get("time_zone"))
		assert.Equal(t, "hilo", q.Get("interval"))
		assert.Equal(t, "english", q.Get("units"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "fishcast", q.Get("application"))

		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	got, err := c.Fetch(context.Background(), testStation, 3)
	require.NoError(t, err)

	assert.Equal(t, testStation, got.Metadata.ID)
	require.Len(t, got.Predictions, 2)
	assert.Equal(t, "2024-06-15 06:30", got.Predictions[0].Time)
	assert.Equal(t, "H", got.Predictions[0].Type)
	assert.Nil(t, got.Error)
}

func TestClient_Fetch_SingleDayRange(t *testing.T) {
	freezeClock(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20240615", r.URL.Query().Get("begin_date"))
		assert.Equal(t, "20240615", r.URL.Query().Get("end_date"))

		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(domain.TidePayload{}))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.Fetch(context.Background(), testStation, 1)
	require.NoError(t, err)
}

func TestClient_Fetch_FeedError(t *testing.T) {
	// The feed reports some failures as HTTP 200 with an embedded error
	// object. That is not a transport failure: the payload comes back for
	// the caller to inspect.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"error":{"message":"No Predictions data was found."}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	got, err := c.Fetch(context.Background(), testStation, 7)
	require.NoError(t, err)
	require.NotNil(t, got.Error)
	assert.Contains(t, got.Error.Message, "No Predictions")
	assert.Empty(t, got.Predictions)
}

func TestClient_Fetch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.Fetch(context.Background(), testStation, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tide API returned 500")
}

func TestClient_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 50*time.Millisecond)
	_, err := c.Fetch(context.Background(), testStation, 7)
	require.Error(t, err)
}
