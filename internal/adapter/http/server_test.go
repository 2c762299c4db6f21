package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/couchcryptid/fishcast/internal/adapter/http"
	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/forecast"
	"github.com/couchcryptid/fishcast/internal/observability"
	"github.com/couchcryptid/fishcast/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type stubSource struct {
	bundle forecast.Bundle
}

func (s *stubSource) FetchAll(context.Context) forecast.Bundle { return s.bundle }

func testSpots() []domain.Spot {
	return []domain.Spot{
		{
			ID:       "weedon-island",
			Name:     "Weedon Island",
			Species:  []string{"Redfish"},
			TidePref: domain.PrefersIncoming,
		},
		{
			ID:       "fort-desoto",
			Name:     "Fort De Soto",
			Species:  []string{"Redfish", "Flounder"},
			TidePref: domain.PrefersOutgoing,
		},
	}
}

func testBundle() forecast.Bundle {
	return forecast.Bundle{
		Days: []domain.DayRecord{
			{Date: "2024-06-15", TempHighF: 75, TempLowF: 68, WindMph: 4, PressureMb: 1016, Trend: domain.PressureStable},
			{Date: "2024-06-16", TempHighF: 78, TempLowF: 70, WindMph: 9, PressureMb: 1012, Trend: domain.PressureFalling},
		},
		Tides: domain.TideSchedule{
			"2024-06-15": {{Hour: 6, Minute: 30, HeightFt: 1.8, Type: domain.TideHigh}},
			"2024-06-16": {{Hour: 7, Minute: 15, HeightFt: 1.6, Type: domain.TideHigh}},
		},
	}
}

func newTestServer(bundle forecast.Bundle, readyErr error) *httpadapter.Server {
	return httpadapter.NewServer(":0",
		&stubSource{bundle: bundle},
		&mockReadiness{err: readyErr},
		testSpots(),
		slog.Default(),
		observability.NewMetricsForTesting())
}

func doRequest(srv *httpadapter.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), fmt.Errorf("no conditions fetched yet")), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "no conditions fetched yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestConditionsReturnsBundle(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/conditions")

	assert.Equal(t, http.StatusOK, rec.Code)

	var bundle forecast.Bundle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
	require.Len(t, bundle.Days, 2)
	assert.Equal(t, "2024-06-15", bundle.Days[0].Date)
	assert.Len(t, bundle.Tides["2024-06-15"], 1)
	assert.Empty(t, bundle.Err)
}

func TestConditionsCarriesFallbackError(t *testing.T) {
	bundle := testBundle()
	bundle.Err = "Network error"
	rec := doRequest(newTestServer(bundle, nil), "/api/v1/conditions")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got forecast.Bundle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Network error", got.Err)
}

func TestSpotsListsCatalog(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/spots")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Spots   []domain.Spot `json:"spots"`
		Species []string      `json:"species"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Spots, 2)
	assert.Equal(t, []string{"Flounder", "Redfish"}, body.Species)
}

func TestSpotByID(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/spots/weedon-island")

	assert.Equal(t, http.StatusOK, rec.Code)

	var spot domain.Spot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spot))
	assert.Equal(t, "Weedon Island", spot.Name)
}

func TestSpotByIDUnknown(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/spots/atlantis")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "atlantis")
}

type ratingsBody struct {
	Date     string           `json:"date"`
	Species  string           `json:"species"`
	Day      domain.DayRecord `json:"day"`
	Insights scoring.Insights `json:"insights"`
	Results  []scoring.Result `json:"results"`
	Error    string           `json:"error"`
}

func TestRatingsDefaultsToFirstDayAllSpecies(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/ratings")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body ratingsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-06-15", body.Date)
	assert.Equal(t, "all", body.Species)
	// One species at the first spot plus two at the second.
	require.Len(t, body.Results, 3)
}

func TestRatingsSortedByScore(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/ratings?species=redfish")

	var body ratingsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)

	// Only a high tide is scheduled, so the incoming-preference spot
	// outranks the outgoing one.
	assert.Equal(t, "weedon-island", body.Results[0].SpotID)
	assert.GreaterOrEqual(t, body.Results[0].Score, body.Results[1].Score)
}

func TestRatingsForSpecificDate(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/ratings?date=2024-06-16")

	var body ratingsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-06-16", body.Date)
	assert.Equal(t, "2024-06-16", body.Day.Date)
	assert.NotEmpty(t, body.Insights.WindCompass)
}

func TestRatingsUnknownDate(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/ratings?date=2024-07-01")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "2024-07-01")
}

func TestRatingsUnknownSpeciesIsEmpty(t *testing.T) {
	rec := doRequest(newTestServer(testBundle(), nil), "/api/v1/ratings?species=tarpon")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body ratingsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Results)
}

func TestRatingsWithEmptyForecast(t *testing.T) {
	rec := doRequest(newTestServer(forecast.Bundle{}, nil), "/api/v1/ratings")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRatingsCarriesFallbackError(t *testing.T) {
	bundle := testBundle()
	bundle.Err = "Network error"
	rec := doRequest(newTestServer(bundle, nil), "/api/v1/ratings")

	var body ratingsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Network error", body.Error)
}
