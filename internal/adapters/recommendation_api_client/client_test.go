package recommendation_api_client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, cacheTTL time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{
		BaseURL:      srv.URL + "/",
		Timeout:      2 * time.Second,
		RetryMax:     1,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 2 * time.Millisecond,
		CacheTTL:     cacheTTL,
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
	_, err = NewClient(Config{BaseURL: "not a url"})
	assert.Error(t, err)
}

func TestSuggestPostsPreferencesWithLimitAndTrace(t *testing.T) {
	var gotBody map[string]interface{}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommendations/suggest", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("limit"))
		assert.Equal(t, "trace-abc", r.Header.Get("X-Trace-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"recommendations":[{"property_id":"p-9","title":"Villa Tamarin","price":25000000,"location":"Tamarin","bedrooms":4,"bathrooms":2.5,"property_type":"villa","image_url":"","score":0.87,"match_percentage":87.0}]}`)
	}), 0)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-abc")
	list, err := c.Suggest(ctx, domain.Preferences{"max_price": 30000000, "beachfront": true}, 7)
	require.NoError(t, err)

	assert.Equal(t, true, gotBody["beachfront"])
	require.Len(t, list.Recommendations, 1)
	rec := list.Recommendations[0]
	assert.Equal(t, "p-9", rec.PropertyID)
	require.NotNil(t, rec.Bedrooms)
	assert.Equal(t, 4, *rec.Bedrooms)
	assert.Equal(t, 87.0, rec.MatchPercentage)
}

func TestNon2xxBecomesUpstreamError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"Property not found"}`)
	}), 0)

	_, err := c.Similar(context.Background(), "missing")
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "Property not found")
}

func TestServerErrorsAreRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, `{"predicted_price":12500000,"confidence":0.82,"region":"West"}`)
	}), 0)

	prediction, err := c.PredictPrice(context.Background(), domain.PricePredictionInput{"bedrooms": 3})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 12500000.0, prediction.PredictedPrice)
	assert.Equal(t, "West", prediction.Region)
}

func TestGetResponsesAreCached(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/analytics/location/Grand Baie", r.URL.Path)
		io.WriteString(w, `{"avg_price":18000000,"listings":42}`)
	}), time.Minute)

	for i := 0; i < 3; i++ {
		market, err := c.LocationAnalysis(context.Background(), "Grand Baie")
		require.NoError(t, err)
		assert.Equal(t, 42.0, market["listings"])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPriceForecastDefaultsMonths(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Moka", q.Get("location"))
		assert.Equal(t, "house", q.Get("propertyType"))
		assert.Equal(t, "24", q.Get("months"))
		io.WriteString(w, `{"forecast":[{"month":"2026-11","price":9100000}]}`)
	}), 0)

	forecast, err := c.PriceForecast(context.Background(), domain.PriceForecastQuery{Location: "Moka", PropertyType: "house"})
	require.NoError(t, err)
	assert.Equal(t, "Moka", forecast.Location)
	assert.Equal(t, 24, forecast.Months)
	require.Len(t, forecast.Forecast, 1)
	assert.Equal(t, 9100000.0, forecast.Forecast[0].Price)
}

func TestOversizedResponseIsRejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"avg_price":"`+strings.Repeat("x", maxResponseBytes)+`"}`)
	}), 0)

	_, err := c.LocationAnalysis(context.Background(), "Port Louis")
	assert.ErrorContains(t, err, "exceeds")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("  abc  ", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
	assert.Equal(t, "h...", truncate("héllo", 2))
	assert.Equal(t, "...", truncate("€uro", 2))
}

func TestUpstreamErrorBodyKeepsWholeRunes(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, strings.Repeat("€", 400))
	}), 0)

	_, err := c.Similar(context.Background(), "42")
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.True(t, utf8.ValidString(upstream.Body))
	assert.True(t, strings.HasSuffix(upstream.Body, "€..."))
	assert.LessOrEqual(t, len(upstream.Body), maxErrorBodyLen+len("..."))
}
