package recommendation_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/karlseguin/ccache/v3"
)

const (
	maxResponseBytes = 4 << 20 // 4MB guard
	maxErrorBodyLen  = 512
)

// Config configures Client. Zero values get sensible defaults.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	RetryMax int
	// RetryWaitMin and RetryWaitMax bound the backoff between attempts.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// CacheTTL enables caching of successful GET responses when positive.
	CacheTTL  time.Duration
	CacheSize int64
	Logger    port.LoggerPort
}

// Client talks to the recommendation and analytics service.
type Client struct {
	baseURL  string
	http     *retryablehttp.Client
	cache    *ccache.Cache[[]byte]
	cacheTTL time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("recommendation api base URL is required")
	}
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid recommendation api base URL %q", cfg.BaseURL)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 6 * time.Second
	}
	if cfg.RetryMax <= 0 {
		cfg.RetryMax = 3
	}
	if cfg.RetryWaitMin <= 0 {
		cfg.RetryWaitMin = 100 * time.Millisecond
	}
	if cfg.RetryWaitMax <= 0 {
		cfg.RetryWaitMax = 900 * time.Millisecond
	}

	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	rc.RetryMax = cfg.RetryMax
	rc.HTTPClient.Timeout = cfg.Timeout
	// hand back the last response so non-2xx bodies reach the caller
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if cfg.Logger != nil {
		rc.Logger = &leveledLogger{logger: cfg.Logger.WithFields(port.Fields{"component": "retryablehttp"})}
	} else {
		rc.Logger = nil
	}

	c := &Client{
		baseURL:  base,
		http:     rc,
		cacheTTL: cfg.CacheTTL,
	}
	if cfg.CacheTTL > 0 {
		size := cfg.CacheSize
		if size <= 0 {
			size = 500
		}
		c.cache = ccache.New(ccache.Configure[[]byte]().MaxSize(size))
	}
	return c, nil
}

// Close stops the cache's background worker.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Stop()
	}
}

// doRequest sends the request, enforces the size guard and maps non-2xx
// answers to *domain.UpstreamError. out may be nil.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload interface{}, out interface{}) error {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecommendationApiClient",
		"method":    method,
		"path":      path,
	})

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	cacheKey := ""
	if method == http.MethodGet && c.cache != nil {
		cacheKey = fullURL
		if item := c.cache.Get(cacheKey); item != nil && !item.Expired() {
			clientLogger.Debug("Cache hit", port.Fields{"url": fullURL})
			return decodeBody(item.Value(), out)
		}
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var reqBody interface{}
	if body != nil {
		reqBody = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(constants.HeaderXTraceID, traceID)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	clientLogger.Debug("Sending request to recommendation service", port.Fields{"url": fullURL})
	resp, err := c.http.Do(req)
	if err != nil {
		clientLogger.Error("Failed to perform request to recommendation service", err, nil)
		return fmt.Errorf("recommendation service request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := ioReadAllLimit(resp.Body, maxResponseBytes)
	if err != nil {
		clientLogger.Error("Failed to read response body", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := &domain.UpstreamError{StatusCode: resp.StatusCode, Body: truncate(string(respBody), maxErrorBodyLen)}
		clientLogger.Error("Received error response from recommendation service", upstreamErr, port.Fields{"status_code": resp.StatusCode})
		return upstreamErr
	}

	if err := decodeBody(respBody, out); err != nil {
		clientLogger.Error("Failed to decode response from recommendation service", err, nil)
		return err
	}

	if cacheKey != "" {
		c.cache.Set(cacheKey, respBody, c.cacheTTL)
	}
	return nil
}

func decodeBody(body []byte, out interface{}) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("response exceeds %d bytes", limit)
	}
	return b, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// Suggest calls POST /recommendations/suggest.
func (c *Client) Suggest(ctx context.Context, prefs domain.Preferences, limit int) (*domain.RecommendationList, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(domain.ClampRecommendationLimit(limit)))

	var dto suggestResponseDTO
	if err := c.doRequest(ctx, http.MethodPost, "/recommendations/suggest", query, prefs, &dto); err != nil {
		return nil, fmt.Errorf("error fetching recommendations: %w", err)
	}
	return dto.toDomain(), nil
}

// Similar calls GET /recommendations/similar/{id}.
func (c *Client) Similar(ctx context.Context, propertyID string) (*domain.SimilarProperties, error) {
	var dto similarResponseDTO
	path := "/recommendations/similar/" + url.PathEscape(propertyID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &dto); err != nil {
		return nil, fmt.Errorf("error fetching similar properties: %w", err)
	}
	return dto.toDomain(), nil
}

// PredictPrice calls POST /analytics/predict-price.
func (c *Client) PredictPrice(ctx context.Context, input domain.PricePredictionInput) (*domain.PricePrediction, error) {
	var dto pricePredictionDTO
	if err := c.doRequest(ctx, http.MethodPost, "/analytics/predict-price", nil, input, &dto); err != nil {
		return nil, fmt.Errorf("error getting price prediction: %w", err)
	}
	return &domain.PricePrediction{
		PredictedPrice: dto.PredictedPrice,
		Confidence:     dto.Confidence,
		Region:         dto.Region,
	}, nil
}

// LocationAnalysis calls GET /analytics/location/{location}.
func (c *Client) LocationAnalysis(ctx context.Context, location string) (map[string]interface{}, error) {
	var market map[string]interface{}
	path := "/analytics/location/" + url.PathEscape(location)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &market); err != nil {
		return nil, fmt.Errorf("error getting location analysis: %w", err)
	}
	return market, nil
}

// PriceForecast calls GET /analytics/price-forecast.
func (c *Client) PriceForecast(ctx context.Context, q domain.PriceForecastQuery) (*domain.PriceForecast, error) {
	if q.Months == 0 {
		q.Months = domain.DefaultForecastMonths
	}
	query := url.Values{}
	query.Set("location", q.Location)
	query.Set("propertyType", q.PropertyType)
	query.Set("months", strconv.Itoa(q.Months))

	var dto priceForecastDTO
	if err := c.doRequest(ctx, http.MethodGet, "/analytics/price-forecast", query, nil, &dto); err != nil {
		return nil, fmt.Errorf("error getting price forecast: %w", err)
	}
	return dto.toDomain(q), nil
}
