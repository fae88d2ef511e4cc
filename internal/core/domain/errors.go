package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPropertyNotFound        = errors.New("property not found")
	ErrRecommendationsDisabled = errors.New("recommendation service is not configured")
	ErrInvalidPayload          = errors.New("invalid payload")
)

// UpstreamError is a non-2xx answer of the recommendation service.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
