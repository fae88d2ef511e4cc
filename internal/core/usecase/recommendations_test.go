package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsDisabledWithoutService(t *testing.T) {
	uc := NewRecommendationsUseCase(nil, nil)
	ctx := context.Background()

	_, err := uc.Suggest(ctx, domain.Preferences{}, 5)
	assert.ErrorIs(t, err, domain.ErrRecommendationsDisabled)
	_, err = uc.Similar(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrRecommendationsDisabled)
	_, err = uc.PredictPrice(ctx, domain.PricePredictionInput{})
	assert.ErrorIs(t, err, domain.ErrRecommendationsDisabled)
	_, err = uc.AnalyzeLocation(ctx, "Tamarin")
	assert.ErrorIs(t, err, domain.ErrRecommendationsDisabled)
	_, err = uc.ForecastPrice(ctx, domain.PriceForecastQuery{})
	assert.ErrorIs(t, err, domain.ErrRecommendationsDisabled)
}

func TestSuggestValidatesLimitAndPreferences(t *testing.T) {
	svc := &fakeRecommendationService{}
	validator := &fakeValidator{}
	uc := NewRecommendationsUseCase(svc, validator)

	_, err := uc.Suggest(context.Background(), domain.Preferences{}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	_, err = uc.Suggest(context.Background(), domain.Preferences{}, 21)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	list, err := uc.Suggest(context.Background(), domain.Preferences{"max_price": 9000000}, 3)
	require.NoError(t, err)
	require.Len(t, list.Recommendations, 1)
	assert.Equal(t, 3, svc.lastLimit)
	assert.Equal(t, []string{constants.SchemaPreferencesV1}, validator.seen)

	validator.rejectKey = constants.SchemaPreferencesV1
	_, err = uc.Suggest(context.Background(), domain.Preferences{"max_price": "cheap"}, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestPredictPriceRejectedPayloadSkipsUpstream(t *testing.T) {
	svc := &fakeRecommendationService{err: errors.New("must not be called")}
	uc := NewRecommendationsUseCase(svc, &fakeValidator{rejectKey: constants.SchemaPricePredictionV1})

	_, err := uc.PredictPrice(context.Background(), domain.PricePredictionInput{"bedrooms": -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestUpstreamErrorIsWrapped(t *testing.T) {
	upstream := &domain.UpstreamError{StatusCode: 500, Body: "boom"}
	uc := NewRecommendationsUseCase(&fakeRecommendationService{err: upstream}, nil)

	_, err := uc.Similar(context.Background(), "42")
	var target *domain.UpstreamError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 500, target.StatusCode)
}

func TestAnalyzeLocationAddsDistrict(t *testing.T) {
	svc := &fakeRecommendationService{market: map[string]interface{}{"avg_price": 15000000.0}}
	uc := NewRecommendationsUseCase(svc, nil)

	analysis, err := uc.AnalyzeLocation(context.Background(), " Flic en Flac ")
	require.NoError(t, err)
	assert.Equal(t, "Flic en Flac", analysis.Location)
	assert.Equal(t, "Black River", analysis.District)
	assert.Equal(t, "West", analysis.Region)
	assert.True(t, analysis.IsTouristArea)
	assert.Equal(t, 15000000.0, analysis.Market["avg_price"])

	_, err = uc.AnalyzeLocation(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestForecastPriceDefaultsMonths(t *testing.T) {
	svc := &fakeRecommendationService{}
	uc := NewRecommendationsUseCase(svc, nil)

	forecast, err := uc.ForecastPrice(context.Background(), domain.PriceForecastQuery{Location: "Moka", PropertyType: "house"})
	require.NoError(t, err)
	assert.Equal(t, 24, svc.lastForecast.Months)
	assert.Equal(t, 24, forecast.Months)

	_, err = uc.ForecastPrice(context.Background(), domain.PriceForecastQuery{Months: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}
