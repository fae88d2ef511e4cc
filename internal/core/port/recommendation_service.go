package port

import (
	"context"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

// RecommendationServicePort is the external recommendation and analytics API.
type RecommendationServicePort interface {
	Suggest(ctx context.Context, prefs domain.Preferences, limit int) (*domain.RecommendationList, error)
	Similar(ctx context.Context, propertyID string) (*domain.SimilarProperties, error)
	PredictPrice(ctx context.Context, input domain.PricePredictionInput) (*domain.PricePrediction, error)
	LocationAnalysis(ctx context.Context, location string) (map[string]interface{}, error)
	PriceForecast(ctx context.Context, q domain.PriceForecastQuery) (*domain.PriceForecast, error)
}
