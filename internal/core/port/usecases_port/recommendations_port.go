package usecases_port

import (
	"context"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

// RecommendationsUseCase proxies the recommendation and analytics API.
type RecommendationsUseCase interface {
	Suggest(ctx context.Context, prefs domain.Preferences, limit int) (*domain.RecommendationList, error)
	Similar(ctx context.Context, propertyID string) (*domain.SimilarProperties, error)
	PredictPrice(ctx context.Context, input domain.PricePredictionInput) (*domain.PricePrediction, error)
	AnalyzeLocation(ctx context.Context, location string) (*domain.LocationAnalysis, error)
	ForecastPrice(ctx context.Context, q domain.PriceForecastQuery) (*domain.PriceForecast, error)
}

// PropertyCatalogUseCase exposes the catalog as JSON.
type PropertyCatalogUseCase interface {
	ListProperties(ctx context.Context) ([]domain.PropertyRecord, error)
	GetProperty(ctx context.Context, id int64) (*domain.PropertyRecord, error)
}
