package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
)

// RecommendationsUseCase groups the calls proxied to the recommendation
// service. A nil service makes every call fail with ErrRecommendationsDisabled.
type RecommendationsUseCase struct {
	service   port.RecommendationServicePort
	validator port.PayloadValidatorPort
}

func NewRecommendationsUseCase(service port.RecommendationServicePort, validator port.PayloadValidatorPort) *RecommendationsUseCase {
	return &RecommendationsUseCase{service: service, validator: validator}
}

func (uc *RecommendationsUseCase) logger(ctx context.Context, operation string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "Recommendations",
		"operation": operation,
	})
}

func (uc *RecommendationsUseCase) validate(schemaKey string, payload interface{}) error {
	if uc.validator == nil {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if err := uc.validator.Validate(schemaKey, body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}

// Suggest returns up to limit recommendations matching prefs.
func (uc *RecommendationsUseCase) Suggest(ctx context.Context, prefs domain.Preferences, limit int) (*domain.RecommendationList, error) {
	ucLogger := uc.logger(ctx, "Suggest")
	if uc.service == nil {
		return nil, domain.ErrRecommendationsDisabled
	}
	if limit < domain.MinRecommendationLimit || limit > domain.MaxRecommendationLimit {
		return nil, fmt.Errorf("%w: limit must be between %d and %d", domain.ErrInvalidPayload, domain.MinRecommendationLimit, domain.MaxRecommendationLimit)
	}
	if prefs == nil {
		prefs = domain.Preferences{}
	}
	if err := uc.validate(constants.SchemaPreferencesV1, prefs); err != nil {
		ucLogger.Warn("Preferences rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case started", port.Fields{"limit": limit})
	list, err := uc.service.Suggest(ctx, prefs, limit)
	if err != nil {
		ucLogger.Error("Failed to fetch recommendations", err, nil)
		return nil, fmt.Errorf("error fetching recommendations: %w", err)
	}
	return list, nil
}

func (uc *RecommendationsUseCase) Similar(ctx context.Context, propertyID string) (*domain.SimilarProperties, error) {
	ucLogger := uc.logger(ctx, "Similar")
	if uc.service == nil {
		return nil, domain.ErrRecommendationsDisabled
	}
	if strings.TrimSpace(propertyID) == "" {
		return nil, fmt.Errorf("%w: property id is required", domain.ErrInvalidPayload)
	}

	ucLogger.Info("Use case started", port.Fields{"property_id": propertyID})
	similar, err := uc.service.Similar(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to fetch similar properties", err, nil)
		return nil, fmt.Errorf("error fetching similar properties: %w", err)
	}
	return similar, nil
}

func (uc *RecommendationsUseCase) PredictPrice(ctx context.Context, input domain.PricePredictionInput) (*domain.PricePrediction, error) {
	ucLogger := uc.logger(ctx, "PredictPrice")
	if uc.service == nil {
		return nil, domain.ErrRecommendationsDisabled
	}
	if err := uc.validate(constants.SchemaPricePredictionV1, input); err != nil {
		ucLogger.Warn("Price prediction input rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case started", nil)
	prediction, err := uc.service.PredictPrice(ctx, input)
	if err != nil {
		ucLogger.Error("Failed to get price prediction", err, nil)
		return nil, fmt.Errorf("error getting price prediction: %w", err)
	}
	return prediction, nil
}

// AnalyzeLocation combines the upstream market data with the local
// district resolution. The district fields are always filled.
func (uc *RecommendationsUseCase) AnalyzeLocation(ctx context.Context, location string) (*domain.LocationAnalysis, error) {
	ucLogger := uc.logger(ctx, "AnalyzeLocation")
	if uc.service == nil {
		return nil, domain.ErrRecommendationsDisabled
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrInvalidPayload)
	}

	ucLogger.Info("Use case started", port.Fields{"location": location})
	market, err := uc.service.LocationAnalysis(ctx, location)
	if err != nil {
		ucLogger.Error("Failed to get location analysis", err, nil)
		return nil, fmt.Errorf("error getting location analysis: %w", err)
	}

	analysis := domain.EnrichLocation(domain.LocationAnalysis{Location: location, Market: market})
	return &analysis, nil
}

// ForecastPrice treats a zero q.Months as omitted and asks for the default horizon.
func (uc *RecommendationsUseCase) ForecastPrice(ctx context.Context, q domain.PriceForecastQuery) (*domain.PriceForecast, error) {
	ucLogger := uc.logger(ctx, "ForecastPrice")
	if uc.service == nil {
		return nil, domain.ErrRecommendationsDisabled
	}
	if q.Months == 0 {
		q.Months = domain.DefaultForecastMonths
	}
	if q.Months < 0 {
		return nil, fmt.Errorf("%w: months must be positive", domain.ErrInvalidPayload)
	}

	ucLogger.Info("Use case started", port.Fields{"location": q.Location, "property_type": q.PropertyType, "months": q.Months})
	forecast, err := uc.service.PriceForecast(ctx, q)
	if err != nil {
		ucLogger.Error("Failed to get price forecast", err, nil)
		return nil, fmt.Errorf("error getting price forecast: %w", err)
	}
	return forecast, nil
}
