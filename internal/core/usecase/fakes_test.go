package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

type fakeCatalog struct {
	properties []domain.PropertyRecord
	ads        []domain.SponsoredAd
	err        error
}

func (f *fakeCatalog) ListProperties(ctx context.Context) ([]domain.PropertyRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.PropertyRecord(nil), f.properties...), nil
}

func (f *fakeCatalog) GetProperty(ctx context.Context, id int64) (*domain.PropertyRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.properties {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func (f *fakeCatalog) ListSponsoredAds(ctx context.Context) ([]domain.SponsoredAd, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.SponsoredAd(nil), f.ads...), nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []domain.PropertyViewedEvent
	err    error
}

func (f *fakeEvents) PropertyViewed(ctx context.Context, event domain.PropertyViewedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

type fakeRecommendationService struct {
	lastPrefs    domain.Preferences
	lastLimit    int
	lastForecast domain.PriceForecastQuery
	market       map[string]interface{}
	err          error
}

func (f *fakeRecommendationService) Suggest(ctx context.Context, prefs domain.Preferences, limit int) (*domain.RecommendationList, error) {
	f.lastPrefs, f.lastLimit = prefs, limit
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RecommendationList{Recommendations: []domain.Recommendation{{PropertyID: "p1", Score: 0.9, MatchPercentage: 90}}}, nil
}

func (f *fakeRecommendationService) Similar(ctx context.Context, propertyID string) (*domain.SimilarProperties, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SimilarProperties{ReferenceProperty: domain.ReferenceProperty{PropertyID: propertyID}}, nil
}

func (f *fakeRecommendationService) PredictPrice(ctx context.Context, input domain.PricePredictionInput) (*domain.PricePrediction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PricePrediction{PredictedPrice: 12500000, Confidence: 0.8}, nil
}

func (f *fakeRecommendationService) LocationAnalysis(ctx context.Context, location string) (map[string]interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.market, nil
}

func (f *fakeRecommendationService) PriceForecast(ctx context.Context, q domain.PriceForecastQuery) (*domain.PriceForecast, error) {
	f.lastForecast = q
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PriceForecast{Location: q.Location, Months: q.Months}, nil
}

type fakeValidator struct {
	rejectKey string
	seen      []string
}

func (f *fakeValidator) Validate(schemaKey string, body []byte) error {
	f.seen = append(f.seen, schemaKey)
	if schemaKey == f.rejectKey {
		return errors.New("schema mismatch")
	}
	return nil
}

func sampleRecords(n int) []domain.PropertyRecord {
	out := make([]domain.PropertyRecord, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.PropertyRecord{ID: int64(i), Address: "Somewhere", Price: int64(i) * 100000})
	}
	return out
}
