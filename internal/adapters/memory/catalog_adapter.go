package memory

import (
	"context"
	"fmt"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

// CatalogAdapter serves a fixed set of records. It never mutates them, so
// it is safe for concurrent use.
type CatalogAdapter struct {
	properties []domain.PropertyRecord
	byID       map[int64]int
	ads        []domain.SponsoredAd
}

// NewCatalogAdapter rejects invalid records and duplicate ids.
func NewCatalogAdapter(properties []domain.PropertyRecord, ads []domain.SponsoredAd) (*CatalogAdapter, error) {
	a := &CatalogAdapter{
		properties: properties,
		byID:       make(map[int64]int, len(properties)),
		ads:        ads,
	}
	for i, p := range properties {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := a.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate property id %d", domain.ErrInvalidPayload, p.ID)
		}
		a.byID[p.ID] = i
	}
	seenAds := make(map[int64]bool, len(ads))
	for _, ad := range ads {
		if seenAds[ad.ID] {
			return nil, fmt.Errorf("%w: duplicate sponsored ad id %d", domain.ErrInvalidPayload, ad.ID)
		}
		seenAds[ad.ID] = true
	}
	return a, nil
}

// NewSampleCatalogAdapter serves SampleProperties and SampleSponsoredAds.
func NewSampleCatalogAdapter() *CatalogAdapter {
	a, err := NewCatalogAdapter(SampleProperties(), SampleSponsoredAds())
	if err != nil {
		panic(fmt.Sprintf("memory: invalid sample data: %v", err))
	}
	return a
}

func (a *CatalogAdapter) ListProperties(ctx context.Context) ([]domain.PropertyRecord, error) {
	out := make([]domain.PropertyRecord, len(a.properties))
	copy(out, a.properties)
	return out, nil
}

func (a *CatalogAdapter) GetProperty(ctx context.Context, id int64) (*domain.PropertyRecord, error) {
	i, ok := a.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrPropertyNotFound, id)
	}
	p := a.properties[i]
	return &p, nil
}

func (a *CatalogAdapter) ListSponsoredAds(ctx context.Context) ([]domain.SponsoredAd, error) {
	out := make([]domain.SponsoredAd, len(a.ads))
	copy(out, a.ads)
	return out, nil
}
