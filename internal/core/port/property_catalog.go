package port

import (
	"context"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

// PropertyCatalogPort provides the records shown by the pages.
type PropertyCatalogPort interface {
	ListProperties(ctx context.Context) ([]domain.PropertyRecord, error)
	// GetProperty returns domain.ErrPropertyNotFound for unknown ids.
	GetProperty(ctx context.Context, id int64) (*domain.PropertyRecord, error)
	ListSponsoredAds(ctx context.Context) ([]domain.SponsoredAd, error)
}
