package usecases_port

import (
	"context"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

// ListingPage is everything the listing view needs.
type ListingPage struct {
	Properties []domain.PropertyRecord
	Ads        []domain.SponsoredAd
	ViewMode   domain.ViewMode
	Sections   []domain.FilterSection
	Sidebar    domain.SidebarState
}

type GetListingPageUseCase interface {
	// overrides maps section keys to their requested expansion.
	Execute(ctx context.Context, mode domain.ViewMode, overrides map[string]bool) (*ListingPage, error)
}
