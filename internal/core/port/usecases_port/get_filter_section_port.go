package usecases_port

import (
	"context"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

type FilterSectionView struct {
	Section  domain.FilterSection
	Expanded bool
	// Sidebar is the whole sidebar with the requested section applied last.
	Sidebar domain.SidebarState
}

type GetFilterSectionUseCase interface {
	// overrides are the other sections' states carried by the request.
	Execute(ctx context.Context, key string, expanded bool, overrides map[string]bool) (*FilterSectionView, error)
}
