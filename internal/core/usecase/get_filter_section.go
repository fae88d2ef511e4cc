package usecase

import (
	"context"
	"fmt"

	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port/usecases_port"
)

type GetFilterSectionUseCase struct {
	sections []domain.FilterSection
}

func NewGetFilterSectionUseCase() *GetFilterSectionUseCase {
	return &GetFilterSectionUseCase{sections: domain.DefaultFilterSections()}
}

// Execute returns one section in the requested state. Overrides only feed
// the sidebar snapshot; they never change the requested section.
func (uc *GetFilterSectionUseCase) Execute(ctx context.Context, key string, expanded bool, overrides map[string]bool) (*usecases_port.FilterSectionView, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFilterSection",
		"section":  key,
	})

	section, ok := domain.FindFilterSection(uc.sections, key)
	if !ok {
		ucLogger.Debug("Unknown filter section requested", nil)
		return nil, fmt.Errorf("%w: unknown filter section %q", domain.ErrInvalidPayload, key)
	}

	sidebar, unknown := domain.NewSidebarState(uc.sections).WithOverrides(overrides)
	for _, k := range unknown {
		ucLogger.Debug("Ignoring unknown filter section override", port.Fields{"override": k})
	}
	sidebar, err := sidebar.Set(key, expanded)
	if err != nil {
		return nil, err
	}

	return &usecases_port.FilterSectionView{Section: section, Expanded: expanded, Sidebar: sidebar}, nil
}
