package usecase

import (
	"context"
	"fmt"

	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port/usecases_port"
)

type GetListingPageUseCase struct {
	catalog  port.PropertyCatalogPort
	sections []domain.FilterSection
}

func NewGetListingPageUseCase(catalog port.PropertyCatalogPort) *GetListingPageUseCase {
	return &GetListingPageUseCase{
		catalog:  catalog,
		sections: domain.DefaultFilterSections(),
	}
}

// Execute loads the records and ads in catalog order. Unknown section
// keys in overrides are ignored.
func (uc *GetListingPageUseCase) Execute(ctx context.Context, mode domain.ViewMode, overrides map[string]bool) (*usecases_port.ListingPage, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "GetListingPage",
		"view_mode": mode.String(),
	})
	ucLogger.Debug("Use case started", nil)

	properties, err := uc.catalog.ListProperties(ctx)
	if err != nil {
		ucLogger.Error("Failed to list properties", err, nil)
		return nil, fmt.Errorf("could not list properties: %w", err)
	}

	ads, err := uc.catalog.ListSponsoredAds(ctx)
	if err != nil {
		ucLogger.Error("Failed to list sponsored ads", err, nil)
		return nil, fmt.Errorf("could not list sponsored ads: %w", err)
	}
	for i := range ads {
		ads[i] = ads[i].WithDefaults()
	}

	sidebar, unknown := domain.NewSidebarState(uc.sections).WithOverrides(overrides)
	for _, key := range unknown {
		ucLogger.Debug("Ignoring unknown filter section override", port.Fields{"section": key})
	}

	ucLogger.Debug("Listing page assembled", port.Fields{"properties": len(properties), "ads": len(ads)})

	return &usecases_port.ListingPage{
		Properties: properties,
		Ads:        ads,
		ViewMode:   mode,
		Sections:   uc.sections,
		Sidebar:    sidebar,
	}, nil
}
