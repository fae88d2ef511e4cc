package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetListingPageKeepsCatalogOrder(t *testing.T) {
	catalog := &fakeCatalog{
		properties: sampleRecords(6),
		ads:        []domain.SponsoredAd{{ID: 1, Title: "Premium Oceanview Property"}},
	}
	uc := NewGetListingPageUseCase(catalog)

	page, err := uc.Execute(context.Background(), domain.ViewModeList, nil)
	require.NoError(t, err)

	require.Len(t, page.Properties, 6)
	for i, p := range page.Properties {
		assert.Equal(t, int64(i+1), p.ID)
	}
	assert.Equal(t, domain.ViewModeList, page.ViewMode)
	require.Len(t, page.Ads, 1)
	assert.Equal(t, "Learn More", page.Ads[0].CTAText)
	assert.Equal(t, "#", page.Ads[0].CTAURL)
}

func TestGetListingPageAppliesSectionOverrides(t *testing.T) {
	uc := NewGetListingPageUseCase(&fakeCatalog{})

	page, err := uc.Execute(context.Background(), domain.ViewModeGrid, map[string]bool{
		"toilets":   true,
		"bedrooms":  false,
		"not-there": true,
	})
	require.NoError(t, err)

	assert.True(t, page.Sidebar.IsExpanded("toilets"))
	assert.False(t, page.Sidebar.IsExpanded("bedrooms"))
	assert.True(t, page.Sidebar.IsExpanded("property-type"))
	assert.False(t, page.Sidebar.IsExpanded("amenities"))
	assert.Len(t, page.Sections, 6)
}

func TestGetListingPagePropagatesCatalogError(t *testing.T) {
	boom := errors.New("db down")
	uc := NewGetListingPageUseCase(&fakeCatalog{err: boom})

	_, err := uc.Execute(context.Background(), domain.ViewModeGrid, nil)
	assert.ErrorIs(t, err, boom)
}
