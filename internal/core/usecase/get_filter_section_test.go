package usecase

import (
	"context"
	"testing"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFilterSection(t *testing.T) {
	uc := NewGetFilterSectionUseCase()

	view, err := uc.Execute(context.Background(), "toilets", true, nil)
	require.NoError(t, err)
	assert.Equal(t, "Toilets", view.Section.Title)
	assert.True(t, view.Expanded)
	assert.True(t, view.Sidebar.IsExpanded("toilets"))

	view, err = uc.Execute(context.Background(), "property-type", false, nil)
	require.NoError(t, err)
	assert.False(t, view.Expanded)
}

func TestGetFilterSectionKeepsOtherOverrides(t *testing.T) {
	uc := NewGetFilterSectionUseCase()

	view, err := uc.Execute(context.Background(), "bedrooms", false, map[string]bool{
		"amenities": true,
		"bedrooms":  true,
		"pets":      true,
	})
	require.NoError(t, err)

	assert.False(t, view.Expanded)
	assert.False(t, view.Sidebar.IsExpanded("bedrooms"))
	assert.True(t, view.Sidebar.IsExpanded("amenities"))
	assert.False(t, view.Sidebar.IsExpanded("toilets"))
}

func TestGetFilterSectionUnknown(t *testing.T) {
	_, err := NewGetFilterSectionUseCase().Execute(context.Background(), "pets", true, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}
