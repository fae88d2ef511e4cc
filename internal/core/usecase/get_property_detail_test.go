package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPropertyDetailBuildsGalleryAndPublishesEvent(t *testing.T) {
	catalog := &fakeCatalog{properties: []domain.PropertyRecord{
		{ID: 1, Name: "La Rouge Maisonnette", Images: []string{"a.jpg", "b.jpg"}},
	}}
	events := &fakeEvents{}
	uc := NewGetPropertyDetailUseCase(catalog, events)
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	detail, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "La Rouge Maisonnette", detail.Property.Name)
	require.Len(t, detail.Gallery, 4)
	assert.False(t, detail.Gallery[1].Placeholder)
	assert.True(t, detail.Gallery[2].Placeholder)
	assert.True(t, detail.Gallery[3].Placeholder)

	require.Len(t, events.events, 1)
	assert.Equal(t, domain.PropertyViewedEvent{PropertyID: 1, Path: "/properties/1", ViewedAt: fixed}, events.events[0])
}

func TestGetPropertyDetailNotFound(t *testing.T) {
	events := &fakeEvents{}
	uc := NewGetPropertyDetailUseCase(&fakeCatalog{}, events)

	_, err := uc.Execute(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	assert.Empty(t, events.events)
}

func TestGetPropertyDetailIgnoresEventFailure(t *testing.T) {
	catalog := &fakeCatalog{properties: sampleRecords(1)}
	uc := NewGetPropertyDetailUseCase(catalog, &fakeEvents{err: errors.New("broker gone")})

	detail, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, detail.Gallery, 4)
}

func TestGetPropertyDetailWithoutEvents(t *testing.T) {
	uc := NewGetPropertyDetailUseCase(&fakeCatalog{properties: sampleRecords(2)}, nil)

	detail, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.Property.ID)
}
