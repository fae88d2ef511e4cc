package usecase

import (
	"context"
	"testing"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyCatalogUseCase(t *testing.T) {
	uc := NewPropertyCatalogUseCase(&fakeCatalog{properties: sampleRecords(3)})

	list, err := uc.ListProperties(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 3)

	p, err := uc.GetProperty(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), p.Price)

	_, err = uc.GetProperty(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}
