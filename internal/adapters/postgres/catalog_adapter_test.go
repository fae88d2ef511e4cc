package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Dearie-de-cybek/PropTech/internal/adapters/memory"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	pgclient "github.com/Dearie-de-cybek/PropTech/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresCatalogAdapterRequiresPool(t *testing.T) {
	_, err := NewPostgresCatalogAdapter(nil)
	assert.Error(t, err)
}

// Runs against a real database when TEST_DATABASE_URL is set.
func TestPostgresCatalogRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgclient.NewClient(ctx, pgclient.Config{DatabaseURL: url})
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `DROP TABLE IF EXISTS properties, sponsored_ads`)
	require.NoError(t, err)

	adapter, err := NewPostgresCatalogAdapter(pool)
	require.NoError(t, err)
	require.NoError(t, adapter.Migrate(ctx))
	require.NoError(t, adapter.Seed(ctx, memory.SampleProperties(), memory.SampleSponsoredAds()))
	// seeding twice keeps existing rows
	require.NoError(t, adapter.Seed(ctx, memory.SampleProperties(), memory.SampleSponsoredAds()))

	props, err := adapter.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, props, 6)
	assert.Equal(t, memory.SampleProperties()[0].Address, props[0].Address)

	p, err := adapter.GetProperty(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "La Rouge Maisonnette", p.Name)
	assert.Len(t, p.Images, 4)

	_, err = adapter.GetProperty(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	ads, err := adapter.ListSponsoredAds(ctx)
	require.NoError(t, err)
	assert.Len(t, ads, 3)
}
