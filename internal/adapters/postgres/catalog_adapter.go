package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of *pgxpool.Pool used by the adapter.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var _ Querier = (*pgxpool.Pool)(nil)

// PostgresCatalogAdapter reads listings from the properties and
// sponsored_ads tables.
type PostgresCatalogAdapter struct {
	pool Querier
}

func NewPostgresCatalogAdapter(pool Querier) (*PostgresCatalogAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	return &PostgresCatalogAdapter{pool: pool}, nil
}

const propertyColumns = `id, name, address, price, bedrooms, bathrooms, toilets, images, image_count, description, features`

func scanProperty(row pgx.Row) (domain.PropertyRecord, error) {
	var p domain.PropertyRecord
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Price, &p.Bedrooms, &p.Bathrooms, &p.Toilets,
		&p.Images, &p.ImageCount, &p.Description, &p.Features)
	return p, err
}

func (a *PostgresCatalogAdapter) ListProperties(ctx context.Context) ([]domain.PropertyRecord, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY position ASC, id ASC`

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogAdapter: failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.PropertyRecord
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("PostgresCatalogAdapter: failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresCatalogAdapter: error during properties iteration: %w", err)
	}

	return properties, nil
}

func (a *PostgresCatalogAdapter) GetProperty(ctx context.Context, id int64) (*domain.PropertyRecord, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	p, err := scanProperty(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrPropertyNotFound, id)
		}
		return nil, fmt.Errorf("PostgresCatalogAdapter: failed to get property %d: %w", id, err)
	}
	return &p, nil
}

func (a *PostgresCatalogAdapter) ListSponsoredAds(ctx context.Context) ([]domain.SponsoredAd, error) {
	query := `SELECT id, image, title, description, cta_text, cta_url, advertiser_name, advertiser_logo
	          FROM sponsored_ads ORDER BY position ASC, id ASC`

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("PostgresCatalogAdapter: failed to query sponsored ads: %w", err)
	}
	defer rows.Close()

	var ads []domain.SponsoredAd
	for rows.Next() {
		var ad domain.SponsoredAd
		if err := rows.Scan(&ad.ID, &ad.Image, &ad.Title, &ad.Description, &ad.CTAText, &ad.CTAURL,
			&ad.AdvertiserName, &ad.AdvertiserLogo); err != nil {
			return nil, fmt.Errorf("PostgresCatalogAdapter: failed to scan sponsored ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresCatalogAdapter: error during sponsored ads iteration: %w", err)
	}

	return ads, nil
}
