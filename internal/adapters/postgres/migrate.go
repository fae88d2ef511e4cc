package postgres

import (
	"context"
	"fmt"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		id          BIGINT PRIMARY KEY,
		position    INT NOT NULL DEFAULT 0,
		name        TEXT NOT NULL DEFAULT '',
		address     TEXT NOT NULL,
		price       BIGINT NOT NULL CHECK (price >= 0),
		bedrooms    INT NOT NULL DEFAULT 0 CHECK (bedrooms >= 0),
		bathrooms   INT NOT NULL DEFAULT 0 CHECK (bathrooms >= 0),
		toilets     INT NOT NULL DEFAULT 0 CHECK (toilets >= 0),
		images      TEXT[] NOT NULL DEFAULT '{}',
		image_count INT NOT NULL DEFAULT 0 CHECK (image_count >= 0),
		description TEXT NOT NULL DEFAULT '',
		features    TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS sponsored_ads (
		id              BIGINT PRIMARY KEY,
		position        INT NOT NULL DEFAULT 0,
		image           TEXT NOT NULL,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		cta_text        TEXT NOT NULL DEFAULT '',
		cta_url         TEXT NOT NULL DEFAULT '',
		advertiser_name TEXT NOT NULL DEFAULT '',
		advertiser_logo TEXT NOT NULL DEFAULT ''
	)`,
}

// Migrate creates the catalog tables when they are missing.
func (a *PostgresCatalogAdapter) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := a.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("PostgresCatalogAdapter: migration failed: %w", err)
		}
	}
	return nil
}

// Seed inserts records and ads, keeping rows that already exist. Slice
// order becomes the display position.
func (a *PostgresCatalogAdapter) Seed(ctx context.Context, properties []domain.PropertyRecord, ads []domain.SponsoredAd) error {
	batch := &pgx.Batch{}
	for i, p := range properties {
		batch.Queue(`INSERT INTO properties (id, position, name, address, price, bedrooms, bathrooms, toilets, images, image_count, description, features)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) ON CONFLICT (id) DO NOTHING`,
			p.ID, i, p.Name, p.Address, p.Price, p.Bedrooms, p.Bathrooms, p.Toilets,
			nonNil(p.Images), p.ImageCount, p.Description, nonNil(p.Features))
	}
	for i, ad := range ads {
		batch.Queue(`INSERT INTO sponsored_ads (id, position, image, title, description, cta_text, cta_url, advertiser_name, advertiser_logo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (id) DO NOTHING`,
			ad.ID, i, ad.Image, ad.Title, ad.Description, ad.CTAText, ad.CTAURL, ad.AdvertiserName, ad.AdvertiserLogo)
	}
	if batch.Len() == 0 {
		return nil
	}

	br := a.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("PostgresCatalogAdapter: seed statement %d failed: %w", i, err)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
