package usecase

import (
	"context"
	"fmt"

	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
)

type PropertyCatalogUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewPropertyCatalogUseCase(catalog port.PropertyCatalogPort) *PropertyCatalogUseCase {
	return &PropertyCatalogUseCase{catalog: catalog}
}

func (uc *PropertyCatalogUseCase) ListProperties(ctx context.Context) ([]domain.PropertyRecord, error) {
	properties, err := uc.catalog.ListProperties(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to list properties", err, port.Fields{"use_case": "ListProperties"})
		return nil, fmt.Errorf("could not list properties: %w", err)
	}
	return properties, nil
}

func (uc *PropertyCatalogUseCase) GetProperty(ctx context.Context, id int64) (*domain.PropertyRecord, error) {
	return uc.catalog.GetProperty(ctx, id)
}
