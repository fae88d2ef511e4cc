package usecases_port

import (
	"context"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

type PropertyDetail struct {
	Property domain.PropertyRecord
	Gallery  []domain.GallerySlot
}

type GetPropertyDetailUseCase interface {
	Execute(ctx context.Context, id int64) (*PropertyDetail, error)
}
