package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port/usecases_port"
)

type GetPropertyDetailUseCase struct {
	catalog port.PropertyCatalogPort
	events  port.ViewEventsPort
	now     func() time.Time
}

// NewGetPropertyDetailUseCase accepts a nil events port.
func NewGetPropertyDetailUseCase(catalog port.PropertyCatalogPort, events port.ViewEventsPort) *GetPropertyDetailUseCase {
	return &GetPropertyDetailUseCase{
		catalog: catalog,
		events:  events,
		now:     time.Now,
	}
}

// Execute loads the record and builds its four-slot gallery. A failed
// view event is logged and does not fail the page.
func (uc *GetPropertyDetailUseCase) Execute(ctx context.Context, id int64) (*usecases_port.PropertyDetail, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetPropertyDetail",
		"property_id": id,
	})
	ucLogger.Debug("Use case started", nil)

	record, err := uc.catalog.GetProperty(ctx, id)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, fmt.Errorf("could not load property %d: %w", id, err)
	}

	if uc.events != nil {
		event := domain.PropertyViewedEvent{
			PropertyID: record.ID,
			Path:       fmt.Sprintf("/properties/%d", record.ID),
			ViewedAt:   uc.now().UTC(),
		}
		if err := uc.events.PropertyViewed(ctx, event); err != nil {
			ucLogger.Error("Failed to publish property view event", err, nil)
		}
	}

	return &usecases_port.PropertyDetail{
		Property: *record,
		Gallery:  domain.BuildGallery(record.Images),
	}, nil
}
