package port

import (
	"context"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
)

// ViewEventsPort announces that a property detail page was served.
type ViewEventsPort interface {
	PropertyViewed(ctx context.Context, event domain.PropertyViewedEvent) error
}
