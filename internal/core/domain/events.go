package domain

import "time"

// PropertyViewedEvent is published when a detail page is rendered.
type PropertyViewedEvent struct {
	PropertyID int64     `json:"property_id"`
	Path       string    `json:"path"`
	ViewedAt   time.Time `json:"viewed_at"`
}
