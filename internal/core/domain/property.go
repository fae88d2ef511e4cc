package domain

import "fmt"

// PropertyRecord is the display data of one listing.
type PropertyRecord struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name,omitempty"`
	Address     string   `json:"address"`
	Price       int64    `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Toilets     int      `json:"toilets"`
	Images      []string `json:"images"`
	ImageCount  int      `json:"imageCount"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// Validate rejects negative numeric fields.
func (p PropertyRecord) Validate() error {
	switch {
	case p.Price < 0:
		return fmt.Errorf("%w: property %d has negative price", ErrInvalidPayload, p.ID)
	case p.Bedrooms < 0 || p.Bathrooms < 0 || p.Toilets < 0:
		return fmt.Errorf("%w: property %d has negative room counts", ErrInvalidPayload, p.ID)
	case p.ImageCount < 0:
		return fmt.Errorf("%w: property %d has negative image count", ErrInvalidPayload, p.ID)
	}
	return nil
}

// CoverImage is the first image or "" when the record has none.
func (p PropertyRecord) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// DisplayName falls back to the address for records without a name.
func (p PropertyRecord) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Address
}

// ElementID is the stable DOM id of the record's card.
func (p PropertyRecord) ElementID() string {
	return fmt.Sprintf("property-%d", p.ID)
}
