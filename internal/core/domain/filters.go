package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterKind is the input type of a section's options.
type FilterKind string

const (
	FilterKindCheckbox FilterKind = "checkbox"
	FilterKindRadio    FilterKind = "radio"
)

// FilterSection is one collapsible block of the sidebar. Options are
// decoration only; selecting them does not filter the listing.
type FilterSection struct {
	Key             string
	Title           string
	Kind            FilterKind
	Options         []string
	DefaultExpanded bool
	// ShowPriceSlider adds the range slider under the options.
	ShowPriceSlider bool
	SliderMinLabel  string
	SliderMaxLabel  string
}

// DefaultFilterSections returns the sidebar sections in display order.
func DefaultFilterSections() []FilterSection {
	return []FilterSection{
		{
			Key:             "property-type",
			Title:           "Property type",
			Kind:            FilterKindCheckbox,
			Options:         []string{"Single-Family Home", "Condominium", "Town House", "Multi-Family Home", "Commercial", "Land"},
			DefaultExpanded: true,
		},
		{
			Key:             "price-range",
			Title:           "Price Range",
			Kind:            FilterKindRadio,
			Options:         []string{"<$300k", "$300k - $500k", "$500k - $1M", ">$1M"},
			DefaultExpanded: true,
			ShowPriceSlider: true,
			SliderMinLabel:  "$0",
			SliderMaxLabel:  "$500k",
		},
		{
			Key:             "bedrooms",
			Title:           "Bedrooms",
			Kind:            FilterKindCheckbox,
			Options:         []string{"Box/Quarter", "Studio", "1 bedroom", "2 bedrooms", "3 bedrooms", "4 bedrooms", ">4 bedrooms"},
			DefaultExpanded: true,
		},
		{
			Key:             "bathrooms",
			Title:           "Bathrooms",
			Kind:            FilterKindCheckbox,
			Options:         []string{"1", "2", "3", "4", ">4"},
			DefaultExpanded: true,
		},
		{
			Key:             "toilets",
			Title:           "Toilets",
			Kind:            FilterKindCheckbox,
			Options:         []string{"1", "2", "3", "4", ">4"},
			DefaultExpanded: false,
		},
		{
			Key:             "amenities",
			Title:           "Amenities",
			Kind:            FilterKindCheckbox,
			Options:         []string{"Swimming Pool", "Garden", "Garage", "Security", "Air Conditioning", "Heating"},
			DefaultExpanded: false,
		},
	}
}

// FindFilterSection looks a section up by key.
func FindFilterSection(sections []FilterSection, key string) (FilterSection, bool) {
	for _, s := range sections {
		if s.Key == key {
			return s, true
		}
	}
	return FilterSection{}, false
}

// SidebarState holds the expansion flag of every section. Each flag is
// independent: changing one never touches another.
type SidebarState struct {
	expanded map[string]bool
}

// NewSidebarState starts every section at its default.
func NewSidebarState(sections []FilterSection) SidebarState {
	st := SidebarState{expanded: make(map[string]bool, len(sections))}
	for _, s := range sections {
		st.expanded[s.Key] = s.DefaultExpanded
	}
	return st
}

// IsExpanded reports the flag of key; unknown keys are collapsed.
func (s SidebarState) IsExpanded(key string) bool {
	return s.expanded[key]
}

// Toggle returns a copy of s with only key flipped.
func (s SidebarState) Toggle(key string) (SidebarState, error) {
	cur, ok := s.expanded[key]
	if !ok {
		return s, fmt.Errorf("%w: unknown filter section %q", ErrInvalidPayload, key)
	}
	return s.Set(key, !cur)
}

// Set returns a copy of s with key set to expanded.
func (s SidebarState) Set(key string, expanded bool) (SidebarState, error) {
	if _, ok := s.expanded[key]; !ok {
		return s, fmt.Errorf("%w: unknown filter section %q", ErrInvalidPayload, key)
	}
	next := SidebarState{expanded: make(map[string]bool, len(s.expanded))}
	for k, v := range s.expanded {
		next.expanded[k] = v
	}
	next.expanded[key] = expanded
	return next, nil
}

// WithOverrides applies overrides on top of s and returns the keys it
// ignored because no such section exists.
func (s SidebarState) WithOverrides(overrides map[string]bool) (SidebarState, []string) {
	var unknown []string
	for key, expanded := range overrides {
		next, err := s.Set(key, expanded)
		if err != nil {
			unknown = append(unknown, key)
			continue
		}
		s = next
	}
	return s, unknown
}

// Flags returns a copy of every section flag.
func (s SidebarState) Flags() map[string]bool {
	out := make(map[string]bool, len(s.expanded))
	for k, v := range s.expanded {
		out[k] = v
	}
	return out
}

// ParseExpansion accepts open/closed and the usual boolean spellings.
func ParseExpansion(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open", "expanded":
		return true, true
	case "closed", "collapsed":
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
