package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFilterSections(t *testing.T) {
	sections := DefaultFilterSections()
	require.Len(t, sections, 6)

	want := []struct {
		key      string
		expanded bool
	}{
		{"property-type", true},
		{"price-range", true},
		{"bedrooms", true},
		{"bathrooms", true},
		{"toilets", false},
		{"amenities", false},
	}
	for i, w := range want {
		assert.Equal(t, w.key, sections[i].Key)
		assert.Equal(t, w.expanded, sections[i].DefaultExpanded, w.key)
	}

	price, ok := FindFilterSection(sections, "price-range")
	require.True(t, ok)
	assert.Equal(t, FilterKindRadio, price.Kind)
	assert.True(t, price.ShowPriceSlider)
}

func TestSidebarStateToggleIsIndependent(t *testing.T) {
	sections := DefaultFilterSections()
	initial := NewSidebarState(sections)

	for _, a := range sections {
		toggled, err := initial.Toggle(a.Key)
		require.NoError(t, err)
		assert.Equal(t, !initial.IsExpanded(a.Key), toggled.IsExpanded(a.Key))

		for _, b := range sections {
			if b.Key == a.Key {
				continue
			}
			assert.Equal(t, initial.IsExpanded(b.Key), toggled.IsExpanded(b.Key), "toggling %s changed %s", a.Key, b.Key)
		}
	}
}

func TestSidebarStateToggleDoesNotMutateReceiver(t *testing.T) {
	st := NewSidebarState(DefaultFilterSections())
	_, err := st.Toggle("bedrooms")
	require.NoError(t, err)
	assert.True(t, st.IsExpanded("bedrooms"))
}

func TestSidebarStateUnknownSection(t *testing.T) {
	st := NewSidebarState(DefaultFilterSections())
	_, err := st.Toggle("garage-size")
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.False(t, st.IsExpanded("garage-size"))
}

func TestParseExpansion(t *testing.T) {
	for raw, want := range map[string]bool{"open": true, "closed": false, "true": true, "0": false, "Expanded": true} {
		got, ok := ParseExpansion(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := ParseExpansion("maybe")
	assert.False(t, ok)
}

func TestSidebarStateWithOverrides(t *testing.T) {
	state := NewSidebarState(DefaultFilterSections())

	next, unknown := state.WithOverrides(map[string]bool{"toilets": true, "pets": true})
	assert.Equal(t, []string{"pets"}, unknown)
	assert.True(t, next.IsExpanded("toilets"))
	assert.False(t, state.IsExpanded("toilets"))

	flags := next.Flags()
	assert.Len(t, flags, 6)
	flags["bedrooms"] = false
	assert.True(t, next.IsExpanded("bedrooms"))
}
