package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseViewMode(t *testing.T) {
	cases := map[string]ViewMode{
		"":        ViewModeGrid,
		"grid":    ViewModeGrid,
		"list":    ViewModeList,
		" LIST ":  ViewModeList,
		"masonry": ViewModeGrid,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseViewMode(in), "input %q", in)
	}
}

func TestViewModeRoundTrip(t *testing.T) {
	start := ParseViewMode("")
	assert.Equal(t, ViewModeList, start.Toggle())
	assert.Equal(t, start, start.Toggle().Toggle())
	assert.Equal(t, start.ColumnClasses(), start.Toggle().Toggle().ColumnClasses())
}

func TestViewModeColumnClasses(t *testing.T) {
	assert.Equal(t, "grid-cols-1 sm:grid-cols-2 lg:grid-cols-3", ViewModeGrid.ColumnClasses())
	assert.Equal(t, "grid-cols-1", ViewModeList.ColumnClasses())
}
