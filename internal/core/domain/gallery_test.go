package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGalleryFourImages(t *testing.T) {
	slots := BuildGallery([]string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"})
	require.Len(t, slots, 4)

	assert.Equal(t, []GallerySlotPosition{GallerySlotMain, GallerySlotFloorPlan, GallerySlotBlueprint, GallerySlotBottom},
		[]GallerySlotPosition{slots[0].Position, slots[1].Position, slots[2].Position, slots[3].Position})
	assert.Equal(t, "Floor Plan", slots[1].Badge)
	assert.Equal(t, "Blueprint", slots[2].Badge)
	for i, s := range slots {
		assert.False(t, s.Placeholder, "slot %d", i)
	}
	assert.Equal(t, "d.jpg", slots[3].Image)
}

func TestBuildGalleryFewerImages(t *testing.T) {
	for _, images := range [][]string{nil, {}, {"a.jpg"}, {"a.jpg", "", "c.jpg"}} {
		slots := BuildGallery(images)
		require.Len(t, slots, 4)
		for i, s := range slots {
			if i < len(images) && images[i] != "" {
				assert.Equal(t, images[i], s.Image)
				assert.False(t, s.Placeholder)
			} else {
				assert.Equal(t, PlaceholderImage, s.Image)
				assert.True(t, s.Placeholder)
			}
		}
	}
}

func TestBuildGalleryIgnoresExtraImages(t *testing.T) {
	slots := BuildGallery([]string{"1", "2", "3", "4", "5", "6"})
	require.Len(t, slots, 4)
	assert.Equal(t, "4", slots[3].Image)
}
