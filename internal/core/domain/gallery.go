package domain

// PlaceholderImage is shown in slots without an image.
const PlaceholderImage = "/placeholder-property.jpg"

// GallerySlotPosition names a fixed place in the detail gallery.
type GallerySlotPosition string

const (
	GallerySlotMain      GallerySlotPosition = "main"
	GallerySlotFloorPlan GallerySlotPosition = "floor-plan"
	GallerySlotBlueprint GallerySlotPosition = "blueprint"
	GallerySlotBottom    GallerySlotPosition = "bottom"
)

// GallerySlot is one image position of the detail gallery.
type GallerySlot struct {
	Position GallerySlotPosition
	Image    string
	// Badge is the overlay label, empty for main and bottom.
	Badge       string
	Placeholder bool
}

var galleryLayout = []struct {
	position GallerySlotPosition
	badge    string
}{
	{GallerySlotMain, ""},
	{GallerySlotFloorPlan, "Floor Plan"},
	{GallerySlotBlueprint, "Blueprint"},
	{GallerySlotBottom, ""},
}

// BuildGallery always returns four slots in layout order. Images beyond
// the fourth are ignored; missing or blank ones become placeholders.
func BuildGallery(images []string) []GallerySlot {
	slots := make([]GallerySlot, 0, len(galleryLayout))
	for i, l := range galleryLayout {
		slot := GallerySlot{Position: l.position, Badge: l.badge}
		if i < len(images) && images[i] != "" {
			slot.Image = images[i]
		} else {
			slot.Image = PlaceholderImage
			slot.Placeholder = true
		}
		slots = append(slots, slot)
	}
	return slots
}
