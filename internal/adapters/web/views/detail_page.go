package views

import (
	"fmt"
	"strconv"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port/usecases_port"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func DetailPage(detail *usecases_port.PropertyDetail) g.Node {
	p := detail.Property
	return Page(p.DisplayName(),
		Navbar(),
		Div(
			Class("bg-[#0D0D0D] min-h-screen pb-12"),
			Div(
				Class("container mx-auto px-6 pt-6"),
				A(Href("/properties"), Class("flex items-center text-[#f10000] mb-4"),
					publicIcon("back.svg", "Back", "h-4 w-4 mr-2"),
					Span(g.Text("BACK TO SEARCH")),
				),
				detailHeader(p),
				Gallery(p.DisplayName(), detail.Gallery),
				detailPanels(p),
			),
		),
	)
}

func detailHeader(p domain.PropertyRecord) g.Node {
	return Div(
		Class("flex justify-between items-start mb-4"),
		Div(
			H1(Class("text-white text-3xl font-bold mb-2"), g.Text(p.DisplayName())),
			Div(Class("flex items-center text-white"),
				publicIcon("map.svg", "Location", "h-5 w-5 mr-2"),
				Span(g.Text(p.Address)),
			),
		),
		Div(
			Class("flex space-x-4"),
			Button(Type("button"), Class("text-white"), publicIcon("share.svg", "Share", "h-[20px] w-[17px]")),
			Button(Type("button"), Class("text-white"), publicIcon("heart.svg", "Like", "h-6 w-6")),
		),
	)
}

// Gallery lays out exactly the slots it is given: main on the left, the
// two badged images above the bottom one on the right.
func Gallery(name string, slots []domain.GallerySlot) g.Node {
	byPos := make(map[domain.GallerySlotPosition]domain.GallerySlot, len(slots))
	for _, s := range slots {
		byPos[s.Position] = s
	}

	return Div(
		ID("gallery"),
		Class("flex gap-4 mb-8"),
		gallerySlot(name, byPos[domain.GallerySlotMain], "w-[700px] h-[500px]"),
		Div(
			Class("flex flex-col gap-10"),
			Div(
				Class("flex gap-4"),
				gallerySlot(name, byPos[domain.GallerySlotFloorPlan], "w-[280px] h-[210px]"),
				gallerySlot(name, byPos[domain.GallerySlotBlueprint], "w-[280px] h-[210px]"),
			),
			gallerySlot(name, byPos[domain.GallerySlotBottom], "w-[600px] h-[250px]"),
		),
	)
}

func gallerySlot(name string, s domain.GallerySlot, size string) g.Node {
	if s.Position == "" {
		return nil
	}
	alt := name
	if s.Position != domain.GallerySlotMain {
		alt = fmt.Sprintf("%s %s", name, s.Position)
	}
	return Div(
		Class("relative"),
		g.Attr("data-slot", string(s.Position)),
		g.Attr("data-placeholder", strconv.FormatBool(s.Placeholder)),
		Img(Src(s.Image), Alt(alt), Class(size+" object-cover rounded-md")),
		g.If(s.Badge != "",
			Div(Class("absolute bottom-4 left-4 bg-[#212121] text-white text-sm px-2 py-1 rounded"), g.Text(s.Badge)),
		),
		Button(Type("button"), Class("absolute left-4 top-4 bg-[#212121] p-2 rounded"),
			publicIcon("expand.svg", "Expand", "h-5 w-5"),
		),
	)
}

func detailPanels(p domain.PropertyRecord) g.Node {
	return Div(
		ID("property-details"),
		Class("grid grid-cols-1 lg:grid-cols-3 gap-8 text-white"),
		Section(
			Class("lg:col-span-2 bg-[#1E1E1E] rounded-md p-6"),
			H2(Class("text-xl font-bold mb-4"), g.Text("Overview")),
			g.If(p.Description != "", P(Class("text-gray-300 mb-4"), g.Text(p.Description))),
			g.If(len(p.Features) > 0,
				Ul(Class("grid grid-cols-2 gap-2"),
					g.Map(p.Features, func(f string) g.Node {
						return Li(Class("bg-[#212121] rounded px-3 py-2"), g.Text(f))
					}),
				),
			),
		),
		Section(
			Class("bg-[#1E1E1E] rounded-md p-6"),
			Div(Class("text-3xl font-bold mb-4"), g.Attr("data-field", "price"), g.Text(FormatPrice(p.Price))),
			Div(
				Class("flex space-x-2"),
				countBadge("Bed.svg", "bedrooms", p.Bedrooms),
				countBadge("Bathtub.svg", "bathrooms", p.Bathrooms),
				countBadge("toilet.svg", "toilets", p.Toilets),
			),
		),
	)
}
