package views

import (
	"fmt"
	"strconv"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PropertyCard is the listing tile of one record. Buy and like are decoration.
func PropertyCard(p domain.PropertyRecord) g.Node {
	image := p.CoverImage()
	if image == "" {
		image = domain.PlaceholderImage
	}
	detailURL := fmt.Sprintf("/properties/%d", p.ID)

	return Article(
		ID(p.ElementID()),
		Class("flex flex-col"),
		g.Attr("data-property-id", strconv.FormatInt(p.ID, 10)),
		Div(
			Class("w-[250px] h-[365px] relative flex flex-col"),
			A(
				Href(detailURL),
				Class("relative h-[250px] overflow-hidden block"),
				Img(Src(image), Alt("Property"), Class("w-full h-full object-cover")),
				Div(
					Class("absolute top-3 left-3 bg-[#212121] text-white py-1 px-2 rounded flex gap-1.5 items-center text-xs"),
					publicIcon("map.svg", "", ""),
					Span(Class("truncate max-w-[180px]"), g.Text(p.Address)),
				),
				Div(
					Class("absolute bottom-3 left-3 bg-[#212121] text-white p-1 rounded flex gap-1.5 items-center text-xs"),
					publicIcon("camera.svg", "", ""),
					Span(g.Text(strconv.Itoa(p.ImageCount))),
				),
			),
			Div(
				Class("bg-[#0D0D0D] flex-1 p-3"),
				Div(Class("text-white font-bold text-xl mb-2"), g.Attr("data-field", "price"), g.Text(FormatPrice(p.Price))),
				Div(
					Class("flex space-x-2"),
					countBadge("Bed.svg", "bedrooms", p.Bedrooms),
					countBadge("Bathtub.svg", "bathrooms", p.Bathrooms),
					countBadge("toilet.svg", "toilets", p.Toilets),
				),
			),
		),
		Div(
			Class("w-[250px] h-[66px] bg-[#0D0D0D] mt-1 flex items-center justify-between p-3"),
			Button(Type("button"), Class("bg-[#212121] text-[#f10000] font-bold py-2 px-10 rounded min-w-[170px]"), g.Text("Buy")),
			Button(Type("button"), Class("bg-[#212121] p-2 rounded"), g.Attr("aria-label", "Like"), publicIcon("like.svg", "", "")),
		),
	)
}

func countBadge(icon, field string, n int) g.Node {
	return Div(
		Class("bg-[#212121] rounded p-2 flex gap-1.5 items-center"),
		g.Attr("data-field", field),
		publicIcon(icon, "", ""),
		Span(Class("text-white"), g.Text(strconv.Itoa(n))),
	)
}
