package views

import (
	"strconv"

	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SponsoredAdCard(ad domain.SponsoredAd) g.Node {
	ad = ad.WithDefaults()
	return Article(
		ID("sponsored-ad-"+strconv.FormatInt(ad.ID, 10)),
		Class("w-[450px] h-[450px] flex-shrink-0 bg-[#1E1E1E] overflow-hidden shadow-lg"),
		Div(
			Class("h-[250px] relative"),
			Img(Src(ad.Image), Alt(ad.Title), Class("w-full h-full object-cover")),
			Div(Class("absolute top-4 right-4 bg-[#f10000] text-white text-xs font-bold px-3 py-1 rounded-full"), g.Text("SPONSORED")),
		),
		Div(
			Class("p-4 flex flex-col h-[200px]"),
			H3(Class("text-white font-bold text-xl mb-2"), g.Text(ad.Title)),
			P(Class("text-gray-300 text-sm mb-4 flex-grow"), g.Text(ad.Description)),
			Div(
				Class("flex justify-between items-center mt-auto"),
				A(
					Href(ad.CTAURL),
					Class("bg-[#f10000] hover:bg-red-700 text-white py-2 px-6 font-bold transition duration-300"),
					g.Text(ad.CTAText),
				),
				Div(
					Class("flex items-center"),
					Img(Src(ad.AdvertiserLogo), Alt(ad.AdvertiserName), Class("w-8 h-8 object-cover mr-2")),
					Span(Class("text-white text-xs"), g.Text(ad.AdvertiserName)),
				),
			),
		),
	)
}
