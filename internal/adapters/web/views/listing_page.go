package views

import (
	"net/url"
	"strconv"

	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port/usecases_port"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const ListingRegionID = "listing-region"

func ListingPage(page *usecases_port.ListingPage) g.Node {
	return Page("Properties",
		Navbar(),
		Section(
			ID("sponsored-ads"),
			Class("py-8 px-6"),
			Div(
				Class("flex justify-center gap-6 overflow-x-auto pb-4 mx-auto"),
				g.Map(page.Ads, SponsoredAdCard),
			),
		),
		Div(Class("border-t border-[#404040] mx-6")),
		Main(
			Class("flex px-6 py-6"),
			Div(Class("w-64 flex-shrink-0"), FilterSidebar(page.Sections, page.Sidebar, page.ViewMode)),
			ListingRegion(page.Properties, page.ViewMode, page.Sidebar),
		),
	)
}

// ListingRegion is the toolbar plus the cards. The view toggles replace
// only this element and keep the sidebar state in their links.
func ListingRegion(properties []domain.PropertyRecord, mode domain.ViewMode, sidebar domain.SidebarState) g.Node {
	return Div(
		ID(ListingRegionID),
		Class("flex-1 ml-6"),
		Div(
			Class("flex justify-end items-center mb-6"),
			viewToggle(domain.ViewModeGrid, mode, sidebar, "Grid view", iconGrid),
			viewToggle(domain.ViewModeList, mode, sidebar, "List view", iconList),
			Div(Class("h-6 w-px bg-white mx-3")),
			Span(Class("text-white"), g.Text("Sort")),
		),
		PropertyGrid(properties, mode),
	)
}

// PropertyGrid renders one card per record in input order.
func PropertyGrid(properties []domain.PropertyRecord, mode domain.ViewMode) g.Node {
	return Div(
		ID("property-grid"),
		Class("grid "+mode.ColumnClasses()+" gap-8"),
		g.Attr("data-view-mode", mode.String()),
		g.Map(properties, PropertyCard),
	)
}

func viewToggle(target, current domain.ViewMode, sidebar domain.SidebarState, label, icon string) g.Node {
	query := pageQuery(target, sidebar).Encode()
	return A(
		Href("/properties?"+query),
		c.Classes{"p-2": true, "text-[#f10000]": target == current, "text-white": target != current},
		g.Attr("aria-label", label),
		g.Attr("aria-pressed", strconv.FormatBool(target == current)),
		g.Attr("data-view", target.String()),
		hx.Get("/partials/listing?"+query),
		hx.Target("#"+ListingRegionID),
		hx.Swap("outerHTML"),
		hx.PushURL("/properties?"+query),
		strokeIcon("h-6 w-6", icon),
	)
}

// pageQuery encodes the listing UI state: the view and every section flag.
func pageQuery(view domain.ViewMode, sidebar domain.SidebarState) url.Values {
	q := url.Values{}
	q.Set(constants.QueryParamView, view.String())
	for key, expanded := range sidebar.Flags() {
		q.Set(constants.SectionParamPrefix+key, expansionWord(expanded))
	}
	return q
}
