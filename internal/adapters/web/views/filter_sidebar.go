package views

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// FilterSectionID is the DOM id of a sidebar section.
func FilterSectionID(key string) string {
	return "filter-section-" + key
}

// FilterSidebar renders every section in its current state. The inputs
// do not filter the listing.
func FilterSidebar(sections []domain.FilterSection, state domain.SidebarState, view domain.ViewMode) g.Node {
	return Aside(
		ID("filter-sidebar"),
		Class("w-64 bg-[#0D0D0D] p-4"),
		H2(Class("text-lg text-white font-bold mb-4"), g.Text("Filter by")),
		g.Map(sections, func(s domain.FilterSection) g.Node {
			return FilterSection(s, state, view)
		}),
	)
}

// FilterSection renders one section of state. Its header asks the server
// for the same section in the opposite state and swaps only this element;
// without htmx the link reloads the page with view and every other section kept.
func FilterSection(s domain.FilterSection, state domain.SidebarState, view domain.ViewMode) g.Node {
	id := FilterSectionID(s.Key)
	expanded := state.IsExpanded(s.Key)

	fallback := pageQuery(view, state)
	fallback.Set(constants.SectionParamPrefix+s.Key, expansionWord(!expanded))

	partial := url.Values{}
	partial.Set("expanded", strconv.FormatBool(!expanded))
	partial.Set(constants.QueryParamView, view.String())

	return Div(
		ID(id),
		Class("border-b border-gray-800"),
		g.Attr("data-section", s.Key),
		g.Attr("data-expanded", strconv.FormatBool(expanded)),
		A(
			Href("/properties?"+fallback.Encode()),
			Class("flex justify-between items-center py-3 cursor-pointer"),
			g.Attr("aria-expanded", strconv.FormatBool(expanded)),
			g.Attr("aria-controls", id+"-body"),
			hx.Get(fmt.Sprintf("/partials/filters/%s?%s", url.PathEscape(s.Key), partial.Encode())),
			hx.Target("#"+id),
			hx.Swap("outerHTML"),
			H3(Class("text-white font-medium"), g.Text(s.Title)),
			strokeIcon(chevronClasses(expanded), iconChevron),
		),
		Div(
			ID(id+"-body"),
			c.Classes{"pb-3": true, "block": expanded, "hidden": !expanded},
			g.Map(s.Options, func(option string) g.Node {
				return filterOption(s, option)
			}),
			g.If(s.ShowPriceSlider, priceSlider(s.SliderMinLabel, s.SliderMaxLabel)),
		),
	)
}

func expansionWord(expanded bool) string {
	if expanded {
		return "open"
	}
	return "closed"
}

func chevronClasses(expanded bool) string {
	if expanded {
		return "h-5 w-5 text-white transition-transform transform rotate-180"
	}
	return "h-5 w-5 text-white transition-transform"
}

func filterOption(s domain.FilterSection, option string) g.Node {
	name := s.Key
	if s.Kind == domain.FilterKindRadio {
		name = "priceRange"
	}
	inputID := fmt.Sprintf("%s-%s", s.Key, slug(option))
	return Div(
		Class("flex items-center mb-2"),
		Input(
			ID(inputID),
			Type(string(s.Kind)),
			Name(name),
			Value(option),
			Class("w-4 h-4 border-gray-600 bg-transparent text-red-600 focus:ring-0 focus:ring-offset-0"),
		),
		g.El("label", g.Attr("for", inputID), Class("ml-2 text-sm text-white"), g.Text(option)),
	)
}

func priceSlider(minLabel, maxLabel string) g.Node {
	return Div(
		Class("mt-4 px-1"),
		g.Attr("data-slider", "price"),
		Div(
			Class("relative h-1 bg-gray-700 rounded-full"),
			Div(Class("absolute h-1 bg-red-600 rounded-full"), g.Attr("style", "left: 25%; right: 25%")),
			Div(Class("absolute w-4 h-4 bg-red-600 rounded-full -mt-1.5"), g.Attr("style", "left: 25%")),
			Div(Class("absolute w-4 h-4 bg-red-600 rounded-full -mt-1.5"), g.Attr("style", "right: 25%")),
		),
		Div(
			Class("flex justify-between mt-2"),
			Span(Class("text-xs text-white"), g.Text(minLabel)),
			Span(Class("text-xs text-white"), g.Text(maxLabel)),
		),
	)
}

// slug keeps letters and digits and turns everything else into single dashes.
func slug(s string) string {
	out := make([]rune, 0, len(s))
	dash := false
	for _, r := range lowerCaser.String(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			dash = false
		case r == '<':
			out = append(out, []rune("lt")...)
			dash = false
		case r == '>':
			out = append(out, []rune("gt")...)
			dash = false
		case !dash && len(out) > 0:
			out = append(out, '-')
			dash = true
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
