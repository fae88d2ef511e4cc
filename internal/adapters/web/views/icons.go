package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// strokeIcon renders a 24x24 outline icon drawn with currentColor.
func strokeIcon(class, d string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		Class(class),
		g.Attr("fill", "none"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke", "currentColor"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("stroke-width", "2"),
			g.Attr("d", d),
		),
	)
}

const (
	iconHome    = "M3 12l2-2m0 0l7-7 7 7M5 10v10a1 1 0 001 1h3m10-11l2 2m-2-2v10a1 1 0 01-1 1h-3m-6 0a1 1 0 001-1v-4a1 1 0 011-1h2a1 1 0 011 1v4a1 1 0 001 1m-6 0h6"
	iconSearch  = "M21 21l-6-6m2-5a7 7 0 11-14 0 7 7 0 0114 0z"
	iconGrid    = "M4 6a2 2 0 012-2h2a2 2 0 012 2v2a2 2 0 01-2 2H6a2 2 0 01-2-2V6zM14 6a2 2 0 012-2h2a2 2 0 012 2v2a2 2 0 01-2 2h-2a2 2 0 01-2-2V6zM4 16a2 2 0 012-2h2a2 2 0 012 2v2a2 2 0 01-2 2H6a2 2 0 01-2-2v-2zM14 16a2 2 0 012-2h2a2 2 0 012 2v2a2 2 0 01-2 2h-2a2 2 0 01-2-2v-2z"
	iconList    = "M4 6h16M4 12h16M4 18h16"
	iconChevron = "M19 9l-7 7-7-7"
)

// publicIcon is an <img> from /public/icons.
func publicIcon(name, alt, class string) g.Node {
	return Img(Src("/public/icons/"+name), Alt(alt), g.If(class != "", Class(class)))
}
