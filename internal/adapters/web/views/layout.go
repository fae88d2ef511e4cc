package views

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"
)

// Page wraps body in the document shell shared by every page.
func Page(title string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: "Find, compare and visit properties.",
		Language:    "en",
		Head: []g.Node{
			Script(Src(tailwindCDN)),
			Script(Src(htmxCDN), Defer()),
			Link(Rel("icon"), Href("/public/icons/favicon.svg")),
		},
		Body: []g.Node{
			Class("bg-[#0D0D0D] min-h-screen"),
			g.Group(body),
		},
	})
}

// ErrorPage is shown for 404 and 500 answers.
func ErrorPage(status int, heading, message string) g.Node {
	return Page(heading,
		Navbar(),
		Main(
			Class("container mx-auto px-6 py-24 text-center"),
			P(Class("text-[#f10000] text-6xl font-bold mb-4"), g.Textf("%d", status)),
			H1(Class("text-white text-3xl font-bold mb-2"), g.Text(heading)),
			P(Class("text-gray-300 mb-8"), g.Text(message)),
			A(Href("/properties"), Class("text-[#f10000] underline"), g.Text("BACK TO SEARCH")),
		),
	)
}
