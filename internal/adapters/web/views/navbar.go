package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var navItems = []string{"Home", "Buy", "Rent", "Sell", "Agency"}

// Navbar is static: the links go to fixed routes and the search input is not wired.
func Navbar() g.Node {
	return Nav(
		ID("navbar"),
		Class("py-4 px-6"),
		Div(
			Class("container mx-auto flex justify-between items-center"),
			Div(
				Class("flex items-center space-x-4"),
				Button(Type("button"), Class("text-white focus:outline-none"), g.Attr("aria-label", "Menu"),
					publicIcon("hambug.svg", "", ""),
				),
				A(Href("/"), Class("font-montserrat font-bold text-2xl text-white"), g.Text("LOGO")),
			),
			navLinks(),
			searchBar(),
			Div(
				Class("flex space-x-6"),
				A(Href("/register"), Class("text-white font-roboto uppercase"), g.Text("Register")),
				A(Href("/login"), Class("text-white font-roboto uppercase"), g.Text("Login")),
			),
		),
	)
}

func navLinks() g.Node {
	return Ul(
		Class("hidden lg:flex bg-[#1E1E1E] rounded-[20px] px-4 py-3 items-center gap-6 ml-8"),
		g.Map(navItems, func(item string) g.Node {
			return Li(
				A(
					Href(navPath(item)),
					Class("relative px-3 text-white font-montserrat font-medium hover:text-[#F10000] transition-all duration-300 group"),
					g.Text(item),
					Span(Class("absolute -bottom-2 left-0 right-0 mx-auto w-0 h-px bg-[#f10000] group-hover:w-8 transition-all duration-300")),
				),
			)
		}),
	)
}

func searchBar() g.Node {
	return Div(
		Class("relative flex-1 mx-8"),
		Div(
			Class("bg-[#1E1E1E] rounded-[20px] flex items-center px-4 py-2"),
			strokeIcon("h-5 w-5 text-white mr-2", iconHome),
			Input(
				Type("text"),
				Name("q"),
				Placeholder("Search properties..."),
				Class("bg-transparent w-full text-white font-roboto focus:outline-none"),
			),
			strokeIcon("h-5 w-5 text-white ml-2", iconSearch),
		),
	)
}
