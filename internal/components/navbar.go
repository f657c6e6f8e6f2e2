package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/bildo/landing/internal/content"
	"github.com/bildo/landing/internal/ui"
)

const (
	navScrolledClasses = "bg-white shadow-lg py-4"
	navTopClasses      = "bg-transparent py-6"
)

// NavBar renders the fixed navigation bar for state. navbar.js keeps the
// data attributes and classes in sync once the page is interactive; without
// JavaScript the menu button is a plain link that toggles ?menu=open.
func NavBar(state ui.NavState) g.Node {
	variant := navTopClasses
	if state.Scroll.IsScrolled {
		variant = navScrolledClasses
	}

	toggleHref := "/?menu=open"
	toggleLabel := "Abrir menú"
	if state.MenuOpen {
		toggleHref = "/"
		toggleLabel = "Cerrar menú"
	}

	return Nav(
		ID("navbar"),
		Class("fixed w-full z-50 transition-all duration-300 "+variant),
		g.Attr("data-scrolled", strconv.FormatBool(state.Scroll.IsScrolled)),
		g.Attr("data-threshold", strconv.Itoa(ui.ScrollThreshold)),
		g.Attr("data-class-scrolled", navScrolledClasses),
		g.Attr("data-class-top", navTopClasses),

		container(
			Div(
				Class("flex justify-between items-center"),
				A(Href("/"), Class("flex items-center"), Logo("text-primary")),

				Div(
					Class("hidden md:flex items-center space-x-8"),
					g.Group(g.Map(content.NavLinks(), func(l content.NavLink) g.Node {
						return A(
							Href(l.Anchor.Href()),
							Class("text-primary hover:text-accent transition-colors font-medium"),
							g.Text(l.Label),
						)
					})),
					A(
						Href(content.AnchorContact.Href()),
						Class("bg-accent hover:bg-accent-dark text-white px-6 py-3 rounded-lg font-semibold transition-all transform hover:scale-105"),
						g.Text(content.DemoCTA),
					),
				),

				A(
					ID("nav-toggle"),
					Href(toggleHref),
					Class("md:hidden text-primary"),
					g.Attr("role", "button"),
					g.Attr("aria-controls", "mobile-menu"),
					g.Attr("aria-expanded", strconv.FormatBool(state.MenuOpen)),
					g.Attr("aria-label", toggleLabel),
					Span(
						Class(hiddenUnless(!state.MenuOpen)),
						g.Attr("data-menu-icon", "open"),
						Icon(content.IconMenu, "size-6", ""),
					),
					Span(
						Class(hiddenUnless(state.MenuOpen)),
						g.Attr("data-menu-icon", "close"),
						Icon(content.IconClose, "size-6", ""),
					),
				),
			),

			mobileMenu(state.MenuOpen),
		),
	)
}

func mobileMenu(open bool) g.Node {
	classes := "md:hidden mt-4 pb-4 space-y-4"
	if !open {
		classes += " hidden"
	}
	return Div(
		ID("mobile-menu"),
		Class(classes),
		g.Group(g.Map(content.NavLinks(), func(l content.NavLink) g.Node {
			return A(
				Href(l.Anchor.Href()),
				Class("block text-primary hover:text-accent transition-colors font-medium"),
				g.Attr("data-close-menu", ""),
				g.Text(l.Label),
			)
		})),
		A(
			Href(content.AnchorContact.Href()),
			Class("block bg-accent hover:bg-accent-dark text-white px-6 py-3 rounded-lg font-semibold text-center"),
			g.Attr("data-close-menu", ""),
			g.Text(content.DemoCTA),
		),
	)
}

func hiddenUnless(visible bool) string {
	if visible {
		return "block"
	}
	return "hidden"
}
