// Package components renders the landing page with gomponents. Every
// function here is pure: the same inputs produce byte-identical HTML.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

const iconifyCDN = "https://code.iconify.design/3/3.1.1/iconify.min.js"

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	URL         string
	Lang        string
	// TailwindConfig is the inline script that configures the Tailwind runtime.
	TailwindConfig string
	// ThemeCSS declares the design tokens as CSS custom properties.
	ThemeCSS string
}

func Layout(config PageConfig, children ...g.Node) g.Node {
	if config.Lang == "" {
		config.Lang = "es"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(config.Lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("icon"), Type("image/svg+xml"), Href("/static/images/favicon.svg")),

				Script(Src(tailwindCDN)),
				g.If(config.TailwindConfig != "", Script(g.Raw(config.TailwindConfig))),
				g.If(config.ThemeCSS != "", StyleEl(g.Raw(config.ThemeCSS))),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src(iconifyCDN)),
			),
			Body(
				Class("font-sans antialiased text-primary"),
				g.Group(children),

				Script(Src("/static/js/navbar.js"), Defer()),
				Script(Src("/static/js/leadform.js"), Defer()),
			),
		),
	})
}
