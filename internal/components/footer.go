package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/bildo/landing/internal/content"
)

// PageFooter renders the site footer; year goes into the copyright line.
func PageFooter(year int) g.Node {
	return Footer(
		Class("bg-primary text-white"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12"),
			Div(
				Class("grid md:grid-cols-4 gap-8 mb-8"),

				Div(
					Class("md:col-span-2"),
					Div(Class("mb-4"), Logo("")),
					P(
						Class("text-gray-400 mb-4 max-w-md"),
						g.Text("Transformamos la complejidad normativa en oportunidades inmobiliarias mediante inteligencia artificial."),
					),
					Div(
						Class("flex space-x-4"),
						g.Group(g.Map(content.SocialLinks(), func(s content.SocialLink) g.Node {
							return A(
								Href(s.Href),
								Class("bg-white/10 hover:bg-accent p-2 rounded-lg transition-colors"),
								Icon(s.Icon, "size-5", s.Label),
							)
						})),
					),
				),

				Div(
					H4(Class("font-bold mb-4"), g.Text("Producto")),
					Ul(
						Class("space-y-2 text-gray-400"),
						g.Group(g.Map(content.FooterProductLinks(), func(l content.Link) g.Node {
							return Li(A(Href(l.Href), Class("hover:text-accent transition-colors"), g.Text(l.Label)))
						})),
					),
				),

				Div(
					H4(Class("font-bold mb-4"), g.Text("Contacto")),
					Ul(
						Class("space-y-3 text-gray-400"),
						Li(
							Class("flex items-start space-x-2"),
							Icon(content.IconMail, "flex-shrink-0 mt-1 size-4", ""),
							A(Href("mailto:"+content.ContactEmail), g.Text(content.ContactEmail)),
						),
						Li(
							Class("flex items-start space-x-2"),
							Icon(content.IconMapPin, "flex-shrink-0 mt-1 size-4", ""),
							Span(g.Text(content.Location)),
						),
					),
				),
			),

			Div(
				Class("border-t border-white/10 pt-8 flex flex-col md:flex-row justify-between items-center"),
				Div(
					Class("text-gray-400 text-sm mb-4 md:mb-0"),
					g.Text(fmt.Sprintf("© %d %s. Todos los derechos reservados.", year, content.Brand)),
				),
				Div(
					Class("flex space-x-6 text-sm text-gray-400"),
					g.Group(g.Map(content.FooterLegalLinks(), func(l content.Link) g.Node {
						return A(Href(l.Href), Class("hover:text-accent transition-colors"), g.Text(l.Label))
					})),
				),
			),
		),
	)
}
