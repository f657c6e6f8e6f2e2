package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/bildo/landing/internal/content"
)

func Hero() g.Node {
	mock := content.HeroMockup()

	return Section(
		Class("relative min-h-screen flex items-center gradient-primary overflow-hidden"),
		Div(Class("absolute inset-0 opacity-10 hero-pattern")),

		Div(
			Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-32"),
			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),

				Div(
					Class("text-white"),
					Div(
						Class("inline-flex items-center space-x-2 bg-white/10 backdrop-blur-sm px-4 py-2 rounded-full mb-6"),
						Icon(content.IconSparkles, "text-accent size-5", ""),
						Span(Class("text-sm font-medium"), g.Text("Análisis Normativo con IA")),
					),
					H1(
						Class("text-5xl md:text-6xl font-bold mb-6 leading-tight"),
						g.Text("Transforma la normativa en "),
						Span(Class("text-accent"), g.Text("oportunidades")),
					),
					P(
						Class("text-xl text-gray-300 mb-8 leading-relaxed"),
						g.Text("BILDO analiza automáticamente la normativa urbana con IA, calcula edificabilidad e identifica el potencial de desarrollo de cada lote en segundos."),
					),
					Div(
						Class("flex flex-col sm:flex-row gap-4"),
						A(
							Href(content.AnchorContact.Href()),
							Class("inline-flex items-center justify-center bg-accent hover:bg-accent-dark text-white px-8 py-4 rounded-lg font-semibold text-lg transition-all transform hover:scale-105 shadow-xl"),
							g.Text(content.DemoCTAFree),
							Icon(content.IconArrowRight, "ml-2 size-5", ""),
						),
						A(
							Href(content.AnchorHowItWorks.Href()),
							Class("inline-flex items-center justify-center bg-white/10 backdrop-blur-sm hover:bg-white/20 text-white px-8 py-4 rounded-lg font-semibold text-lg transition-all border border-white/20"),
							g.Text("Ver Cómo Funciona"),
						),
					),
					Div(
						Class("grid grid-cols-3 gap-8 mt-12 pt-12 border-t border-white/20"),
						g.Group(g.Map(content.HeroStats(), func(s content.Stat) g.Node {
							return Div(
								Div(Class("text-3xl font-bold text-accent mb-1"), g.Text(s.Value)),
								Div(Class("text-sm text-gray-300"), g.Text(s.Label)),
							)
						})),
					),
				),

				Div(
					Class("hidden md:block"),
					Div(
						Class("relative"),
						lotMockup(mock),
						Div(
							Class("absolute -top-4 -right-4 bg-accent rounded-full w-24 h-24 flex items-center justify-center shadow-xl animate-pulse"),
							Icon(content.IconSparkles, "text-white size-8", ""),
						),
					),
				),
			),
		),
	)
}

func lotMockup(mock content.LotAnalysis) g.Node {
	return Div(
		Class("bg-white/10 backdrop-blur-md rounded-2xl p-8 border border-white/20 shadow-2xl"),
		Div(
			Class("space-y-4"),
			Div(
				Class("flex items-center justify-between"),
				Span(Class("text-white font-semibold"), g.Text("Análisis de Lote")),
				Div(Class("bg-accent/20 text-accent px-3 py-1 rounded-full text-sm font-medium"), g.Text(mock.Status)),
			),
			Div(
				Class("h-48 bg-gradient-to-br from-accent/20 to-secondary/20 rounded-lg flex items-center justify-center"),
				Div(
					Class("text-center text-white"),
					Div(Class("text-5xl font-bold mb-2"), g.Text(mock.Buildable)),
					Div(Class("text-sm text-gray-300"), g.Text(mock.BuildableNote)),
				),
			),
			Div(
				Class("grid grid-cols-2 gap-4"),
				g.Group(g.Map(mock.Facts, func(f content.Stat) g.Node {
					return Div(
						Class("bg-white/5 rounded-lg p-4"),
						Div(Class("text-gray-400 text-xs mb-1"), g.Text(f.Label)),
						Div(Class("text-white font-semibold"), g.Text(f.Value)),
					)
				})),
			),
			Div(
				Class("bg-accent/20 border border-accent/30 rounded-lg p-4"),
				Div(Class("text-accent text-sm font-semibold"), g.Text(mock.Potential)),
			),
		),
	)
}
