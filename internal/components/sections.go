package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/bildo/landing/internal/content"
)

func ProblemSection() g.Node {
	return Section(
		Class("py-24 bg-gray-50"),
		container(
			sectionHeading("El Desafío del Mercado Inmobiliario",
				"Identificar oportunidades de desarrollo sigue siendo un proceso complejo, manual y dependiente de la interpretación individual."),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(g.Map(content.Problems(), func(c content.Card) g.Node {
					return Div(
						Class("bg-white rounded-xl p-6 shadow-lg hover:shadow-xl transition-shadow"),
						Div(
							Class("bg-accent/10 rounded-lg w-14 h-14 flex items-center justify-center mb-4"),
							Icon(c.Icon, "text-accent size-7", ""),
						),
						H3(Class("text-xl font-bold text-primary mb-3"), g.Text(c.Title)),
						P(Class("text-gray-600"), g.Text(c.Description)),
					)
				})),
			),
		),
	)
}

func SolutionSection() g.Node {
	return Section(
		ID(content.AnchorSolution.ID()),
		Class("py-24 gradient-primary"),
		container(
			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),
				Div(
					Class("text-white"),
					Div(
						Class("inline-flex items-center space-x-2 bg-white/10 backdrop-blur-sm px-4 py-2 rounded-full mb-6"),
						Icon(content.IconBrain, "text-accent size-5", ""),
						Span(Class("text-sm font-medium"), g.Text("Inteligencia Artificial")),
					),
					H2(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text("La Solución que Cambia el Paradigma")),
					P(
						Class("text-xl text-gray-300 mb-8 leading-relaxed"),
						g.Text("BILDO utiliza inteligencia artificial para realizar análisis normativo avanzado, transformando la complejidad del suelo en conocimiento, y el conocimiento en oportunidad."),
					),
					Div(
						Class("space-y-6"),
						g.Group(g.Map(content.SolutionPoints(), func(f content.Feature) g.Node {
							return Div(
								Class("flex items-start space-x-4"),
								Div(
									Class(toneBg(f.Tone)+" rounded-lg p-3 flex-shrink-0"),
									Icon(f.Icon, "text-white size-6", ""),
								),
								Div(
									H3(Class("text-xl font-bold mb-2"), g.Text(f.Title)),
									P(Class("text-gray-300"), g.Text(f.Description)),
								),
							)
						})),
					),
				),
				pipeline(),
			),
		),
	)
}

// pipeline is the INPUT -> IA -> OUTPUT illustration.
func pipeline() g.Node {
	dots := func(bg string) g.Node {
		return Div(
			Class("flex items-center justify-center py-4"),
			Div(
				Class("flex items-center space-x-3"),
				Div(Class("w-3 h-3 "+bg+" rounded-full animate-pulse")),
				Div(Class("w-3 h-3 "+bg+" rounded-full animate-pulse delay-75")),
				Div(Class("w-3 h-3 "+bg+" rounded-full animate-pulse delay-150")),
			),
		)
	}

	return Div(
		Class("relative"),
		Div(
			Class("bg-white/10 backdrop-blur-md rounded-2xl p-8 border border-white/20"),
			Div(
				Class("text-white space-y-6"),
				Div(
					Class("border-l-4 border-accent pl-4"),
					Div(Class("text-sm text-gray-400 mb-1"), g.Text("INPUT")),
					Div(Class("font-semibold"), g.Text("Datos Catastrales + Normativa")),
				),
				dots("bg-accent"),
				Div(
					Class("bg-accent/20 rounded-lg p-4 text-center"),
					Icon(content.IconBrain, "text-accent mb-2 size-8", ""),
					Div(Class("font-bold"), g.Text("Análisis con IA")),
					Div(Class("text-sm text-gray-400 mt-1"), g.Text("Procesamiento Automático")),
				),
				dots("bg-secondary"),
				Div(
					Class("border-l-4 border-secondary pl-4"),
					Div(Class("text-sm text-gray-400 mb-1"), g.Text("OUTPUT")),
					Div(Class("font-semibold mb-2"), g.Text("Oportunidades Priorizadas")),
					Div(
						Class("grid grid-cols-2 gap-2 text-sm"),
						g.Group(g.Map(content.SolutionOutputs(), func(o string) g.Node {
							return Div(Class("bg-white/5 rounded px-2 py-1"), g.Text(o))
						})),
					),
				),
			),
		),
	)
}

func FeaturesSection() g.Node {
	return Section(
		ID(content.AnchorFeatures.ID()),
		Class("py-24 bg-white"),
		container(
			sectionHeading("Características Potentes",
				"Todo lo que necesitas para identificar, analizar y priorizar oportunidades inmobiliarias en una sola plataforma."),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(g.Map(content.Features(), func(f content.Feature) g.Node {
					return Div(
						Class("group hover:bg-gray-50 rounded-xl p-6 transition-all hover:shadow-lg"),
						g.Attr("data-tone", string(f.Tone)),
						Div(
							Class(toneBg(f.Tone)+" rounded-lg w-14 h-14 flex items-center justify-center mb-4 group-hover:scale-110 transition-transform"),
							Icon(f.Icon, "text-white size-7", ""),
						),
						H3(Class("text-lg font-bold text-primary mb-2"), g.Text(f.Title)),
						P(Class("text-gray-600 text-sm"), g.Text(f.Description)),
					)
				})),
			),
		),
	)
}

func HowItWorksSection() g.Node {
	return Section(
		ID(content.AnchorHowItWorks.ID()),
		Class("py-24 bg-gray-50"),
		container(
			sectionHeading("Cómo Funciona BILDO",
				"De la complejidad normativa a decisiones estratégicas en 4 pasos simples."),
			Div(
				Class("relative"),
				Div(Class("hidden lg:block absolute top-1/2 left-0 right-0 h-1 bg-gradient-to-r from-accent via-secondary to-accent transform -translate-y-1/2 opacity-20")),
				Ol(
					Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8 relative"),
					g.Group(g.Map(content.Steps(), func(s content.Step) g.Node {
						return Li(
							Class("relative bg-white rounded-xl p-8 shadow-lg hover:shadow-xl transition-all group"),
							Div(
								Class("absolute -top-4 -left-4 bg-gradient-accent text-white w-12 h-12 rounded-full flex items-center justify-center font-bold text-lg shadow-lg"),
								g.Text(s.Number),
							),
							Div(
								Class("mt-4"),
								Div(
									Class("bg-primary/10 rounded-lg w-16 h-16 flex items-center justify-center mb-6 group-hover:bg-accent/10 transition-colors"),
									Icon(s.Icon, "text-primary group-hover:text-accent transition-colors size-8", ""),
								),
								H3(Class("text-xl font-bold text-primary mb-3"), g.Text(s.Title)),
								P(Class("text-gray-600"), g.Text(s.Description)),
							),
						)
					})),
				),
			),
			Div(
				Class("mt-16 text-center"),
				Div(
					Class("inline-flex items-center bg-accent/10 text-accent px-6 py-3 rounded-full font-semibold"),
					Icon(content.IconCpu, "mr-2 size-5", ""),
					g.Text("Todo el proceso toma menos de 10 segundos"),
				),
			),
		),
	)
}

func BenefitsSection() g.Node {
	t := content.CustomerTestimonial()

	return Section(
		ID(content.AnchorBenefits.ID()),
		Class("py-24 bg-white"),
		container(
			sectionHeading("Beneficios Cuantificables",
				"BILDO transforma la forma en que constructoras e inversionistas identifican y evalúan oportunidades inmobiliarias."),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(content.Benefits(), func(b content.Benefit) g.Node {
					gradient := toneGradient(b.Tone)
					return Div(
						Class("relative group"),
						Div(
							Class("bg-white border-2 border-gray-100 rounded-xl p-8 hover:border-transparent hover:shadow-2xl transition-all h-full"),
							Div(
								Class("bg-gradient-to-br "+gradient+" rounded-lg w-14 h-14 flex items-center justify-center mb-6"),
								Icon(b.Icon, "text-white size-7", ""),
							),
							Div(Class("text-5xl font-bold bg-gradient-to-br "+gradient+" bg-clip-text text-transparent mb-2"), g.Text(b.Metric)),
							H3(Class("text-xl font-bold text-primary mb-3"), g.Text(b.Title)),
							P(Class("text-gray-600"), g.Text(b.Description)),
						),
					)
				})),
			),
			Figure(
				Class("mt-20 bg-gradient-to-br from-primary to-secondary rounded-2xl p-12 text-white"),
				Div(
					Class("max-w-4xl mx-auto text-center"),
					Div(Class("text-6xl mb-4"), g.Text("\"")),
					BlockQuote(P(Class("text-2xl mb-8 italic"), g.Text(t.Quote))),
					FigCaption(
						Class("flex items-center justify-center space-x-4"),
						Div(Class("w-12 h-12 bg-accent rounded-full flex items-center justify-center font-bold text-xl"), g.Text(t.Initials)),
						Div(
							Class("text-left"),
							Div(Class("font-bold"), g.Text(t.Author)),
							Div(Class("text-gray-300 text-sm"), g.Text(t.Role)),
						),
					),
				),
			),
		),
	)
}
