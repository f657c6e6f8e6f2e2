package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/bildo/landing/internal/ui"
)

// PageData is the full input of a landing page render.
type PageData struct {
	Config PageConfig
	Nav    ui.NavState
	Form   LeadFormView
	Year   int
}

// LandingPage composes every section in page order.
func LandingPage(p PageData) g.Node {
	return Layout(p.Config,
		NavBar(p.Nav),
		Main(
			Hero(),
			ProblemSection(),
			SolutionSection(),
			FeaturesSection(),
			HowItWorksSection(),
			BenefitsSection(),
			CTA(p.Form),
		),
		PageFooter(p.Year),
	)
}
