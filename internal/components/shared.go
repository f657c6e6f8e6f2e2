package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/bildo/landing/internal/content"
)

// lucideNames maps each icon to its lucide glyph as served by iconify.
var lucideNames = map[content.Icon]string{
	content.IconMenu:          "menu",
	content.IconClose:         "x",
	content.IconArrowRight:    "arrow-right",
	content.IconSparkles:      "sparkles",
	content.IconClock:         "clock",
	content.IconFileText:      "file-text",
	content.IconAlertTriangle: "triangle-alert",
	content.IconTrendingDown:  "trending-down",
	content.IconBrain:         "brain",
	content.IconZap:           "zap",
	content.IconTarget:        "target",
	content.IconDatabase:      "database",
	content.IconFileSearch:    "file-search",
	content.IconCalculator:    "calculator",
	content.IconMapPin:        "map-pin",
	content.IconBarChart:      "chart-bar",
	content.IconShield:        "shield",
	content.IconLayers:        "layers",
	content.IconDownload:      "download",
	content.IconUpload:        "upload",
	content.IconCpu:           "cpu",
	content.IconLineChart:     "chart-line",
	content.IconCheckCircle:   "circle-check",
	content.IconTrendingUp:    "trending-up",
	content.IconDollarSign:    "dollar-sign",
	content.IconUsers:         "users",
	content.IconAward:         "award",
	content.IconSend:          "send",
	content.IconBuilding:      "building-2",
	content.IconMail:          "mail",
	content.IconUser:          "user",
	content.IconPhone:         "phone",
	content.IconLinkedin:      "linkedin",
	content.IconTwitter:       "twitter",
}

// iconName resolves an icon to its iconify identifier. Unknown icons fall
// back to a neutral glyph rather than an empty span.
func iconName(i content.Icon) string {
	if name, ok := lucideNames[i]; ok {
		return "lucide:" + name
	}
	return "lucide:circle"
}

// Icon renders a decorative glyph. Pass a label to expose it to assistive
// technology instead.
func Icon(i content.Icon, classes, label string) g.Node {
	if label != "" {
		return Span(
			Class("iconify inline-block "+classes),
			g.Attr("data-icon", iconName(i)),
			g.Attr("role", "img"),
			g.Attr("aria-label", label),
		)
	}
	return Span(
		Class("iconify inline-block "+classes),
		g.Attr("data-icon", iconName(i)),
		g.Attr("aria-hidden", "true"),
	)
}

// Logo is the wordmark with the accent dot.
func Logo(classes string) g.Node {
	return Span(
		Class("text-3xl font-bold "+classes),
		g.Text(content.Brand),
		Span(Class("text-accent"), g.Text(".")),
	)
}

func toneBg(t content.Tone) string {
	if t == content.ToneSecondary {
		return "bg-secondary"
	}
	return "bg-accent"
}

func toneGradient(t content.Tone) string {
	if t == content.ToneSecondary {
		return "from-secondary to-secondary-light"
	}
	return "from-accent to-accent-light"
}

// sectionHeading is the centered title and lead paragraph most sections open with.
func sectionHeading(title, lead string) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(Class("text-4xl md:text-5xl font-bold text-primary mb-4"), g.Text(title)),
		P(Class("text-xl text-gray-600 max-w-3xl mx-auto"), g.Text(lead)),
	)
}

func container(children ...g.Node) g.Node {
	return Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"), g.Group(children))
}
