// Package content holds the copy of every landing page section as ordered
// display records. Each accessor returns a fresh slice so callers can never
// reorder or edit what the next render sees.
package content

// Anchor is an in-page scroll target.
type Anchor string

const (
	AnchorSolution   Anchor = "solucion"
	AnchorFeatures   Anchor = "caracteristicas"
	AnchorHowItWorks Anchor = "como-funciona"
	AnchorBenefits   Anchor = "beneficios"
	AnchorContact    Anchor = "contacto"
)

// ID is the element id the anchor points at.
func (a Anchor) ID() string { return string(a) }

// Href is the fragment link to the anchor.
func (a Anchor) Href() string { return "#" + string(a) }

// Anchors returns every section anchor in page order.
func Anchors() []Anchor {
	return []Anchor{AnchorSolution, AnchorFeatures, AnchorHowItWorks, AnchorBenefits, AnchorContact}
}

const (
	Brand        = "BILDO"
	DemoCTA      = "Solicitar Demo"
	DemoCTAFree  = "Solicitar Demo Gratuita"
	ContactEmail = "contacto@bildo.ai"
	Location     = "Bogotá, Colombia"
)

type NavLink struct {
	Label  string
	Anchor Anchor
}

type Stat struct {
	Value string
	Label string
}

// Card is the icon + heading + body record shared by most sections.
type Card struct {
	Icon        Icon
	Title       string
	Description string
}

type Feature struct {
	Card
	Tone Tone
}

type Step struct {
	Number string
	Card
}

type Benefit struct {
	Card
	Metric string
	Tone   Tone
}

type Testimonial struct {
	Quote    string
	Author   string
	Role     string
	Initials string
}

type Link struct {
	Label string
	Href  string
}

type SocialLink struct {
	Icon  Icon
	Label string
	Href  string
}

func NavLinks() []NavLink {
	return []NavLink{
		{"Solución", AnchorSolution},
		{"Características", AnchorFeatures},
		{"Cómo Funciona", AnchorHowItWorks},
		{"Beneficios", AnchorBenefits},
	}
}

func HeroStats() []Stat {
	return []Stat{
		{"90%", "Reducción de tiempo"},
		{"99%", "Precisión"},
		{"24/7", "Disponibilidad"},
	}
}

// LotAnalysis is the sample result shown in the hero mockup. Display text only.
type LotAnalysis struct {
	Status        string
	Buildable     string
	BuildableNote string
	Facts         []Stat
	Potential     string
}

func HeroMockup() LotAnalysis {
	return LotAnalysis{
		Status:        "Completado",
		Buildable:     "2,847m²",
		BuildableNote: "Edificabilidad Máxima",
		Facts: []Stat{
			{"18 pisos", "Altura Máxima"},
			{"Mixto", "Uso de Suelo"},
		},
		Potential: "Potencial: Alto - Zona en desarrollo",
	}
}

func Problems() []Card {
	return []Card{
		{IconClock, "Análisis Manual y Lento", "Días o semanas interpretando decretos y normativas urbanas complejas."},
		{IconFileText, "Datos Dispersos", "Información catastral y normativa fragmentada en múltiples fuentes."},
		{IconAlertTriangle, "Alto Riesgo de Error", "Interpretaciones subjetivas que pueden llevar a decisiones costosas."},
		{IconTrendingDown, "Oportunidades Perdidas", "Lotes con potencial que no se identifican por falta de análisis sistemático."},
	}
}

func SolutionPoints() []Feature {
	return []Feature{
		{Card{IconBrain, "Análisis Automático", "IA interpreta automáticamente decretos, normativas urbanas y datos catastrales."}, ToneAccent},
		{Card{IconZap, "Resultados en Segundos", "Calcula edificabilidad y potencial de desarrollo en cuestión de segundos, no días."}, ToneSecondary},
		{Card{IconTarget, "Decisiones Informadas", "Información técnica, precisa y visual para decisiones estratégicas rentables."}, ToneAccent},
	}
}

func SolutionOutputs() []string {
	return []string{"Edificabilidad", "Potencial", "Restricciones", "Visualización"}
}

func Features() []Feature {
	return []Feature{
		{Card{IconFileSearch, "Interpretación Normativa", "IA lee y comprende decretos, POTs y normativas urbanas automáticamente."}, ToneAccent},
		{Card{IconCalculator, "Cálculo de Edificabilidad", "Determina el máximo aprovechamiento permitido según la normativa vigente."}, ToneSecondary},
		{Card{IconDatabase, "Integración Catastral", "Conexión directa con bases de datos catastrales y geográficas."}, ToneAccent},
		{Card{IconMapPin, "Geolocalización Precisa", "Visualización de lotes y oportunidades en mapas interactivos."}, ToneSecondary},
		{Card{IconBarChart, "Análisis de Potencial", "Priorización automática de oportunidades según criterios personalizables."}, ToneAccent},
		{Card{IconShield, "Validación Técnica", "Resultados verificados y respaldados por fuentes oficiales."}, ToneSecondary},
		{Card{IconLayers, "Análisis Multi-Lote", "Procesa y compara múltiples predios simultáneamente."}, ToneAccent},
		{Card{IconDownload, "Reportes Exportables", "Genera informes técnicos en PDF listos para presentar."}, ToneSecondary},
	}
}

func Steps() []Step {
	return []Step{
		{"01", Card{IconUpload, "Ingresa el Lote", "Proporciona la dirección, coordenadas o datos catastrales del predio que deseas analizar."}},
		{"02", Card{IconCpu, "IA Analiza", "Nuestra IA procesa la normativa urbana, calcula parámetros y evalúa restricciones en segundos."}},
		{"03", Card{IconLineChart, "Visualiza Resultados", "Obtén edificabilidad, altura máxima, uso de suelo y potencial de desarrollo con gráficos claros."}},
		{"04", Card{IconCheckCircle, "Toma Decisiones", "Exporta reportes técnicos y toma decisiones informadas basadas en datos precisos."}},
	}
}

func Benefits() []Benefit {
	return []Benefit{
		{Card{IconClock, "Reducción de Tiempo", "De semanas a segundos en análisis normativo."}, "90%", ToneAccent},
		{Card{IconDollarSign, "Mejor ROI", "Identifica oportunidades de mayor rentabilidad."}, "+35%", ToneSecondary},
		{Card{IconTarget, "Precisión", "Cálculos exactos basados en normativa oficial."}, "99%", ToneAccent},
		{Card{IconTrendingUp, "Más Análisis", "Evalúa 5 veces más lotes en el mismo tiempo."}, "5x", ToneSecondary},
		{Card{IconUsers, "Equipo Alineado", "Una sola fuente de verdad para todos."}, "100%", ToneAccent},
		{Card{IconAward, "Ventaja Competitiva", "Identifica oportunidades antes que la competencia."}, "Pro", ToneSecondary},
	}
}

func CustomerTestimonial() Testimonial {
	return Testimonial{
		Quote: "BILDO nos permitió analizar 200 lotes en una semana, algo que antes nos tomaba meses. " +
			"La precisión del análisis normativo es impresionante y nos ha ayudado a identificar " +
			"oportunidades que hubiéramos pasado por alto.",
		Author:   "Juan Martínez",
		Role:     "Director de Desarrollo - Constructora XYZ",
		Initials: "JM",
	}
}

func CTAPerks() []string {
	return []string{
		"Demo personalizada de 30 minutos",
		"Análisis de prueba de uno de tus lotes",
		"Consultoría sin costo sobre casos de uso",
		"Sin compromiso ni tarjeta de crédito",
	}
}

func SocialLinks() []SocialLink {
	return []SocialLink{
		{IconLinkedin, "LinkedIn", "#"},
		{IconTwitter, "Twitter", "#"},
		{IconMail, "Email", "mailto:" + ContactEmail},
	}
}

func FooterProductLinks() []Link {
	return []Link{
		{"Características", AnchorFeatures.Href()},
		{"Cómo Funciona", AnchorHowItWorks.Href()},
		{"Beneficios", AnchorBenefits.Href()},
		{"Precios", "#"},
	}
}

func FooterLegalLinks() []Link {
	return []Link{
		{"Términos y Condiciones", "#"},
		{"Política de Privacidad", "#"},
	}
}
