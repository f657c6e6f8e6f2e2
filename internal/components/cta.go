package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/bildo/landing/internal/content"
	"github.com/bildo/landing/internal/ui"
)

// LeadFormView is everything the contact form renders from.
type LeadFormView struct {
	State ui.LeadFormState
	// Message is the form-level error banner; empty when there is none.
	Message string
	// FieldErrors maps field names to ui.ReasonRequired or ui.ReasonInvalid.
	FieldErrors map[string]string
	// RevertAfter tells leadform.js when to swap the success panel back.
	RevertAfter time.Duration
}

type formField struct {
	name        string
	label       string
	inputType   string
	placeholder string
	icon        content.Icon
	required    bool
}

var leadFormFields = []formField{
	{ui.FieldName, "Nombre Completo", "text", "Juan Pérez", content.IconUser, true},
	{ui.FieldEmail, "Email Corporativo", "email", "juan@empresa.com", content.IconMail, true},
	{ui.FieldPhone, "Teléfono", "tel", "+57 300 123 4567", content.IconPhone, false},
	{ui.FieldCompany, "Empresa", "text", "Constructora ABC", content.IconBuilding, true},
}

var fieldErrorText = map[string]string{
	ui.ReasonRequired: "Este campo es obligatorio",
	ui.ReasonInvalid:  "Ingresa un email válido",
}

func CTA(view LeadFormView) g.Node {
	return Section(
		ID(content.AnchorContact.ID()),
		Class("py-24 gradient-primary"),
		container(
			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),
				ctaPitch(),
				Div(
					Class("bg-white rounded-2xl p-8 shadow-2xl"),
					g.Attr("data-lead-form", ""),
					g.If(view.State.Submitted, successPanel(view.RevertAfter)),
					leadForm(view),
				),
			),
		),
	)
}

func ctaPitch() g.Node {
	return Div(
		Class("text-white"),
		H2(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text("Descubre el Potencial de tu Próximo Proyecto")),
		P(
			Class("text-xl text-gray-300 mb-8"),
			g.Text("Solicita una demostración personalizada y descubre cómo BILDO puede transformar la forma en que identificas oportunidades inmobiliarias."),
		),
		Ul(
			Class("space-y-4 mb-8"),
			g.Group(g.Map(content.CTAPerks(), func(perk string) g.Node {
				return Li(
					Class("flex items-center space-x-3"),
					Icon(content.IconCheckCircle, "text-accent flex-shrink-0 size-6", ""),
					Span(g.Text(perk)),
				)
			})),
		),
		Div(
			Class("bg-white/10 backdrop-blur-sm rounded-lg p-6 border border-white/20"),
			Div(Class("text-sm text-gray-300 mb-2"), g.Text("Empresas que confían en BILDO")),
			Div(
				Class("flex items-center space-x-6"),
				Div(Class("text-2xl font-bold"), g.Text("🏗️")),
				Div(Class("text-2xl font-bold"), g.Text("🏢")),
				Div(Class("text-2xl font-bold"), g.Text("🏘️")),
				Div(Class("text-sm text-gray-400"), g.Text("+20 constructoras")),
			),
		),
	)
}

func successPanel(revertAfter time.Duration) g.Node {
	return Div(
		ID("lead-success"),
		Class("text-center py-12"),
		g.Attr("role", "status"),
		g.Attr("data-revert-after", strconv.FormatInt(revertAfter.Milliseconds(), 10)),
		Div(
			Class("bg-accent/10 rounded-full w-20 h-20 flex items-center justify-center mx-auto mb-6"),
			Icon(content.IconCheckCircle, "text-accent size-10", ""),
		),
		H3(Class("text-2xl font-bold text-primary mb-3"), g.Text("¡Solicitud Recibida!")),
		P(Class("text-gray-600"), g.Text("Nos pondremos en contacto contigo en las próximas 24 horas para agendar tu demo.")),
	)
}

// leadForm is always rendered so the values survive the success panel; it is
// hidden while Submitted is set.
func leadForm(view LeadFormView) g.Node {
	classes := "space-y-6"
	if view.State.Submitted {
		classes += " hidden"
	}

	return Form(
		ID("lead-form"),
		Class(classes),
		Method("post"),
		Action("/contacto"+content.AnchorContact.Href()),
		g.If(view.Message != "", Div(
			ID("lead-form-error"),
			Class("bg-red-50 border border-red-200 text-red-700 rounded-lg px-4 py-3 text-sm"),
			g.Attr("role", "alert"),
			g.Text(view.Message),
		)),
		g.Group(g.Map(leadFormFields, func(f formField) g.Node {
			return inputField(f, fieldValue(view.State, f.name), view.FieldErrors[f.name])
		})),
		Div(
			Label(
				g.Attr("for", ui.FieldMessage),
				Class("block text-sm font-semibold text-primary mb-2"),
				g.Text("¿En qué podemos ayudarte?"),
			),
			Textarea(
				ID(ui.FieldMessage),
				Name(ui.FieldMessage),
				Rows("4"),
				Class("w-full px-4 py-3 border-2 border-gray-200 rounded-lg focus:border-accent focus:outline-none transition-colors resize-none"),
				Placeholder("Cuéntanos sobre tu proyecto o necesidades..."),
				g.Text(view.State.Message),
			),
		),
		Button(
			Type("submit"),
			Class("w-full bg-gradient-accent text-white py-4 rounded-lg font-bold text-lg hover:shadow-xl transition-all transform hover:scale-105 flex items-center justify-center space-x-2"),
			Span(g.Text(content.DemoCTAFree)),
			Icon(content.IconSend, "size-5", ""),
		),
		P(Class("text-sm text-gray-500 text-center"), g.Text("Al enviar el formulario, aceptas nuestra política de privacidad")),
	)
}

func inputField(f formField, value, fieldErr string) g.Node {
	label := f.label
	if f.required {
		label += " *"
	}
	border := "border-gray-200"
	if fieldErr != "" {
		border = "border-red-400"
	}

	return Div(
		Label(
			g.Attr("for", f.name),
			Class("block text-sm font-semibold text-primary mb-2"),
			g.Text(label),
		),
		Div(
			Class("relative"),
			Icon(f.icon, "absolute left-3 top-1/2 transform -translate-y-1/2 text-gray-400 size-5", ""),
			Input(
				Type(f.inputType),
				ID(f.name),
				Name(f.name),
				Value(value),
				Placeholder(f.placeholder),
				g.If(f.required, Required()),
				g.If(fieldErr != "", g.Attr("aria-invalid", "true")),
				g.If(fieldErr != "", g.Attr("aria-describedby", f.name+"-error")),
				Class("w-full pl-11 pr-4 py-3 border-2 "+border+" rounded-lg focus:border-accent focus:outline-none transition-colors"),
			),
		),
		g.If(fieldErr != "", P(
			ID(f.name+"-error"),
			Class("mt-1 text-sm text-red-600"),
			g.Text(fieldErrorText[fieldErr]),
		)),
	)
}

func fieldValue(s ui.LeadFormState, name string) string {
	switch name {
	case ui.FieldName:
		return s.Name
	case ui.FieldEmail:
		return s.Email
	case ui.FieldPhone:
		return s.Phone
	case ui.FieldCompany:
		return s.Company
	case ui.FieldMessage:
		return s.Message
	}
	return ""
}
