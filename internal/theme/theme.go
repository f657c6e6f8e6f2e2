// Package theme loads the brand design tokens and renders them for the page.
package theme

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

var Module = fx.Module("theme",
	fx.Provide(Default),
)

//go:embed tokens.yaml
var defaultTokens []byte

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Shade is one named color with its light and dark variants.
type Shade struct {
	Default string `yaml:"default" json:"DEFAULT"`
	Light   string `yaml:"light" json:"light"`
	Dark    string `yaml:"dark" json:"dark"`
}

type Colors struct {
	Primary   Shade `yaml:"primary" json:"primary"`
	Accent    Shade `yaml:"accent" json:"accent"`
	Secondary Shade `yaml:"secondary" json:"secondary"`
}

type Font struct {
	Sans []string `yaml:"sans" json:"sans"`
}

type Tokens struct {
	Colors Colors `yaml:"colors"`
	Font   Font   `yaml:"font"`
}

// Default returns the embedded brand tokens.
func Default() (*Tokens, error) {
	return Load(defaultTokens)
}

// Load parses a YAML token table and checks every color is a #RRGGBB value.
func Load(data []byte) (*Tokens, error) {
	var t Tokens
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse design tokens: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tokens) named() []struct {
	name  string
	shade Shade
} {
	return []struct {
		name  string
		shade Shade
	}{
		{"primary", t.Colors.Primary},
		{"accent", t.Colors.Accent},
		{"secondary", t.Colors.Secondary},
	}
}

func (t *Tokens) validate() error {
	for _, c := range t.named() {
		for variant, v := range map[string]string{"default": c.shade.Default, "light": c.shade.Light, "dark": c.shade.Dark} {
			if !hexColor.MatchString(v) {
				return fmt.Errorf("design token %s.%s: invalid color %q", c.name, variant, v)
			}
		}
	}
	if len(t.Font.Sans) == 0 {
		return fmt.Errorf("design token font.sans: at least one family is required")
	}
	return nil
}

// TailwindConfig renders the assignment consumed by the Tailwind runtime.
func (t *Tokens) TailwindConfig() (string, error) {
	cfg := map[string]any{
		"theme": map[string]any{
			"extend": map[string]any{
				"colors":     t.Colors,
				"fontFamily": t.Font,
			},
		},
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode tailwind config: %w", err)
	}
	return "tailwind.config = " + string(b) + ";", nil
}

// CSSVariables renders the tokens as custom properties on :root, used by
// the hand-written gradient classes in styles.css.
func (t *Tokens) CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root{")
	for _, c := range t.named() {
		fmt.Fprintf(&b, "--color-%s:%s;", c.name, c.shade.Default)
		fmt.Fprintf(&b, "--color-%s-light:%s;", c.name, c.shade.Light)
		fmt.Fprintf(&b, "--color-%s-dark:%s;", c.name, c.shade.Dark)
	}
	fmt.Fprintf(&b, "--font-sans:%s;", strings.Join(t.Font.Sans, ","))
	b.WriteString("}")
	return b.String()
}
