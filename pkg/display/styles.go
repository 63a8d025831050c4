package display

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StylesConfig is the parsed styles.yaml
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Styles maps semantic names to lipgloss styles bound to one renderer
type Styles struct {
	renderer *lipgloss.Renderer
	registry map[string]lipgloss.Style
}

// NewStyles builds the style registry for output w. With color false
// every style renders as plain text.
func NewStyles(w io.Writer, color bool) (*Styles, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(stylesYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles.yaml: %w", err)
	}

	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	s := &Styles{renderer: r, registry: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		style := r.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if c, ok := colors[def.Foreground]; ok {
			style = style.Foreground(c)
		}
		s.registry[name] = style
	}
	return s, nil
}

// Render applies the named style; unknown names render unstyled
func (s *Styles) Render(name, text string) string {
	if style, ok := s.registry[name]; ok {
		return style.Render(text)
	}
	return text
}

// Box draws a rounded border around content
func (s *Styles) Box(content string) string {
	return s.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}).
		Padding(0, 2).
		Render(content)
}
