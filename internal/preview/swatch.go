// Package preview renders theme palettes as terminal swatches, both as plain
// output and behind an interactive browser.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/css"
	"github.com/crswll/tailwindcss-theming/internal/theme"
)

const swatchBlock = "      "

// RenderThemes renders every theme's palette, separated by blank lines.
func RenderThemes(themes []theme.Theme, settings config.Settings) string {
	sections := make([]string, 0, len(themes))
	for _, t := range themes {
		sections = append(sections, RenderTheme(t, settings))
	}
	return strings.Join(sections, "\n")
}

// RenderTheme renders a single theme: a title line followed by one labelled
// swatch per color and color variant, and plain entries for opacity variants
// and custom properties.
func RenderTheme(t theme.Theme, settings config.Settings) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(themeTitle(t)))
	sb.WriteString("\n")

	for _, c := range t.Colors {
		sb.WriteString(swatchLine(c.Computed, css.ColorVariableName(c, settings)))
	}
	for _, v := range t.ColorVariants {
		sb.WriteString(swatchLine(v.Color, css.ColorVariantVariableName(v)))
	}
	for _, v := range t.OpacityVariants {
		sb.WriteString(labelLine(css.OpacityVariantVariableName(v), fmt.Sprintf("%v", v.Opacity)))
	}
	for _, p := range t.CustomProperties {
		sb.WriteString(labelLine(css.CustomPropertyVariableName(p), p.Value))
	}

	return sb.String()
}

func themeTitle(t theme.Theme) string {
	name := t.Name
	if name == "" {
		name = "(unnamed)"
	}

	var tags []string
	if t.Default {
		tags = append(tags, "default")
	}
	if t.Scheme != theme.SchemeNone {
		tags = append(tags, string(t.Scheme))
	}
	if len(tags) == 0 {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, strings.Join(tags, ", "))
}

func swatchLine(c theme.RGBA, variable string) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(displayHex(c))).
		Render(swatchBlock)
	return fmt.Sprintf("%s %s %s\n", swatch, variableStyle.Render(variable), valueStyle.Render(displayHex(c)))
}

func labelLine(variable, value string) string {
	return fmt.Sprintf("%s %s %s\n", strings.Repeat(" ", len(swatchBlock)), variableStyle.Render(variable), valueStyle.Render(value))
}

// displayHex formats a color for human consumption: six digits when opaque,
// eight when translucent.
func displayHex(c theme.RGBA) string {
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	alpha := uint8(c.A*255 + 0.5)
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, alpha)
}
