// Package stylesheet assembles theme declarations into CSS text. It consumes
// the resolver and the naming layer; a theme set that fails resolution
// produces no output at all.
package stylesheet

import (
	"fmt"
	"strings"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/css"
	"github.com/crswll/tailwindcss-theming/internal/theme"
)

// Render emits a complete stylesheet for a theme set. The unscoped default
// theme lands on :root, scheme defaults follow the configured strategy, and
// every other named theme is reachable through a selector keyed by its name.
func Render(themes []theme.Theme, settings config.Settings) (string, error) {
	defaultTheme, err := theme.ResolveDefault(themes)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writeBlock(&sb, ":root", *defaultTheme, settings, "")

	if settings.Strategy == config.StrategyPrefersColorScheme {
		for _, scheme := range []theme.Scheme{theme.SchemeDark, theme.SchemeLight} {
			scoped := theme.DefaultForScheme(themes, scheme)
			if scoped == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n@media (prefers-color-scheme: %s) {\n", scheme))
			writeBlock(&sb, ":root", *scoped, settings, "  ")
			sb.WriteString("}\n")
		}
	}

	for _, t := range themes {
		if t.Default && t.Scheme == theme.SchemeNone {
			continue
		}
		if t.Name == "" {
			continue
		}
		sb.WriteString("\n")
		writeBlock(&sb, themeSelector(t.Name, settings.Strategy), t, settings, "")
	}

	return sb.String(), nil
}

// themeSelector returns the selector a named theme is activated by.
func themeSelector(name, strategy string) string {
	if strategy == config.StrategyClass {
		return ".theme-" + name
	}
	return fmt.Sprintf("[data-theme=%q]", name)
}

func writeBlock(sb *strings.Builder, selector string, t theme.Theme, settings config.Settings, indent string) {
	sb.WriteString(indent)
	sb.WriteString(selector)
	sb.WriteString(" {\n")

	for _, c := range t.Colors {
		writeDeclaration(sb, indent, css.ColorVariableName(c, settings), css.ColorVariableValue(c, settings))
	}
	for _, v := range t.ColorVariants {
		writeDeclaration(sb, indent, css.ColorVariantVariableName(v), css.ColorVariantVariableValue(v, settings))
	}
	for _, v := range t.OpacityVariants {
		writeDeclaration(sb, indent, css.OpacityVariantVariableName(v), css.OpacityVariantVariableValue(v))
	}
	for _, p := range t.CustomProperties {
		writeDeclaration(sb, indent, css.CustomPropertyVariableName(p), p.Value)
	}

	sb.WriteString(indent)
	sb.WriteString("}\n")
}

func writeDeclaration(sb *strings.Builder, indent, name, value string) {
	sb.WriteString(fmt.Sprintf("%s  %s: %s;\n", indent, name, value))
}
