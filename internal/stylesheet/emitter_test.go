package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/theme"
	themingerrors "github.com/crswll/tailwindcss-theming/pkg/errors"
)

func fixtureThemes() []theme.Theme {
	return []theme.Theme{
		{
			Name:    "base",
			Default: true,
			Colors: []theme.Color{
				{KeyName: "primary", Computed: theme.RGBA{R: 0x34, G: 0x90, B: 0xdc, A: 1}},
				{KeyName: "overlay", Computed: theme.RGBA{A: 0.5}},
			},
			ColorVariants: []theme.ColorVariant{
				{Name: "hover", Colors: []string{"primary"}, Color: theme.RGBA{R: 0x27, G: 0x79, B: 0xbd, A: 1}},
			},
			OpacityVariants: []theme.OpacityVariant{
				{Name: "muted", Opacity: 0.6},
			},
			CustomProperties: []theme.CustomProperty{
				{Name: "contentWidth", Value: "65ch"},
			},
		},
		{
			Name:    "midnight",
			Default: true,
			Scheme:  theme.SchemeDark,
			Colors: []theme.Color{
				{KeyName: "primary", Computed: theme.RGBA{R: 0x10, G: 0x18, B: 0x27, A: 1}},
			},
		},
		{
			Name: "high-contrast",
			Colors: []theme.Color{
				{KeyName: "primary", Computed: theme.RGBA{A: 1}},
			},
		},
	}
}

func TestRenderDefaultThemeOnRoot(t *testing.T) {
	t.Parallel()

	out, err := Render(fixtureThemes(), config.DefaultSettings())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, ":root {\n"))
	require.Contains(t, out, "  --primary: 52,144,220;\n")
	require.Contains(t, out, "  --overlay: 0,0,0;\n")
	require.Contains(t, out, "  --color-variant-primary-hover: 39,121,189;\n")
	require.Contains(t, out, "  --opacity-variant-muted: 0.6;\n")
	require.Contains(t, out, "  --content-width: 65ch;\n")
}

func TestRenderSchemeDefaultsUseMediaQueries(t *testing.T) {
	t.Parallel()

	out, err := Render(fixtureThemes(), config.DefaultSettings())
	require.NoError(t, err)

	require.Contains(t, out, "@media (prefers-color-scheme: dark) {\n  :root {\n")
	require.NotContains(t, out, "prefers-color-scheme: light")
	// Scheme defaults are named, so they stay reachable by selector too.
	require.Contains(t, out, `[data-theme="midnight"] {`)
}

func TestRenderNamedThemesBySelector(t *testing.T) {
	t.Parallel()

	settings := config.Settings{Strategy: config.StrategyDataThemeAttribute}
	out, err := Render(fixtureThemes(), settings)
	require.NoError(t, err)

	require.Contains(t, out, `[data-theme="high-contrast"] {`)
	require.NotContains(t, out, "@media")

	settings.Strategy = config.StrategyClass
	out, err = Render(fixtureThemes(), settings)
	require.NoError(t, err)
	require.Contains(t, out, ".theme-high-contrast {")
}

func TestRenderHonorsPrefixAndHexMode(t *testing.T) {
	t.Parallel()

	settings := config.Settings{
		Hexadecimal:         true,
		ColorVariablePrefix: "app",
		Strategy:            config.StrategyPrefersColorScheme,
	}

	out, err := Render(fixtureThemes(), settings)
	require.NoError(t, err)

	require.Contains(t, out, "  --app-primary: #3490dcff;\n")
	require.Contains(t, out, "  --app-overlay: #00000080;\n")
}

func TestRenderEmitsNothingOnResolutionFailure(t *testing.T) {
	t.Parallel()

	themes := []theme.Theme{
		{Name: "base", Default: true},
		{Name: "other", Default: true},
	}

	out, err := Render(themes, config.DefaultSettings())

	var multiErr *themingerrors.MultipleDefaultThemesError
	require.ErrorAs(t, err, &multiErr)
	require.Empty(t, out)
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Render(fixtureThemes(), config.DefaultSettings())
	require.NoError(t, err)

	second, err := Render(fixtureThemes(), config.DefaultSettings())
	require.NoError(t, err)

	require.Equal(t, first, second)
}
