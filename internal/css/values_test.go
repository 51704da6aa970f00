package css

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/theme"
)

var (
	hexSettings     = config.Settings{Hexadecimal: true}
	channelSettings = config.Settings{}

	opaque      = theme.RGBA{R: 0x34, G: 0x90, B: 0xdc, A: 1}
	translucent = theme.RGBA{R: 0x34, G: 0x90, B: 0xdc, A: 0.5}
)

func TestColorReference(t *testing.T) {
	t.Parallel()

	opaqueColor := theme.Color{KeyName: "primary", Computed: opaque}
	translucentColor := theme.Color{KeyName: "overlay", Computed: translucent}

	require.Equal(t, "rgb(var(--primary))", ColorReference(opaqueColor, channelSettings))
	require.Equal(t, "rgba(var(--overlay), 0.5)", ColorReference(translucentColor, channelSettings))
	require.Equal(t, "var(--primary)", ColorReference(opaqueColor, hexSettings))
	require.Equal(t, "var(--overlay)", ColorReference(translucentColor, hexSettings))
}

func TestColorReferenceNeverUsesRgbaWhenOpaque(t *testing.T) {
	t.Parallel()

	c := theme.Color{KeyName: "primary", Computed: opaque}
	require.NotContains(t, ColorReference(c, channelSettings), "rgba")
}

func TestColorVariableValue(t *testing.T) {
	t.Parallel()

	c := theme.Color{KeyName: "overlay", Computed: translucent}

	// Base colors never embed alpha in the stored value; references apply
	// it as a literal instead.
	require.Equal(t, "52,144,220", ColorVariableValue(c, channelSettings))
	require.Equal(t, "#3490dc80", ColorVariableValue(c, hexSettings))
}

func TestColorVariantReference(t *testing.T) {
	t.Parallel()

	opaqueVariant := theme.ColorVariant{Name: "hover", Colors: []string{"primary"}, Color: opaque}
	translucentVariant := theme.ColorVariant{Name: "glass", Color: translucent}

	require.Equal(t, "rgb(var(--color-variant-primary-hover))", ColorVariantReference(opaqueVariant, channelSettings))
	require.Equal(t, "rgba(var(--color-variant-glass))", ColorVariantReference(translucentVariant, channelSettings))
	require.Equal(t, "var(--color-variant-primary-hover)", ColorVariantReference(opaqueVariant, hexSettings))
}

func TestColorVariantVariableValue(t *testing.T) {
	t.Parallel()

	opaqueVariant := theme.ColorVariant{Name: "hover", Color: opaque}
	translucentVariant := theme.ColorVariant{Name: "glass", Color: translucent}

	require.Equal(t, "52,144,220", ColorVariantVariableValue(opaqueVariant, channelSettings))
	require.Equal(t, "52,144,220,0.5", ColorVariantVariableValue(translucentVariant, channelSettings))
}

func TestColorVariantVariableValueHexAlwaysEightDigits(t *testing.T) {
	t.Parallel()

	hex8Pattern := regexp.MustCompile(`^#[0-9a-f]{8}$`)

	for name, variant := range map[string]theme.ColorVariant{
		"opaque":      {Name: "hover", Color: opaque},
		"translucent": {Name: "glass", Color: translucent},
	} {
		value := ColorVariantVariableValue(variant, hexSettings)
		require.Regexp(t, hex8Pattern, value, "variant %s", name)
	}
}

func TestOpacityVariantReference(t *testing.T) {
	t.Parallel()

	variant := theme.OpacityVariant{Name: "muted", Colors: []string{"primary"}, Opacity: 0.6}
	base := theme.Color{KeyName: "primary", Computed: opaque}

	want := "rgba(var(--primary), var(--opacity-variant-primary-muted))"
	require.Equal(t, want, OpacityVariantReference(variant, base, channelSettings))

	// Opacity variants combine a scalar with a color variable at use-site;
	// hexadecimal mode does not change the expression.
	require.Equal(t, want, OpacityVariantReference(variant, base, hexSettings))
}

func TestOpacityVariantVariableValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0.6", OpacityVariantVariableValue(theme.OpacityVariant{Name: "muted", Opacity: 0.6}))
	require.Equal(t, "1", OpacityVariantVariableValue(theme.OpacityVariant{Name: "solid", Opacity: 1}))
}
