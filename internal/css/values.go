package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/theme"
)

// ColorReference returns the expression used where a color is consumed. In
// hexadecimal mode the variable already holds a complete color. Otherwise the
// variable holds bare channels and a translucent color appends its alpha as a
// literal at the call site.
func ColorReference(c theme.Color, settings config.Settings) string {
	variable := "var(" + ColorVariableName(c, settings) + ")"
	if settings.Hexadecimal {
		return variable
	}
	if !c.Computed.Opaque() {
		return fmt.Sprintf("rgba(%s, %s)", variable, formatAlpha(c.Computed.A))
	}
	return "rgb(" + variable + ")"
}

// ColorVariableValue returns the value stored in a color's variable. Channel
// mode never embeds alpha for base colors; ColorReference applies it instead.
func ColorVariableValue(c theme.Color, settings config.Settings) string {
	if settings.Hexadecimal {
		return hex8(c.Computed)
	}
	return channelList(c.Computed, false)
}

// ColorVariantReference returns the expression used where a color variant is
// consumed.
func ColorVariantReference(v theme.ColorVariant, settings config.Settings) string {
	variable := "var(" + ColorVariantVariableName(v) + ")"
	if settings.Hexadecimal {
		return variable
	}
	if !v.Color.Opaque() {
		return "rgba(" + variable + ")"
	}
	return "rgb(" + variable + ")"
}

// ColorVariantVariableValue returns the value stored in a color variant's
// variable. Unlike base colors, a translucent variant embeds its alpha in the
// stored channel list.
func ColorVariantVariableValue(v theme.ColorVariant, settings config.Settings) string {
	if settings.Hexadecimal {
		return hex8(v.Color)
	}
	return channelList(v.Color, !v.Color.Opaque())
}

// OpacityVariantReference returns the expression combining a base color with
// an opacity variant at the use site. Opacity variants hold a scalar alpha
// and are never hex-encoded, so both halves come from variables.
func OpacityVariantReference(v theme.OpacityVariant, c theme.Color, settings config.Settings) string {
	return fmt.Sprintf("rgba(var(%s), var(%s))", ColorVariableName(c, settings), OpacityVariantVariableName(v))
}

// OpacityVariantVariableValue returns the value stored in an opacity
// variant's variable.
func OpacityVariantVariableValue(v theme.OpacityVariant) string {
	return formatAlpha(v.Opacity)
}

// hex8 encodes a color as an eight-digit hex string with the alpha channel
// in the final byte.
func hex8(c theme.RGBA) string {
	alpha := uint8(math.Round(c.A * 255))
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, alpha)
}

// channelList encodes a color as comma-separated decimal channels, suitable
// for interpolation inside rgb()/rgba().
func channelList(c theme.RGBA, withAlpha bool) string {
	parts := []string{
		strconv.Itoa(int(c.R)),
		strconv.Itoa(int(c.G)),
		strconv.Itoa(int(c.B)),
	}
	if withAlpha {
		parts = append(parts, formatAlpha(c.A))
	}
	return strings.Join(parts, ",")
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
