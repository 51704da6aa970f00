package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/crswll/tailwindcss-theming/internal/theme"
	themingerrors "github.com/crswll/tailwindcss-theming/pkg/errors"
)

// BuildThemes converts a validated document into the theme model consumed by
// the resolver and the formatting layer.
func BuildThemes(doc *Document) ([]theme.Theme, error) {
	themes := make([]theme.Theme, 0, len(doc.Themes))

	for i, spec := range doc.Themes {
		t := theme.Theme{
			Name:    spec.Name,
			Default: spec.Default,
			Scheme:  theme.Scheme(spec.Scheme),
		}

		for _, entry := range spec.Colors {
			computed, err := ParseHexColor(entry.Value)
			if err != nil {
				field := fieldForTheme(i, "colors."+entry.Key)
				return nil, themingerrors.NewValidationError(field, err.Error(), err)
			}
			t.Colors = append(t.Colors, theme.Color{KeyName: entry.Key, Computed: computed})
		}

		for j, variant := range spec.ColorVariants {
			computed, err := ParseHexColor(variant.Color)
			if err != nil {
				field := fieldForTheme(i, fmt.Sprintf("color_variants[%d].color", j))
				return nil, themingerrors.NewValidationError(field, err.Error(), err)
			}
			t.ColorVariants = append(t.ColorVariants, theme.ColorVariant{
				Name:   variant.Name,
				Colors: append([]string(nil), variant.Colors...),
				Color:  computed,
			})
		}

		for _, variant := range spec.OpacityVariants {
			t.OpacityVariants = append(t.OpacityVariants, theme.OpacityVariant{
				Name:    variant.Name,
				Colors:  append([]string(nil), variant.Colors...),
				Opacity: *variant.Opacity,
			})
		}

		for _, prop := range spec.CustomProperties {
			t.CustomProperties = append(t.CustomProperties, theme.CustomProperty{
				Name:   prop.Name,
				Prefix: prop.Prefix,
				Value:  prop.Value,
			})
		}

		themes = append(themes, t)
	}

	return themes, nil
}

// ParseHexColor decodes #rgb, #rgba, #rrggbb, and #rrggbbaa notations into a
// resolved color. The alpha channel is rounded to two decimals so emitted
// values stay readable.
func ParseHexColor(s string) (theme.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) {
		return theme.RGBA{}, fmt.Errorf("hex color %q must start with '#'", s)
	}

	// Expand shorthand notation to one byte per channel.
	if len(hex) == 3 || len(hex) == 4 {
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	}

	if len(hex) != 6 && len(hex) != 8 {
		return theme.RGBA{}, fmt.Errorf("hex color %q has an unsupported length", s)
	}

	channels := make([]uint8, 0, 4)
	for i := 0; i+1 < len(hex); i += 2 {
		value, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return theme.RGBA{}, fmt.Errorf("hex color %q contains invalid digits", s)
		}
		channels = append(channels, uint8(value))
	}

	c := theme.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 1}
	if len(channels) == 4 {
		c.A = math.Round(float64(channels[3])/255*100) / 100
	}
	return c, nil
}
