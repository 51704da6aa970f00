package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Strategy values control how non-default themes are keyed in emitted CSS.
const (
	StrategyPrefersColorScheme = "prefers-color-scheme"
	StrategyDataThemeAttribute = "data-theme-attribute"
	StrategyClass              = "class"
)

// Document represents a full theme configuration file.
type Document struct {
	Settings Settings    `yaml:"settings,omitempty"`
	Themes   []ThemeSpec `yaml:"themes" validate:"required,min=1,dive"`
}

// Settings holds the options consumed by the naming and emission layers.
type Settings struct {
	Hexadecimal         bool   `yaml:"hexadecimal,omitempty"`
	ColorVariablePrefix string `yaml:"color_variable_prefix,omitempty" validate:"omitempty,key_name"`
	Strategy            string `yaml:"strategy,omitempty" validate:"omitempty,oneof=prefers-color-scheme data-theme-attribute class"`
}

// DefaultSettings returns the settings applied when a document declares none.
func DefaultSettings() Settings {
	return Settings{Strategy: StrategyPrefersColorScheme}
}

// ThemeSpec describes a single theme as authored in the document.
type ThemeSpec struct {
	Name             string               `yaml:"name,omitempty"`
	Default          bool                 `yaml:"default,omitempty"`
	Scheme           string               `yaml:"scheme,omitempty" validate:"omitempty,oneof=dark light"`
	Colors           ColorMap             `yaml:"colors,omitempty"`
	ColorVariants    []ColorVariantSpec   `yaml:"color_variants,omitempty" validate:"omitempty,dive"`
	OpacityVariants  []OpacityVariantSpec `yaml:"opacity_variants,omitempty" validate:"omitempty,dive"`
	CustomProperties []CustomPropertySpec `yaml:"custom_properties,omitempty" validate:"omitempty,dive"`
}

// ColorEntry is a single named color declaration.
type ColorEntry struct {
	Key   string
	Value string
}

// ColorMap preserves the authored order of a theme's color declarations.
// Plain Go maps would reshuffle them and make emitted stylesheets
// nondeterministic.
type ColorMap []ColorEntry

// UnmarshalYAML decodes a YAML mapping while retaining key order.
func (m *ColorMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("colors must be a mapping, got %s", value.Tag)
	}

	entries := make(ColorMap, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var entry ColorEntry
		if err := value.Content[i].Decode(&entry.Key); err != nil {
			return err
		}
		if err := value.Content[i+1].Decode(&entry.Value); err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	*m = entries
	return nil
}

// Keys returns the declared color key names in document order.
func (m ColorMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, entry := range m {
		keys = append(keys, entry.Key)
	}
	return keys
}

// ColorVariantSpec describes a color variant as authored.
type ColorVariantSpec struct {
	Name   string   `yaml:"name" validate:"required,key_name"`
	Color  string   `yaml:"color" validate:"required,hex_color"`
	Colors []string `yaml:"colors,omitempty"`
}

// OpacityVariantSpec describes an opacity variant as authored.
type OpacityVariantSpec struct {
	Name    string   `yaml:"name" validate:"required,key_name"`
	Opacity *float64 `yaml:"opacity" validate:"required"`
	Colors  []string `yaml:"colors,omitempty"`
}

// CustomPropertySpec describes a user-declared custom property as authored.
type CustomPropertySpec struct {
	Name   string `yaml:"name" validate:"required"`
	Value  string `yaml:"value" validate:"required"`
	Prefix string `yaml:"prefix,omitempty"`
}
