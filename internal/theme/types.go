package theme

// Scheme identifies the color scheme a theme applies to. The zero value means
// the theme is unscoped and applies regardless of scheme.
type Scheme string

const (
	SchemeNone  Scheme = ""
	SchemeDark  Scheme = "dark"
	SchemeLight Scheme = "light"
)

// RGBA is a resolved color value. Channels are 0-255; A is 0-1 where 1 means
// fully opaque.
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A float64
}

// Opaque reports whether the color has a full alpha channel.
func (c RGBA) Opaque() bool {
	return c.A == 1
}

// Color is a named color belonging to a theme. KeyName is the stable
// identifier used when deriving CSS variable names.
type Color struct {
	KeyName  string
	Computed RGBA
}

// Variant is the capability shared by color variants and opacity variants: a
// name plus the ordered list of color key names the variant is restricted to.
type Variant interface {
	VariantName() string
	ScopedColors() []string
}

// ColorVariant is an alternate rendering of one or more base colors, carrying
// its own resolved color value.
type ColorVariant struct {
	Name   string
	Colors []string
	Color  RGBA
}

// VariantName returns the variant's name.
func (v ColorVariant) VariantName() string { return v.Name }

// ScopedColors returns the color key names the variant is restricted to.
func (v ColorVariant) ScopedColors() []string { return v.Colors }

// OpacityVariant is a named alpha level combined with a base color at
// use-site. It carries no resolved color of its own.
type OpacityVariant struct {
	Name    string
	Colors  []string
	Opacity float64
}

// VariantName returns the variant's name.
func (v OpacityVariant) VariantName() string { return v.Name }

// ScopedColors returns the color key names the variant is restricted to.
func (v OpacityVariant) ScopedColors() []string { return v.Colors }

// CustomProperty is a user-declared CSS custom property outside the color
// model.
type CustomProperty struct {
	Name   string
	Prefix string
	Value  string
}

// Theme is a named collection of colors, variants, and custom properties. It
// may be marked default and optionally tagged with a color scheme.
type Theme struct {
	Name             string
	Default          bool
	Scheme           Scheme
	Colors           []Color
	ColorVariants    []ColorVariant
	OpacityVariants  []OpacityVariant
	CustomProperties []CustomProperty
}
