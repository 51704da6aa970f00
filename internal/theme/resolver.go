package theme

import (
	themingerrors "github.com/crswll/tailwindcss-theming/pkg/errors"
)

// ResolveDefault validates a theme set and returns its single unscoped default
// theme. Validation rules are checked against the full input in a fixed order
// and the first violated rule wins:
//
//  1. every theme must be named or marked default
//  2. exactly one unscoped theme must be marked default
//  3. at most one default theme may exist per scheme
//
// A set that fails any rule is unusable as a whole; callers must not emit any
// CSS for it.
func ResolveDefault(themes []Theme) (*Theme, error) {
	unnamed := filter(themes, func(t Theme) bool { return !t.Default && t.Name == "" })
	defaults := filter(themes, func(t Theme) bool { return t.Default && t.Scheme == SchemeNone })
	darkDefaults := filter(themes, func(t Theme) bool { return t.Default && t.Scheme == SchemeDark })
	lightDefaults := filter(themes, func(t Theme) bool { return t.Default && t.Scheme == SchemeLight })

	rules := []struct {
		violated bool
		err      func() error
	}{
		{
			violated: len(unnamed) > 0,
			err:      func() error { return themingerrors.NewMissingNameError(len(unnamed)) },
		},
		{
			violated: len(defaults) == 0,
			err:      func() error { return themingerrors.NewNoDefaultThemeError() },
		},
		{
			violated: len(defaults) > 1,
			err:      func() error { return themingerrors.NewMultipleDefaultThemesError(names(defaults)) },
		},
		{
			violated: len(darkDefaults) > 1,
			err: func() error {
				return themingerrors.NewMultipleScopedDefaultThemesError(string(SchemeDark), names(darkDefaults))
			},
		},
		{
			violated: len(lightDefaults) > 1,
			err: func() error {
				return themingerrors.NewMultipleScopedDefaultThemesError(string(SchemeLight), names(lightDefaults))
			},
		},
	}

	for _, rule := range rules {
		if rule.violated {
			return nil, rule.err()
		}
	}

	return &defaults[0], nil
}

// DefaultForScheme returns the default theme tagged with the given scheme, or
// nil when the set declares none. It performs no validation; callers are
// expected to have run ResolveDefault first, which guarantees at most one
// match exists.
func DefaultForScheme(themes []Theme, scheme Scheme) *Theme {
	for i := range themes {
		if themes[i].Default && themes[i].Scheme == scheme {
			return &themes[i]
		}
	}
	return nil
}

func filter(themes []Theme, keep func(Theme) bool) []Theme {
	var out []Theme
	for _, t := range themes {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func names(themes []Theme) []string {
	out := make([]string, 0, len(themes))
	for _, t := range themes {
		out = append(out, t.Name)
	}
	return out
}
