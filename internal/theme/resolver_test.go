package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	themingerrors "github.com/crswll/tailwindcss-theming/pkg/errors"
)

func TestResolveDefaultReturnsUnscopedDefault(t *testing.T) {
	t.Parallel()

	themes := []Theme{
		{Name: "base", Default: true},
		{Name: "midnight", Default: true, Scheme: SchemeDark},
		{Name: "daylight", Default: true, Scheme: SchemeLight},
		{Name: "high-contrast"},
	}

	resolved, err := ResolveDefault(themes)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	require.Equal(t, "base", resolved.Name)
	require.Equal(t, SchemeNone, resolved.Scheme)
}

func TestResolveDefaultAcceptsAnonymousDefault(t *testing.T) {
	t.Parallel()

	themes := []Theme{
		{Default: true},
		{Name: "alternate"},
	}

	resolved, err := ResolveDefault(themes)
	require.NoError(t, err)
	require.True(t, resolved.Default)
}

func TestResolveDefaultRejectsUnnamedThemes(t *testing.T) {
	t.Parallel()

	themes := []Theme{
		{Name: "base", Default: true},
		{},
		{},
	}

	_, err := ResolveDefault(themes)

	var missingErr *themingerrors.MissingNameError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, 2, missingErr.Count)
}

func TestResolveDefaultRejectsEmptySet(t *testing.T) {
	t.Parallel()

	_, err := ResolveDefault(nil)

	var noDefaultErr *themingerrors.NoDefaultThemeError
	require.ErrorAs(t, err, &noDefaultErr)
}

func TestResolveDefaultRejectsMissingDefault(t *testing.T) {
	t.Parallel()

	themes := []Theme{
		{Name: "base"},
		{Name: "midnight", Default: true, Scheme: SchemeDark},
	}

	_, err := ResolveDefault(themes)

	var noDefaultErr *themingerrors.NoDefaultThemeError
	require.ErrorAs(t, err, &noDefaultErr)
}

func TestResolveDefaultRejectsMultipleDefaults(t *testing.T) {
	t.Parallel()

	themes := []Theme{
		{Name: "base", Default: true},
		{Name: "other", Default: true},
	}

	_, err := ResolveDefault(themes)

	var multiErr *themingerrors.MultipleDefaultThemesError
	require.ErrorAs(t, err, &multiErr)
	require.Equal(t, []string{"base", "other"}, multiErr.Names)
}

func TestResolveDefaultRejectsMultipleSchemeDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		scheme Scheme
	}{
		{name: "dark", scheme: SchemeDark},
		{name: "light", scheme: SchemeLight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			themes := []Theme{
				{Name: "base", Default: true},
				{Name: "first", Default: true, Scheme: tc.scheme},
				{Name: "second", Default: true, Scheme: tc.scheme},
			}

			_, err := ResolveDefault(themes)

			var scopedErr *themingerrors.MultipleScopedDefaultThemesError
			require.ErrorAs(t, err, &scopedErr)
			require.Equal(t, string(tc.scheme), scopedErr.Scheme)
			require.Equal(t, []string{"first", "second"}, scopedErr.Names)
		})
	}
}

func TestResolveDefaultReportsFirstViolatedRule(t *testing.T) {
	t.Parallel()

	// Violates both the naming rule and the multiple-defaults rule; the
	// naming rule is checked first and must win.
	themes := []Theme{
		{},
		{Name: "base", Default: true},
		{Name: "other", Default: true},
	}

	_, err := ResolveDefault(themes)

	var missingErr *themingerrors.MissingNameError
	require.ErrorAs(t, err, &missingErr)
}

func TestResolveDefaultChecksDarkBeforeLight(t *testing.T) {
	t.Parallel()

	themes := []Theme{
		{Name: "base", Default: true},
		{Name: "d1", Default: true, Scheme: SchemeDark},
		{Name: "d2", Default: true, Scheme: SchemeDark},
		{Name: "l1", Default: true, Scheme: SchemeLight},
		{Name: "l2", Default: true, Scheme: SchemeLight},
	}

	_, err := ResolveDefault(themes)

	var scopedErr *themingerrors.MultipleScopedDefaultThemesError
	require.ErrorAs(t, err, &scopedErr)
	require.Equal(t, "dark", scopedErr.Scheme)
}

func TestDefaultForScheme(t *testing.T) {
	t.Parallel()

	themes := []Theme{
		{Name: "base", Default: true},
		{Name: "midnight", Default: true, Scheme: SchemeDark},
		{Name: "paper"},
	}

	dark := DefaultForScheme(themes, SchemeDark)
	require.NotNil(t, dark)
	require.Equal(t, "midnight", dark.Name)

	require.Nil(t, DefaultForScheme(themes, SchemeLight))
}
