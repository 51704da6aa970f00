// Package css derives CSS custom-property names and value expressions from
// the theme data model. Every function is a pure projection over its inputs;
// validation happens upstream.
package css

import (
	"strings"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/theme"
)

// ScopeOf returns the single color a variant is restricted to. A variant
// listing zero or multiple colors is global and has no scope.
func ScopeOf(v theme.Variant) (string, bool) {
	colors := v.ScopedColors()
	if len(colors) == 1 {
		return colors[0], true
	}
	return "", false
}

// formattedScope renders a variant's scope as a name-and-hyphen token, or the
// empty string for global variants.
func formattedScope(v theme.Variant) string {
	name, ok := ScopeOf(v)
	if !ok {
		return ""
	}
	return name + "-"
}

// ColorVariableName returns the custom-property name declared for a color,
// honoring the configured variable prefix.
func ColorVariableName(c theme.Color, settings config.Settings) string {
	if settings.ColorVariablePrefix == "" {
		return "--" + c.KeyName
	}
	return "--" + settings.ColorVariablePrefix + "-" + c.KeyName
}

// ColorVariantVariableName returns the custom-property name declared for a
// color variant.
func ColorVariantVariableName(v theme.ColorVariant) string {
	return "--color-variant-" + formattedScope(v) + v.Name
}

// OpacityVariantVariableName returns the custom-property name declared for an
// opacity variant.
func OpacityVariantVariableName(v theme.OpacityVariant) string {
	return "--opacity-variant-" + formattedScope(v) + v.Name
}

// CustomPropertyVariableName returns the custom-property name declared for a
// user-supplied property. The prefix is concatenated as-is; the name is
// tokenized and kebab-cased.
func CustomPropertyVariableName(p theme.CustomProperty) string {
	return "--" + p.Prefix + KebabCase(p.Name)
}

// KebabCase splits an identifier-like string into words and joins them with
// hyphens, lowercased. Word boundaries follow the usual camelCase and
// PascalCase conventions, including acronym runs ("HTTPServer" becomes
// "http-server") and digit runs. Characters that belong to no word, such as
// underscores, act as separators and are dropped.
func KebabCase(s string) string {
	runes := []rune(s)
	var tokens []string

	for i := 0; i < len(runes); {
		if n := matchAcronym(runes[i:]); n > 0 {
			tokens = append(tokens, strings.ToLower(string(runes[i:i+n])))
			i += n
			continue
		}
		if n := matchWord(runes[i:]); n > 0 {
			tokens = append(tokens, strings.ToLower(string(runes[i:i+n])))
			i += n
			continue
		}
		if isUpper(runes[i]) {
			tokens = append(tokens, strings.ToLower(string(runes[i])))
			i++
			continue
		}
		if n := matchDigits(runes[i:]); n > 0 {
			tokens = append(tokens, string(runes[i:i+n]))
			i += n
			continue
		}
		i++
	}

	return strings.Join(tokens, "-")
}

// matchAcronym matches a run of two or more uppercase letters that either
// ends the word or is followed by a capitalized word, in which case the
// capital starting that word is left for the next token.
func matchAcronym(runes []rune) int {
	run := 0
	for run < len(runes) && isUpper(runes[run]) {
		run++
	}
	if run < 2 {
		return 0
	}

	if run == len(runes) || !isWordRune(runes[run]) {
		return run
	}
	if run > 2 && isLower(runes[run]) {
		return run - 1
	}
	return 0
}

// matchWord matches an optionally capitalized lowercase word with trailing
// digits: "background", "Color", "gray100".
func matchWord(runes []rune) int {
	i := 0
	if i < len(runes) && isUpper(runes[i]) {
		i++
	}
	start := i
	for i < len(runes) && isLower(runes[i]) {
		i++
	}
	if i == start {
		return 0
	}
	for i < len(runes) && isDigit(runes[i]) {
		i++
	}
	return i
}

func matchDigits(runes []rune) int {
	i := 0
	for i < len(runes) && isDigit(runes[i]) {
		i++
	}
	return i
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWordRune(r rune) bool {
	return isUpper(r) || isLower(r) || isDigit(r) || r == '_'
}
