package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	themingerrors "github.com/crswll/tailwindcss-theming/pkg/errors"
)

// ValidateDocument performs structural and cross-field validation on an
// entire theme document. Default-theme invariants are not checked here; they
// belong to the theme resolver.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return themingerrors.NewValidationError("document", "theme document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for i, spec := range doc.Themes {
		if err := validateThemeSpec(spec, i); err != nil {
			return err
		}
	}

	return nil
}

// validateThemeSpec checks the rules the struct tags cannot express: color
// map contents and variant scope references.
func validateThemeSpec(spec ThemeSpec, index int) error {
	declared := make(map[string]struct{}, len(spec.Colors))
	for _, entry := range spec.Colors {
		field := fieldForTheme(index, "colors."+entry.Key)
		if !keyNamePattern.MatchString(entry.Key) {
			return themingerrors.NewValidationError(field, fmt.Sprintf("invalid color key %q", entry.Key), nil)
		}
		if _, exists := declared[entry.Key]; exists {
			return themingerrors.NewValidationError(field, fmt.Sprintf("duplicate color key %q", entry.Key), nil)
		}
		if !hexColorPattern.MatchString(entry.Value) {
			return themingerrors.NewValidationError(field, fmt.Sprintf("invalid hex color %q", entry.Value), nil)
		}
		declared[entry.Key] = struct{}{}
	}

	for i, variant := range spec.ColorVariants {
		field := fieldForTheme(index, fmt.Sprintf("color_variants[%d].colors", i))
		if err := validateScopeRefs(variant.Colors, declared, field); err != nil {
			return err
		}
	}

	for i, variant := range spec.OpacityVariants {
		if *variant.Opacity < 0 || *variant.Opacity > 1 {
			field := fieldForTheme(index, fmt.Sprintf("opacity_variants[%d].opacity", i))
			return themingerrors.NewValidationError(field, fmt.Sprintf("opacity %v is outside [0, 1]", *variant.Opacity), nil)
		}
		field := fieldForTheme(index, fmt.Sprintf("opacity_variants[%d].colors", i))
		if err := validateScopeRefs(variant.Colors, declared, field); err != nil {
			return err
		}
	}

	return nil
}

func validateScopeRefs(refs []string, declared map[string]struct{}, field string) error {
	for _, ref := range refs {
		if _, ok := declared[ref]; !ok {
			return themingerrors.NewValidationError(field, fmt.Sprintf("references unknown color %q", ref), nil)
		}
	}
	return nil
}

// convertValidationError normalizes validator errors into theming validation
// errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themingerrors.NewValidationError(field, msg, err)
	}

	return themingerrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForTheme(index int, field string) string {
	return fmt.Sprintf("themes[%d].%s", index, field)
}
