package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	themingerrors "github.com/crswll/tailwindcss-theming/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a theme document from disk, validates it, and returns
// the resulting model. Missing settings fall back to defaults.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themingerrors.NewParseError(path, 0, err)
	}

	doc := Document{Settings: DefaultSettings()}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, themingerrors.NewParseError(path, extractLine(err), err)
	}
	if doc.Settings.Strategy == "" {
		doc.Settings.Strategy = StrategyPrefersColorScheme
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
