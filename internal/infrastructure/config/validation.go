package config

import (
	"fmt"
	"strings"

	"github.com/twilight/weaver/internal/domain/validation"
)

const (
	minFontSize = 1
	maxFontSize = 72
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validation.ValidateSearchTemplate("default_search_engine", config.DefaultSearchEngine)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if config.Appearance.DefaultFontSize < minFontSize || config.Appearance.DefaultFontSize > maxFontSize {
		validationErrors = append(validationErrors, "appearance.default_font_size must be between 1 and 72")
	}
	validationErrors = append(validationErrors, validation.ValidateFontFamily("appearance.sans_font", config.Appearance.SansFont)...)
	validationErrors = append(validationErrors, validation.ValidateFontFamily("appearance.serif_font", config.Appearance.SerifFont)...)
	validationErrors = append(
		validationErrors,
		validation.ValidateFontFamily("appearance.monospace_font", config.Appearance.MonospaceFont)...,
	)
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error or disabled (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}

	return validationErrors
}
