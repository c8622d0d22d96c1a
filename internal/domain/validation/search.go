package validation

import (
	"net/url"
	"strings"
)

// ValidateSearchTemplate checks a search engine URL template.
func ValidateSearchTemplate(field string, template string) []string {
	if template == "" {
		return []string{field + " cannot be empty"}
	}

	var errs []string
	if !strings.Contains(template, "%s") {
		errs = append(errs, field+" must contain %s placeholder")
	}

	parsed, err := url.Parse(strings.Replace(template, "%s", "q", 1))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		errs = append(errs, field+" must be an http or https URL")
	}

	return errs
}
