// Package validation holds field checks shared by configuration and pages.
package validation

import "strings"

const maxFontFamilyLen = 200

// cssUnsafeChars cannot appear in a font family rendered into a page stylesheet.
const cssUnsafeChars = "\"'();{}<>\\@[]`"

// ValidateFontFamily checks a font family name. Empty values are reported.
func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		errs = append(errs, field+" cannot be empty")
		return errs
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}

	if strings.ContainsAny(value, cssUnsafeChars) {
		errs = append(errs, field+" must not contain quotes, brackets or semicolons")
	}

	if len(value) > maxFontFamilyLen {
		errs = append(errs, field+" is too long")
	}

	return errs
}
