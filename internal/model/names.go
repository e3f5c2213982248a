package model

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	separators    = regexp.MustCompile(`[\s_]+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9-]+`)
	dashRuns      = regexp.MustCompile(`-{2,}`)
)

// NormalizeName converts a display name into the kebab-case identifier used
// for DOM ids, CSS selectors and folder names. camelCase is split, spaces
// and underscores become dashes, anything outside [a-z0-9-] is dropped.
// A leading digit gets an "fp-" prefix so the result is a valid CSS
// identifier. The result may be empty.
func NormalizeName(name string) string {
	s := strings.TrimSpace(name)
	s = camelBoundary.ReplaceAllString(s, "$1-$2")
	s = separators.ReplaceAllString(s, "-")
	s = strings.ToLower(s)
	s = disallowed.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "fp-" + s
	}
	return s
}
