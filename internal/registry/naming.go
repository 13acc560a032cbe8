package registry

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_ ]+)\}`)

// ApplyNamingTemplate substitutes {field} placeholders in template from the
// given metadata. Returns (result, true) when every placeholder resolved;
// otherwise (fallback, false). An empty template also falls back.
func ApplyNamingTemplate(template string, metadata map[string]string, fallback string) (string, bool) {
	if strings.TrimSpace(template) == "" {
		return fallback, false
	}
	complete := true
	out := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		key := strings.Trim(m, "{}")
		if v, ok := metadata[key]; ok && v != "" {
			return v
		}
		complete = false
		return m
	})
	if !complete {
		return fallback, false
	}
	return out, true
}
