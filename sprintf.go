package gelfout

import (
	"regexp"
	"strings"
)

var templateRef = regexp.MustCompile(`%\{[^}]+\}`)

// Sprintf substitutes %{field} references in a template with the
// event's field values, Logstash style. A reference to a field that
// does not exist is left literal in the output, so callers can detect
// a failed substitution by comparing against the input.
func (evt *Event) Sprintf(template string) string {
	return templateRef.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		fld := evt.Field(name)
		if !fld.Exists() {
			return match
		}
		return fld.GetString()
	})
}

// HasTemplateRef reports whether s contains a %{...} placeholder.
func HasTemplateRef(s string) bool {
	return strings.Contains(s, "%{")
}
