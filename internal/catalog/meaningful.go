package catalog

import "strings"

// placeholderTokens are the values the backend emits when a field was never
// filled in. They must never produce a visible row.
var placeholderTokens = map[string]struct{}{
	"na":                   {},
	"n/a":                  {},
	"none":                 {},
	"null":                 {},
	"-":                    {},
	"n.a.":                 {},
	"n.a":                  {},
	"unknown":              {},
	"n/a (not applicable)": {},
	"n/a (na)":             {},
}

// IsMeaningful reports whether a field value should be rendered. Empty and
// whitespace-only strings are not meaningful, nor is any case-insensitive
// match of the placeholder set.
func IsMeaningful(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	_, placeholder := placeholderTokens[strings.ToLower(trimmed)]
	return !placeholder
}
