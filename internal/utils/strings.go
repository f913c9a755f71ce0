package utils

import (
	"strings"
)

// Deref returns *p or fallback when p is nil or blank.
func Deref(p *string, fallback string) string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return fallback
	}
	return strings.TrimSpace(*p)
}

// EscapeLike escapes LIKE wildcards so user search text matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
