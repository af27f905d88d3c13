// Package logic holds the pure predicates the browser filters with.
package logic

import (
	"strings"

	"golang.org/x/text/cases"

	"rackbrowser/internal/domain"
)

// Matches reports whether needle occurs in haystack, ignoring case.
// An empty needle matches everything.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(haystack), fold.String(needle))
}

// ModuleMatches checks needle against the module's plugin slug,
// manufacturer, name, slug and tag labels as one space-joined string,
// so a needle may span adjacent fields.
func ModuleMatches(m *domain.ModuleDescriptor, needle string) bool {
	if needle == "" {
		return true
	}
	if m == nil {
		return false
	}
	return Matches(moduleHaystack(m), needle)
}

func moduleHaystack(m *domain.ModuleDescriptor) string {
	var sb strings.Builder
	sb.WriteString(m.Plugin)
	sb.WriteByte(' ')
	sb.WriteString(m.Manufacturer)
	sb.WriteByte(' ')
	sb.WriteString(m.Name)
	sb.WriteByte(' ')
	sb.WriteString(m.Slug)
	for _, tag := range m.Tags {
		sb.WriteByte(' ')
		sb.WriteString(tag.Label())
	}
	return sb.String()
}
