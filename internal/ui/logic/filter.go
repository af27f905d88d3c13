package logic

import (
	"rackbrowser/internal/domain"
)

// FilterState is the browser's current narrowing. The zero value means
// "browse everything".
type FilterState struct {
	Manufacturer string
	Tag          domain.TagID
	Search       string
}

// HasFilter reports whether a manufacturer or tag filter is active
func (f FilterState) HasFilter() bool {
	return f.Manufacturer != "" || f.Tag != domain.NoTag
}

// Active reports whether anything narrows the module list
func (f FilterState) Active() bool {
	return f.HasFilter() || f.Search != ""
}

// IsModuleFiltered reports whether m passes the manufacturer and tag
// filters. Search text is not considered here.
func IsModuleFiltered(m *domain.ModuleDescriptor, f FilterState) bool {
	if m == nil {
		return false
	}
	if f.Manufacturer != "" && m.Manufacturer != f.Manufacturer {
		return false
	}
	if f.Tag != domain.NoTag && !m.HasTag(f.Tag) {
		return false
	}
	return true
}

// Visible combines the filter and the search predicate
func Visible(m *domain.ModuleDescriptor, f FilterState) bool {
	return IsModuleFiltered(m, f) && ModuleMatches(m, f.Search)
}
