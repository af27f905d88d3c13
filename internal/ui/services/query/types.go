package query

import (
	"rackbrowser/internal/domain"
)

// RowKind identifies what a result row represents
type RowKind int

const (
	RowSectionHeader RowKind = iota
	RowManufacturer
	RowTag
	RowClearFilter
	RowModule
)

func (k RowKind) String() string {
	switch k {
	case RowSectionHeader:
		return "header"
	case RowManufacturer:
		return "manufacturer"
	case RowTag:
		return "tag"
	case RowClearFilter:
		return "clear-filter"
	case RowModule:
		return "module"
	default:
		return "unknown"
	}
}

// Section header labels
const (
	HeaderFavorites     = "Favorites"
	HeaderManufacturers = "Manufacturers"
	HeaderTags          = "Tags"
	HeaderModules       = "Modules"
)

// Labels for the category rows that reset part of the filter
const (
	LabelAllManufacturers = "Show all modules"
	LabelAllTags          = "Show all tags"
	LabelClearFilter      = "Clear filter"
)

// Row is one line of the result list. Only the field matching Kind is set.
type Row struct {
	Kind         RowKind
	Label        string
	Manufacturer string
	Tag          domain.TagID
	Module       *domain.ModuleDescriptor
}

// Selectable reports whether the cursor may rest on the row
func (r Row) Selectable() bool {
	return r.Kind != RowSectionHeader
}

// Favorites is the read side of the favorites store the list is built from
type Favorites interface {
	List() []*domain.ModuleDescriptor
	IsFavorite(ref domain.ModuleRef) bool
}

func headerRow(label string) Row {
	return Row{Kind: RowSectionHeader, Label: label}
}

func manufacturerRow(name string) Row {
	label := name
	if label == "" {
		label = LabelAllManufacturers
	}
	return Row{Kind: RowManufacturer, Label: label, Manufacturer: name}
}

func tagRow(tag domain.TagID) Row {
	label := tag.Label()
	if tag == domain.NoTag {
		label = LabelAllTags
	}
	return Row{Kind: RowTag, Label: label, Tag: tag}
}

func clearFilterRow() Row {
	return Row{Kind: RowClearFilter, Label: LabelClearFilter}
}

func moduleRow(m *domain.ModuleDescriptor) Row {
	return Row{Kind: RowModule, Label: m.Name, Manufacturer: m.Manufacturer, Module: m}
}
