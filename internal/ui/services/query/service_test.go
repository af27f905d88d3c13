package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rackbrowser/internal/catalog"
	"rackbrowser/internal/domain"
	"rackbrowser/internal/ui/logic"
)

type favList []*domain.ModuleDescriptor

func (f favList) List() []*domain.ModuleDescriptor { return f }

func (f favList) IsFavorite(ref domain.ModuleRef) bool {
	for _, m := range f {
		if m.Ref() == ref {
			return true
		}
	}
	return false
}

func acmeCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(&domain.Plugin{
		Slug: "Acme",
		Name: "Acme",
		Models: []*domain.ModuleDescriptor{
			{Plugin: "Acme", Slug: "Osc", Name: "Osc", Manufacturer: "Acme", Tags: []domain.TagID{domain.TagOscillator}},
			{Plugin: "Acme", Slug: "Filter", Name: "Filter", Manufacturer: "Acme", Tags: []domain.TagID{domain.TagFilter}},
		},
	})
	require.NoError(t, err)
	return c
}

func regen(t *testing.T, favs Favorites, f logic.FilterState) []Row {
	c := acmeCatalog(t)
	return Regenerate(c, catalog.BuildIndex(c), favs, f)
}

func shape(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Kind.String() + ":" + r.Label
	}
	return out
}

func TestRegenerateBrowse(t *testing.T) {
	rows := regen(t, nil, logic.FilterState{})
	assert.Equal(t, []string{
		"header:Favorites",
		"header:Manufacturers",
		"manufacturer:Acme",
		"header:Tags",
		"tag:Oscillator/VCO",
		"tag:Filter/VCF",
	}, shape(rows))
	assert.Equal(t, domain.TagOscillator, rows[4].Tag)
	assert.Equal(t, domain.TagFilter, rows[5].Tag)
}

func TestRegenerateSearchOnly(t *testing.T) {
	rows := regen(t, nil, logic.FilterState{Search: "osc"})
	assert.Equal(t, []string{
		"header:Favorites",
		"header:Manufacturers",
		"header:Tags",
		"tag:Oscillator/VCO",
		"header:Modules",
		"module:Osc",
	}, shape(rows))
}

func TestRegenerateFavorites(t *testing.T) {
	c := acmeCatalog(t)
	osc, _ := c.Resolve("Acme", "Osc")

	rows := Regenerate(c, catalog.BuildIndex(c), favList{osc, osc}, logic.FilterState{})
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "header:Favorites", shape(rows)[0])
	assert.Equal(t, RowModule, rows[1].Kind)
	assert.Same(t, osc, rows[1].Module)

	count := 0
	for _, r := range rows {
		if r.Kind == RowModule {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRegenerateFavoritesFiltered(t *testing.T) {
	c := acmeCatalog(t)
	osc, _ := c.Resolve("Acme", "Osc")

	rows := Regenerate(c, catalog.BuildIndex(c), favList{osc}, logic.FilterState{Tag: domain.TagFilter})
	assert.Equal(t, []string{
		"header:Favorites",
		"clear-filter:Clear filter",
		"header:Modules",
		"module:Filter",
	}, shape(rows))
}

func TestRegenerateManufacturerFilter(t *testing.T) {
	rows := regen(t, nil, logic.FilterState{Manufacturer: "Acme"})
	assert.Equal(t, []string{
		"header:Favorites",
		"clear-filter:Clear filter",
		"header:Modules",
		"module:Osc",
		"module:Filter",
	}, shape(rows))
}

func TestRegenerateFilterWithSearchShowsClearFilter(t *testing.T) {
	rows := regen(t, nil, logic.FilterState{Manufacturer: "Acme", Search: "filt"})
	assert.Equal(t, []string{
		"header:Favorites",
		"clear-filter:Clear filter",
		"header:Modules",
		"module:Filter",
	}, shape(rows))
}

func TestRegenerateDeterministic(t *testing.T) {
	f := logic.FilterState{Search: "a"}
	assert.Equal(t, regen(t, nil, f), regen(t, nil, f))
}

func TestRegenerateEmptyCatalog(t *testing.T) {
	rows := Regenerate(nil, catalog.Index{}, nil, logic.FilterState{Search: "x"})
	assert.Equal(t, []string{
		"header:Favorites",
		"header:Manufacturers",
		"header:Tags",
		"header:Modules",
	}, shape(rows))
}

func TestServiceSelectableIndexing(t *testing.T) {
	s := NewService(acmeCatalog(t), nil)
	rows := s.Regenerate(logic.FilterState{})
	require.Len(t, rows, 6)

	assert.Equal(t, 3, s.SelectableCount())
	r, ok := s.SelectableAt(0)
	require.True(t, ok)
	assert.Equal(t, RowManufacturer, r.Kind)
	assert.Equal(t, "Acme", r.Manufacturer)

	_, ok = s.SelectableAt(3)
	assert.False(t, ok)

	assert.Equal(t, 2, s.RowIndex(0))
	assert.Equal(t, -1, s.RowIndex(5))
	assert.Equal(t, 1, s.IndexOfRow(4))
	assert.Equal(t, -1, s.IndexOfRow(0))
	assert.Equal(t, -1, s.IndexOfRow(99))
}

func TestRowSelectable(t *testing.T) {
	assert.False(t, headerRow("x").Selectable())
	assert.True(t, manufacturerRow("").Selectable())
	assert.Equal(t, LabelAllManufacturers, manufacturerRow("").Label)
	assert.Equal(t, LabelAllTags, tagRow(domain.NoTag).Label)
	assert.True(t, clearFilterRow().Selectable())
}
