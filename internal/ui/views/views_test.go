package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rackbrowser/internal/domain"
	"rackbrowser/internal/ui/services/query"
)

func TestBrowserLayoutCenters(t *testing.T) {
	l := BrowserLayout(100, 40, 60)
	assert.Equal(t, 60, l.Width)
	assert.Equal(t, 36, l.Height)
	assert.Equal(t, 20, l.X)
	assert.Equal(t, 2, l.Y)
	assert.Equal(t, 6, l.ListTop)
	assert.Equal(t, 30, l.ListHeight)

	assert.True(t, l.Contains(20, 6))
	assert.False(t, l.Contains(19, 6))
	assert.False(t, l.Contains(30, 5))
	assert.False(t, l.Contains(30, 36))
}

func TestBrowserLayoutNarrowScreen(t *testing.T) {
	l := BrowserLayout(40, 10, 60)
	assert.Equal(t, 36, l.Width)
	assert.Equal(t, browserMinList, l.ListHeight)
}

func sampleRows() []query.Row {
	vco := &domain.ModuleDescriptor{Plugin: "Fundamental", Slug: "VCO", Name: "VCO-1", Manufacturer: "VCV", Tags: []domain.TagID{domain.TagOscillator}}
	return []query.Row{
		{Kind: query.RowSectionHeader, Label: query.HeaderFavorites},
		{Kind: query.RowModule, Label: vco.Name, Manufacturer: vco.Manufacturer, Module: vco},
		{Kind: query.RowSectionHeader, Label: query.HeaderManufacturers},
		{Kind: query.RowManufacturer, Label: query.LabelAllManufacturers},
		{Kind: query.RowManufacturer, Label: "VCV", Manufacturer: "VCV"},
	}
}

func TestRenderBrowserHasExactSize(t *testing.T) {
	r := NewRenderer()
	l := BrowserLayout(80, 20, 50)
	rows := sampleRows()
	box := r.RenderBrowser(BrowserView{
		Rows:       rows,
		CursorRow:  1,
		Start:      0,
		End:        len(rows),
		Selectable: 3,
		IsFavorite: func(query.Row) bool { return true },
		ShowTags:   true,
		ShowPlugin: true,
	}, l)

	assert.Equal(t, l.Width, lipgloss.Width(box))
	assert.Equal(t, l.Height, lipgloss.Height(box))

	plain := StripANSI(box)
	assert.Contains(t, plain, "Add module")
	assert.Contains(t, plain, "★ VCO-1")
	assert.Contains(t, plain, "Show all modules")
	assert.Contains(t, plain, "3 results")
}

func TestRenderBrowserMarksSearchMatches(t *testing.T) {
	r := NewRenderer()
	r.styles.Match = lipgloss.NewStyle().Transform(func(s string) string { return "<" + s + ">" })
	l := BrowserLayout(80, 20, 50)
	rows := sampleRows()
	box := StripANSI(r.RenderBrowser(BrowserView{
		Rows:       rows,
		CursorRow:  -1,
		End:        len(rows),
		Selectable: 3,
		Highlight:  func(label string) bool { return strings.Contains(label, "V") },
	}, l))

	assert.Contains(t, box, "<VCO-1>")
	assert.Contains(t, box, "<VCV>")
	assert.NotContains(t, box, "<Show all modules>")
	assert.NotContains(t, box, "<Favorites>")
}

func TestRenderBrowserEmptyResults(t *testing.T) {
	r := NewRenderer()
	l := BrowserLayout(80, 20, 50)
	box := StripANSI(r.RenderBrowser(BrowserView{CursorRow: -1}, l))
	assert.Contains(t, box, "No modules match")
}

func TestRenderBrowserScrollHints(t *testing.T) {
	r := NewRenderer()
	l := BrowserLayout(80, 13, 50)
	require.Equal(t, 3, l.ListHeight)
	rows := sampleRows()
	box := StripANSI(r.RenderBrowser(BrowserView{Rows: rows, CursorRow: 3, Start: 1, End: 4}, l))
	assert.Contains(t, box, "1 more above")
	assert.Contains(t, box, "1 more below")
}

func TestRenderBrowserShowsFilter(t *testing.T) {
	r := NewRenderer()
	l := BrowserLayout(80, 20, 50)
	v := BrowserView{Rows: sampleRows(), CursorRow: -1, End: 5}
	v.Filter.Manufacturer = "VCV"
	v.Filter.Tag = domain.TagOscillator
	assert.Contains(t, StripANSI(r.RenderBrowser(v, l)), "[VCV · Oscillator/VCO]")
}

func TestOverlayKeepsLineCount(t *testing.T) {
	r := NewRenderer()
	base := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc", "dddddddddd"}, "\n")
	out := StripANSI(r.Overlay(base, "XY\nZW", 3, 1, 4))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "aaaaaaaaaa", lines[0])
	assert.Equal(t, "bbbXYbbbbb", lines[1])
	assert.Equal(t, "cccZWccccc", lines[2])
	assert.Equal(t, "dddddddddd", lines[3])
}

func TestOverlayPadsShortLines(t *testing.T) {
	r := NewRenderer()
	out := StripANSI(r.Overlay("ab", "XY", 4, 0, 1))
	assert.Equal(t, "ab  XY", out)
}

func TestRenderRackEmpty(t *testing.T) {
	r := NewRenderer()
	out := StripANSI(r.Render(ViewState{Width: 80, Height: 12, Cursor: -1, Catalog: "1 plugins"}))
	assert.Contains(t, out, "Rack is empty")
	assert.Len(t, strings.Split(out, "\n"), 12)
}

func TestHelpContentListsBindings(t *testing.T) {
	content := StripANSI(HelpContent())
	assert.Contains(t, content, "add module")
	assert.Contains(t, content, "ctrl+f")
	assert.Contains(t, content, "favorite")
}
