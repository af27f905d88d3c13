package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rackbrowser/internal/domain"
	"rackbrowser/internal/ui/logic"
	"rackbrowser/internal/ui/services/query"
)

// Browser box chrome: border, title, search line, separator, footer
const (
	browserChromeLines = 6
	browserMinWidth    = 30
	browserMinList     = 3
)

// Layout places the browser box on screen. ListTop is the screen line of
// the first list row; rows below it map one to one onto the window.
type Layout struct {
	X, Y          int
	Width, Height int
	ListTop       int
	ListHeight    int
}

// Contains reports whether a screen cell falls on a list row
func (l Layout) Contains(x, y int) bool {
	return x >= l.X && x < l.X+l.Width && y >= l.ListTop && y < l.ListTop+l.ListHeight
}

// BrowserLayout centers a box of the preferred width on a screen of
// width by height cells
func BrowserLayout(width, height, preferred int) Layout {
	w := preferred
	if w > width-4 {
		w = width - 4
	}
	if w < browserMinWidth {
		w = browserMinWidth
	}
	h := height - 4
	if h < browserChromeLines+browserMinList {
		h = browserChromeLines + browserMinList
	}
	l := Layout{
		X:      (width - w) / 2,
		Y:      (height - h) / 2,
		Width:  w,
		Height: h,
	}
	if l.X < 0 {
		l.X = 0
	}
	if l.Y < 0 {
		l.Y = 0
	}
	// border + title + search + separator
	l.ListTop = l.Y + 4
	l.ListHeight = h - browserChromeLines
	return l
}

// BrowserView is everything the browser box shows
type BrowserView struct {
	Rows       []query.Row
	CursorRow  int // raw index of the highlighted row, -1 for none
	Start, End int // raw rows in the window
	Search     string
	Filter     logic.FilterState
	Selectable int
	Highlight  func(label string) bool // labels matching the search
	IsFavorite func(query.Row) bool
	ShowTags   bool
	ShowPlugin bool
}

// RenderBrowser draws the browser box at exactly l.Width by l.Height cells
func (r *Renderer) RenderBrowser(v BrowserView, l Layout) string {
	inner := l.Width - 4
	lines := make([]string, 0, l.Height-2)

	lines = append(lines, r.browserTitle(v, inner))
	lines = append(lines, r.styles.Highlight.Render("> ")+v.Search)
	lines = append(lines, r.styles.Dim.Render(strings.Repeat("─", inner)))

	for i := 0; i < l.ListHeight; i++ {
		idx := v.Start + i
		if idx >= v.End || idx >= len(v.Rows) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, r.renderRow(v, idx, inner))
	}
	// Scroll hints replace the first and last list lines
	if v.Start > 0 && l.ListHeight > 1 {
		lines[3] = r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", v.Start))
	}
	if v.End < len(v.Rows) && l.ListHeight > 1 {
		lines[3+l.ListHeight-1] = r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(v.Rows)-v.End))
	}

	footer := fmt.Sprintf("%d results · enter select · ctrl+f favorite · esc close", v.Selectable)
	if v.Selectable == 0 {
		footer = "No modules match · ctrl+r clear · esc close"
	}
	lines = append(lines, r.styles.Help.Render(footer))

	clip := lipgloss.NewStyle().MaxWidth(inner)
	for i, line := range lines {
		lines[i] = clip.Render(line)
	}
	return r.styles.BrowserBox.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) browserTitle(v BrowserView, width int) string {
	title := r.styles.Title.Render("Add module")
	var parts []string
	if v.Filter.Manufacturer != "" {
		parts = append(parts, v.Filter.Manufacturer)
	}
	if v.Filter.Tag != domain.NoTag {
		parts = append(parts, v.Filter.Tag.Label())
	}
	if len(parts) == 0 {
		return title
	}
	filter := r.styles.Filter.Render(fmt.Sprintf("[%s]", strings.Join(parts, " · ")))
	pad := width - lipgloss.Width(title) - lipgloss.Width(filter)
	if pad < 1 {
		pad = 1
	}
	return title + strings.Repeat(" ", pad) + filter
}

func (r *Renderer) renderRow(v BrowserView, idx, width int) string {
	row := v.Rows[idx]
	selected := idx == v.CursorRow

	matched := v.Highlight != nil && v.Highlight(row.Label)

	var line string
	switch row.Kind {
	case query.RowSectionHeader:
		return r.styles.Header.Render(row.Label)
	case query.RowManufacturer, query.RowTag, query.RowClearFilter:
		style := r.styles.Category
		if matched {
			style = r.styles.Match
		}
		line = "  " + style.Render(row.Label)
	case query.RowModule:
		marker := "  "
		if v.IsFavorite != nil && v.IsFavorite(row) {
			marker = r.styles.Favorite.Render("★ ")
		}
		label := row.Label
		if matched {
			label = r.styles.Match.Render(label)
		}
		line = marker + label
		if row.Manufacturer != "" {
			line += " " + r.styles.Dim.Render(row.Manufacturer)
		}
		if v.ShowPlugin && row.Module != nil {
			line += " " + r.styles.Plugin.Render(row.Module.Plugin)
		}
		if v.ShowTags && row.Module != nil && len(row.Module.Tags) > 0 {
			labels := make([]string, 0, len(row.Module.Tags))
			for _, t := range row.Module.Tags {
				labels = append(labels, t.Label())
			}
			line += " " + r.styles.Tags.Render(strings.Join(labels, ", "))
		}
	}

	if selected {
		plain := StripANSI(line)
		if w := lipgloss.Width(plain); w < width {
			plain += strings.Repeat(" ", width-w)
		}
		return r.styles.SelectionBg.Render(r.styles.Highlight.Render(plain))
	}
	return line
}
