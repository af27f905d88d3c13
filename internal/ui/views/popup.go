package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return pr.Overlay(mainContent, styledPopup, x, y, height)
}

// Overlay places box over base with its top-left corner at (x, y). The
// base is greyed out so the box stands out; base lines beside the box
// keep their text.
func (pr *PopupRenderer) Overlay(base, box string, x, y, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	boxLines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		plain := ansiRE.ReplaceAllString(line, "")
		j := i - y
		if j < 0 || j >= len(boxLines) {
			out[i] = pr.dim(plain)
			continue
		}
		left := runewidth.Truncate(plain, x, "")
		left += strings.Repeat(" ", x-runewidth.StringWidth(left))
		right := ""
		if runewidth.StringWidth(plain) > x+boxW {
			right = runewidth.TruncateLeft(plain, x+boxW, "")
		}
		out[i] = pr.dim(left) + boxLines[j] + pr.dim(right)
	}
	return strings.Join(out, "\n")
}

func (pr *PopupRenderer) dim(s string) string {
	if s == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(s)
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color and style codes
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
