package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"rackbrowser/internal/rack"
	"rackbrowser/internal/ui/input/types"
)

// ViewState contains the rack-side state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Instances        []rack.Instance
	Cursor           int
	Offset           int
	ViewHeight       int
	Catalog          string // e.g. "4 plugins · 27 modules"
	Favorites        int
	StatusMessage    string
	StatusIsError    bool
	ConfirmRemove    bool
	ShowHelp         bool
	HelpScrollOffset int
	HelpModel        help.Model
	KeyMap           help.KeyMap
	ReadyMarker      string // printed after the title for the PTY test harness
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Overlay places a rendered box over base at (x, y)
func (r *Renderer) Overlay(base, box string, x, y, height int) string {
	return r.popupRender.Overlay(base, box, x, y, height)
}

// RackChromeLines is the number of screen lines around the instance list:
// title, blank, list heading, blank, status, help
const RackChromeLines = 6

// Render produces the rack screen, padded to the full terminal height
func (r *Renderer) Render(state ViewState) string {
	var content strings.Builder

	logo := r.styles.Title.Render("rackbrowser")
	right := r.styles.Dim.Render(state.Catalog)
	if state.Favorites > 0 {
		right += r.styles.Favorite.Render(fmt.Sprintf("  ★ %d", state.Favorites))
	}
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	pad := termWidth - lipgloss.Width(logo) - lipgloss.Width(right) - 2
	if pad < 2 {
		pad = 2
	}
	if state.ReadyMarker != "" {
		logo += " " + state.ReadyMarker
	}
	content.WriteString(logo + strings.Repeat(" ", pad) + right)
	content.WriteString("\n\n")

	content.WriteString(r.styles.Header.Render(fmt.Sprintf("Rack (%d)", len(state.Instances))))
	content.WriteString("\n")
	if len(state.Instances) == 0 {
		content.WriteString(r.styles.Dim.Render("Rack is empty. Press enter or a to add a module."))
		content.WriteString("\n")
	} else {
		content.WriteString(r.renderInstances(state))
	}
	content.WriteString("\n")

	// Status or confirmation line
	switch {
	case state.ConfirmRemove && state.Cursor >= 0 && state.Cursor < len(state.Instances):
		inst := state.Instances[state.Cursor]
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Remove %s [%s]? (y/n)", inst.Module.Name, inst.Handle)))
	case state.StatusMessage != "" && state.StatusIsError:
		content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
	case state.StatusMessage != "":
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	// Push the help line to the bottom
	lines := strings.Count(content.String(), "\n") + 1
	if state.Height > lines+1 {
		content.WriteString(strings.Repeat("\n", state.Height-lines-1))
	}
	content.WriteString("\n")
	if state.KeyMap != nil {
		content.WriteString(state.HelpModel.View(state.KeyMap))
	}

	final := content.String()
	if state.ShowHelp {
		helpContent := r.renderHelpContent(state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(final, helpContent, state.Height, state.Width, r.styles.InfoBox)
	}
	return final
}

func (r *Renderer) renderInstances(state ViewState) string {
	var b strings.Builder
	end := len(state.Instances)
	if state.ViewHeight > 0 && state.Offset+state.ViewHeight < end {
		end = state.Offset + state.ViewHeight
	}
	for i := state.Offset; i < end; i++ {
		inst := state.Instances[i]
		line := fmt.Sprintf("%-24s %-18s %s", inst.Module.Name, inst.Module.Manufacturer, r.styles.Handle.Render("["+inst.Handle.String()+"]"))
		if i == state.Cursor {
			b.WriteString(r.styles.SelectionBg.Render(r.styles.Highlight.Render("> " + StripANSI(line))))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderHelpContent renders the help information, scrolled to fit height
func (r *Renderer) renderHelpContent(height int, scrollOffset int) string {
	content := HelpContent()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	visibleLines := lines[scrollOffset : scrollOffset+visibleHeight]
	if scrollOffset > 0 {
		visibleLines[0] = r.styles.Scroll.Render("↑ (more above)")
	}
	if scrollOffset+visibleHeight < totalLines {
		visibleLines[len(visibleLines)-1] = r.styles.Scroll.Render("↓ (more below)")
	}
	return strings.Join(visibleLines, "\n")
}

// HelpContent renders the full key reference
func HelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	section := func(b *strings.Builder, name string, groups [][]key.Binding) {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, group := range groups {
			for _, k := range group {
				h := k.Help()
				b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
			}
		}
		b.WriteString("\n")
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("rackbrowser help"))
	help.WriteString("\n\n")
	section(&help, "Rack", types.Keys.Rack.FullHelp())
	section(&help, "Module browser", types.Keys.Browser.FullHelp())

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Type to search names, slugs, plugins, manufacturers and tags."))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Enter on a manufacturer or tag narrows the list to it."))
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  ★ marks favorites; they are listed first."))
	return help.String()
}
