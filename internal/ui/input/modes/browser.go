package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rackbrowser/internal/ui/input/types"
)

// BrowserMode handles keys while the module browser is open. Anything it
// does not bind goes to the search field.
type BrowserMode struct {
	keys      types.BrowserKeyMap
	textInput *textinput.Model
}

func NewBrowserMode(ti *textinput.Model) *BrowserMode {
	return &BrowserMode{keys: types.Keys.Browser, textInput: ti}
}

func (m *BrowserMode) Name() string {
	return "browser"
}

func (m *BrowserMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
	}
	return nil
}

func (m *BrowserMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *BrowserMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{
			types.CancelBrowserAction{},
			types.ChangeModeAction{Mode: types.ModeRack},
		}, true
	case key.Matches(msg, m.keys.Activate):
		// The model switches back to the rack once a module was placed
		return []types.Action{types.ActivateAction{}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, m.keys.Favorite):
		if !ctx.CursorOnModule() {
			return nil, true
		}
		return []types.Action{types.ToggleFavoriteAction{}}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearFiltersAction{}}, true
	}
	// Let the main handler update the text input
	return nil, false
}
