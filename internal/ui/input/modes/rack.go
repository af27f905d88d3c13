package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rackbrowser/internal/ui/input/types"
)

// RackMode handles keys while the rack has focus
type RackMode struct {
	keys types.RackKeyMap
}

func NewRackMode() *RackMode {
	return &RackMode{keys: types.Keys.Rack}
}

func (m *RackMode) Name() string {
	return "rack"
}

func (m *RackMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *RackMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *RackMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.String() == "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, m.keys.Add):
		return []types.Action{
			types.OpenBrowserAction{},
			types.ChangeModeAction{Mode: types.ModeBrowser},
		}, true
	case key.Matches(msg, m.keys.Remove):
		if ctx.RackCount() == 0 || ctx.RackCursor() < 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmRemove}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.HelpPagerAction{}}, true
	}
	return nil, false
}
