package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"rackbrowser/internal/ui/input/types"
)

type ConfirmMode struct {
	index int
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{index: -1}
}

func (m *ConfirmMode) Name() string {
	return "confirm-remove"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Remember which instance was under the cursor when asked
	m.index = ctx.RackCursor()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.RemoveModuleAction{Index: m.index},
			types.ChangeModeAction{Mode: types.ModeRack},
		}, true
	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRack}}, true
	}

	return nil, true
}
