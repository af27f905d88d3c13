package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"rackbrowser/internal/favorites"
	"rackbrowser/internal/rack"
	"rackbrowser/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, r *rack.Rack, favs *favorites.Store, settingsPath string) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:        state,
			Rack:         r,
			Favorites:    favs,
			SettingsPath: settingsPath,
		},
	}
}

// ExecuteSaveFavorites creates and executes a save favorites command
func (e *Executor) ExecuteSaveFavorites() tea.Cmd {
	cmd := NewSaveFavoritesCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteRemoveModule creates and executes a remove module command
func (e *Executor) ExecuteRemoveModule(index int) tea.Cmd {
	cmd := NewRemoveModuleCommand(e.ctx, index)
	return cmd.Execute()
}
