package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"rackbrowser/internal/favorites"
	"rackbrowser/internal/rack"
	"rackbrowser/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State        *state.AppState
	Rack         *rack.Rack
	Favorites    *favorites.Store
	SettingsPath string
}

// FavoritesSavedMsg reports the outcome of a background favorites save
type FavoritesSavedMsg struct {
	Path  string
	Count int
	Err   error
}

// SaveFavoritesCommand writes the favorites document off the UI goroutine
type SaveFavoritesCommand struct {
	ctx *CommandContext
}

// NewSaveFavoritesCommand creates a new save favorites command
func NewSaveFavoritesCommand(ctx *CommandContext) *SaveFavoritesCommand {
	return &SaveFavoritesCommand{ctx: ctx}
}

// Execute starts the save; the result arrives as FavoritesSavedMsg
func (c *SaveFavoritesCommand) Execute() tea.Cmd {
	if c.ctx.Favorites == nil || c.ctx.SettingsPath == "" {
		return nil
	}
	c.ctx.State.SavingFavorites = true
	store := c.ctx.Favorites
	path := c.ctx.SettingsPath
	return func() tea.Msg {
		err := store.SaveFile(path)
		if err != nil {
			log.Error("failed to save favorites", "path", path, "err", err)
		}
		return FavoritesSavedMsg{Path: path, Count: store.Len(), Err: err}
	}
}

// RemoveModuleCommand takes an instance off the rack
type RemoveModuleCommand struct {
	ctx   *CommandContext
	index int
}

// NewRemoveModuleCommand creates a new remove module command
func NewRemoveModuleCommand(ctx *CommandContext, index int) *RemoveModuleCommand {
	return &RemoveModuleCommand{ctx: ctx, index: index}
}

// Execute removes the instance at index and keeps the rack cursor valid
func (c *RemoveModuleCommand) Execute() tea.Cmd {
	if c.ctx.Rack == nil {
		return nil
	}
	instances := c.ctx.Rack.Instances()
	if c.index < 0 || c.index >= len(instances) {
		return nil
	}
	inst := instances[c.index]
	if err := c.ctx.Rack.Remove(inst.Handle.ID); err != nil {
		c.ctx.State.SetError(fmt.Sprintf("Remove failed: %v", err))
		return nil
	}
	c.ctx.State.ClampRackCursor(c.ctx.Rack.Len())
	c.ctx.State.SetStatus(fmt.Sprintf("Removed %s [%s]", inst.Module.Name, inst.Handle))
	return nil
}
