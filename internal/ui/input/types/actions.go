package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Browser actions
type OpenBrowserAction struct{}

func (a OpenBrowserAction) Type() string { return "open_browser" }

// ActivateAction performs the row under the browser cursor
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// CancelBrowserAction closes the browser without placing anything
type CancelBrowserAction struct{}

func (a CancelBrowserAction) Type() string { return "cancel_browser" }

type ToggleFavoriteAction struct{}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Rack actions
type RemoveModuleAction struct {
	Index int
}

func (a RemoveModuleAction) Type() string { return "remove_module" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// HelpPagerAction opens the full key reference in the pager
type HelpPagerAction struct{}

func (a HelpPagerAction) Type() string { return "help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
