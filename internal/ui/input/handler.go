package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rackbrowser/internal/ui/input/modes"
	"rackbrowser/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Search field shared with the browser mode
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search modules"
	ti.CharLimit = 64

	h := &Handler{
		currentMode: types.ModeRack,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeRack] = modes.NewRackMode()
	h.modes[types.ModeBrowser] = modes.NewBrowserMode(h.textInput)
	h.modes[types.ModeConfirmRemove] = modes.NewConfirmMode()

	return h
}

// HandleKey routes a key to the current mode. Mode changes are applied
// here; every other action is returned for the model to perform.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unbound keys in a text mode edit the search field
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

// SetMode switches modes from outside a key press, as when the browser
// closes after placing a module
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		out = append(out, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeRack
	}
	return h.currentMode
}

// TextInput returns the search field while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeBrowser
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// SetText replaces the search field's contents, as when activating a
// category row clears the search
func (h *Handler) SetText(text string) {
	if h.textInput.Value() == text {
		return
	}
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}
