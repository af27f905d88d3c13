package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rackbrowser/internal/ui/input/types"
)

type fakeContext struct {
	rackCount      int
	rackCursor     int
	browserOpen    bool
	cursorOnModule bool
}

func (c fakeContext) RackCount() int       { return c.rackCount }
func (c fakeContext) RackCursor() int      { return c.rackCursor }
func (c fakeContext) BrowserOpen() bool    { return c.browserOpen }
func (c fakeContext) CursorOnModule() bool { return c.cursorOnModule }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRackModeOpensBrowser(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})

	require.Len(t, actions, 1)
	assert.IsType(t, types.OpenBrowserAction{}, actions[0])
	assert.Equal(t, types.ModeBrowser, h.CurrentMode())
	assert.NotNil(t, h.TextInput())
}

func TestRackModeNavigation(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("j"), fakeContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Direction: "down"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, fakeContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Direction: "up"}, actions[0])
}

func TestRemoveNeedsAnInstance(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("d"), fakeContext{rackCursor: -1})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeRack, h.CurrentMode())

	_, _ = h.HandleKey(runes("d"), fakeContext{rackCount: 2, rackCursor: 1})
	assert.Equal(t, types.ModeConfirmRemove, h.CurrentMode())

	actions, _ = h.HandleKey(runes("y"), fakeContext{rackCount: 2, rackCursor: 1})
	require.Len(t, actions, 1)
	assert.Equal(t, types.RemoveModuleAction{Index: 1}, actions[0])
	assert.Equal(t, types.ModeRack, h.CurrentMode())
}

func TestConfirmDeclined(t *testing.T) {
	h := New()
	ctx := fakeContext{rackCount: 1}
	_, _ = h.HandleKey(runes("x"), ctx)
	require.Equal(t, types.ModeConfirmRemove, h.CurrentMode())

	actions, _ := h.HandleKey(runes("n"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeRack, h.CurrentMode())
}

func TestBrowserTypingUpdatesSearch(t *testing.T) {
	h := New()
	ctx := fakeContext{browserOpen: true}
	_, _ = h.HandleKey(runes("a"), ctx)
	require.Equal(t, types.ModeBrowser, h.CurrentMode())

	// j and k are text here, not navigation
	actions, _ := h.HandleKey(runes("j"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "j"}, actions[0])

	actions, _ = h.HandleKey(runes("k"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "jk"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "j"}, actions[0])
}

func TestBrowserEscapeReturnsToRack(t *testing.T) {
	h := New()
	ctx := fakeContext{browserOpen: true}
	_, _ = h.HandleKey(runes("a"), ctx)
	_, _ = h.HandleKey(runes("vco"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CancelBrowserAction{}, actions[0])
	assert.Equal(t, types.ModeRack, h.CurrentMode())
	assert.Nil(t, h.TextInput())

	// Reopening starts with an empty field
	_, _ = h.HandleKey(runes("a"), ctx)
	assert.Equal(t, "", h.TextInput().Value())
}

func TestBrowserFavoriteOnlyOnModules(t *testing.T) {
	h := New()
	_, _ = h.HandleKey(runes("a"), fakeContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlF}, fakeContext{})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlF}, fakeContext{cursorOnModule: true})
	require.Len(t, actions, 1)
	assert.IsType(t, types.ToggleFavoriteAction{}, actions[0])
}

func TestSetModeRunsExitAndEnter(t *testing.T) {
	h := New()
	_, _ = h.HandleKey(runes("a"), fakeContext{})
	_, _ = h.HandleKey(runes("lfo"), fakeContext{})
	require.Equal(t, "lfo", h.TextInput().Value())

	h.SetMode(types.ModeRack, fakeContext{})
	assert.Equal(t, types.ModeRack, h.CurrentMode())
	h.SetMode(types.ModeBrowser, fakeContext{})
	assert.Equal(t, "", h.TextInput().Value())
}
