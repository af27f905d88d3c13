package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"rackbrowser/internal/catalog"
	"rackbrowser/internal/config"
	"rackbrowser/internal/eventbus"
	"rackbrowser/internal/favorites"
	"rackbrowser/internal/rack"
	"rackbrowser/internal/ui/commands"
	"rackbrowser/internal/ui/coordinator"
	"rackbrowser/internal/ui/input"
	"rackbrowser/internal/ui/input/types"
	"rackbrowser/internal/ui/services/events"
	"rackbrowser/internal/ui/services/navigation"
	"rackbrowser/internal/ui/services/query"
	"rackbrowser/internal/ui/state"
	"rackbrowser/internal/ui/views"
)

// e2eEnv turns on the ready marker the PTY tests wait for
const e2eEnv = "RACKBROWSER_E2E_TEST"

// rackListTop is the screen line of the first rack instance
const rackListTop = 3

// Model represents the main UI model
type Model struct {
	bus       eventbus.EventBus
	uiBus     events.EventBus
	config    *config.Config
	catalog   *catalog.Catalog
	rack      *rack.Rack
	favorites *favorites.Store

	state        *state.AppState
	browser      *coordinator.Browser
	inputHandler *input.Handler
	renderer     *views.Renderer
	executor     *commands.Executor
	pager        *PagerOps
	help         help.Model

	width   int
	height  int
	layout  views.Layout
	results int // selectable rows in the browser list
	ready   string
}

// NewModel creates a new UI model over a loaded catalog. The rack hosts
// modules placed from the browser; favorites are saved to
// cfg.SettingsPath after every change.
func NewModel(bus eventbus.EventBus, cfg *config.Config, cat *catalog.Catalog, r *rack.Rack, favs *favorites.Store) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if r == nil {
		r = rack.New(cat, bus)
	}
	if favs == nil {
		favs = favorites.NewStore(bus)
	}

	appState := state.NewAppState()
	uiBus := events.NewBus()

	m := &Model{
		bus:          bus,
		uiBus:        uiBus,
		config:       cfg,
		catalog:      cat,
		rack:         r,
		favorites:    favs,
		state:        appState,
		browser:      coordinator.NewBrowser(uiBus, cat, favs, r),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		executor:     commands.NewExecutor(appState, r, favs, cfg.SettingsPath),
		help:         help.New(),
	}
	if os.Getenv(e2eEnv) == "1" {
		m.ready = "__READY__"
	}
	m.state.ClampRackCursor(r.Len())

	// The browser closes itself after placing a module
	uiBus.Subscribe(events.TypeOf(coordinator.BrowserClosedEvent{}), func(e interface{}) {
		m.inputHandler.SetMode(types.ModeRack, m)
	})
	uiBus.Subscribe(events.TypeOf(coordinator.ResultsChangedEvent{}), func(e interface{}) {
		m.results = e.(coordinator.ResultsChangedEvent).Selectable
	})
	m.results = m.browser.Query.SelectableCount()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPagerOps(p)
}

// Browser exposes the module browser
func (m *Model) Browser() *coordinator.Browser {
	return m.browser
}

// Context implementation for the input handler

func (m *Model) RackCount() int    { return m.rack.Len() }
func (m *Model) RackCursor() int   { return m.state.RackCursor }
func (m *Model) BrowserOpen() bool { return m.browser.IsOpen() }

func (m *Model) CursorOnModule() bool {
	row, ok := m.browser.Selected()
	return ok && row.Kind == query.RowModule
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case commands.FavoritesSavedMsg:
		m.state.SavingFavorites = false
		if msg.Err != nil {
			m.state.SetError(fmt.Sprintf("Could not save favorites: %v", msg.Err))
		}

	case helpPagerMsg:
		if msg.err != nil {
			m.state.SetError(fmt.Sprintf("Help pager failed: %v", msg.err))
		}

	case EventMsg:
		m.handleEvent(msg.Event)

	default:
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.state.Width = width
	m.state.Height = height
	m.help.Width = width

	m.state.RackViewHeight = height - views.RackChromeLines - 1
	if m.state.RackViewHeight < 1 {
		m.state.RackViewHeight = 1
	}
	m.state.ClampRackCursor(m.rack.Len())

	m.layout = views.BrowserLayout(width, height, m.config.UI.BrowserWidth)
	m.browser.SetViewportHeight(m.layout.ListHeight)
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "?", "q":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "up", "k":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "down", "j":
		m.state.HelpScrollOffset++
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

// processAction performs one input action
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		m.navigate(a.Direction)

	case types.OpenBrowserAction:
		m.state.SetStatus("")
		m.browser.Open()

	case types.UpdateTextAction:
		m.browser.SetSearch(a.Text)

	case types.ActivateAction:
		return m.activate()

	case types.CancelBrowserAction:
		m.browser.Cancel()

	case types.ToggleFavoriteAction:
		if m.browser.ToggleFavoriteSelected() {
			return m.executor.ExecuteSaveFavorites()
		}

	case types.ClearFiltersAction:
		m.browser.ClearFilters()
		m.inputHandler.SetText("")

	case types.RemoveModuleAction:
		return m.executor.ExecuteRemoveModule(a.Index)

	case types.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case types.HelpPagerAction:
		if m.pager == nil {
			m.state.ShowHelp = true
			return nil
		}
		return m.pager.helpPagerCmd()

	case types.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	if m.browser.IsOpen() {
		m.browser.Navigation.Navigate(navigation.Direction(direction))
		return
	}
	count := m.rack.Len()
	switch direction {
	case "up":
		m.state.MoveRackCursor(-1, count)
	case "down":
		m.state.MoveRackCursor(1, count)
	case "home":
		m.state.SetRackCursor(0, count)
	case "end":
		m.state.SetRackCursor(count-1, count)
	}
}

func (m *Model) activate() tea.Cmd {
	out := m.browser.ActivateSelected()
	switch out.Kind {
	case coordinator.OutcomeFiltered:
		// Category rows clear the search
		m.inputHandler.SetText(m.browser.Filter().Search)
	case coordinator.OutcomeInstantiated:
		count := m.rack.Len()
		m.state.SetRackCursor(count-1, count)
		m.state.SetStatus(fmt.Sprintf("Added %s [%s]", out.Module.Name, out.Handle))
	case coordinator.OutcomeFailed:
		m.state.SetError(fmt.Sprintf("Could not add %s: %v", out.Module.Name, out.Err))
	}
	return nil
}

// handleMouse maps hover and clicks onto browser rows. Hovering moves
// the cursor; a left click activates the row under the pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.browser.IsOpen() {
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
			m.inputHandler.SetMode(types.ModeBrowser, m)
			m.browser.Open()
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			if msg.Y >= rackListTop {
				m.state.SetRackCursor(m.state.RackOffset+msg.Y-rackListTop, m.rack.Len())
			}
		}
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.browser.MoveUp()
		return nil
	case tea.MouseButtonWheelDown:
		m.browser.MoveDown()
		return nil
	}

	if !m.layout.Contains(msg.X, msg.Y) {
		return nil
	}
	start, _ := m.browser.Navigation.Window()
	row := start + msg.Y - m.layout.ListTop
	switch msg.Action {
	case tea.MouseActionMotion:
		m.browser.SelectRowAt(row)
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			if m.browser.SelectRowAt(row) {
				return m.activate()
			}
		}
	}
	return nil
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		if e.Skipped > 0 {
			m.state.SetError(fmt.Sprintf("%d plugin manifests were skipped, see the log", e.Skipped))
		}
	case eventbus.FavoritesLoadedEvent:
		if e.Skipped > 0 {
			m.state.SetStatus(fmt.Sprintf("%d favorites refer to missing modules", e.Skipped))
		}
	case eventbus.FavoritesSavedEvent:
		m.state.SetStatus(fmt.Sprintf("Saved %d favorites", e.Count))
	case eventbus.ModuleInstantiatedEvent, eventbus.ModuleRemovedEvent:
		// The rack may have changed outside a key press
		m.state.ClampRackCursor(m.rack.Len())
	case eventbus.ErrorEvent:
		m.state.SetError(e.Message)
	default:
		log.Debug("ui: unhandled event", "type", event.Type())
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	var keyMap help.KeyMap = types.Keys.Rack
	if mode == types.ModeBrowser {
		keyMap = types.Keys.Browser
	}

	base := m.renderer.Render(views.ViewState{
		Width:            m.width,
		Height:           m.height,
		Instances:        m.rack.Instances(),
		Cursor:           m.state.RackCursor,
		Offset:           m.state.RackOffset,
		ViewHeight:       m.state.RackViewHeight,
		Catalog:          fmt.Sprintf("%d plugins · %d modules", len(m.catalog.Plugins()), m.catalog.Len()),
		Favorites:        m.favorites.Len(),
		StatusMessage:    m.state.StatusMessage,
		StatusIsError:    m.state.StatusIsError,
		ConfirmRemove:    mode == types.ModeConfirmRemove,
		ShowHelp:         m.state.ShowHelp,
		HelpScrollOffset: m.state.HelpScrollOffset,
		HelpModel:        m.help,
		KeyMap:           keyMap,
		ReadyMarker:      m.ready,
	})

	if !m.browser.IsOpen() {
		return base
	}

	start, end := m.browser.Navigation.Window()
	search := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		search = ti.View()
	}
	box := m.renderer.RenderBrowser(views.BrowserView{
		Rows:       m.browser.Rows(),
		CursorRow:  m.browser.CursorRow(),
		Start:      start,
		End:        end,
		Search:     search,
		Filter:     m.browser.Filter(),
		Selectable: m.results,
		Highlight:  m.browser.Search.ShouldHighlight,
		IsFavorite: m.browser.IsFavorite,
		ShowTags:   m.config.UI.ShowTags,
		ShowPlugin: m.config.UI.ShowPlugin,
	}, m.layout)
	return m.renderer.Overlay(base, box, m.layout.X, m.layout.Y, m.height)
}
