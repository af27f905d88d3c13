package coordinator

import (
	"github.com/charmbracelet/log"

	"rackbrowser/internal/catalog"
	"rackbrowser/internal/domain"
	"rackbrowser/internal/ui/logic"
	"rackbrowser/internal/ui/services/events"
	"rackbrowser/internal/ui/services/navigation"
	"rackbrowser/internal/ui/services/query"
	"rackbrowser/internal/ui/services/search"
)

// Browser wires the query, navigation and search services into the
// module browser. All methods run to completion on the caller's
// goroutine; the browser is not safe for concurrent use.
type Browser struct {
	// Services
	Navigation *navigation.Service
	Query      *query.Service
	Search     *search.Service

	// Dependencies
	bus       events.EventBus
	favorites FavoriteStore
	host      Host

	manufacturer string
	tag          domain.TagID
	open         bool
	unsubscribe  func()
}

// NewBrowser creates a closed browser over a catalog. favs and host may
// be nil, in which case favorites are empty and module rows cannot be
// activated.
func NewBrowser(bus events.EventBus, cat *catalog.Catalog, favs FavoriteStore, host Host) *Browser {
	if bus == nil {
		bus = events.NewBus()
	}
	var qfavs query.Favorites
	if favs != nil {
		qfavs = favs
	}
	q := query.NewService(cat, qfavs)
	b := &Browser{
		Navigation: navigation.NewService(q),
		Query:      q,
		Search:     search.NewService(bus),
		bus:        bus,
		favorites:  favs,
		host:       host,
	}

	b.subscribeToEvents()
	b.Refresh()
	return b
}

// subscribeToEvents sets up event handlers
func (b *Browser) subscribeToEvents() {
	b.bus.Subscribe(events.TypeOf(search.SearchChangedEvent{}), func(e interface{}) {
		b.Refresh()
	})

	b.bus.Subscribe(events.TypeOf(search.SearchClearedEvent{}), func(e interface{}) {
		b.Refresh()
	})
}

// Open starts a fresh browsing session: no filter, no search, cursor on
// the first row. Favorite changes regenerate the list while open.
func (b *Browser) Open() {
	b.manufacturer = ""
	b.tag = domain.NoTag
	b.Search.Reset()
	b.open = true
	if b.favorites != nil && b.unsubscribe == nil {
		b.unsubscribe = b.favorites.Subscribe(func() {
			if b.open {
				b.Refresh()
			}
		})
	}
	b.Refresh()
}

// Close ends the session
func (b *Browser) Close() {
	b.close(false)
}

// Cancel closes the browser without activating anything
func (b *Browser) Cancel() {
	b.close(true)
}

func (b *Browser) close(cancelled bool) {
	if !b.open {
		return
	}
	b.open = false
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	b.bus.Publish(BrowserClosedEvent{Cancelled: cancelled})
}

// IsOpen reports whether a session is active
func (b *Browser) IsOpen() bool {
	return b.open
}

// Filter returns the current filter state
func (b *Browser) Filter() logic.FilterState {
	return logic.FilterState{
		Manufacturer: b.manufacturer,
		Tag:          b.tag,
		Search:       b.Search.GetQuery(),
	}
}

// Refresh regenerates the result list and puts the cursor back on the
// first selectable row
func (b *Browser) Refresh() {
	rows := b.Query.Regenerate(b.Filter())
	b.Navigation.Reset()
	b.bus.Publish(ResultsChangedEvent{Rows: len(rows), Selectable: b.Query.SelectableCount()})
}

// SetSearch replaces the search text
func (b *Browser) SetSearch(text string) {
	b.Search.StartSearch(text)
}

// SetManufacturerFilter narrows to one manufacturer and clears the search
func (b *Browser) SetManufacturerFilter(name string) {
	b.manufacturer = name
	b.Search.Reset()
	b.Refresh()
}

// SetTagFilter narrows to one tag and clears the search
func (b *Browser) SetTagFilter(tag domain.TagID) {
	b.tag = tag
	b.Search.Reset()
	b.Refresh()
}

// ClearFilters drops the manufacturer and tag filters and the search
func (b *Browser) ClearFilters() {
	b.manufacturer = ""
	b.tag = domain.NoTag
	b.Search.Reset()
	b.Refresh()
}

// MoveUp moves the selection up one selectable row
func (b *Browser) MoveUp() {
	b.Navigation.MoveUp()
}

// MoveDown moves the selection down one selectable row
func (b *Browser) MoveDown() {
	b.Navigation.MoveDown()
}

// SelectRow moves the cursor to the i-th selectable row
func (b *Browser) SelectRow(i int) {
	b.Navigation.MoveToIndex(i)
}

// SelectRowAt moves the cursor to a raw row index, as a mouse hover
// would. Headers and indices outside the list are ignored.
func (b *Browser) SelectRowAt(rowIndex int) bool {
	i := b.Query.IndexOfRow(rowIndex)
	if i < 0 {
		return false
	}
	b.Navigation.MoveToIndex(i)
	return true
}

// Rows returns the current result list
func (b *Browser) Rows() []query.Row {
	return b.Query.Rows()
}

// Cursor returns the selectable index under the cursor, or -1
func (b *Browser) Cursor() int {
	return b.Navigation.GetCursor()
}

// CursorRow returns the raw row index under the cursor, or -1
func (b *Browser) CursorRow() int {
	return b.Query.RowIndex(b.Navigation.GetCursor())
}

// Selected returns the row under the cursor
func (b *Browser) Selected() (query.Row, bool) {
	return b.Query.SelectableAt(b.Navigation.GetCursor())
}

// IsFavorite reports whether the row holds a favorite module
func (b *Browser) IsFavorite(r query.Row) bool {
	return b.Query.IsFavorite(r)
}

// ActivateSelected performs the action of the row under the cursor
func (b *Browser) ActivateSelected() Outcome {
	row, ok := b.Selected()
	if !ok {
		return Outcome{Kind: OutcomeNone}
	}

	switch row.Kind {
	case query.RowManufacturer:
		b.SetManufacturerFilter(row.Manufacturer)
		return Outcome{Kind: OutcomeFiltered}
	case query.RowTag:
		b.SetTagFilter(row.Tag)
		return Outcome{Kind: OutcomeFiltered}
	case query.RowClearFilter:
		b.ClearFilters()
		return Outcome{Kind: OutcomeFiltered}
	case query.RowModule:
		return b.instantiate(row.Module)
	}
	return Outcome{Kind: OutcomeNone}
}

func (b *Browser) instantiate(m *domain.ModuleDescriptor) Outcome {
	if b.host == nil {
		return Outcome{Kind: OutcomeNone, Module: m}
	}
	h, err := b.host.Instantiate(m)
	if err != nil {
		log.Error("browser: failed to add module", "module", m.Ref().String(), "err", err)
		return Outcome{Kind: OutcomeFailed, Module: m, Err: err}
	}
	b.close(false)
	return Outcome{Kind: OutcomeInstantiated, Module: m, Handle: h}
}

// ToggleFavoriteSelected flips the favorite flag of the module under the
// cursor. Returns false when the cursor is not on a module.
func (b *Browser) ToggleFavoriteSelected() bool {
	row, ok := b.Selected()
	if !ok || row.Kind != query.RowModule || b.favorites == nil {
		return false
	}
	b.favorites.Toggle(row.Module)
	if !b.open {
		b.Refresh()
	}
	return true
}

// SetViewportHeight updates viewport height across services
func (b *Browser) SetViewportHeight(height int) {
	b.Navigation.SetViewportHeight(height)
}
