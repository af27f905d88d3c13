package query

import (
	"rackbrowser/internal/catalog"
	"rackbrowser/internal/domain"
	"rackbrowser/internal/ui/logic"
)

// Regenerate builds the full result list for the given inputs. It is
// pure: the same catalog, favorites and filter always give the same rows.
func Regenerate(cat *catalog.Catalog, idx catalog.Index, favs Favorites, filter logic.FilterState) []Row {
	var rows []Row

	rows = append(rows, headerRow(HeaderFavorites))
	if favs != nil {
		seen := make(map[domain.ModuleRef]bool)
		for _, m := range favs.List() {
			if m == nil || seen[m.Ref()] {
				continue
			}
			seen[m.Ref()] = true
			if logic.Visible(m, filter) {
				rows = append(rows, moduleRow(m))
			}
		}
	}

	if !filter.HasFilter() {
		rows = append(rows, headerRow(HeaderManufacturers))
		for _, name := range idx.Manufacturers {
			if logic.Matches(name, filter.Search) {
				rows = append(rows, manufacturerRow(name))
			}
		}
		rows = append(rows, headerRow(HeaderTags))
		for _, tag := range idx.Tags {
			if logic.Matches(tag.Label(), filter.Search) {
				rows = append(rows, tagRow(tag))
			}
		}
	} else {
		rows = append(rows, clearFilterRow())
	}

	if filter.Active() {
		rows = append(rows, headerRow(HeaderModules))
		for _, m := range cat.Modules() {
			if logic.Visible(m, filter) {
				rows = append(rows, moduleRow(m))
			}
		}
	}

	return rows
}

// Service holds the most recently generated result list and answers
// questions about its selectable rows
type Service struct {
	catalog   *catalog.Catalog
	index     catalog.Index
	favorites Favorites

	rows       []Row
	selectable []int // row indices of selectable rows
}

// NewService creates a query service over a catalog. The index is built
// once here.
func NewService(cat *catalog.Catalog, favs Favorites) *Service {
	return &Service{
		catalog:   cat,
		index:     catalog.BuildIndex(cat),
		favorites: favs,
	}
}

// Index returns the catalog index the service was built with
func (s *Service) Index() catalog.Index {
	return s.index
}

// Catalog returns the catalog rows are generated from
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Regenerate rebuilds the cached rows for filter and returns them
func (s *Service) Regenerate(filter logic.FilterState) []Row {
	s.rows = Regenerate(s.catalog, s.index, s.favorites, filter)
	s.selectable = s.selectable[:0]
	for i, r := range s.rows {
		if r.Selectable() {
			s.selectable = append(s.selectable, i)
		}
	}
	return s.rows
}

// Rows returns the cached rows
func (s *Service) Rows() []Row {
	return s.rows
}

// SelectableCount returns the number of rows the cursor can visit
func (s *Service) SelectableCount() int {
	return len(s.selectable)
}

// SelectableAt returns the i-th selectable row
func (s *Service) SelectableAt(i int) (Row, bool) {
	if i < 0 || i >= len(s.selectable) {
		return Row{}, false
	}
	return s.rows[s.selectable[i]], true
}

// RowIndex maps a selectable index to its raw row index, or -1
func (s *Service) RowIndex(i int) int {
	if i < 0 || i >= len(s.selectable) {
		return -1
	}
	return s.selectable[i]
}

// IndexOfRow maps a raw row index to its selectable index. Headers and
// out-of-range indices give -1.
func (s *Service) IndexOfRow(rowIndex int) int {
	for i, ri := range s.selectable {
		if ri == rowIndex {
			return i
		}
	}
	return -1
}

// IsFavorite reports whether the module on a row is a favorite
func (s *Service) IsFavorite(r Row) bool {
	if r.Kind != RowModule || r.Module == nil || s.favorites == nil {
		return false
	}
	return s.favorites.IsFavorite(r.Module.Ref())
}
