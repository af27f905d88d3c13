package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rackbrowser/internal/ui/services/query"
)

// fakeRows lays out one header followed by n selectable rows
type fakeRows struct{ n int }

func (f *fakeRows) Rows() []query.Row {
	rows := []query.Row{{Kind: query.RowSectionHeader, Label: "Modules"}}
	for i := 0; i < f.n; i++ {
		rows = append(rows, query.Row{Kind: query.RowManufacturer, Label: "m"})
	}
	return rows
}

func (f *fakeRows) SelectableCount() int { return f.n }

func (f *fakeRows) RowIndex(i int) int {
	if i < 0 || i >= f.n {
		return -1
	}
	return i + 1
}

func TestMoveDownClampsAtEnd(t *testing.T) {
	s := NewService(&fakeRows{n: 3})
	s.Reset()
	require.Equal(t, 0, s.GetCursor())

	s.MoveDown()
	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 2, s.GetCursor())
}

func TestMoveUpClampsAtStart(t *testing.T) {
	s := NewService(&fakeRows{n: 3})
	s.Reset()
	s.MoveUp()
	assert.Equal(t, 0, s.GetCursor())
}

func TestEmptyListHasNoCursor(t *testing.T) {
	s := NewService(&fakeRows{n: 0})
	s.Reset()
	assert.Equal(t, -1, s.GetCursor())

	s.MoveDown()
	s.MoveUp()
	s.Navigate(DirectionEnd)
	s.MoveToIndex(4)
	assert.Equal(t, -1, s.GetCursor())
}

func TestResetAfterShrink(t *testing.T) {
	rows := &fakeRows{n: 5}
	s := NewService(rows)
	s.Reset()
	s.Navigate(DirectionEnd)
	assert.Equal(t, 4, s.GetCursor())

	rows.n = 0
	s.Reset()
	assert.Equal(t, -1, s.GetCursor())
}

func TestPagingAndEnds(t *testing.T) {
	s := NewService(&fakeRows{n: 50})
	s.SetViewportHeight(10)
	s.Reset()

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 9, s.GetCursor())
	s.Navigate(DirectionEnd)
	assert.Equal(t, 49, s.GetCursor())
	assert.Equal(t, 41, s.GetViewportOffset())
	s.Navigate(DirectionPageUp)
	assert.Equal(t, 40, s.GetCursor())
	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())
}

func TestMoveToIndexClamps(t *testing.T) {
	s := NewService(&fakeRows{n: 3})
	s.Reset()
	s.MoveToIndex(10)
	assert.Equal(t, 2, s.GetCursor())
	s.MoveToIndex(-4)
	assert.Equal(t, 0, s.GetCursor())
}

func TestResetAfterMovement(t *testing.T) {
	s := NewService(&fakeRows{n: 2})
	s.Reset()
	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 1, s.GetCursor())

	s.Reset()
	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())
}
