package logic

// Viewport tracks which slice of the result rows is on screen. Rows are
// raw row indices (headers included), since headers take a line too.
type Viewport struct {
	offset int
	height int
}

// NewViewport creates a viewport showing height rows
func NewViewport(height int) *Viewport {
	v := &Viewport{}
	v.SetHeight(height)
	return v
}

// Offset returns the first visible row index
func (v *Viewport) Offset() int {
	return v.offset
}

// Height returns the number of rows the viewport can show
func (v *Viewport) Height() int {
	return v.height
}

// SetHeight resizes the viewport
func (v *Viewport) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
}

// Reset scrolls back to the top
func (v *Viewport) Reset() {
	v.offset = 0
}

// Visible reports whether row is on screen at the current offset
func (v *Viewport) Visible(row int) bool {
	return row >= v.offset && row < v.offset+v.height
}

// Ensure adjusts the offset so row is visible within total rows. When
// the cursor sits just below a section header the header is kept in view.
func (v *Viewport) Ensure(row, total int, headerAbove bool) {
	if row < 0 || total <= 0 {
		v.offset = 0
		return
	}

	top := row
	if headerAbove && top > 0 {
		top--
	}
	if top < v.offset {
		v.offset = top
	}

	if row >= v.offset+v.height {
		v.offset = row - v.height + 1
	}

	maxOffset := total - v.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// Window returns the [start, end) row range to render
func (v *Viewport) Window(total int) (int, int) {
	start := v.offset
	if start > total {
		start = total
	}
	end := start + v.height
	if end > total {
		end = total
	}
	return start, end
}
