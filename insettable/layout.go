package insettable

// AutoResize selects which columns absorb a width change during an
// interactive column resize.
type AutoResize int

const (
	// AutoResizeOff leaves other columns alone; the table grows or shrinks.
	AutoResizeOff AutoResize = iota
	// AutoResizeNextColumn adjusts only the column after the resized one.
	AutoResizeNextColumn
	// AutoResizeSubsequentColumns adjusts all columns after the resized one.
	AutoResizeSubsequentColumns
	// AutoResizeLastColumn adjusts only the last column.
	AutoResizeLastColumn
	// AutoResizeAllColumns adjusts every column.
	AutoResizeAllColumns
)

// layoutManager assigns column widths for a Table. It is a pure driver over
// the column model: one invocation per layout pass, no retained state.
type layoutManager struct {
	table *Table
}

// doLayout runs a layout pass. Without an active resize it simply fits the
// preferred widths into the available width. During an interactive resize
// it first lets the policy-selected columns absorb the width delta, pushes
// any leftover into the resized column itself, and finally reconciles the
// preferred widths against the actual ones (inverse pass) so the next
// passive layout reproduces what the user sees.
func (lm *layoutManager) doLayout() {
	resizing := lm.table.resizingColumn
	if resizing < 0 {
		lm.setWidthsFromPreferred(false)
		return
	}

	model := lm.table.Model
	delta := lm.availableWidth() - model.TotalWidth()
	lm.accommodateDelta(resizing, delta)
	delta = lm.availableWidth() - model.TotalWidth()
	if delta != 0 {
		col := model.Column(resizing)
		col.Width = max(col.MinWidth, min(col.MaxWidth, col.Width+delta))
	}
	lm.setWidthsFromPreferred(true)
}

// sizeColumnsToFit absorbs a width change around column resizing, or fits
// all preferred widths when resizing is negative. With auto-resizing off
// the resized column's new width simply becomes its preferred width.
func (lm *layoutManager) sizeColumnsToFit(resizing int) {
	if resizing < 0 {
		lm.setWidthsFromPreferred(false)
		return
	}

	model := lm.table.Model
	if lm.table.autoResize == AutoResizeOff {
		col := model.Column(resizing)
		col.Preferred = col.Width
		return
	}

	delta := lm.availableWidth() - model.TotalWidth()
	lm.accommodateDelta(resizing, delta)
	lm.setWidthsFromPreferred(true)
}

// availableWidth is the width columns may occupy: the table width minus the
// inset margins on both sides.
func (lm *layoutManager) availableWidth() int {
	return lm.table.contentWidth - 2*lm.table.margin
}

// setWidthsFromPreferred distributes the available width over the columns.
// In the forward direction the midpoints are the preferred widths and the
// result is written to the actual widths; the inverse direction swaps the
// two, back-computing preferred widths from a manually adjusted layout.
func (lm *layoutManager) setWidthsFromPreferred(inverse bool) {
	model := lm.table.Model
	n := model.Count()
	if n == 0 {
		return
	}

	target := lm.availableWidth()
	if inverse {
		target = lm.table.preferredContentWidth() - 2*lm.table.margin
	}

	elems := make([]Element, n)
	for i := 0; i < n; i++ {
		col := model.Column(i)
		mid := col.Preferred
		if inverse {
			mid = col.Width
		}
		elems[i] = Element{Min: col.MinWidth, Max: col.MaxWidth, Mid: mid}
	}

	Distribute(int64(target), elems, inverse)

	for i := 0; i < n; i++ {
		col := model.Column(i)
		if inverse {
			col.Preferred = elems[i].Size
		} else {
			col.Width = elems[i].Size
		}
	}
}

// accommodateDelta spreads delta over the columns selected by the active
// auto-resize policy, clamped so the absorbing columns never leave their
// bounds.
func (lm *layoutManager) accommodateDelta(resizing, delta int) {
	model := lm.table.Model
	count := model.Count()
	from := resizing
	var to int

	switch lm.table.autoResize {
	case AutoResizeNextColumn:
		from++
		to = min(from+1, count)
	case AutoResizeSubsequentColumns:
		from++
		to = count
	case AutoResizeLastColumn:
		from = count - 1
		to = from + 1
	case AutoResizeAllColumns:
		from = 0
		to = count
	default:
		return
	}

	elems := make([]Element, 0, to-from)
	total := 0
	for i := from; i < to; i++ {
		col := model.Column(i)
		elems = append(elems, Element{Min: col.MinWidth, Max: col.MaxWidth, Mid: col.Width})
		total += col.Width
	}

	// Forward mode clamps the target into the feasible range, so overshoot
	// from a fast drag stays with the resizing column instead of pushing
	// the absorbing columns past their bounds.
	Distribute(int64(total+delta), elems, false)

	for i := from; i < to; i++ {
		model.Column(i).Width = elems[i-from].Size
	}
}
