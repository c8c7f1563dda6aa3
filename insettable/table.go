package insettable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/aquakit/aquakit/aqua"
)

// Table is a column-based table widget that supports inset view margins in
// the manner of macOS list views. Margins shift the header and rows inward;
// hit testing and cell geometry account for the offset. Column widths are
// assigned on every layout pass by the width distribution in this package.
type Table struct {
	widget.BaseWidget

	Model *Model

	// RowCount and CellText supply the table content.
	RowCount func() int
	CellText func(row, col int) string

	// OnSelected is called when a row is selected.
	OnSelected func(row int)

	// OnMarginsChanged is called after the inset margins change. Containers
	// that cache the table's size may need to relayout.
	OnMarginsChanged func(margin, verticalMargin int)

	margin         int
	verticalMargin int
	autoResize     AutoResize
	resizingColumn int
	contentWidth   int

	lm   layoutManager
	list *widget.List
}

// NewTable creates a table over the given column model. rowCount and
// cellText may be nil for a header-only table.
func NewTable(model *Model, rowCount func() int, cellText func(row, col int) string) *Table {
	t := &Table{
		Model:          model,
		RowCount:       rowCount,
		CellText:       cellText,
		autoResize:     AutoResizeSubsequentColumns,
		resizingColumn: -1,
	}
	t.lm = layoutManager{table: t}
	t.ExtendBaseWidget(t)
	return t
}

// SetAutoResize selects the column resize policy.
func (t *Table) SetAutoResize(mode AutoResize) {
	t.autoResize = mode
}

// AutoResizeMode returns the active column resize policy.
func (t *Table) AutoResizeMode() AutoResize {
	return t.autoResize
}

// SetMargins installs horizontal and vertical inset margins. Negative
// values are treated as zero.
func (t *Table) SetMargins(margin, verticalMargin int) {
	margin = max(0, margin)
	verticalMargin = max(0, verticalMargin)
	if margin == t.margin && verticalMargin == t.verticalMargin {
		return
	}
	t.margin = margin
	t.verticalMargin = verticalMargin
	t.relayout()
	t.Refresh()
	if t.OnMarginsChanged != nil {
		t.OnMarginsChanged(margin, verticalMargin)
	}
}

// Margins reports the installed inset margins.
func (t *Table) Margins() (margin, verticalMargin int) {
	return t.margin, t.verticalMargin
}

// Resize triggers a column layout pass at the new width.
func (t *Table) Resize(size fyne.Size) {
	t.contentWidth = int(size.Width)
	t.relayout()
	t.BaseWidget.Resize(size)
}

// MinSize grows the underlying minimum by the margins, unless a native
// driver renders the inset view itself and already accounts for them.
func (t *Table) MinSize() fyne.Size {
	s := t.BaseWidget.MinSize()
	if t.margin == 0 && t.verticalMargin == 0 {
		return s
	}
	if aqua.InsetViewSupported() {
		return s
	}
	return fyne.NewSize(s.Width+float32(2*t.margin), s.Height+float32(2*t.verticalMargin))
}

// SizeColumnsToFit adjusts column widths after an external change to column
// resizing (or to all columns when resizing is negative), honoring the
// active auto-resize policy.
func (t *Table) SizeColumnsToFit(resizing int) {
	t.lm.sizeColumnsToFit(resizing)
	t.Refresh()
}

// ColumnAt returns the index of the column containing pos, or -1. The
// position is in widget coordinates; the inset margin is subtracted before
// the column runs are examined.
func (t *Table) ColumnAt(pos fyne.Position) int {
	x := int(pos.X) - t.margin
	if x < 0 {
		return -1
	}
	for i := 0; i < t.Model.Count(); i++ {
		w := t.Model.Column(i).Width
		if x < w {
			return i
		}
		x -= w
	}
	return -1
}

// RowAt returns the index of the row containing pos, or -1. Rows start
// below the header; the vertical inset margin is subtracted first.
func (t *Table) RowAt(pos fyne.Position) int {
	y := pos.Y - float32(t.verticalMargin) - t.headerHeight()
	if y < 0 {
		return -1
	}
	row := int(y / t.rowHeight())
	if t.RowCount != nil && row >= t.RowCount() {
		return -1
	}
	return row
}

// CellRect returns the position and size of the given cell in widget
// coordinates, offset by the inset margins.
func (t *Table) CellRect(row, col int) (fyne.Position, fyne.Size) {
	x := t.margin
	for i := 0; i < col && i < t.Model.Count(); i++ {
		x += t.Model.Column(i).Width
	}
	y := float32(t.verticalMargin) + t.headerHeight() + float32(row)*t.rowHeight()
	w := 0
	if col >= 0 && col < t.Model.Count() {
		w = t.Model.Column(col).Width
	}
	return fyne.NewPos(float32(x), y), fyne.NewSize(float32(w), t.rowHeight())
}

// beginColumnResize marks col as interactively resizing; layout passes then
// route width deltas through the auto-resize policy until endColumnResize.
func (t *Table) beginColumnResize(col int) {
	t.resizingColumn = col
}

// resizeColumnBy applies a drag delta to the resizing column and reruns the
// layout pass so the remaining columns absorb the change.
func (t *Table) resizeColumnBy(delta int) {
	if t.resizingColumn < 0 || t.resizingColumn >= t.Model.Count() {
		return
	}
	col := t.Model.Column(t.resizingColumn)
	col.Width = max(col.MinWidth, min(col.MaxWidth, col.Width+delta))
	t.relayout()
	t.Refresh()
}

func (t *Table) endColumnResize() {
	t.resizingColumn = -1
}

func (t *Table) relayout() {
	if t.Model == nil || t.Model.Count() == 0 {
		return
	}
	t.lm.doLayout()
}

func (t *Table) preferredContentWidth() int {
	return t.Model.TotalPreferred() + 2*t.margin
}

func (t *Table) headerHeight() float32 {
	return widget.NewButton("", nil).MinSize().Height
}

func (t *Table) rowHeight() float32 {
	return widget.NewLabel("").MinSize().Height
}

// CreateRenderer builds the header and row list for the table.
func (t *Table) CreateRenderer() fyne.WidgetRenderer {
	head := newHeader(t)

	t.list = widget.NewList(
		func() int {
			if t.RowCount == nil {
				return 0
			}
			return t.RowCount()
		},
		func() fyne.CanvasObject {
			cells := make([]fyne.CanvasObject, t.Model.Count())
			for i := range cells {
				label := widget.NewLabel("")
				label.Truncation = fyne.TextTruncateEllipsis
				cells[i] = label
			}
			return newRow(t, cells)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			row := co.(*fyne.Container)
			for col, cell := range row.Objects {
				label := cell.(*widget.Label)
				if t.CellText != nil {
					label.SetText(t.CellText(id, col))
				}
			}
		},
	)
	t.list.OnSelected = func(id widget.ListItemID) {
		if t.OnSelected != nil {
			t.OnSelected(id)
		}
	}

	return &tableRenderer{table: t, header: head, list: t.list}
}

type tableRenderer struct {
	table  *Table
	header *header
	list   *widget.List
}

func (r *tableRenderer) Layout(size fyne.Size) {
	m := float32(r.table.margin)
	vm := float32(r.table.verticalMargin)
	hh := r.table.headerHeight()

	r.header.Move(fyne.NewPos(m, vm))
	r.header.Resize(fyne.NewSize(size.Width-2*m, hh))
	r.list.Move(fyne.NewPos(m, vm+hh))
	r.list.Resize(fyne.NewSize(size.Width-2*m, size.Height-2*vm-hh))
}

func (r *tableRenderer) MinSize() fyne.Size {
	hm := r.header.MinSize()
	lm := r.list.MinSize()
	return fyne.NewSize(max(hm.Width, lm.Width), hm.Height+lm.Height)
}

func (r *tableRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.header, r.list}
}

func (r *tableRenderer) Refresh() {
	r.header.Refresh()
	r.list.Refresh()
}

func (r *tableRenderer) Destroy() {}
