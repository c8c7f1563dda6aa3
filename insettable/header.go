package insettable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// header renders the column titles and the drag handles between them. A
// drag on a handle resizes the column to its left and routes the delta
// through the table's layout driver.
type header struct {
	widget.BaseWidget

	table    *Table
	buttons  []*widget.Button
	dividers []*divider
}

func newHeader(t *Table) *header {
	h := &header{table: t}
	for i := 0; i < t.Model.Count(); i++ {
		b := widget.NewButton(t.Model.Column(i).Title, nil)
		b.Alignment = widget.ButtonAlignLeading
		b.Importance = widget.LowImportance
		h.buttons = append(h.buttons, b)
		h.dividers = append(h.dividers, newDivider(t, i))
	}
	h.ExtendBaseWidget(h)
	return h
}

func (h *header) CreateRenderer() fyne.WidgetRenderer {
	return &headerRenderer{header: h}
}

type headerRenderer struct {
	header *header
}

func (r *headerRenderer) Layout(size fyne.Size) {
	model := r.header.table.Model
	x := float32(0)
	for i, b := range r.header.buttons {
		w := float32(model.Column(i).Width)
		if i == model.Count()-1 && size.Width-x > w {
			w = size.Width - x
		}
		b.Move(fyne.NewPos(x, 0))
		b.Resize(fyne.NewSize(w, size.Height))
		x += w

		d := r.header.dividers[i]
		d.Move(fyne.NewPos(x-dividerGrabWidth/2, 0))
		d.Resize(fyne.NewSize(dividerGrabWidth, size.Height))
	}
}

func (r *headerRenderer) MinSize() fyne.Size {
	model := r.header.table.Model
	w := float32(0)
	h := float32(0)
	for i, b := range r.header.buttons {
		if i < model.Count() {
			w += float32(model.Column(i).MinWidth)
		}
		if mh := b.MinSize().Height; mh > h {
			h = mh
		}
	}
	return fyne.NewSize(w, h)
}

func (r *headerRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.header.buttons)*2)
	for _, b := range r.header.buttons {
		objs = append(objs, b)
	}
	for _, d := range r.header.dividers {
		objs = append(objs, d)
	}
	return objs
}

func (r *headerRenderer) Refresh() {
	model := r.header.table.Model
	for i, b := range r.header.buttons {
		if i < model.Count() {
			b.SetText(model.Column(i).Title)
		}
	}
	r.Layout(r.header.Size())
}

func (r *headerRenderer) Destroy() {}

const dividerGrabWidth = 8

// divider is the draggable strip at the trailing edge of a header cell.
type divider struct {
	widget.BaseWidget

	table *Table
	index int
	line  *canvas.Rectangle
}

func newDivider(t *Table, index int) *divider {
	d := &divider{
		table: t,
		index: index,
		line:  canvas.NewRectangle(theme.Color(theme.ColorNameSeparator)),
	}
	d.ExtendBaseWidget(d)
	return d
}

func (d *divider) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.line)
}

func (d *divider) Cursor() desktop.Cursor {
	return desktop.HResizeCursor
}

func (d *divider) Dragged(ev *fyne.DragEvent) {
	if d.table.resizingColumn < 0 {
		d.table.beginColumnResize(d.index)
	}
	d.table.resizeColumnBy(int(ev.Dragged.DX))
}

func (d *divider) DragEnd() {
	d.table.endColumnResize()
}
