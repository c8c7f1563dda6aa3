package insettable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// rowLayout places one cell per column at the widths held by the table's
// column model. The last cell is stretched to the container edge so a table
// wider than its columns has no dead strip on the right.
type rowLayout struct {
	table *Table
}

func newRow(t *Table, cells []fyne.CanvasObject) *fyne.Container {
	return container.New(&rowLayout{table: t}, cells...)
}

func (rl *rowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	model := rl.table.Model
	x := float32(0)
	for i, o := range objects {
		if i >= model.Count() {
			o.Hide()
			continue
		}
		w := float32(model.Column(i).Width)
		if i == model.Count()-1 && size.Width-x > w {
			w = size.Width - x
		}
		o.Resize(fyne.NewSize(w, size.Height))
		o.Move(fyne.NewPos(x, 0))
		x += w
	}
}

func (rl *rowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	model := rl.table.Model
	w := float32(0)
	h := float32(0)
	for i, o := range objects {
		if i < model.Count() {
			w += float32(model.Column(i).MinWidth)
		}
		if mh := o.MinSize().Height; mh > h {
			h = mh
		}
	}
	return fyne.NewSize(w, h)
}
