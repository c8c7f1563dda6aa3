package insettable

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/aquakit/aquakit/aqua"
)

func TestColumnAtSubtractsMargin(t *testing.T) {
	table := newTestTable(t)
	table.SetMargins(16, 8)
	table.Resize(fyne.NewSize(800, 400))

	if got := table.ColumnAt(fyne.NewPos(5, 50)); got != -1 {
		t.Errorf("point inside the left margin hit column %d, want -1", got)
	}
	if got := table.ColumnAt(fyne.NewPos(17, 50)); got != 0 {
		t.Errorf("first content pixel hit column %d, want 0", got)
	}

	w0 := table.Model.Column(0).Width
	if got := table.ColumnAt(fyne.NewPos(float32(16+w0+1), 50)); got != 1 {
		t.Errorf("point past column 0 hit column %d, want 1", got)
	}
	if got := table.ColumnAt(fyne.NewPos(3000, 50)); got != -1 {
		t.Errorf("point past all columns hit column %d, want -1", got)
	}
}

func TestRowAtSubtractsMarginAndHeader(t *testing.T) {
	table := newTestTable(t)
	table.SetMargins(16, 8)
	table.Resize(fyne.NewSize(800, 400))

	if got := table.RowAt(fyne.NewPos(100, 2)); got != -1 {
		t.Errorf("point inside the top margin hit row %d, want -1", got)
	}

	firstRowY := float32(8) + table.headerHeight() + 1
	if got := table.RowAt(fyne.NewPos(100, firstRowY)); got != 0 {
		t.Errorf("first row position hit row %d, want 0", got)
	}

	beyond := float32(8) + table.headerHeight() + table.rowHeight()*100
	if got := table.RowAt(fyne.NewPos(100, beyond)); got != -1 {
		t.Errorf("point past the last row hit row %d, want -1", got)
	}
}

func TestCellRectAddsMargins(t *testing.T) {
	table := newTestTable(t)
	table.SetMargins(16, 8)
	table.Resize(fyne.NewSize(800, 400))

	pos, size := table.CellRect(0, 0)
	if pos.X != 16 {
		t.Errorf("cell (0,0) x = %v, want margin 16", pos.X)
	}
	if want := float32(8) + table.headerHeight(); pos.Y != want {
		t.Errorf("cell (0,0) y = %v, want %v", pos.Y, want)
	}
	if size.Width != float32(table.Model.Column(0).Width) {
		t.Errorf("cell (0,0) width = %v, want column width %d", size.Width, table.Model.Column(0).Width)
	}

	pos1, _ := table.CellRect(0, 1)
	if want := float32(16 + table.Model.Column(0).Width); pos1.X != want {
		t.Errorf("cell (0,1) x = %v, want %v", pos1.X, want)
	}
}

func TestMinSizeGrowsByMargins(t *testing.T) {
	test.NewApp()

	model := NewModel(NewColumn("A", 50, 100), NewColumn("B", 50, 100))
	plain := NewTable(model, func() int { return 1 }, func(row, col int) string { return "x" })
	base := plain.MinSize()

	model2 := NewModel(NewColumn("A", 50, 100), NewColumn("B", 50, 100))
	inset := NewTable(model2, func() int { return 1 }, func(row, col int) string { return "x" })
	inset.SetMargins(16, 8)
	withMargins := inset.MinSize()

	if withMargins.Width != base.Width+32 {
		t.Errorf("min width %v, want %v", withMargins.Width, base.Width+32)
	}
	if withMargins.Height != base.Height+16 {
		t.Errorf("min height %v, want %v", withMargins.Height, base.Height+16)
	}
}

type fakeDriver struct {
	version string
}

func (d fakeDriver) Name() string          { return "fake" }
func (d fakeDriver) DriverVersion() string { return d.version }

func TestMinSizeWithNativeInsetDriver(t *testing.T) {
	// A driver that renders the inset view itself accounts for the margins
	// in its own geometry, so the widget must not inflate its minimum.
	test.NewApp()
	aqua.Register(fakeDriver{version: "3.1.0"})
	defer aqua.Register(nil)

	model := NewModel(NewColumn("A", 50, 100))
	plain := NewTable(model, nil, nil)
	base := plain.MinSize()

	model2 := NewModel(NewColumn("A", 50, 100))
	inset := NewTable(model2, nil, nil)
	inset.SetMargins(16, 8)

	if got := inset.MinSize(); got != base {
		t.Errorf("min size %v with native inset driver, want %v", got, base)
	}
}

func TestMarginChangeNotifies(t *testing.T) {
	table := newTestTable(t)

	var gotM, gotVM int
	table.OnMarginsChanged = func(m, vm int) {
		gotM, gotVM = m, vm
	}

	table.SetMargins(12, 6)
	if gotM != 12 || gotVM != 6 {
		t.Errorf("margin change reported (%d, %d), want (12, 6)", gotM, gotVM)
	}

	// Setting the same margins again is a no-op and must not re-notify.
	gotM, gotVM = -1, -1
	table.SetMargins(12, 6)
	if gotM != -1 {
		t.Error("unchanged margins re-notified")
	}
}
