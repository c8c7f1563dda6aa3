package insettable

// Column describes one table column. Width is the current on-screen width,
// Preferred the width the layout tries to honor when space allows. All
// values are whole pixels; the widget converts to Fyne's float coordinates
// at the boundary.
type Column struct {
	Title string

	Width     int
	MinWidth  int
	MaxWidth  int
	Preferred int
}

// NewColumn returns a column with the given preferred width, a minimum of
// minWidth and an effectively unbounded maximum.
func NewColumn(title string, minWidth, preferred int) *Column {
	return &Column{
		Title:     title,
		Width:     preferred,
		MinWidth:  minWidth,
		MaxWidth:  maxColumnWidth,
		Preferred: preferred,
	}
}

// maxColumnWidth stands in for "unbounded"; large enough to never constrain
// a real table, small enough that summing a column model cannot overflow.
const maxColumnWidth = 1 << 24

// Model is an ordered collection of columns.
type Model struct {
	cols []*Column
}

func NewModel(cols ...*Column) *Model {
	return &Model{cols: cols}
}

func (m *Model) Count() int {
	return len(m.cols)
}

func (m *Model) Column(i int) *Column {
	return m.cols[i]
}

func (m *Model) Append(c *Column) {
	m.cols = append(m.cols, c)
}

// TotalWidth is the sum of the current column widths.
func (m *Model) TotalWidth() int {
	total := 0
	for _, c := range m.cols {
		total += c.Width
	}
	return total
}

// TotalPreferred is the sum of the preferred column widths.
func (m *Model) TotalPreferred() int {
	total := 0
	for _, c := range m.cols {
		total += c.Preferred
	}
	return total
}
