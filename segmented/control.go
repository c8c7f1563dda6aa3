package segmented

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

type segment struct {
	label    string
	toggle   bool
	selected bool
	onTapped func()
	button   *widget.Button
}

// Control is the assembled segmented control. In an exclusive control
// exactly one segment is selected at any time; the first segment is
// selected initially unless Select is called before showing.
type Control struct {
	widget.BaseWidget

	// OnSelected is called with the segment index whenever a toggle
	// segment's selection changes to selected.
	OnSelected func(index int)

	segments   []*segment
	style      Style
	size       Size
	exclusive  bool
	separation float32
}

func newControl(segments []*segment, style Style, size Size, exclusive bool, separation float32) *Control {
	c := &Control{
		segments:   segments,
		style:      style,
		size:       size,
		exclusive:  exclusive,
		separation: separation,
	}

	for i, s := range segments {
		idx := i
		s.button = widget.NewButton(s.label, func() {
			c.tapped(idx)
		})
	}

	if exclusive {
		c.applySelection(0)
	}

	c.ExtendBaseWidget(c)
	return c
}

// Count returns the number of segments.
func (c *Control) Count() int {
	return len(c.segments)
}

// SegmentPosition reports where segment i sits in the control.
func (c *Control) SegmentPosition(i int) Position {
	return segmentPositions(len(c.segments))[i]
}

// Selected returns the index of the selected segment, or -1. In a
// non-exclusive control it returns the first selected toggle.
func (c *Control) Selected() int {
	for i, s := range c.segments {
		if s.selected {
			return i
		}
	}
	return -1
}

// IsSelected reports whether segment i is selected.
func (c *Control) IsSelected(i int) bool {
	if i < 0 || i >= len(c.segments) {
		return false
	}
	return c.segments[i].selected
}

// Select marks segment i as selected. In an exclusive control every other
// segment is deselected.
func (c *Control) Select(i int) {
	if i < 0 || i >= len(c.segments) {
		return
	}
	if c.exclusive {
		c.applySelection(i)
	} else if c.segments[i].toggle {
		c.segments[i].selected = true
	}
	c.Refresh()
	if c.OnSelected != nil {
		c.OnSelected(i)
	}
}

func (c *Control) tapped(i int) {
	s := c.segments[i]

	if c.exclusive {
		// Tapping the already selected segment keeps it selected.
		if s.selected {
			return
		}
		c.applySelection(i)
		c.Refresh()
		if c.OnSelected != nil {
			c.OnSelected(i)
		}
		return
	}

	if s.toggle {
		s.selected = !s.selected
		c.Refresh()
		if s.selected && c.OnSelected != nil {
			c.OnSelected(i)
		}
		return
	}

	if s.onTapped != nil {
		s.onTapped()
	}
}

func (c *Control) applySelection(selected int) {
	for i, s := range c.segments {
		s.selected = i == selected
	}
}

func (c *Control) CreateRenderer() fyne.WidgetRenderer {
	return &controlRenderer{control: c}
}

type controlRenderer struct {
	control *Control
}

func (r *controlRenderer) separation() float32 {
	if nativeJoined() {
		return 0
	}
	return r.control.separation
}

func (r *controlRenderer) Layout(size fyne.Size) {
	sep := r.separation()
	x := float32(0)
	for _, s := range r.control.segments {
		w := s.button.MinSize().Width
		s.button.Move(fyne.NewPos(x, 0))
		s.button.Resize(fyne.NewSize(w, size.Height))
		x += w + sep
	}
}

func (r *controlRenderer) MinSize() fyne.Size {
	sep := r.separation()
	w := float32(0)
	h := float32(0)
	for i, s := range r.control.segments {
		ms := s.button.MinSize()
		w += ms.Width
		if i > 0 {
			w += sep
		}
		if ms.Height > h {
			h = ms.Height
		}
	}
	return fyne.NewSize(w, h)
}

func (r *controlRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, len(r.control.segments))
	for i, s := range r.control.segments {
		objs[i] = s.button
	}
	return objs
}

func (r *controlRenderer) Refresh() {
	for _, s := range r.control.segments {
		if s.selected {
			s.button.Importance = widget.HighImportance
		} else {
			s.button.Importance = widget.MediumImportance
		}
		s.button.Refresh()
	}
}

func (r *controlRenderer) Destroy() {}
