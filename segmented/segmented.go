// Package segmented assembles a horizontal collection of buttons into a
// segmented control. With a native macOS driver installed the segments are
// rendered joined; otherwise they are ordinary buttons separated by a
// configurable gap.
package segmented

import (
	"errors"

	"github.com/aquakit/aquakit/aqua"
)

// Style selects the segmented control style. The styles mirror the macOS
// segmented button variants; without a native driver they all render the
// same way.
type Style int

const (
	StyleDefault Style = iota
	StyleTextured
	StyleSeparated
	StyleTexturedSeparated
	StyleRoundRect
	StyleGradient
)

// Size selects the control size variant.
type Size int

const (
	SizeRegular Size = iota
	SizeLarge
	SizeSmall
	SizeMini
)

// Position describes where a segment sits within its control.
type Position int

const (
	PositionOnly Position = iota
	PositionFirst
	PositionMiddle
	PositionLast
)

var (
	// ErrClosed is returned when a builder is used after Build.
	ErrClosed = errors.New("segmented: builder has been closed")
	// ErrPushInExclusive is returned when a push segment is added to an
	// exclusive control, which supports only toggle segments.
	ErrPushInExclusive = errors.New("segmented: exclusive control supports only toggle segments")
	// ErrNoSegments is returned by Build on an empty builder.
	ErrNoSegments = errors.New("segmented: control needs at least one segment")
)

// Builder collects segments and produces a Control. A builder can be used
// only once.
type Builder struct {
	style      Style
	exclusive  bool
	size       Size
	separation float32
	segments   []*segment
	closed     bool
}

// NewBuilder creates a segmented control builder. exclusive controls keep
// exactly one segment selected at all times. separation is the gap between
// buttons used when segments are not rendered natively joined; negative
// values are treated as zero.
func NewBuilder(style Style, exclusive bool, size Size, separation float32) *Builder {
	return &Builder{
		style:      style,
		exclusive:  exclusive,
		size:       size,
		separation: max(0, separation),
	}
}

// Add appends a push segment running tapped when activated. Push segments
// are not supported in an exclusive control.
func (b *Builder) Add(label string, tapped func()) error {
	if b.exclusive {
		return ErrPushInExclusive
	}
	if b.closed {
		return ErrClosed
	}
	b.segments = append(b.segments, &segment{label: label, onTapped: tapped})
	return nil
}

// AddToggle appends a toggle segment.
func (b *Builder) AddToggle(label string) error {
	if b.closed {
		return ErrClosed
	}
	b.segments = append(b.segments, &segment{label: label, toggle: true})
	return nil
}

// Build creates the control and closes the builder.
func (b *Builder) Build() (*Control, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if len(b.segments) == 0 {
		return nil, ErrNoSegments
	}
	b.closed = true

	return newControl(b.segments, b.style, b.size, b.exclusive, b.separation), nil
}

// segmentPositions assigns only/first/middle/last according to the count.
func segmentPositions(count int) []Position {
	if count == 1 {
		return []Position{PositionOnly}
	}
	positions := make([]Position, count)
	for i := range positions {
		switch i {
		case 0:
			positions[i] = PositionFirst
		case count - 1:
			positions[i] = PositionLast
		default:
			positions[i] = PositionMiddle
		}
	}
	return positions
}

// nativeJoined reports whether segments should render joined, without gaps,
// because a native driver draws the control as one unit.
func nativeJoined() bool {
	return aqua.Installed()
}
