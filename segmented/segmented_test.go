package segmented

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestBuilderRejectsPushInExclusive(t *testing.T) {
	b := NewBuilder(StyleDefault, true, SizeRegular, 4)
	if err := b.Add("One", nil); !errors.Is(err, ErrPushInExclusive) {
		t.Errorf("Add on exclusive builder: %v, want ErrPushInExclusive", err)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	test.NewApp()

	b := NewBuilder(StyleDefault, false, SizeRegular, 4)
	if err := b.Add("One", nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if err := b.Add("Two", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Add after Build: %v, want ErrClosed", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Build: %v, want ErrClosed", err)
	}
}

func TestBuildEmpty(t *testing.T) {
	b := NewBuilder(StyleDefault, false, SizeRegular, 4)
	if _, err := b.Build(); !errors.Is(err, ErrNoSegments) {
		t.Errorf("Build on empty builder: %v, want ErrNoSegments", err)
	}
}

func TestSegmentPositions(t *testing.T) {
	test.NewApp()

	b := NewBuilder(StyleDefault, true, SizeRegular, 4)
	for _, label := range []string{"A", "B", "C", "D"} {
		if err := b.AddToggle(label); err != nil {
			t.Fatalf("AddToggle(%s): %v", label, err)
		}
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []Position{PositionFirst, PositionMiddle, PositionMiddle, PositionLast}
	for i, w := range want {
		if got := c.SegmentPosition(i); got != w {
			t.Errorf("segment %d position %v, want %v", i, got, w)
		}
	}
}

func TestSingleSegmentPosition(t *testing.T) {
	test.NewApp()

	b := NewBuilder(StyleDefault, false, SizeRegular, 4)
	if err := b.AddToggle("Only"); err != nil {
		t.Fatalf("AddToggle: %v", err)
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := c.SegmentPosition(0); got != PositionOnly {
		t.Errorf("position %v, want PositionOnly", got)
	}
}

func buildExclusive(t *testing.T, labels ...string) *Control {
	t.Helper()
	test.NewApp()

	b := NewBuilder(StyleRoundRect, true, SizeSmall, 4)
	for _, label := range labels {
		if err := b.AddToggle(label); err != nil {
			t.Fatalf("AddToggle(%s): %v", label, err)
		}
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func TestExclusiveInitialSelection(t *testing.T) {
	c := buildExclusive(t, "A", "B", "C")
	if got := c.Selected(); got != 0 {
		t.Errorf("initial selection %d, want 0", got)
	}
}

func TestExclusiveKeepsExactlyOneSelected(t *testing.T) {
	c := buildExclusive(t, "A", "B", "C")

	var fired []int
	c.OnSelected = func(i int) {
		fired = append(fired, i)
	}

	c.tapped(2)
	if got := c.Selected(); got != 2 {
		t.Errorf("selection %d after tap, want 2", got)
	}
	count := 0
	for i := 0; i < c.Count(); i++ {
		if c.IsSelected(i) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%d segments selected, want exactly 1", count)
	}

	// Tapping the selected segment keeps it selected and fires nothing.
	c.tapped(2)
	if got := c.Selected(); got != 2 {
		t.Errorf("selection %d after re-tap, want 2", got)
	}
	if len(fired) != 1 || fired[0] != 2 {
		t.Errorf("OnSelected fired %v, want [2]", fired)
	}
}

func TestNonExclusiveToggle(t *testing.T) {
	test.NewApp()

	b := NewBuilder(StyleDefault, false, SizeRegular, 4)
	if err := b.AddToggle("A"); err != nil {
		t.Fatalf("AddToggle: %v", err)
	}
	if err := b.AddToggle("B"); err != nil {
		t.Fatalf("AddToggle: %v", err)
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if c.Selected() != -1 {
		t.Errorf("non-exclusive control started with selection %d", c.Selected())
	}

	c.tapped(0)
	c.tapped(1)
	if !c.IsSelected(0) || !c.IsSelected(1) {
		t.Error("both toggles should be selected")
	}

	c.tapped(0)
	if c.IsSelected(0) {
		t.Error("toggle did not deselect")
	}
}

func TestPushSegmentRunsAction(t *testing.T) {
	test.NewApp()

	ran := false
	b := NewBuilder(StyleTextured, false, SizeRegular, 4)
	if err := b.Add("Go", func() { ran = true }); err != nil {
		t.Fatalf("Add: %v", err)
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	c.tapped(0)
	if !ran {
		t.Error("push segment action did not run")
	}
	if c.IsSelected(0) {
		t.Error("push segment became selected")
	}
}
