package windows

import "testing"

func TestLoadProgress(t *testing.T) {
	if got := loadProgress(0, 0); got != 0 {
		t.Errorf("empty listing: %v, want 0", got)
	}
	if got := loadProgress(0, 500); got != 0 {
		t.Errorf("first batch: %v, want 0", got)
	}

	// Successive equal-sized batches: the value climbs strictly and stays
	// below one while listing continues.
	prev := -1.0
	for total := 500; total <= 5000; total += 500 {
		got := loadProgress(total-500, total)
		if got <= prev || got >= 1 {
			t.Errorf("loaded %d of %d: %v, previous %v", total-500, total, got, prev)
		}
		prev = got
	}
}
