package objectstore

import "testing"

func TestKeyPrefixRoundTrip(t *testing.T) {
	s := &Service{bucket: "demo", prefix: "media/"}

	if got := s.fullKey("pictures/cat.png"); got != "media/pictures/cat.png" {
		t.Errorf("fullKey = %q", got)
	}
	if got := s.trimKey("media/pictures/cat.png"); got != "pictures/cat.png" {
		t.Errorf("trimKey = %q", got)
	}

	// Listing trims the prefix from returned keys and re-applies it when a
	// key is fed back as the start-after cursor. The two must round-trip,
	// otherwise a paginated listing on a prefixed store restarts from the
	// top instead of advancing.
	for _, key := range []string{"a.txt", "media/nested.txt", "z"} {
		full := s.fullKey(key)
		if got := s.trimKey(full); got != key {
			t.Errorf("trimKey(fullKey(%q)) = %q", key, got)
		}
	}
}

func TestKeyPrefixEmpty(t *testing.T) {
	s := &Service{bucket: "demo"}
	if got := s.fullKey("a.txt"); got != "a.txt" {
		t.Errorf("fullKey with empty prefix = %q", got)
	}
	if got := s.trimKey("a.txt"); got != "a.txt" {
		t.Errorf("trimKey with empty prefix = %q", got)
	}
}
