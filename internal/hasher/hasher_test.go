package hasher

import "testing"

func TestContentHash(t *testing.T) {
	full := ContentHash([]byte("image bytes"), 0)
	if len(full) != 16 {
		t.Fatalf("full hash length: got %d", len(full))
	}
	if short := ContentHash([]byte("image bytes"), 8); short != full[:8] {
		t.Errorf("truncated: got %q, want %q", short, full[:8])
	}
	if ContentHash([]byte("a"), 0) == ContentHash([]byte("b"), 0) {
		t.Error("different inputs hashed equal")
	}
	// xxhash64 of the empty input.
	if got := ContentHash(nil, 0); got != "ef46db3751d8e999" {
		t.Errorf("empty: got %s", got)
	}
}
