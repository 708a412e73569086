package ids

import (
	"strings"
	"testing"
)

func TestNanoID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NanoID()
		if len(id) != NanoidSize {
			t.Fatalf("want length %d, got %q", NanoidSize, id)
		}
		for _, r := range id {
			if !strings.ContainsRune(nanoidAlphabet, r) {
				t.Fatalf("unexpected rune %q in %q", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
	if got := NanoIDSize(8); len(got) != 8 {
		t.Fatalf("want 8 chars, got %q", got)
	}
}
