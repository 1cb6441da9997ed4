package grapheme

import "testing"

func TestCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\u05e9\u05c1" + "b"
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty text=%d, want 0", c)
	}
}

func TestBounds_TileText(t *testing.T) {
	text := []byte("a" + "e\u0301" + "\u05d0")
	got := Bounds(text)
	want := []Span{{0, 1}, {1, 4}, {4, 6}}
	if len(got) != len(want) {
		t.Fatalf("bounds=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bounds[%d]=%v, want %v", i, got[i], want[i])
		}
	}
	if Bounds(nil) != nil {
		t.Fatalf("bounds of empty text should be nil")
	}
}

func TestTruncate_KeepsWholeClusters(t *testing.T) {
	text := "ab" + "e\u0301" + "cd"
	if got, want := Truncate(text, 3), "ab"+"e\u0301"; got != want {
		t.Fatalf("truncate=%q, want %q", got, want)
	}
	if got := Truncate(text, 0); got != "" {
		t.Fatalf("truncate 0=%q, want empty", got)
	}
	if got := Truncate(text, 99); got != text {
		t.Fatalf("truncate past end=%q, want %q", got, text)
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if IsSpace("") {
		t.Fatalf("empty cluster should not be space")
	}
}
