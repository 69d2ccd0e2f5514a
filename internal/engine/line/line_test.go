package line

import "testing"

func TestLengthCountsClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"precomposed accent", "héllo", 5},
		{"combining accent", "étude", 5},
		{"cyrillic", "привет", 6},
		{"emoji zwj sequence", "a\U0001F469\u200D\U0001F4BBb", 3},
		{"flag", "\U0001F1FA\U0001F1E6", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.text)
			if got := l.Length(); got != tt.want {
				t.Errorf("Length(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestLengthIsNotByteOrRuneCount(t *testing.T) {
	l := New("é")
	if l.Length() == len(l.Text()) {
		t.Error("length must not equal byte count for combining text")
	}
	if l.Length() != 1 {
		t.Errorf("Length() = %d, want 1 cluster", l.Length())
	}
}

func TestRenderReplacesTabs(t *testing.T) {
	l := New("a\tb")
	if got := l.Render(0, l.Length()); got != "a b" {
		t.Errorf("Render() = %q, want %q", got, "a b")
	}
}

func TestRenderClampsRange(t *testing.T) {
	l := New("hello")

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"window", 1, 4, "ell"},
		{"end past length", 2, 99, "llo"},
		{"start past end", 7, 3, ""},
		{"both past length", 10, 20, ""},
		{"empty window", 2, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Render(tt.start, tt.end); got != tt.want {
				t.Errorf("Render(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestRenderDoesNotSplitClusters(t *testing.T) {
	l := New("aéi")
	if got := l.Render(1, 2); got != "é" {
		t.Errorf("Render(1, 2) = %q, want the full combining cluster", got)
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		r    rune
		want string
	}{
		{"start", "bc", 0, 'a', "abc"},
		{"middle", "ac", 1, 'b', "abc"},
		{"at end appends", "ab", 2, 'c', "abc"},
		{"past end appends", "ab", 99, 'c', "abc"},
		{"into empty", "", 0, 'x', "x"},
		{"after combining cluster", "éb", 1, 'a', "éab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.text)
			l.Insert(tt.at, tt.r)
			if l.Text() != tt.want {
				t.Errorf("Insert(%d, %q) = %q, want %q", tt.at, tt.r, l.Text(), tt.want)
			}
		})
	}
}

func TestInsertText(t *testing.T) {
	l := New("hd")
	l.InsertText(1, "ello worl")
	if l.Text() != "hello world" {
		t.Errorf("InsertText() = %q, want %q", l.Text(), "hello world")
	}
	if l.Length() != 11 {
		t.Errorf("Length() = %d, want 11", l.Length())
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	texts := []string{"", "hello", "héllo", "étude", "a\U0001F469\u200D\U0001F4BBb"}

	for _, text := range texts {
		orig := New(text)
		for at := 0; at <= orig.Length(); at++ {
			l := New(text)
			l.Insert(at, 'x')
			l.Delete(at)
			if l.Text() != text {
				t.Errorf("insert+delete at %d in %q = %q, want original", at, text, l.Text())
			}
			if l.Length() != orig.Length() {
				t.Errorf("length after round trip at %d in %q = %d, want %d",
					at, text, l.Length(), orig.Length())
			}
		}
	}
}

func TestDelete(t *testing.T) {
	l := New("abc")
	l.Delete(1)
	if l.Text() != "ac" {
		t.Errorf("Delete(1) = %q, want %q", l.Text(), "ac")
	}

	l.Delete(99)
	if l.Text() != "ac" {
		t.Error("Delete past end must be a no-op")
	}
}

func TestDeleteRemovesWholeCluster(t *testing.T) {
	l := New("aéb")
	l.Delete(1)
	if l.Text() != "ab" {
		t.Errorf("Delete(1) = %q, want %q", l.Text(), "ab")
	}
}

func TestDeleteSlice(t *testing.T) {
	t.Run("carves tail", func(t *testing.T) {
		l := New("hello")
		removed, ok := l.DeleteSlice(2, 5)
		if !ok || removed != "llo" {
			t.Errorf("DeleteSlice(2, 5) = %q, %v; want %q, true", removed, ok, "llo")
		}
		if l.Text() != "he" {
			t.Errorf("remaining = %q, want %q", l.Text(), "he")
		}
	})

	t.Run("middle", func(t *testing.T) {
		l := New("hello")
		removed, ok := l.DeleteSlice(1, 4)
		if !ok || removed != "ell" || l.Text() != "ho" {
			t.Errorf("DeleteSlice(1, 4) = %q, %v, remaining %q", removed, ok, l.Text())
		}
	})

	t.Run("degenerate ranges", func(t *testing.T) {
		for _, r := range []struct{ from, to int }{{3, 3}, {4, 2}, {0, 6}} {
			l := New("hello")
			if _, ok := l.DeleteSlice(r.from, r.to); ok {
				t.Errorf("DeleteSlice(%d, %d) must decline", r.from, r.to)
			}
			if l.Text() != "hello" {
				t.Errorf("DeleteSlice(%d, %d) mutated the line", r.from, r.to)
			}
		}
	})

	t.Run("combining text", func(t *testing.T) {
		l := New("xéy")
		removed, ok := l.DeleteSlice(1, 2)
		if !ok || removed != "é" || l.Text() != "xy" {
			t.Errorf("DeleteSlice(1, 2) = %q, %v, remaining %q", removed, ok, l.Text())
		}
	})
}

func TestIndex(t *testing.T) {
	l := New("hello")

	if x, ok := l.Index("lo", 0); !ok || x != 3 {
		t.Errorf("Index(lo, 0) = %d, %v; want 3, true", x, ok)
	}
	if x, ok := l.Index("l", 3); !ok || x != 3 {
		t.Errorf("Index(l, 3) = %d, %v; want 3, true", x, ok)
	}
	if _, ok := l.Index("lo", 4); ok {
		t.Error("Index past the match must fail")
	}
	if _, ok := l.Index("", 0); ok {
		t.Error("empty query must fail")
	}
}

func TestIndexReturnsClusterOffsets(t *testing.T) {
	l := New("élo")
	x, ok := l.Index("lo", 0)
	if !ok || x != 1 {
		t.Errorf("Index(lo) = %d, %v; want cluster offset 1", x, ok)
	}
}

func TestLastIndex(t *testing.T) {
	l := New("hello")

	if x, ok := l.LastIndex("he", 3); !ok || x != 0 {
		t.Errorf("LastIndex(he, 3) = %d, %v; want 0, true", x, ok)
	}
	if x, ok := l.LastIndex("l", 5); !ok || x != 3 {
		t.Errorf("LastIndex(l, 5) = %d, %v; want 3, true", x, ok)
	}
	if _, ok := l.LastIndex("lo", 3); ok {
		t.Error("match extending past the limit must fail")
	}
}
