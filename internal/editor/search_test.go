package editor

import (
	"testing"

	"github.com/JackWReid/ninja/internal/syntax"
	"github.com/JackWReid/ninja/internal/terminal"
)

func runeKey(r rune) terminal.Key {
	return terminal.Key{Type: terminal.KeyRune, Rune: r}
}

func keyOf(typ int) terminal.Key {
	return terminal.Key{Type: typ}
}

func TestSearchForward(t *testing.T) {
	eb := newTestBuffer(t, "abc foo", "bar foo")
	s := eb.search

	s.Step(eb, "foo", runeKey('o'))
	if eb.Cursor() != (Pos{0, 4}) {
		t.Fatalf("first match at %v, want {0 4}", eb.Cursor())
	}
	hl := eb.rows.Row(0).HL
	for i := 4; i < 7; i++ {
		if hl[i] != syntax.HLSearchMatch {
			t.Errorf("col %d not marked as match", i)
		}
	}
	if eb.vp.RowOffset != eb.rows.Len() {
		t.Errorf("RowOffset = %d, want forced past the end", eb.vp.RowOffset)
	}

	s.Step(eb, "foo", keyOf(terminal.KeyDown))
	if eb.Cursor() != (Pos{1, 4}) {
		t.Fatalf("next match at %v, want {1 4}", eb.Cursor())
	}
	if eb.rows.Row(0).HL[4] != syntax.HLNormal {
		t.Error("previous match highlight not restored")
	}

	s.Step(eb, "foo", keyOf(terminal.KeyEnter))
	for i := 0; i < eb.rows.Len(); i++ {
		for j, h := range eb.rows.Row(i).HL {
			if h == syntax.HLSearchMatch {
				t.Errorf("row %d col %d still marked after Enter", i, j)
			}
		}
	}
}

func TestSearchWrapsVertically(t *testing.T) {
	eb := newTestBuffer(t, "foo", "bar")
	s := eb.search
	s.WrapAround = true

	s.Step(eb, "foo", runeKey('o'))
	s.Step(eb, "foo", keyOf(terminal.KeyDown))
	if eb.Cursor() != (Pos{0, 0}) {
		t.Errorf("wrapped match at %v, want {0 0}", eb.Cursor())
	}
	s.Step(eb, "foo", keyOf(terminal.KeyUp))
	if eb.Cursor() != (Pos{0, 0}) {
		t.Errorf("backward wrapped match at %v, want {0 0}", eb.Cursor())
	}
}

func TestSearchWithoutWrapStops(t *testing.T) {
	eb := newTestBuffer(t, "foo", "bar")
	s := eb.search

	s.Step(eb, "foo", runeKey('o'))
	eb.vp.CY, eb.vp.CX = 1, 1
	s.Step(eb, "foo", keyOf(terminal.KeyDown))
	if eb.Cursor() != (Pos{1, 1}) {
		t.Errorf("cursor moved to %v without wrap", eb.Cursor())
	}
}

func TestSearchHorizontal(t *testing.T) {
	eb := newTestBuffer(t, "ab ab ab")
	s := eb.search

	s.Step(eb, "ab", runeKey('b'))
	s.Step(eb, "ab", keyOf(terminal.KeyRight))
	if eb.Cursor() != (Pos{0, 3}) {
		t.Fatalf("right: %v, want {0 3}", eb.Cursor())
	}
	s.Step(eb, "ab", keyOf(terminal.KeyRight))
	if eb.Cursor() != (Pos{0, 6}) {
		t.Fatalf("right: %v, want {0 6}", eb.Cursor())
	}
	s.Step(eb, "ab", keyOf(terminal.KeyLeft))
	if eb.Cursor() != (Pos{0, 3}) {
		t.Fatalf("left: %v, want {0 3}", eb.Cursor())
	}
	s.Step(eb, "ab", keyOf(terminal.KeyLeft))
	if eb.Cursor() != (Pos{0, 0}) {
		t.Fatalf("left: %v, want {0 0}", eb.Cursor())
	}
}

func TestSearchCaseFolding(t *testing.T) {
	eb := newTestBuffer(t, "xx FOO")
	s := eb.search

	s.Step(eb, "foo", runeKey('o'))
	if eb.Cursor() != (Pos{0, 3}) {
		t.Errorf("case-insensitive match at %v, want {0 3}", eb.Cursor())
	}

	s.restoreHighlight(eb.rows)
	s.Reset()
	s.CaseSensitive = true
	eb.vp.CY, eb.vp.CX = 0, 0
	s.Step(eb, "foo", runeKey('o'))
	if eb.Cursor() != (Pos{0, 0}) {
		t.Errorf("case-sensitive search should not match, cursor %v", eb.Cursor())
	}
}

func TestSearchThroughTabs(t *testing.T) {
	eb := newTestBuffer(t, "\tneedle")
	eb.search.Step(eb, "needle", runeKey('e'))
	if eb.Cursor() != (Pos{0, 1}) {
		t.Errorf("cursor = %v, want {0 1}", eb.Cursor())
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	eb := newTestBuffer(t, "abc")
	eb.vp.CX = 2
	eb.search.Step(eb, "", keyOf(terminal.KeyBackspace))
	if eb.Cursor() != (Pos{0, 2}) {
		t.Errorf("empty query moved cursor to %v", eb.Cursor())
	}
}
