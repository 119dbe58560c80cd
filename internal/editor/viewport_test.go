package editor

import (
	"fmt"
	"testing"
)

func TestViewportResize(t *testing.T) {
	v := NewViewport(80, 24)
	if v.ScreenRows != 22 || v.ScreenCols != 80 {
		t.Errorf("got %dx%d, want 80x22", v.ScreenCols, v.ScreenRows)
	}
	v.Resize(10, 1)
	if v.ScreenRows != 1 {
		t.Errorf("ScreenRows = %d, want at least 1", v.ScreenRows)
	}
	if got := v.ContentWidth(6); got != 4 {
		t.Errorf("ContentWidth(6) = %d, want 4", got)
	}
	if got := v.ContentWidth(20); got != 1 {
		t.Errorf("ContentWidth past the screen = %d, want 1", got)
	}
}

func TestMoveCursor(t *testing.T) {
	eb := newTestBuffer(t, "hello", "hi", "")
	rows := eb.rows
	tests := []struct {
		name  string
		start Pos
		dir   Direction
		want  Pos
	}{
		{"up at top", Pos{0, 3}, DirUp, Pos{0, 3}},
		{"down clamps col", Pos{0, 5}, DirDown, Pos{1, 2}},
		{"down to virtual line", Pos{2, 0}, DirDown, Pos{3, 0}},
		{"down past virtual line", Pos{3, 0}, DirDown, Pos{3, 0}},
		{"left wraps", Pos{1, 0}, DirLeft, Pos{0, 5}},
		{"left at origin", Pos{0, 0}, DirLeft, Pos{0, 0}},
		{"right wraps", Pos{0, 5}, DirRight, Pos{1, 0}},
		{"right on virtual line", Pos{3, 0}, DirRight, Pos{3, 0}},
		{"home", Pos{0, 4}, DirHome, Pos{0, 0}},
		{"end", Pos{1, 0}, DirEnd, Pos{1, 2}},
		{"end on virtual line", Pos{3, 0}, DirEnd, Pos{3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(80, 24)
			v.CY, v.CX = tt.start.Row, tt.start.Col
			v.MoveCursor(tt.dir, rows)
			if got := (Pos{v.CY, v.CX}); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveCursorWideCharacters(t *testing.T) {
	eb := newTestBuffer(t, "中a")
	var rx []int
	for i := 0; i < 3; i++ {
		eb.vp.Scroll(eb.rows, 0)
		rx = append(rx, eb.vp.RX)
		if i < 2 {
			eb.Move(DirRight)
		}
	}
	if fmt.Sprint(rx) != "[0 2 3]" {
		t.Errorf("rx progression = %v, want [0 2 3]", rx)
	}
	if eb.Cursor() != (Pos{0, 2}) {
		t.Errorf("cursor = %v, want {0 2}", eb.Cursor())
	}
}

func TestScrollTabRenderColumn(t *testing.T) {
	eb := newTestBuffer(t, "a\tb")
	eb.vp.CX = 2
	eb.vp.Scroll(eb.rows, 0)
	if eb.vp.RX != 8 {
		t.Errorf("RX = %d, want 8", eb.vp.RX)
	}
}

func TestScrollVertical(t *testing.T) {
	lines := make([]string, 100)
	eb := newTestBuffer(t, lines...)
	v := eb.vp

	v.CY = 50
	v.Scroll(eb.rows, 0)
	if v.RowOffset != 50-v.ScreenRows+1 {
		t.Errorf("RowOffset = %d after scrolling down", v.RowOffset)
	}
	v.CY = 3
	v.Scroll(eb.rows, 0)
	if v.RowOffset != 3 {
		t.Errorf("RowOffset = %d after scrolling up, want 3", v.RowOffset)
	}
}

func TestScrollHorizontalWithGutter(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	eb := newTestBuffer(t, string(long))
	v := eb.vp
	v.CX = 100
	v.Scroll(eb.rows, 6)
	if v.ColOffset != 100-74+1 {
		t.Errorf("ColOffset = %d, want %d", v.ColOffset, 100-74+1)
	}
	v.CX = 5
	v.Scroll(eb.rows, 6)
	if v.ColOffset != 5 {
		t.Errorf("ColOffset = %d, want 5", v.ColOffset)
	}
}

func TestPageDownAndUp(t *testing.T) {
	lines := make([]string, 100)
	eb := newTestBuffer(t, lines...)
	v := eb.vp

	v.PageDown(eb.rows)
	if want := 2*v.ScreenRows - 1; v.CY != want {
		t.Errorf("PageDown CY = %d, want %d", v.CY, want)
	}
	v.Scroll(eb.rows, 0)

	v.PageUp(eb.rows)
	if want := v.RowOffset - v.ScreenRows; v.CY != max(want, 0) {
		t.Errorf("PageUp CY = %d, want %d", v.CY, max(want, 0))
	}
}

func TestPageDownClampsToBuffer(t *testing.T) {
	eb := newTestBuffer(t, "a", "b", "c")
	eb.vp.PageDown(eb.rows)
	if eb.vp.CY != 3 {
		t.Errorf("CY = %d, want 3", eb.vp.CY)
	}
	eb.vp.PageUp(eb.rows)
	if eb.vp.CY != 0 {
		t.Errorf("CY = %d, want 0", eb.vp.CY)
	}
}
