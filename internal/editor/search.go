package editor

import (
	"unicode"

	"github.com/JackWReid/ninja/internal/syntax"
	"github.com/JackWReid/ninja/internal/terminal"
)

type searchDir int

const (
	dirNone searchDir = iota
	dirForward
	dirBackward
)

// Search is the incremental-find state. Only one row's classifications are
// overlaid at a time; saved holds them until the match moves on.
type Search struct {
	yIndex, xIndex int
	yDir, xDir     searchDir

	savedRow int
	saved    []syntax.Highlight

	CaseSensitive bool
	WrapAround    bool
}

// Reset clears positions and directions.
func (s *Search) Reset() {
	s.yIndex, s.xIndex = 0, 0
	s.yDir, s.xDir = dirNone, dirNone
	s.saved = nil
}

func (s *Search) restoreHighlight(rows *Rows) {
	if s.saved == nil {
		return
	}
	if s.savedRow < rows.Len() {
		rows.Row(s.savedRow).HL = s.saved
	}
	s.saved = nil
}

// Step runs after every prompt keystroke. Arrows pick the direction of the
// next match; Enter and Escape end the search.
func (s *Search) Step(eb *EditorBuffer, query string, k terminal.Key) {
	rows := eb.rows
	s.restoreHighlight(rows)

	switch k.Type {
	case terminal.KeyEscape, terminal.KeyEnter:
		s.Reset()
		return
	}
	s.yDir, s.xDir = dirNone, dirNone
	switch k.Type {
	case terminal.KeyDown:
		s.yDir = dirForward
	case terminal.KeyUp:
		s.yDir = dirBackward
	case terminal.KeyRight:
		s.xDir = dirForward
	case terminal.KeyLeft:
		s.xDir = dirBackward
	}

	n := rows.Len()
	if n == 0 || query == "" {
		return
	}
	needle := s.fold([]rune(query))

	for i := 0; i < n; i++ {
		var rowIndex int
		switch s.yDir {
		case dirNone:
			if s.xDir == dirNone {
				s.yIndex = i
			}
			rowIndex = s.yIndex
		case dirForward:
			rowIndex = s.yIndex + i + 1
		case dirBackward:
			rowIndex = s.yIndex - i - 1
		}

		if rowIndex < 0 || rowIndex >= n {
			if !s.WrapAround || s.yDir == dirNone {
				break
			}
			rowIndex = (rowIndex%n + n) % n
		}

		row := rows.Row(rowIndex)
		render := []rune(row.Render)
		hay := s.fold(render)
		var index int
		switch s.xDir {
		case dirNone:
			index = indexRunes(hay, needle, 0)
		case dirForward:
			index = indexRunes(hay, needle, s.xIndex+1)
		case dirBackward:
			index = lastIndexRunes(hay, needle, s.xIndex)
		}
		if index < 0 {
			if s.xDir != dirNone {
				break
			}
			continue
		}

		s.savedRow = rowIndex
		s.saved = append([]syntax.Highlight(nil), row.HL...)
		for j := index; j < index+len(needle) && j < len(row.HL); j++ {
			row.HL[j] = syntax.HLSearchMatch
		}
		s.yIndex, s.xIndex = rowIndex, index

		eb.vp.CY = rowIndex
		eb.vp.CX = row.ContentX(renderWidth(render[:index]))
		eb.vp.RowOffset = n
		return
	}
}

func (s *Search) fold(r []rune) []rune {
	if s.CaseSensitive {
		return r
	}
	out := make([]rune, len(r))
	for i, c := range r {
		out[i] = unicode.ToLower(c)
	}
	return out
}

// renderWidth sums the cells of render characters. Render holds no tabs.
func renderWidth(chars []rune) int {
	w := 0
	for _, c := range chars {
		w += CharWidth(c)
	}
	return w
}

// indexRunes finds needle in hay at or after from.
func indexRunes(hay, needle []rune, from int) int {
	for i := max(from, 0); i+len(needle) <= len(hay); i++ {
		if runesEqual(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// lastIndexRunes finds the last needle lying entirely within hay[:before].
func lastIndexRunes(hay, needle []rune, before int) int {
	for i := min(before, len(hay)) - len(needle); i >= 0; i-- {
		if runesEqual(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
