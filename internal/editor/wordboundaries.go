package editor

import (
	"math"
	"unicode"
)

// wordSpan is a run of word characters in a row, in character indices.
type wordSpan struct {
	start, end int
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// wordSpans returns the words of content in order.
func wordSpans(content string) []wordSpan {
	var spans []wordSpan
	inWord := false
	start := 0
	i := 0
	for _, r := range content {
		if isWordChar(r) {
			if !inWord {
				start = i
				inWord = true
			}
		} else if inWord {
			spans = append(spans, wordSpan{start, i})
			inWord = false
		}
		i++
	}
	if inWord {
		spans = append(spans, wordSpan{start, i})
	}
	return spans
}

// MoveWord moves the cursor to the start of the next word, or of the
// previous word when forward is false, crossing line boundaries. With no
// word left the cursor stops at the end or start of the buffer.
func (eb *EditorBuffer) MoveWord(forward bool) {
	eb.undo.flushCoalesce()
	vp := eb.vp
	n := eb.rows.Len()

	if forward {
		for cy, cx := vp.CY, vp.CX; cy < n; cy, cx = cy+1, -1 {
			for _, w := range wordSpans(eb.rows.Row(cy).Content) {
				if w.start > cx {
					vp.CY, vp.CX = cy, w.start
					return
				}
			}
		}
		if n > 0 {
			vp.CY, vp.CX = n-1, eb.rows.Row(n-1).CharCount()
		}
		return
	}

	cy, cx := vp.CY, vp.CX
	if cy >= n {
		cy, cx = n-1, math.MaxInt
	}
	for ; cy >= 0; cy, cx = cy-1, math.MaxInt {
		spans := wordSpans(eb.rows.Row(cy).Content)
		for i := len(spans) - 1; i >= 0; i-- {
			if spans[i].start < cx {
				vp.CY, vp.CX = cy, spans[i].start
				return
			}
		}
	}
	vp.CY, vp.CX = 0, 0
}
