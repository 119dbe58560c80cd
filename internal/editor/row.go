package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/JackWReid/ninja/internal/syntax"
	"github.com/mattn/go-runewidth"
)

// TabStop is the column multiple tabs expand to.
const TabStop = 8

// widthCond pins ambiguous-width characters to narrow so widths do not
// depend on the user's locale.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// CharWidth returns the number of terminal cells ch occupies: TabStop for a
// tab, 2 for East-Asian wide and emoji code points, 1 otherwise.
func CharWidth(ch rune) int {
	if ch == '\t' {
		return TabStop
	}
	if widthCond.RuneWidth(ch) == 2 {
		return 2
	}
	return 1
}

// Row is a single line of the buffer.
type Row struct {
	Content     string
	Render      string
	HL          []syntax.Highlight
	OpenComment bool
}

func newRow(content string) *Row {
	r := &Row{Content: content}
	r.render()
	return r
}

// render rebuilds Render from Content, expanding tabs.
func (r *Row) render() {
	if !strings.ContainsRune(r.Content, '\t') {
		r.Render = r.Content
		return
	}
	var b strings.Builder
	idx := 0
	for _, ch := range r.Content {
		if ch == '\t' {
			b.WriteByte(' ')
			idx++
			for idx%TabStop != 0 {
				b.WriteByte(' ')
				idx++
			}
			continue
		}
		b.WriteRune(ch)
		idx++
	}
	r.Render = b.String()
}

// SetContent replaces the row's text and re-renders it. The caller re-lexes.
func (r *Row) SetContent(s string) {
	r.Content = s
	r.render()
}

// CharCount returns the number of characters in Content.
func (r *Row) CharCount() int {
	return utf8.RuneCountInString(r.Content)
}

// InsertChar inserts ch before character at. An index past the end appends.
func (r *Row) InsertChar(at int, ch rune) {
	off := byteOffset(r.Content, at)
	r.SetContent(r.Content[:off] + string(ch) + r.Content[off:])
}

// DeleteChar removes the character at index at, if there is one.
func (r *Row) DeleteChar(at int) {
	if at < 0 || at >= r.CharCount() {
		return
	}
	start := byteOffset(r.Content, at)
	_, size := utf8.DecodeRuneInString(r.Content[start:])
	r.SetContent(r.Content[:start] + r.Content[start+size:])
}

// Substring returns characters [a, b) of Content.
func (r *Row) Substring(a, b int) string {
	if b < a {
		return ""
	}
	return r.Content[byteOffset(r.Content, a):byteOffset(r.Content, b)]
}

// RenderX converts a content index into a render cell column.
func (r *Row) RenderX(cx int) int {
	rx := 0
	i := 0
	for _, ch := range r.Content {
		if i >= cx {
			break
		}
		rx = advance(rx, ch)
		i++
	}
	return rx
}

// ContentX converts a render cell column into the content index of the
// character covering it. Columns past the end map to CharCount.
func (r *Row) ContentX(rx int) int {
	cur := 0
	i := 0
	for _, ch := range r.Content {
		cur = advance(cur, ch)
		if cur > rx {
			return i
		}
		i++
	}
	return i
}

// RenderIndex converts a content index into a character index of Render.
func (r *Row) RenderIndex(cx int) int {
	idx := 0
	i := 0
	for _, ch := range r.Content {
		if i >= cx {
			break
		}
		if ch == '\t' {
			idx += TabStop - idx%TabStop
		} else {
			idx++
		}
		i++
	}
	return idx
}

func advance(rx int, ch rune) int {
	if ch == '\t' {
		return rx + TabStop - rx%TabStop
	}
	return rx + CharWidth(ch)
}

// byteOffset translates a character index into a byte offset within s,
// clamping to len(s).
func byteOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	i := 0
	for off := range s {
		if i == n {
			return off
		}
		i++
	}
	return len(s)
}

func (r *Row) clone() *Row {
	c := *r
	c.HL = append([]syntax.Highlight(nil), r.HL...)
	return &c
}
